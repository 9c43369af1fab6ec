package i8080

// opNOP covers 0x00 and the seven undocumented gaps the 8080 treats as
// NOP (0x08, 0x10, 0x18, 0x20, 0x28, 0x30, 0x38), plus DI/EI since
// interrupt hardware is not modeled.
func (c *CPU) opNOP() {}

// opHLT enters the halted state; subsequent Step calls become no-ops
// until Reset. PC has already been advanced past the HLT opcode byte by
// the fetch that preceded dispatch, so the halted PC reads one past the
// 0x76 byte's address.
func (c *CPU) opHLT() {
	c.state = stateHalted
}

// opJMP implements unconditional JMP.
func (c *CPU) opJMP() {
	c.PC = c.fetchWord()
}

// opJMPCond implements the eight conditional jumps. The 16-bit immediate
// is always consumed; the jump is taken only if the condition holds.
func (c *CPU) opJMPCond(code cc) {
	target := c.fetchWord()
	if c.condition(code) {
		c.PC = target
	}
}

// opCALL implements unconditional CALL: push the return address (PC
// after the 16-bit immediate), then jump.
func (c *CPU) opCALL() {
	target := c.fetchWord()
	c.pushWord(c.PC)
	c.PC = target
}

// opCALLCond implements the eight conditional calls. The 16-bit
// immediate is always consumed; the call (push + jump) happens only if
// the condition holds.
func (c *CPU) opCALLCond(code cc) {
	target := c.fetchWord()
	if c.condition(code) {
		c.pushWord(c.PC)
		c.PC = target
	}
}

// opRET implements unconditional RET: pop the return address into PC.
func (c *CPU) opRET() {
	c.PC = c.popWord()
}

// opRETCond implements the eight conditional returns. When the condition
// is false this does nothing at all — SP and PC are left untouched. The
// source this core was modeled after pops SP unconditionally even when
// the branch is not taken, which does not match real 8080 behavior; this
// implementation follows the documented hardware semantics instead.
func (c *CPU) opRETCond(code cc) {
	if c.condition(code) {
		c.PC = c.popWord()
	}
}

// opRST implements RST n: push the current PC, then jump to 8*n.
func (c *CPU) opRST(n byte) {
	c.pushWord(c.PC)
	c.PC = uint16(n) * 8
}

// opPUSH implements PUSH rp for BC/DE/HL/PSW. For PSW, A is pushed high
// and the flag byte low; the flag-byte layout invariants are already
// enforced by flags.Byte.
func (c *CPU) opPUSH(rp RegPair) {
	c.pushWord(c.ReadPair(rp))
}

// opPOP implements POP rp for BC/DE/HL/PSW. POP PSW restores the flag
// byte through SetByte, which reasserts bit 1 = 1 and bits 3, 5 = 0.
func (c *CPU) opPOP(rp RegPair) {
	c.WritePair(rp, c.popWord())
}

// opIN implements IN port: A <- device_in(port). With no hardware
// attached, the default device reads 0xFF.
func (c *CPU) opIN() {
	port := c.fetchByte()
	c.A = c.bus.In(port)
}

// opOUT implements OUT port: device_out(port, A). With no hardware
// attached, the default device is a no-op.
func (c *CPU) opOUT() {
	port := c.fetchByte()
	c.bus.Out(port, c.A)
}
