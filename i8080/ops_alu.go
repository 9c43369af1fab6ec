package i8080

// aluOp identifies one of the eight ALU operations that share the
// 0x80-0xBF register/memory opcode block and the 0xC6-0xFE immediate
// block, in the 8080's bit 5:3 row order.
type aluOp byte

const (
	aluAdd aluOp = iota
	aluAdc
	aluSub
	aluSbb
	aluAna
	aluXra
	aluOra
	aluCmp
)

func (c *CPU) performALU(op aluOp, value byte) {
	switch op {
	case aluAdd:
		c.addA(value, 0)
	case aluAdc:
		c.addA(value, c.cin())
	case aluSub:
		c.subA(value, 0, true)
	case aluSbb:
		c.subA(value, c.cin(), true)
	case aluAna:
		c.andA(value)
	case aluXra:
		c.xorA(value)
	case aluOra:
		c.orA(value)
	case aluCmp:
		c.subA(value, 0, false)
	}
}

// opALUReg implements ADD/ADC/SUB/SBB/ANA/XRA/ORA/CMP against a register
// or M, decoded with the shared 3-bit operand helper.
func (c *CPU) opALUReg(op aluOp, src byte) {
	c.performALU(op, c.readOperand(src))
}

// opALUImm implements ADI/ACI/SUI/SBI/ANI/XRI/ORI/CPI.
func (c *CPU) opALUImm(op aluOp) {
	c.performALU(op, c.fetchByte())
}

// opINR implements INR r / INR M. CY is unaffected.
func (c *CPU) opINR(dest byte) {
	c.writeOperand(dest, c.inr8(c.readOperand(dest)))
}

// opDCR implements DCR r / DCR M. CY is unaffected.
func (c *CPU) opDCR(dest byte) {
	c.writeOperand(dest, c.dcr8(c.readOperand(dest)))
}

// opINX implements INX rp: rp <- rp+1 (mod 2^16). No flags affected.
func (c *CPU) opINX(rp RegPair) {
	c.WritePair(rp, c.ReadPair(rp)+1)
}

// opDCX implements DCX rp: rp <- rp-1 (mod 2^16). No flags affected.
func (c *CPU) opDCX(rp RegPair) {
	c.WritePair(rp, c.ReadPair(rp)-1)
}

// opDAD implements DAD rp: HL <- HL + rp (mod 2^16). CY reflects the
// 16-bit carry-out; S, Z, AC, P are unaffected.
func (c *CPU) opDAD(rp RegPair) {
	sum := uint32(c.HL()) + uint32(c.ReadPair(rp))
	c.WritePair(PairHL, uint16(sum))
	c.flags.cy = sum > 0xFFFF
}

// opRLC rotates A left; the old bit 7 becomes both the new bit 0 and CY.
func (c *CPU) opRLC() {
	bit7 := c.A>>7&1 == 1
	c.A = c.A<<1 | c.A>>7
	c.flags.cy = bit7
}

// opRRC rotates A right; the old bit 0 becomes both the new bit 7 and CY.
func (c *CPU) opRRC() {
	bit0 := c.A&1 == 1
	c.A = c.A>>1 | c.A<<7
	c.flags.cy = bit0
}

// opRAL rotates A left through CY: new bit 0 is the old CY, new CY is
// the old bit 7.
func (c *CPU) opRAL() {
	oldCY := byte(0)
	if c.flags.cy {
		oldCY = 1
	}
	newCY := c.A>>7&1 == 1
	c.A = c.A<<1 | oldCY
	c.flags.cy = newCY
}

// opRAR rotates A right through CY: new bit 7 is the old CY, new CY is
// the old bit 0.
func (c *CPU) opRAR() {
	oldCY := byte(0)
	if c.flags.cy {
		oldCY = 0x80
	}
	newCY := c.A&1 == 1
	c.A = c.A>>1 | oldCY
	c.flags.cy = newCY
}

// opCMA complements A; no flags affected.
func (c *CPU) opCMA() {
	c.A = ^c.A
}

// opSTC sets CY.
func (c *CPU) opSTC() {
	c.flags.cy = true
}

// opCMC complements CY.
func (c *CPU) opCMC() {
	c.flags.cy = !c.flags.cy
}
