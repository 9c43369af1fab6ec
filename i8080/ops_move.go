package i8080

// opMOV implements MOV r,r' / MOV r,M / MOV M,r using the shared 3-bit
// operand helper; dest and src both use the B,C,D,E,H,L,M,A encoding.
func (c *CPU) opMOV(dest, src byte) {
	c.writeOperand(dest, c.readOperand(src))
}

// opMVI implements MVI r,d8 / MVI M,d8.
func (c *CPU) opMVI(dest byte) {
	c.writeOperand(dest, c.fetchByte())
}

// opLXI implements LXI rp,d16 (low byte before high byte in memory).
func (c *CPU) opLXI(rp RegPair) {
	c.WritePair(rp, c.fetchWord())
}

// opSTAX implements STAX B / STAX D: store A at the given pair's address.
func (c *CPU) opSTAX(rp RegPair) {
	c.Mem.Poke(c.ReadPair(rp), c.A)
}

// opLDAX implements LDAX B / LDAX D: load A from the given pair's address.
func (c *CPU) opLDAX(rp RegPair) {
	c.A = c.Mem.Peek(c.ReadPair(rp))
}

// opSHLD stores L at addr and H at addr+1, addr a little-endian immediate.
func (c *CPU) opSHLD() {
	addr := c.fetchWord()
	c.Mem.Poke(addr, c.L)
	c.Mem.Poke(addr+1, c.H)
}

// opLHLD loads L from addr and H from addr+1.
func (c *CPU) opLHLD() {
	addr := c.fetchWord()
	c.L = c.Mem.Peek(addr)
	c.H = c.Mem.Peek(addr + 1)
}

// opSTA stores A at a little-endian 16-bit immediate address.
func (c *CPU) opSTA() {
	c.Mem.Poke(c.fetchWord(), c.A)
}

// opLDA loads A from a little-endian 16-bit immediate address.
func (c *CPU) opLDA() {
	c.A = c.Mem.Peek(c.fetchWord())
}

// opXCHG swaps DE and HL.
func (c *CPU) opXCHG() {
	c.D, c.H = c.H, c.D
	c.E, c.L = c.L, c.E
}

// opXTHL swaps L with memory[SP] and H with memory[SP+1].
func (c *CPU) opXTHL() {
	lo := c.Mem.Peek(c.SP)
	hi := c.Mem.Peek(c.SP + 1)
	c.Mem.Poke(c.SP, c.L)
	c.Mem.Poke(c.SP+1, c.H)
	c.L, c.H = lo, hi
}

// opSPHL sets SP to HL.
func (c *CPU) opSPHL() {
	c.SP = c.HL()
}

// opPCHL sets PC to HL (an unconditional indirect jump through HL; a
// genuine documented 8080 opcode though spec.md's instruction-family
// bullets don't call it out by name).
func (c *CPU) opPCHL() {
	c.PC = c.HL()
}
