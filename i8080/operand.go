package i8080

// readOperand reads an 8-bit operand by its 3-bit register index
// (B=0,C=1,D=2,E=3,H=4,L=5,M=6,A=7). Index 6 reads memory[HL]. This is
// the single helper spec.md's design notes call for so the MOV/ALU
// dispatch table reduces to a handful of templates instead of near
// duplicates per register.
func (c *CPU) readOperand(idx byte) byte {
	switch idx & 0x07 {
	case 0:
		return c.B
	case 1:
		return c.C
	case 2:
		return c.D
	case 3:
		return c.E
	case 4:
		return c.H
	case 5:
		return c.L
	case 6:
		return c.Mem.Peek(c.HL())
	default:
		return c.A
	}
}

// writeOperand is the symmetric writer for readOperand.
func (c *CPU) writeOperand(idx byte, value byte) {
	switch idx & 0x07 {
	case 0:
		c.B = value
	case 1:
		c.C = value
	case 2:
		c.D = value
	case 3:
		c.E = value
	case 4:
		c.H = value
	case 5:
		c.L = value
	case 6:
		c.Mem.Poke(c.HL(), value)
	default:
		c.A = value
	}
}
