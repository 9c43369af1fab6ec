package i8080

// addA computes A + value + cin, stores the result in A, and sets S Z AC
// P CY per spec.md §4.3's addition rules. All arithmetic is carried at
// 9-bit width so CY is observable before masking.
func (c *CPU) addA(value byte, cin byte) {
	a := c.A
	sum := uint16(a) + uint16(value) + uint16(cin)
	res := byte(sum)

	c.A = res
	c.flags.setSZP(res)
	c.flags.ac = (a&0x0F)+(value&0x0F)+cin > 0x0F
	c.flags.cy = sum > 0xFF
}

// subA computes a - value - cin and sets S Z AC P CY per spec.md §4.3's
// subtraction rules, treating operands as unsigned. If store is false
// (CMP), A is left untouched but every flag still reflects the compare.
func (c *CPU) subA(value byte, cin byte, store bool) {
	a := c.A
	diff := int(a) - int(value) - int(cin)
	res := byte(diff)

	if store {
		c.A = res
	}
	c.flags.setSZP(res)
	c.flags.ac = int(a&0x0F)-int(value&0x0F)-int(cin) < 0
	c.flags.cy = diff < 0
}

// andA computes A & value, stores it, and sets flags per the 8080's
// ANA-specific AC rule: AC is set from (A | value) & 0x08, not from a
// true half-carry computation. CY is always cleared.
func (c *CPU) andA(value byte) {
	a := c.A
	res := a & value
	c.A = res
	c.flags.setSZP(res)
	c.flags.ac = (a|value)&0x08 != 0
	c.flags.cy = false
}

// xorA computes A ^ value, stores it, and sets flags: AC and CY are
// always cleared for XRA.
func (c *CPU) xorA(value byte) {
	res := c.A ^ value
	c.A = res
	c.flags.setSZP(res)
	c.flags.ac = false
	c.flags.cy = false
}

// orA computes A | value, stores it, and sets flags: AC and CY are
// always cleared for ORA.
func (c *CPU) orA(value byte) {
	res := c.A | value
	c.A = res
	c.flags.setSZP(res)
	c.flags.ac = false
	c.flags.cy = false
}

func (c *CPU) cin() byte {
	if c.flags.cy {
		return 1
	}
	return 0
}
