package i8080

// inr8 computes old+1 masked to 8 bits and sets S Z AC P. CY is left
// untouched, per spec.md's INR/DCR rule.
func (c *CPU) inr8(old byte) byte {
	res := old + 1
	c.flags.setSZP(res)
	c.flags.ac = (old&0x0F)+1 > 0x0F
	return res
}

// dcr8 computes old-1 masked to 8 bits and sets S Z AC P. CY is left
// untouched.
func (c *CPU) dcr8(old byte) byte {
	res := old - 1
	c.flags.setSZP(res)
	c.flags.ac = old&0x0F == 0
	return res
}
