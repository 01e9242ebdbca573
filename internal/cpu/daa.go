package cpu

// Daa implements the canonical SM83 decimal-adjust algorithm. The teacher
// repo's DAA unconditionally increments A, which is simply wrong (it would
// corrupt every BCD add/sub); this follows the standard table instead, per
// spec §9.
func (c *CPU) Daa() {
	a := c.A()
	var adjust uint8
	carry := c.GetFlag(FlagC)

	if c.GetFlag(FlagN) {
		if c.GetFlag(FlagH) {
			adjust += 0x06
		}
		if carry {
			adjust += 0x60
		}
		a -= adjust
	} else {
		if c.GetFlag(FlagH) || a&0x0F > 0x09 {
			adjust += 0x06
		}
		if carry || a > 0x99 {
			adjust += 0x60
			carry = true
		}
		a += adjust
	}

	c.SetA(a)
	c.SetFlag(FlagZ, a == 0)
	c.SetFlag(FlagH, false)
	c.SetFlag(FlagC, carry)
}

// Cpl implements CPL: complement A, set N and H.
func (c *CPU) Cpl() {
	c.SetA(^c.A())
	c.SetFlag(FlagN, true)
	c.SetFlag(FlagH, true)
}

// Scf implements SCF: set carry, clear N and H.
func (c *CPU) Scf() {
	c.SetFlag(FlagC, true)
	c.SetFlag(FlagN, false)
	c.SetFlag(FlagH, false)
}

// Ccf implements CCF: complement carry, clear N and H.
func (c *CPU) Ccf() {
	c.SetFlag(FlagC, !c.GetFlag(FlagC))
	c.SetFlag(FlagN, false)
	c.SetFlag(FlagH, false)
}
