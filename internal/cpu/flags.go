package cpu

// Flag bits of the F register. Bits 0-3 are always zero (enforced by
// SetF/SetAF); only these four carry meaning.
const (
	FlagZ uint8 = 0x80 // Zero
	FlagN uint8 = 0x40 // Subtract
	FlagH uint8 = 0x20 // Half-carry
	FlagC uint8 = 0x10 // Carry
)

// GetFlag reports whether the given flag bit is set.
func (c *CPU) GetFlag(flag uint8) bool {
	return c.F()&flag != 0
}

// SetFlag sets or clears exactly the given flag bit, leaving the other
// three untouched.
func (c *CPU) SetFlag(flag uint8, set bool) {
	if set {
		c.SetF(c.F() | flag)
	} else {
		c.SetF(c.F() &^ flag)
	}
}

// setFlags is a small convenience for the common case of writing all four
// flags from one ALU op in a single call.
func (c *CPU) setFlags(z, n, h, carry bool) {
	var f uint8
	if z {
		f |= FlagZ
	}
	if n {
		f |= FlagN
	}
	if h {
		f |= FlagH
	}
	if carry {
		f |= FlagC
	}
	c.SetF(f)
}
