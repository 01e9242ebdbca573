package cpu

// ALU primitives: each mutates A (or returns a value the caller stores) and
// writes all four flags per the contract table in spec §4.4. Intermediate
// carry/borrow math is done in wider Go integer types so half-carry and
// carry detection never truncates before the comparison.

// Add8 implements ADD A,v.
func (c *CPU) Add8(v uint8) {
	a := c.A()
	sum := int(a) + int(v)
	result := uint8(sum)
	c.SetA(result)
	c.setFlags(result == 0, false, (a&0xF)+(v&0xF) > 0xF, sum > 0xFF)
}

// Adc8 implements ADC A,v.
func (c *CPU) Adc8(v uint8) {
	a := c.A()
	cin := 0
	if c.GetFlag(FlagC) {
		cin = 1
	}
	sum := int(a) + int(v) + cin
	result := uint8(sum)
	c.SetA(result)
	c.setFlags(result == 0, false, int(a&0xF)+int(v&0xF)+cin > 0xF, sum > 0xFF)
}

// Sub8 implements SUB A,v.
func (c *CPU) Sub8(v uint8) {
	a := c.A()
	result := a - v
	c.SetA(result)
	c.setFlags(result == 0, true, (a&0xF) < (v&0xF), a < v)
}

// Sbc8 implements SBC A,v.
func (c *CPU) Sbc8(v uint8) {
	a := c.A()
	cin := 0
	if c.GetFlag(FlagC) {
		cin = 1
	}
	diff := int(a) - int(v) - cin
	result := uint8(diff)
	c.SetA(result)
	c.setFlags(result == 0, true, int(a&0xF) < int(v&0xF)+cin, diff < 0)
}

// And8 implements AND v.
func (c *CPU) And8(v uint8) {
	result := c.A() & v
	c.SetA(result)
	c.setFlags(result == 0, false, true, false)
}

// Or8 implements OR v.
func (c *CPU) Or8(v uint8) {
	result := c.A() | v
	c.SetA(result)
	c.setFlags(result == 0, false, false, false)
}

// Xor8 implements XOR v.
func (c *CPU) Xor8(v uint8) {
	result := c.A() ^ v
	c.SetA(result)
	c.setFlags(result == 0, false, false, false)
}

// Cp8 implements CP v: computes SUB A,v but discards the result.
func (c *CPU) Cp8(v uint8) {
	a := c.A()
	result := a - v
	c.setFlags(result == 0, true, (a&0xF) < (v&0xF), a < v)
}

// Inc8 implements INC r: C is left unchanged.
func (c *CPU) Inc8(v uint8) uint8 {
	halfCarry := v&0xF == 0xF
	result := v + 1
	c.SetFlag(FlagZ, result == 0)
	c.SetFlag(FlagN, false)
	c.SetFlag(FlagH, halfCarry)
	return result
}

// Dec8 implements DEC r: C is left unchanged.
func (c *CPU) Dec8(v uint8) uint8 {
	halfCarry := v&0xF == 0x0
	result := v - 1
	c.SetFlag(FlagZ, result == 0)
	c.SetFlag(FlagN, true)
	c.SetFlag(FlagH, halfCarry)
	return result
}

// AddHL implements ADD HL,rr: Z unchanged, N cleared.
func (c *CPU) AddHL(rr uint16) {
	hl := c.GetHL()
	sum := int(hl) + int(rr)
	c.SetHL(uint16(sum))
	c.SetFlag(FlagN, false)
	c.SetFlag(FlagH, (hl&0xFFF)+(rr&0xFFF) > 0xFFF)
	c.SetFlag(FlagC, sum > 0xFFFF)
}

// addSigned8 computes base+e for the shared ADD SP,e / LD HL,SP+e
// semantics: Z and N are always cleared, H/C come from the low-byte
// unsigned addition of base and the signed displacement's byte pattern.
func addSigned8(base uint16, e int8) (result uint16, halfCarry, carry bool) {
	se := int32(e)
	result = uint16(int32(base) + se)
	halfCarry = (base&0xF)+(uint16(uint8(e))&0xF) > 0xF
	carry = (base&0xFF)+uint16(uint8(e)) > 0xFF
	return result, halfCarry, carry
}

// AddSP implements ADD SP,e (e is a signed 8-bit displacement).
func (c *CPU) AddSP(e int8) {
	result, h, carry := addSigned8(c.SP, e)
	c.SP = result
	c.setFlags(false, false, h, carry)
}

// LoadHLSPOffset implements LD HL,SP+e.
func (c *CPU) LoadHLSPOffset(e int8) {
	result, h, carry := addSigned8(c.SP, e)
	c.SetHL(result)
	c.setFlags(false, false, h, carry)
}
