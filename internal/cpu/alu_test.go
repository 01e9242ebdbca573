package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIncDecDoNotAffectCarry(t *testing.T) {
	c := New()
	c.SetFlag(FlagC, true)
	c.SetA(c.Inc8(c.A()))
	assert.True(t, c.GetFlag(FlagC), "INC must not touch carry")
	c.SetA(c.Dec8(c.A()))
	assert.True(t, c.GetFlag(FlagC), "DEC must not touch carry")
}

func TestIncHalfCarryAtNibbleBoundary(t *testing.T) {
	c := New()
	c.SetA(0x0F)
	c.SetA(c.Inc8(c.A()))
	assert.Equal(t, uint8(0x10), c.A())
	assert.True(t, c.GetFlag(FlagH))
}

func TestDecHalfCarryAtNibbleBoundary(t *testing.T) {
	c := New()
	c.SetA(0x10)
	c.SetA(c.Dec8(c.A()))
	assert.Equal(t, uint8(0x0F), c.A())
	assert.True(t, c.GetFlag(FlagH))
}

func TestAddHLOverflowSetsCarryNotZero(t *testing.T) {
	c := New()
	c.SetHL(0xFFFF)
	c.SetFlag(FlagZ, true)
	c.AddHL(1)
	assert.Equal(t, uint16(0x0000), c.GetHL())
	assert.True(t, c.GetFlag(FlagZ), "ADD HL,rr must not touch Z")
	assert.True(t, c.GetFlag(FlagC))
	assert.True(t, c.GetFlag(FlagH))
}

func TestAddSPNegativeDisplacement(t *testing.T) {
	c := New()
	c.SP = 0x0005
	c.AddSP(-2)
	assert.Equal(t, uint16(0x0003), c.SP)
	assert.False(t, c.GetFlag(FlagZ))
	assert.False(t, c.GetFlag(FlagN))
}

func TestSbcHalfCarryWidensBeyondNibble(t *testing.T) {
	// A=0x00, v=0x0F, carry-in=1: (0 & 0xF) < (0xF & 0xF) + 1 = 0x10, must
	// not truncate before the comparison (spec §9).
	c := New()
	c.SetA(0x00)
	c.SetFlag(FlagC, true)
	c.Sbc8(0x0F)
	assert.True(t, c.GetFlag(FlagH))
	assert.True(t, c.GetFlag(FlagC))
	assert.Equal(t, uint8(0xF0), c.A())
}

func TestDaaAfterBCDAdd(t *testing.T) {
	c := New()
	c.SetA(0x45)
	c.Add8(0x38) // 0x45+0x38 = 0x7D, not a valid BCD result
	c.Daa()
	assert.Equal(t, uint8(0x83), c.A(), "DAA must correct 45+38 to 83 in BCD")
	assert.False(t, c.GetFlag(FlagC))
}

func TestDaaAfterBCDSub(t *testing.T) {
	c := New()
	c.SetA(0x83)
	c.Sub8(0x38)
	c.Daa()
	assert.Equal(t, uint8(0x45), c.A())
}

func TestCplSetsNAndH(t *testing.T) {
	c := New()
	c.SetA(0x35)
	c.Cpl()
	assert.Equal(t, uint8(0xCA), c.A())
	assert.True(t, c.GetFlag(FlagN))
	assert.True(t, c.GetFlag(FlagH))
}

func TestScfAndCcf(t *testing.T) {
	c := New()
	c.Scf()
	assert.True(t, c.GetFlag(FlagC))
	c.Ccf()
	assert.False(t, c.GetFlag(FlagC))
	c.Ccf()
	assert.True(t, c.GetFlag(FlagC))
}
