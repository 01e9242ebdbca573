package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gbcore/internal/memory"
)

func TestCBBitOnRegister(t *testing.T) {
	mmu := memory.New()
	c := New()
	c.PC = 0x0100
	c.SetB(0b0000_0100) // bit 2 set
	mmu.WriteByte(0x0100, 0xCB)
	mmu.WriteByte(0x0101, 0x50) // BIT 2,B

	cycles, err := Step(c, mmu)
	require.NoError(t, err)
	assert.Equal(t, uint8(8), cycles)
	assert.False(t, c.GetFlag(FlagZ), "bit 2 of B is set, Z should be clear")
	assert.True(t, c.GetFlag(FlagH))
	assert.False(t, c.GetFlag(FlagN))
}

func TestCBBitOnHLCosts12Cycles(t *testing.T) {
	mmu := memory.New()
	c := New()
	c.PC = 0x0100
	c.SetHL(0xC000)
	mmu.WriteByte(0xC000, 0x00)
	mmu.WriteByte(0x0100, 0xCB)
	mmu.WriteByte(0x0101, 0x46) // BIT 0,(HL)

	cycles, err := Step(c, mmu)
	require.NoError(t, err)
	assert.Equal(t, uint8(12), cycles)
	assert.True(t, c.GetFlag(FlagZ))
}

func TestCBSetAndResOnHLCost16Cycles(t *testing.T) {
	mmu := memory.New()
	c := New()
	c.PC = 0x0100
	c.SetHL(0xC000)
	mmu.WriteByte(0xC000, 0x00)
	mmu.WriteByte(0x0100, 0xCB)
	mmu.WriteByte(0x0101, 0xC6) // SET 0,(HL)

	cycles, err := Step(c, mmu)
	require.NoError(t, err)
	assert.Equal(t, uint8(16), cycles)
	assert.Equal(t, uint8(0x01), mmu.ReadByte(0xC000))

	c.PC = 0x0100
	mmu.WriteByte(0x0100, 0xCB)
	mmu.WriteByte(0x0101, 0x86) // RES 0,(HL)
	cycles, err = Step(c, mmu)
	require.NoError(t, err)
	assert.Equal(t, uint8(16), cycles)
	assert.Equal(t, uint8(0x00), mmu.ReadByte(0xC000))
}

func TestCBSwapRegister(t *testing.T) {
	mmu := memory.New()
	c := New()
	c.PC = 0x0100
	c.SetA(0x12)
	mmu.WriteByte(0x0100, 0xCB)
	mmu.WriteByte(0x0101, 0x37) // SWAP A

	_, err := Step(c, mmu)
	require.NoError(t, err)
	assert.Equal(t, uint8(0x21), c.A())
	assert.False(t, c.GetFlag(FlagC))
	assert.False(t, c.GetFlag(FlagH))
	assert.False(t, c.GetFlag(FlagN))
}

func TestResAndSetDoNotAffectFlags(t *testing.T) {
	c := New()
	c.SetF(0xF0)
	c.SetA(Res(0, c.A()))
	assert.Equal(t, uint8(0xF0), c.F(), "RES must not touch flags")
	c.SetA(Set(0, c.A()))
	assert.Equal(t, uint8(0xF0), c.F(), "SET must not touch flags")
}
