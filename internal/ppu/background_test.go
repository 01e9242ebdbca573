package ppu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gbcore/internal/memory"
)

// TestGetPixelScenario mirrors spec §8 scenario F: only row 0 of tile 0 at
// 0x8000 is filled in; with LCDC=0x91 and BGP=0xE4, pixel (0,0) should be
// white (palette color 0) and pixel (1,0) dark gray (palette color 2).
func TestGetPixelScenario(t *testing.T) {
	m := memory.New()
	m.WriteByte(AddrLCDC, 0x91)
	m.WriteByte(AddrBGP, 0xE4)

	// tile-map[0] = 0 -> tile index 0 at tile map base 0x9800 (LCDC bit3=0)
	m.WriteByte(0x9800, 0x00)

	// Row 0's low/high plane bytes give pixel 0 color id 0 (both planes
	// clear) and pixel 1 color id 2 (low plane clear, high plane set).
	m.WriteByte(0x8000, 0x00) // low plane
	m.WriteByte(0x8001, 0x40) // high plane: bit 6 set -> pixel x=1

	assert.Equal(t, ShadeWhite, GetPixel(m, 0, 0))
	assert.Equal(t, ShadeDark, GetPixel(m, 1, 0))
}

func TestTileMapBaseSelection(t *testing.T) {
	assert.Equal(t, uint16(tileMapLow), bgTileMapBase(0x00))
	assert.Equal(t, uint16(tileMapHigh), bgTileMapBase(lcdcBGTileMapBit))
}

func TestTileDataBaseSelection(t *testing.T) {
	assert.Equal(t, uint16(tileDataUnsigned), bgTileDataBase(lcdcBGTileDataBit))
	assert.Equal(t, uint16(tileDataSigned), bgTileDataBase(0x00))
}

// TestSignedTileIndexing exercises the 0x8800 addressing mode, where the
// tile index is a signed byte offset from 0x9000 rather than an unsigned
// offset from 0x8800.
func TestSignedTileIndexing(t *testing.T) {
	m := memory.New()
	m.WriteByte(AddrLCDC, 0x80) // bit4=0 -> signed tile data, bit3=0 -> map at 0x9800
	m.WriteByte(AddrBGP, 0xE4)
	m.WriteByte(0x9800, 0xFF) // tile index -1 -> tile address 0x9000 + (-1*16) = 0x8FF0

	m.WriteByte(0x8FF0, 0xFF) // row 0 both bytes set -> color id 3 (black)
	m.WriteByte(0x8FF1, 0xFF)

	assert.Equal(t, ShadeBlack, GetPixel(m, 0, 0))
}

func TestApplyPaletteAllShades(t *testing.T) {
	bgp := uint8(0b11_10_01_00) // id0->0(white) id1->1(light) id2->2(dark) id3->3(black)
	assert.Equal(t, ShadeWhite, ApplyPalette(bgp, 0))
	assert.Equal(t, ShadeLight, ApplyPalette(bgp, 1))
	assert.Equal(t, ShadeDark, ApplyPalette(bgp, 2))
	assert.Equal(t, ShadeBlack, ApplyPalette(bgp, 3))
}
