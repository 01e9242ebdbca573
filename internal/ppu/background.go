package ppu

import "gbcore/internal/memory"

// GetPixel resolves the background pixel at (x, y) directly from the
// shared memory bus: no scanline state, no caching, just the five-step
// lookup chain spec §4.6 describes. x must be in [0,160), y in [0,144).
func GetPixel(mmu memory.Interface, x, y int) RGB {
	lcdc := mmu.ReadByte(AddrLCDC)
	bgp := mmu.ReadByte(AddrBGP)

	tileMapBase := bgTileMapBase(lcdc)
	tileIndexAddr := tileMapBase + uint16((y/8)*32+(x/8))
	tileIndex := mmu.ReadByte(tileIndexAddr)

	tileDataBase := bgTileDataBase(lcdc)

	var tileAddr uint16
	if tileDataBase == tileDataUnsigned {
		tileAddr = tileDataUnsigned + uint16(tileIndex)*16
	} else {
		tileAddr = uint16(int32(tileDataSignedBase) + int32(int8(tileIndex))*16)
	}

	rowOffset := uint16((y % 8) * 2)
	lo := mmu.ReadByte(tileAddr + rowOffset)
	hi := mmu.ReadByte(tileAddr + rowOffset + 1)

	bit := uint(7 - (x % 8))
	loBit := (lo >> bit) & 1
	hiBit := (hi >> bit) & 1
	colorID := (hiBit << 1) | loBit

	return ApplyPalette(bgp, colorID)
}

// RenderFrame fills a 160x144 framebuffer by calling GetPixel for every
// visible pixel. Callers that only need a handful of pixels (tests) should
// call GetPixel directly instead.
func RenderFrame(mmu memory.Interface, frame *[ScreenHeight][ScreenWidth]RGB) {
	for y := 0; y < ScreenHeight; y++ {
		for x := 0; x < ScreenWidth; x++ {
			frame[y][x] = GetPixel(mmu, x, y)
		}
	}
}
