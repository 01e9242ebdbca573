// Package cartridge loads a Game Boy ROM image and exposes the handful of
// header fields worth showing a user. Bank switching (MBC1/2/3/5) is an
// explicit non-goal of this core: CartridgeType is recorded for display
// only, and every cartridge is treated as a flat image copied once into the
// memory bus at offset 0 (spec §6).
package cartridge

import (
	"fmt"
	"strings"
)

// Header field byte offsets within the ROM image.
const (
	HeaderTitleStart    = 0x0134
	HeaderTitleEnd      = 0x0143
	HeaderCartridgeType = 0x0147
	HeaderROMSize       = 0x0148
	HeaderRAMSize       = 0x0149
	HeaderChecksum      = 0x014D
)

// BusSize is the maximum ROM length this core's flat bus can hold; the
// loader rejects anything larger (spec §3: "the loader fails if romSize >
// 65536").
const BusSize = 0x10000

// CartridgeType names the memory bank controller a real Game Boy would
// switch in for this ROM. This core never banks memory, so the value is
// descriptive only.
type CartridgeType uint8

const (
	ROMOnly CartridgeType = 0x00

	MBC1           CartridgeType = 0x01
	MBC1RAM        CartridgeType = 0x02
	MBC1RAMBattery CartridgeType = 0x03

	MBC2        CartridgeType = 0x05
	MBC2Battery CartridgeType = 0x06

	MBC3TimerBattery    CartridgeType = 0x0F
	MBC3TimerRAMBattery CartridgeType = 0x10
	MBC3                CartridgeType = 0x11
	MBC3RAM             CartridgeType = 0x12
	MBC3RAMBattery      CartridgeType = 0x13
)

var typeNames = map[CartridgeType]string{
	ROMOnly:             "ROM ONLY",
	MBC1:                "MBC1",
	MBC1RAM:             "MBC1+RAM",
	MBC1RAMBattery:      "MBC1+RAM+BATTERY",
	MBC2:                "MBC2",
	MBC2Battery:         "MBC2+BATTERY",
	MBC3TimerBattery:    "MBC3+TIMER+BATTERY",
	MBC3TimerRAMBattery: "MBC3+TIMER+RAM+BATTERY",
	MBC3:                "MBC3",
	MBC3RAM:             "MBC3+RAM",
	MBC3RAMBattery:      "MBC3+RAM+BATTERY",
}

// Name returns a human-readable cartridge type, or "UNKNOWN (0xNN)" for
// anything not in the known MBC list.
func (t CartridgeType) Name() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN (0x%02X)", uint8(t))
}

// Cartridge is a loaded ROM image plus whatever header fields we bothered
// to parse for display purposes.
type Cartridge struct {
	ROM []byte

	Title       string
	Type        CartridgeType
	ROMSize     int
	RAMSize     int
	HeaderValid bool
}

// New wraps raw ROM bytes and parses the header if the image is long
// enough to have one. Images too short to carry a header (as can happen
// with the tiny synthetic ROMs tests build by hand) are accepted with a
// zero-value header rather than rejected: spec §6 requires no header
// validation for this core.
func New(rom []byte) *Cartridge {
	c := &Cartridge{ROM: rom}
	if len(rom) > HeaderChecksum {
		c.parseHeader()
	}
	return c
}

func (c *Cartridge) parseHeader() {
	end := HeaderTitleEnd
	if end >= len(c.ROM) {
		end = len(c.ROM) - 1
	}
	title := strings.TrimRight(string(c.ROM[HeaderTitleStart:end+1]), "\x00")
	var clean strings.Builder
	for _, r := range title {
		if r >= 32 && r <= 126 {
			clean.WriteRune(r)
		}
	}
	c.Title = clean.String()

	c.Type = CartridgeType(c.ROM[HeaderCartridgeType])
	c.ROMSize = romSizeFromCode(c.ROM[HeaderROMSize])
	c.RAMSize = ramSizeFromCode(c.ROM[HeaderRAMSize])
	c.HeaderValid = c.verifyChecksum()
}

func romSizeFromCode(code uint8) int {
	switch code {
	case 0x00:
		return 32 * 1024
	case 0x01:
		return 64 * 1024
	case 0x02:
		return 128 * 1024
	case 0x03:
		return 256 * 1024
	case 0x04:
		return 512 * 1024
	case 0x05:
		return 1024 * 1024
	case 0x06:
		return 2048 * 1024
	default:
		return 32 * 1024
	}
}

func ramSizeFromCode(code uint8) int {
	switch code {
	case 0x00:
		return 0
	case 0x01:
		return 2 * 1024
	case 0x02:
		return 8 * 1024
	case 0x03:
		return 32 * 1024
	case 0x04:
		return 128 * 1024
	default:
		return 0
	}
}

func (c *Cartridge) verifyChecksum() bool {
	var checksum uint8
	for addr := HeaderTitleStart; addr <= 0x014C; addr++ {
		checksum = checksum - c.ROM[addr] - 1
	}
	return checksum == c.ROM[HeaderChecksum]
}

func (c *Cartridge) String() string {
	return fmt.Sprintf("Cartridge{Title: %q, Type: %s, ROM: %dKB, RAM: %dKB, HeaderValid: %t}",
		c.Title, c.Type.Name(), c.ROMSize/1024, c.RAMSize/1024, c.HeaderValid)
}
