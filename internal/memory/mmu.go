// Package memory implements the Game Boy's flat 64KB address space.
// The real hardware differentiates ROM, VRAM, WRAM, OAM, I/O and HRAM by
// address range, but at the bus level they are all just slots in the same
// giant filing cabinet: one array, one set of read/write rules.
package memory

// Size is the total addressable span of the Sharp SM83 bus.
const Size = 0x10000

// Interface is the contract the CPU and PPU use to touch memory. Keeping it
// as an interface (rather than a concrete *MMU everywhere) is what lets
// tests swap in a bare-bones fake without dragging in cartridge loading.
type Interface interface {
	ReadByte(addr uint16) uint8
	WriteByte(addr uint16, value uint8)
	ReadWord(addr uint16) uint16
	WriteWord(addr uint16, value uint16)
}

// MMU is the Game Boy's Memory Management Unit: one 64KB array, no region
// protection. Logical regions (ROM, VRAM, WRAM, OAM, I/O, HRAM) are purely
// informational at this layer.
type MMU struct {
	data [Size]uint8
}

// New creates a zeroed 64KB memory bus.
func New() *MMU {
	return &MMU{}
}

// ReadByte returns the byte at addr. Address space wraps naturally since
// addr is a uint16.
func (m *MMU) ReadByte(addr uint16) uint8 {
	return m.data[addr]
}

// WriteByte stores value at addr. No region is protected: this core treats
// the whole bus, including what would be ROM on real hardware, as writable.
func (m *MMU) WriteByte(addr uint16, value uint8) {
	m.data[addr] = value
}

// ReadWord reads two consecutive bytes in little-endian order: the low byte
// lives at addr, the high byte at addr+1 (wrapping modulo 0x10000).
func (m *MMU) ReadWord(addr uint16) uint16 {
	lo := uint16(m.data[addr])
	hi := uint16(m.data[addr+1])
	return lo | (hi << 8)
}

// WriteWord writes value's low byte to addr and high byte to addr+1,
// wrapping modulo 0x10000.
func (m *MMU) WriteWord(addr uint16, value uint16) {
	m.data[addr] = uint8(value & 0xFF)
	m.data[addr+1] = uint8(value >> 8)
}

// LoadROM copies rom into memory starting at offset 0. The caller
// (cartridge.Load) is responsible for rejecting oversized ROMs before this
// is called; LoadROM itself just truncates to the bus size defensively.
func (m *MMU) LoadROM(rom []byte) {
	copy(m.data[:], rom)
}

// Raw exposes the backing array for direct access instead of the byte/word
// accessor pair. The renderer and the boot installer go through
// ReadByte/WriteByte and do not use it. It is a read/write view, not a copy.
func (m *MMU) Raw() *[Size]uint8 {
	return &m.data
}
