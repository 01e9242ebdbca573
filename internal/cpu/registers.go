// Package cpu implements the Sharp SM83 interpreter: the register file,
// flag unit, ALU primitives and the fetch/decode/execute engine over the
// primary and 0xCB-prefixed opcode tables.
package cpu

// RegID names one cell of the register file using the stable ordering
// {A=0, B=1, C=2, D=3, E=4, H=5, L=6, F=7}. This is the array layout the
// register file is stored in; it is distinct from the SM83 opcode
// encoding's own 3-bit register field order (used in opcodes.go), which the
// hardware fixes independently.
type RegID uint8

const (
	RegA RegID = iota
	RegB
	RegC
	RegD
	RegE
	RegH
	RegL
	RegF
)

// CPU holds the entire mutable state of the Sharp SM83: the eight 8-bit
// register cells, the 16-bit PC/SP, the interrupt-master-enable and HALT
// flags, and a running T-cycle tally.
type CPU struct {
	regs [8]uint8

	SP uint16
	PC uint16

	IME    bool // interrupt master enable; toggled by EI/DI/RETI, delivery not implemented
	Halted bool

	Cycles uint64 // monotonically increasing T-cycle tally

	// LastUnimplementedOpcode records the most recent opcode byte that had
	// no handler, for diagnostic display. nil means no unimplemented
	// opcode has been hit yet.
	LastUnimplementedOpcode *uint8
}

// New creates a CPU with every cell zeroed; callers that want the
// post-boot-ROM state should follow up with InstallBootState.
func New() *CPU {
	return &CPU{}
}

// InstallBootState sets the register file, PC, SP and the two I/O shadow
// bytes this core cares about (LCDC, BGP) to their values immediately after
// the DMG boot ROM hands off control, per spec §4.7.
func InstallBootState(cpu *CPU, mmu interface {
	WriteByte(addr uint16, value uint8)
}) {
	cpu.SetA(0x01)
	cpu.SetF(0xB0)
	cpu.SetB(0x00)
	cpu.SetC(0x13)
	cpu.SetD(0x00)
	cpu.SetE(0xD8)
	cpu.SetH(0x01)
	cpu.SetL(0x4D)
	cpu.SP = 0xFFFE
	cpu.PC = 0x0100
	cpu.IME = false
	cpu.Halted = false
	cpu.Cycles = 0
	cpu.LastUnimplementedOpcode = nil

	mmu.WriteByte(0xFF40, 0x91) // LCDC
	mmu.WriteByte(0xFF47, 0xE4) // BGP
}

// === 8-bit register accessors ===

func (c *CPU) A() uint8 { return c.regs[RegA] }
func (c *CPU) B() uint8 { return c.regs[RegB] }
func (c *CPU) C() uint8 { return c.regs[RegC] }
func (c *CPU) D() uint8 { return c.regs[RegD] }
func (c *CPU) E() uint8 { return c.regs[RegE] }
func (c *CPU) H() uint8 { return c.regs[RegH] }
func (c *CPU) L() uint8 { return c.regs[RegL] }

// F returns the flags register. Its low nibble is always zero (invariant
// enforced by SetF and SetAF, the only two ways to write it wholesale).
func (c *CPU) F() uint8 { return c.regs[RegF] }

func (c *CPU) SetA(v uint8) { c.regs[RegA] = v }
func (c *CPU) SetB(v uint8) { c.regs[RegB] = v }
func (c *CPU) SetC(v uint8) { c.regs[RegC] = v }
func (c *CPU) SetD(v uint8) { c.regs[RegD] = v }
func (c *CPU) SetE(v uint8) { c.regs[RegE] = v }
func (c *CPU) SetH(v uint8) { c.regs[RegH] = v }
func (c *CPU) SetL(v uint8) { c.regs[RegL] = v }

// SetF masks the low nibble to zero before storing: no memory or ALU path
// may set bits outside Z/N/H/C.
func (c *CPU) SetF(v uint8) { c.regs[RegF] = v & 0xF0 }

// Reg reads one register cell by ID; SetReg writes one, routing F through
// SetF. The opcode tables in opcodes.go go through the named accessors
// above instead.
func (c *CPU) Reg(id RegID) uint8     { return c.regs[id] }
func (c *CPU) SetReg(id RegID, v uint8) {
	if id == RegF {
		c.SetF(v)
		return
	}
	c.regs[id] = v
}

// === 16-bit fused views ===
// Big-endian by SM83 convention: the first-named register in the pair
// holds the high byte (AF = A*256+F, BC = B*256+C, DE = D*256+E, HL =
// H*256+L).

func (c *CPU) GetAF() uint16 { return uint16(c.A())<<8 | uint16(c.F()) }
func (c *CPU) GetBC() uint16 { return uint16(c.B())<<8 | uint16(c.C()) }
func (c *CPU) GetDE() uint16 { return uint16(c.D())<<8 | uint16(c.E()) }
func (c *CPU) GetHL() uint16 { return uint16(c.H())<<8 | uint16(c.L()) }

// SetAF masks the low nibble of the incoming value to zero on the F half
// before storing (spec §3 invariant): POP AF must never leak garbage bits
// into F.
func (c *CPU) SetAF(v uint16) {
	c.SetA(uint8(v >> 8))
	c.SetF(uint8(v & 0xFF))
}

func (c *CPU) SetBC(v uint16) {
	c.SetB(uint8(v >> 8))
	c.SetC(uint8(v & 0xFF))
}

func (c *CPU) SetDE(v uint16) {
	c.SetD(uint8(v >> 8))
	c.SetE(uint8(v & 0xFF))
}

func (c *CPU) SetHL(v uint16) {
	c.SetH(uint8(v >> 8))
	c.SetL(uint8(v & 0xFF))
}

// HLI returns the current HL value then increments HL by 1 (16-bit wrap).
func (c *CPU) HLI() uint16 {
	v := c.GetHL()
	c.SetHL(v + 1)
	return v
}

// HLD returns the current HL value then decrements HL by 1 (16-bit wrap).
func (c *CPU) HLD() uint16 {
	v := c.GetHL()
	c.SetHL(v - 1)
	return v
}

// Reset restores the post-boot-ROM state, matching InstallBootState but
// without needing a memory bus handy (used by tests that only care about
// register state).
func (c *CPU) Reset() {
	c.SetA(0x01)
	c.SetF(0xB0)
	c.SetB(0x00)
	c.SetC(0x13)
	c.SetD(0x00)
	c.SetE(0xD8)
	c.SetH(0x01)
	c.SetL(0x4D)
	c.SP = 0xFFFE
	c.PC = 0x0100
	c.IME = false
	c.Halted = false
	c.Cycles = 0
	c.LastUnimplementedOpcode = nil
}
