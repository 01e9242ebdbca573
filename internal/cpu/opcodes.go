package cpu

import (
	"gbcore/internal/memory"
)

// ExecFunc is the common shape every decoded instruction is reduced to: it
// receives the CPU, the bus, and any immediate operand bytes already fetched
// by Step, and returns the number of T-cycles the instruction consumed.
//
// A literal 256-way switch works (spec §9 says so) but roughly doubles the
// code, because the SM83 encoding is dense and decomposable into bit-field
// subfamilies: 01 DDD SSS is the whole 8-bit LD matrix, 10 OOO SSS is the
// whole A-ALU matrix. Those are generated once, in a loop, below; only the
// opcodes that don't fit a subfamily are spelled out individually.
type ExecFunc func(c *CPU, mmu memory.Interface, imm []uint8) uint8

// opcodeEntry pairs one decoded instruction with the operand-byte count
// Step must fetch before calling it.
type opcodeEntry struct {
	Name string
	Len  uint8
	Exec ExecFunc
}

var primaryTable [256]opcodeEntry

// r8 indices follow the fixed SM83 field order for the 3-bit register
// code: B, C, D, E, H, L, (HL), A.
const (
	r8B = iota
	r8C
	r8D
	r8E
	r8H
	r8L
	r8HL
	r8A
)

func readR8(c *CPU, mmu memory.Interface, idx int) uint8 {
	switch idx {
	case r8B:
		return c.B()
	case r8C:
		return c.C()
	case r8D:
		return c.D()
	case r8E:
		return c.E()
	case r8H:
		return c.H()
	case r8L:
		return c.L()
	case r8HL:
		return mmu.ReadByte(c.GetHL())
	default:
		return c.A()
	}
}

func writeR8(c *CPU, mmu memory.Interface, idx int, v uint8) {
	switch idx {
	case r8B:
		c.SetB(v)
	case r8C:
		c.SetC(v)
	case r8D:
		c.SetD(v)
	case r8E:
		c.SetE(v)
	case r8H:
		c.SetH(v)
	case r8L:
		c.SetL(v)
	case r8HL:
		mmu.WriteByte(c.GetHL(), v)
	default:
		c.SetA(v)
	}
}

// rr16 indices follow the field order for 16-bit pairs in the LD
// rr,n16 / INC rr / DEC rr / ADD HL,rr family: BC, DE, HL, SP.
func getRR(c *CPU, idx int) uint16 {
	switch idx {
	case 0:
		return c.GetBC()
	case 1:
		return c.GetDE()
	case 2:
		return c.GetHL()
	default:
		return c.SP
	}
}

func setRR(c *CPU, idx int, v uint16) {
	switch idx {
	case 0:
		c.SetBC(v)
	case 1:
		c.SetDE(v)
	case 2:
		c.SetHL(v)
	default:
		c.SP = v
	}
}

func init() {
	buildLoadMatrix()
	buildALUMatrix()
	buildIncDecMatrix()
	build16BitMatrix()
	buildMiscOpcodes()
}

// buildLoadMatrix fills the 0x40-0x7F block: LD r,r' for every
// (dest, src) pair, except 0x76 which is HALT rather than LD (HL),(HL).
func buildLoadMatrix() {
	for dest := 0; dest < 8; dest++ {
		for src := 0; src < 8; src++ {
			opcode := uint8(0x40 + dest*8 + src)
			if dest == r8HL && src == r8HL {
				continue // 0x76 is HALT, wired in buildMiscOpcodes
			}
			d, s := dest, src
			cycles := uint8(4)
			if d == r8HL || s == r8HL {
				cycles = 8
			}
			primaryTable[opcode] = opcodeEntry{
				Name: "LD r,r'",
				Exec: func(c *CPU, mmu memory.Interface, imm []uint8) uint8 {
					writeR8(c, mmu, d, readR8(c, mmu, s))
					return cycles
				},
			}
		}
	}
}

// buildALUMatrix fills the 0x80-0xBF block: the eight A-ALU operations
// (ADD, ADC, SUB, SBC, AND, XOR, OR, CP) each applied to the eight operand
// sources (including (HL) and the wider n8 forms at 0xC6.. handled
// separately in buildMiscOpcodes).
func buildALUMatrix() {
	ops := []func(c *CPU, v uint8){
		(*CPU).Add8,
		(*CPU).Adc8,
		(*CPU).Sub8,
		(*CPU).Sbc8,
		(*CPU).And8,
		(*CPU).Xor8,
		(*CPU).Or8,
		(*CPU).Cp8,
	}
	for op := 0; op < 8; op++ {
		for src := 0; src < 8; src++ {
			opcode := uint8(0x80 + op*8 + src)
			fn, s := ops[op], src
			cycles := uint8(4)
			if s == r8HL {
				cycles = 8
			}
			primaryTable[opcode] = opcodeEntry{
				Name: "ALU A,r",
				Exec: func(c *CPU, mmu memory.Interface, imm []uint8) uint8 {
					fn(c, readR8(c, mmu, s))
					return cycles
				},
			}
		}
	}
}

// buildIncDecMatrix fills the 8-bit INC r / DEC r opcodes (00 rrr 100/101)
// and the immediate loads LD r,n8 (00 rrr 110), all of which are regular
// across the eight r8 slots.
func buildIncDecMatrix() {
	for r := 0; r < 8; r++ {
		reg := r
		cyclesRW := uint8(4)
		if reg == r8HL {
			cyclesRW = 12
		}

		incOp := uint8(0x04 + reg*8)
		primaryTable[incOp] = opcodeEntry{
			Name: "INC r",
			Exec: func(c *CPU, mmu memory.Interface, imm []uint8) uint8 {
				writeR8(c, mmu, reg, c.Inc8(readR8(c, mmu, reg)))
				return cyclesRW
			},
		}

		decOp := uint8(0x05 + reg*8)
		primaryTable[decOp] = opcodeEntry{
			Name: "DEC r",
			Exec: func(c *CPU, mmu memory.Interface, imm []uint8) uint8 {
				writeR8(c, mmu, reg, c.Dec8(readR8(c, mmu, reg)))
				return cyclesRW
			},
		}

		ldOp := uint8(0x06 + reg*8)
		cyclesLd := uint8(8)
		if reg == r8HL {
			cyclesLd = 12
		}
		primaryTable[ldOp] = opcodeEntry{
			Name: "LD r,n8",
			Len:  1,
			Exec: func(c *CPU, mmu memory.Interface, imm []uint8) uint8 {
				writeR8(c, mmu, reg, imm[0])
				return cyclesLd
			},
		}
	}
}

// build16BitMatrix fills LD rr,n16 / INC rr / DEC rr / ADD HL,rr across the
// four pairs {BC, DE, HL, SP}.
func build16BitMatrix() {
	for pair := 0; pair < 4; pair++ {
		p := pair
		base := uint8(p * 0x10)

		primaryTable[0x01+base] = opcodeEntry{
			Name: "LD rr,n16",
			Len:  2,
			Exec: func(c *CPU, mmu memory.Interface, imm []uint8) uint8 {
				setRR(c, p, uint16(imm[0])|uint16(imm[1])<<8)
				return 12
			},
		}
		primaryTable[0x03+base] = opcodeEntry{
			Name: "INC rr",
			Exec: func(c *CPU, mmu memory.Interface, imm []uint8) uint8 {
				setRR(c, p, getRR(c, p)+1)
				return 8
			},
		}
		primaryTable[0x0B+base] = opcodeEntry{
			Name: "DEC rr",
			Exec: func(c *CPU, mmu memory.Interface, imm []uint8) uint8 {
				setRR(c, p, getRR(c, p)-1)
				return 8
			},
		}
		primaryTable[0x09+base] = opcodeEntry{
			Name: "ADD HL,rr",
			Exec: func(c *CPU, mmu memory.Interface, imm []uint8) uint8 {
				c.AddHL(getRR(c, p))
				return 8
			},
		}
	}
}

// signed8 reinterprets a raw byte as a signed 8-bit displacement.
func signed8(b uint8) int8 { return int8(b) }
