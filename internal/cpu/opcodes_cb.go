package cpu

import (
	"gbcore/internal/memory"
)

var cbTable [256]opcodeEntry

func init() {
	buildCBRotateShiftMatrix()
	buildCBBitMatrix()
}

// buildCBRotateShiftMatrix fills 0x00-0x3F: the eight rotate/shift/swap
// operations, each applied across the eight r8 operand slots. CB-(HL)
// rotate/shift/swap ops cost 16 T-cycles (spec §9 corrects the teacher's
// inconsistent 8-vs-16 cycle counts here).
func buildCBRotateShiftMatrix() {
	ops := []func(c *CPU, v uint8) uint8{
		(*CPU).Rlc, (*CPU).Rrc, (*CPU).Rl, (*CPU).Rr,
		(*CPU).Sla, (*CPU).Sra, (*CPU).Swap, (*CPU).Srl,
	}
	for op := 0; op < 8; op++ {
		for reg := 0; reg < 8; reg++ {
			opcode := uint8(op*8 + reg)
			fn, r := ops[op], reg
			cycles := uint8(8)
			if r == r8HL {
				cycles = 16
			}
			cbTable[opcode] = opcodeEntry{
				Name: "CB rotate/shift",
				Exec: func(c *CPU, mmu memory.Interface, imm []uint8) uint8 {
					writeR8(c, mmu, r, fn(c, readR8(c, mmu, r)))
					return cycles
				},
			}
		}
	}
}

// buildCBBitMatrix fills 0x40-0xFF: BIT/RES/SET for each of the 8 bit
// positions across the 8 r8 operand slots. BIT on (HL) costs 12 T-cycles;
// RES/SET on (HL) cost 16, per spec §9's correction of the source.
func buildCBBitMatrix() {
	for b := 0; b < 8; b++ {
		for reg := 0; reg < 8; reg++ {
			bit, r := uint8(b), reg

			bitOp := uint8(0x40 + b*8 + reg)
			bitCycles := uint8(8)
			if r == r8HL {
				bitCycles = 12
			}
			cbTable[bitOp] = opcodeEntry{Name: "BIT b,r", Exec: func(c *CPU, mmu memory.Interface, imm []uint8) uint8 {
				c.Bit(bit, readR8(c, mmu, r))
				return bitCycles
			}}

			rwCycles := uint8(8)
			if r == r8HL {
				rwCycles = 16
			}

			resOp := uint8(0x80 + b*8 + reg)
			cbTable[resOp] = opcodeEntry{Name: "RES b,r", Exec: func(c *CPU, mmu memory.Interface, imm []uint8) uint8 {
				writeR8(c, mmu, r, Res(bit, readR8(c, mmu, r)))
				return rwCycles
			}}

			setOp := uint8(0xC0 + b*8 + reg)
			cbTable[setOp] = opcodeEntry{Name: "SET b,r", Exec: func(c *CPU, mmu memory.Interface, imm []uint8) uint8 {
				writeR8(c, mmu, r, Set(bit, readR8(c, mmu, r)))
				return rwCycles
			}}
		}
	}
}

// execCBPrefix fetches the second opcode byte and dispatches through
// cbTable, returning the total T-cycle cost of the combined instruction
// (the prefix byte itself contributes no extra cycles beyond what the
// CB-table entry already accounts for).
func execCBPrefix(c *CPU, mmu memory.Interface, imm []uint8) uint8 {
	opcode := mmu.ReadByte(c.PC)
	c.PC++
	entry := cbTable[opcode]
	if entry.Exec == nil {
		c.LastUnimplementedOpcode = &opcode
		return 8
	}
	return entry.Exec(c, mmu, nil)
}
