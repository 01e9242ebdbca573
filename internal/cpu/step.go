package cpu

import (
	"gbcore/internal/memory"
)

// Step advances the CPU by one instruction (or, while halted, by one
// no-op tick) and returns the number of T-cycles consumed. An
// *UnimplementedOpcodeError is returned alongside a non-zero cycle count
// when a decoder branch has no handler; the engine has already advanced PC
// past the opcode and keeps running, per spec §7.
func Step(c *CPU, mmu memory.Interface) (uint8, error) {
	if c.Halted {
		c.Cycles += 4
		return 4, nil
	}

	opcode := mmu.ReadByte(c.PC)
	c.PC++

	entry := primaryTable[opcode]
	if entry.Exec == nil {
		op := opcode
		c.LastUnimplementedOpcode = &op
		c.Cycles += 4
		return 4, &UnimplementedOpcodeError{Opcode: opcode, PC: c.PC - 1}
	}

	imm := make([]uint8, entry.Len)
	for i := range imm {
		imm[i] = mmu.ReadByte(c.PC)
		c.PC++
	}

	cycles := entry.Exec(c, mmu, imm)
	c.Cycles += uint64(cycles)
	return cycles, nil
}
