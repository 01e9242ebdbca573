package cpu

import (
	"gbcore/internal/memory"
)

// condition evaluates one of the four branch conditions {NZ, Z, NC, C}
// against the current flags. Step always calls Exec only after every
// operand byte has been consumed, so PC already points past the
// instruction by the time a taken branch computes its target - matching
// spec §4.5's ordering requirement for JR.
type condition func(c *CPU) bool

var (
	condNZ condition = func(c *CPU) bool { return !c.GetFlag(FlagZ) }
	condZ  condition = func(c *CPU) bool { return c.GetFlag(FlagZ) }
	condNC condition = func(c *CPU) bool { return !c.GetFlag(FlagC) }
	condC  condition = func(c *CPU) bool { return c.GetFlag(FlagC) }
)

func buildJumpOpcodes() {
	primaryTable[0xC3] = opcodeEntry{Name: "JP nn", Len: 2, Exec: func(c *CPU, mmu memory.Interface, imm []uint8) uint8 {
		c.PC = uint16(imm[0]) | uint16(imm[1])<<8
		return 16
	}}
	primaryTable[0xE9] = opcodeEntry{Name: "JP HL", Exec: func(c *CPU, mmu memory.Interface, imm []uint8) uint8 {
		c.PC = c.GetHL()
		return 4
	}}
	primaryTable[0x18] = opcodeEntry{Name: "JR e", Len: 1, Exec: func(c *CPU, mmu memory.Interface, imm []uint8) uint8 {
		c.PC = uint16(int32(c.PC) + int32(signed8(imm[0])))
		return 12
	}}
	primaryTable[0xCD] = opcodeEntry{Name: "CALL nn", Len: 2, Exec: func(c *CPU, mmu memory.Interface, imm []uint8) uint8 {
		target := uint16(imm[0]) | uint16(imm[1])<<8
		c.pushWord(mmu, c.PC)
		c.PC = target
		return 24
	}}
	primaryTable[0xC9] = opcodeEntry{Name: "RET", Exec: func(c *CPU, mmu memory.Interface, imm []uint8) uint8 {
		c.PC = c.popWord(mmu)
		return 16
	}}
	primaryTable[0xD9] = opcodeEntry{Name: "RETI", Exec: func(c *CPU, mmu memory.Interface, imm []uint8) uint8 {
		c.PC = c.popWord(mmu)
		c.IME = true
		return 16
	}}

	conds := [4]condition{condNZ, condZ, condNC, condC}
	for i, cond := range conds {
		cc := cond
		row := uint8(i * 8)

		primaryTable[0xC2+row] = opcodeEntry{Name: "JP cc,nn", Len: 2, Exec: func(c *CPU, mmu memory.Interface, imm []uint8) uint8 {
			if cc(c) {
				c.PC = uint16(imm[0]) | uint16(imm[1])<<8
				return 16
			}
			return 12
		}}
		primaryTable[0x20+row] = opcodeEntry{Name: "JR cc,e", Len: 1, Exec: func(c *CPU, mmu memory.Interface, imm []uint8) uint8 {
			if cc(c) {
				c.PC = uint16(int32(c.PC) + int32(signed8(imm[0])))
				return 12
			}
			return 8
		}}
		primaryTable[0xC4+row] = opcodeEntry{Name: "CALL cc,nn", Len: 2, Exec: func(c *CPU, mmu memory.Interface, imm []uint8) uint8 {
			if cc(c) {
				target := uint16(imm[0]) | uint16(imm[1])<<8
				c.pushWord(mmu, c.PC)
				c.PC = target
				return 24
			}
			return 12
		}}
		primaryTable[0xC0+row] = opcodeEntry{Name: "RET cc", Exec: func(c *CPU, mmu memory.Interface, imm []uint8) uint8 {
			if cc(c) {
				c.PC = c.popWord(mmu)
				return 20
			}
			return 8
		}}
	}

	for i := 0; i < 8; i++ {
		vector := uint16(i * 8)
		opcode := uint8(0xC7 + i*8)
		primaryTable[opcode] = opcodeEntry{Name: "RST t", Exec: func(c *CPU, mmu memory.Interface, imm []uint8) uint8 {
			c.pushWord(mmu, c.PC)
			c.PC = vector
			return 16
		}}
	}
}
