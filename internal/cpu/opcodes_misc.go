package cpu

import (
	"gbcore/internal/memory"
)

// buildMiscOpcodes wires every primary-table opcode that doesn't fit one of
// the regular bit-field matrices in opcodes.go: control flow, stack
// operations, the indirect/immediate loads, and the non-prefix accumulator
// rotates.
func buildMiscOpcodes() {
	primaryTable[0x00] = opcodeEntry{Name: "NOP", Exec: func(c *CPU, mmu memory.Interface, imm []uint8) uint8 {
		return 4
	}}

	// STOP is treated as NOP for this core (spec §4.5); it still consumes
	// its operand byte (0x00 padding) like real hardware.
	primaryTable[0x10] = opcodeEntry{Name: "STOP", Len: 1, Exec: func(c *CPU, mmu memory.Interface, imm []uint8) uint8 {
		return 4
	}}

	primaryTable[0x76] = opcodeEntry{Name: "HALT", Exec: func(c *CPU, mmu memory.Interface, imm []uint8) uint8 {
		c.Halted = true
		return 4
	}}

	primaryTable[0xF3] = opcodeEntry{Name: "DI", Exec: func(c *CPU, mmu memory.Interface, imm []uint8) uint8 {
		c.IME = false
		return 4
	}}
	primaryTable[0xFB] = opcodeEntry{Name: "EI", Exec: func(c *CPU, mmu memory.Interface, imm []uint8) uint8 {
		c.IME = true
		return 4
	}}

	// === Indirect loads through BC/DE/HL+/HL- ===
	primaryTable[0x02] = opcodeEntry{Name: "LD (BC),A", Exec: func(c *CPU, mmu memory.Interface, imm []uint8) uint8 {
		mmu.WriteByte(c.GetBC(), c.A())
		return 8
	}}
	primaryTable[0x12] = opcodeEntry{Name: "LD (DE),A", Exec: func(c *CPU, mmu memory.Interface, imm []uint8) uint8 {
		mmu.WriteByte(c.GetDE(), c.A())
		return 8
	}}
	primaryTable[0x0A] = opcodeEntry{Name: "LD A,(BC)", Exec: func(c *CPU, mmu memory.Interface, imm []uint8) uint8 {
		c.SetA(mmu.ReadByte(c.GetBC()))
		return 8
	}}
	primaryTable[0x1A] = opcodeEntry{Name: "LD A,(DE)", Exec: func(c *CPU, mmu memory.Interface, imm []uint8) uint8 {
		c.SetA(mmu.ReadByte(c.GetDE()))
		return 8
	}}
	primaryTable[0x22] = opcodeEntry{Name: "LD (HL+),A", Exec: func(c *CPU, mmu memory.Interface, imm []uint8) uint8 {
		mmu.WriteByte(c.HLI(), c.A())
		return 8
	}}
	primaryTable[0x32] = opcodeEntry{Name: "LD (HL-),A", Exec: func(c *CPU, mmu memory.Interface, imm []uint8) uint8 {
		mmu.WriteByte(c.HLD(), c.A())
		return 8
	}}
	primaryTable[0x2A] = opcodeEntry{Name: "LD A,(HL+)", Exec: func(c *CPU, mmu memory.Interface, imm []uint8) uint8 {
		c.SetA(mmu.ReadByte(c.HLI()))
		return 8
	}}
	primaryTable[0x3A] = opcodeEntry{Name: "LD A,(HL-)", Exec: func(c *CPU, mmu memory.Interface, imm []uint8) uint8 {
		c.SetA(mmu.ReadByte(c.HLD()))
		return 8
	}}

	// === High-memory and absolute loads ===
	primaryTable[0xE0] = opcodeEntry{Name: "LD (FF00+n),A", Len: 1, Exec: func(c *CPU, mmu memory.Interface, imm []uint8) uint8 {
		mmu.WriteByte(0xFF00+uint16(imm[0]), c.A())
		return 12
	}}
	primaryTable[0xF0] = opcodeEntry{Name: "LD A,(FF00+n)", Len: 1, Exec: func(c *CPU, mmu memory.Interface, imm []uint8) uint8 {
		c.SetA(mmu.ReadByte(0xFF00 + uint16(imm[0])))
		return 12
	}}
	primaryTable[0xE2] = opcodeEntry{Name: "LD (FF00+C),A", Exec: func(c *CPU, mmu memory.Interface, imm []uint8) uint8 {
		mmu.WriteByte(0xFF00+uint16(c.C()), c.A())
		return 8
	}}
	primaryTable[0xF2] = opcodeEntry{Name: "LD A,(FF00+C)", Exec: func(c *CPU, mmu memory.Interface, imm []uint8) uint8 {
		c.SetA(mmu.ReadByte(0xFF00 + uint16(c.C())))
		return 8
	}}
	primaryTable[0xEA] = opcodeEntry{Name: "LD (nn),A", Len: 2, Exec: func(c *CPU, mmu memory.Interface, imm []uint8) uint8 {
		mmu.WriteByte(uint16(imm[0])|uint16(imm[1])<<8, c.A())
		return 16
	}}
	primaryTable[0xFA] = opcodeEntry{Name: "LD A,(nn)", Len: 2, Exec: func(c *CPU, mmu memory.Interface, imm []uint8) uint8 {
		c.SetA(mmu.ReadByte(uint16(imm[0]) | uint16(imm[1])<<8))
		return 16
	}}
	primaryTable[0x08] = opcodeEntry{Name: "LD (nn),SP", Len: 2, Exec: func(c *CPU, mmu memory.Interface, imm []uint8) uint8 {
		addr := uint16(imm[0]) | uint16(imm[1])<<8
		mmu.WriteWord(addr, c.SP)
		return 20
	}}
	primaryTable[0xE8] = opcodeEntry{Name: "ADD SP,e8", Len: 1, Exec: func(c *CPU, mmu memory.Interface, imm []uint8) uint8 {
		c.AddSP(signed8(imm[0]))
		return 16
	}}
	primaryTable[0xF8] = opcodeEntry{Name: "LD HL,SP+e", Len: 1, Exec: func(c *CPU, mmu memory.Interface, imm []uint8) uint8 {
		c.LoadHLSPOffset(signed8(imm[0]))
		return 12
	}}
	primaryTable[0xF9] = opcodeEntry{Name: "LD SP,HL", Exec: func(c *CPU, mmu memory.Interface, imm []uint8) uint8 {
		c.SP = c.GetHL()
		return 8
	}}

	// === ALU A,n8 (0xC6,0xCE,0xD6,0xDE,0xE6,0xEE,0xF6,0xFE) ===
	aluImm := []func(c *CPU, v uint8){
		(*CPU).Add8, (*CPU).Adc8, (*CPU).Sub8, (*CPU).Sbc8,
		(*CPU).And8, (*CPU).Xor8, (*CPU).Or8, (*CPU).Cp8,
	}
	for i, fn := range aluImm {
		opcode := uint8(0xC6 + i*8)
		f := fn
		primaryTable[opcode] = opcodeEntry{Name: "ALU A,n8", Len: 1, Exec: func(c *CPU, mmu memory.Interface, imm []uint8) uint8 {
			f(c, imm[0])
			return 8
		}}
	}

	buildStackOpcodes()
	buildJumpOpcodes()
	buildRotateAndMisc()

	primaryTable[0xCB] = opcodeEntry{Name: "PREFIX CB", Exec: execCBPrefix}
}

// buildStackOpcodes wires PUSH/POP for BC/DE/HL/AF. PUSH pre-decrements SP
// by 2 and writes low-byte-first; POP reads low then high and
// post-increments SP by 2. POP AF masks the low nibble of F through SetAF.
func buildStackOpcodes() {
	type qq struct {
		get func(c *CPU) uint16
		set func(c *CPU, v uint16)
	}
	pairs := [4]qq{
		{(*CPU).GetBC, (*CPU).SetBC},
		{(*CPU).GetDE, (*CPU).SetDE},
		{(*CPU).GetHL, (*CPU).SetHL},
		{(*CPU).GetAF, (*CPU).SetAF},
	}
	for i, pr := range pairs {
		base := uint8(i * 0x10)
		p := pr
		primaryTable[0xC5+base] = opcodeEntry{Name: "PUSH qq", Exec: func(c *CPU, mmu memory.Interface, imm []uint8) uint8 {
			c.pushWord(mmu, p.get(c))
			return 16
		}}
		primaryTable[0xC1+base] = opcodeEntry{Name: "POP qq", Exec: func(c *CPU, mmu memory.Interface, imm []uint8) uint8 {
			p.set(c, c.popWord(mmu))
			return 12
		}}
	}
}

// pushWord pre-decrements SP by 2 and writes the word low-byte-first (i.e.
// the low byte ends up at the lower address, matching WriteWord).
func (c *CPU) pushWord(mmu memory.Interface, v uint16) {
	c.SP -= 2
	mmu.WriteWord(c.SP, v)
}

// popWord reads a word and post-increments SP by 2.
func (c *CPU) popWord(mmu memory.Interface) uint16 {
	v := mmu.ReadWord(c.SP)
	c.SP += 2
	return v
}

// buildRotateAndMisc wires the non-prefix accumulator rotates (which force
// Z=0 regardless of result, unlike their CB-table counterparts) and
// DAA/CPL/SCF/CCF.
func buildRotateAndMisc() {
	primaryTable[0x07] = opcodeEntry{Name: "RLCA", Exec: func(c *CPU, mmu memory.Interface, imm []uint8) uint8 {
		c.SetA(c.Rlc(c.A()))
		c.SetFlag(FlagZ, false)
		return 4
	}}
	primaryTable[0x17] = opcodeEntry{Name: "RLA", Exec: func(c *CPU, mmu memory.Interface, imm []uint8) uint8 {
		c.SetA(c.Rl(c.A()))
		c.SetFlag(FlagZ, false)
		return 4
	}}
	primaryTable[0x0F] = opcodeEntry{Name: "RRCA", Exec: func(c *CPU, mmu memory.Interface, imm []uint8) uint8 {
		c.SetA(c.Rrc(c.A()))
		c.SetFlag(FlagZ, false)
		return 4
	}}
	primaryTable[0x1F] = opcodeEntry{Name: "RRA", Exec: func(c *CPU, mmu memory.Interface, imm []uint8) uint8 {
		c.SetA(c.Rr(c.A()))
		c.SetFlag(FlagZ, false)
		return 4
	}}
	primaryTable[0x27] = opcodeEntry{Name: "DAA", Exec: func(c *CPU, mmu memory.Interface, imm []uint8) uint8 {
		c.Daa()
		return 4
	}}
	primaryTable[0x2F] = opcodeEntry{Name: "CPL", Exec: func(c *CPU, mmu memory.Interface, imm []uint8) uint8 {
		c.Cpl()
		return 4
	}}
	primaryTable[0x37] = opcodeEntry{Name: "SCF", Exec: func(c *CPU, mmu memory.Interface, imm []uint8) uint8 {
		c.Scf()
		return 4
	}}
	primaryTable[0x3F] = opcodeEntry{Name: "CCF", Exec: func(c *CPU, mmu memory.Interface, imm []uint8) uint8 {
		c.Ccf()
		return 4
	}}
}
