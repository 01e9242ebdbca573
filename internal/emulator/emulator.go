// Package emulator wires the CPU, memory bus and background renderer into
// the top-level loop spec §2 describes: pump CPU cycles for a frame,
// resolve the pixel buffer, hand it to the host backend.
package emulator

import (
	"gbcore/internal/cartridge"
	"gbcore/internal/cpu"
	"gbcore/internal/memory"
	"gbcore/internal/ppu"
)

// Emulator owns the CPU, the memory bus, and the most recently resolved
// frame. It has no notion of a host window or input device; those are
// external collaborators wired up by cmd/gbcore.
type Emulator struct {
	CPU *cpu.CPU
	MMU *memory.MMU

	Frame [ppu.ScreenHeight][ppu.ScreenWidth]ppu.RGB
}

// New creates an Emulator with a loaded cartridge copied into memory and
// the CPU in its post-boot-ROM state (spec §4.7).
func New(cart *cartridge.Cartridge) *Emulator {
	mmu := memory.New()
	mmu.LoadROM(cart.ROM)

	c := cpu.New()
	cpu.InstallBootState(c, mmu)

	return &Emulator{CPU: c, MMU: mmu}
}

// StepInstruction advances the CPU by exactly one instruction (or one HALT
// tick) and returns the T-cycles it consumed. An UnimplementedOpcodeError
// is non-fatal: the caller may log it and keep running.
func (e *Emulator) StepInstruction() (uint8, error) {
	return cpu.Step(e.CPU, e.MMU)
}

// RunFrame steps the CPU until it has consumed at least CyclesPerFrame
// T-cycles since the call began, then resolves the background framebuffer.
// It returns the first UnimplementedOpcodeError encountered, if any,
// without stopping early - per spec §7 these are recorded, not fatal.
func (e *Emulator) RunFrame() error {
	var firstErr error
	spent := uint64(0)
	for spent < CyclesPerFrame {
		cycles, err := e.StepInstruction()
		spent += uint64(cycles)
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}
	ppu.RenderFrame(e.MMU, &e.Frame)
	return firstErr
}

// GetPixel returns the 0x00RRGGBB color of the most recently resolved
// frame at (x, y), matching the host backend contract in spec §6.
func (e *Emulator) GetPixel(x, y int) uint32 {
	return uint32(e.Frame[y][x])
}
