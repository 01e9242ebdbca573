package emulator

// CyclesPerFrame is the DMG's T-cycle budget for one video frame:
// 4.194304 MHz / 59.7275 Hz ~= 70224 T-cycles. The top-level loop steps the
// CPU until it has spent at least this many cycles, then resolves a frame.
const CyclesPerFrame = 70224
