package cartridge

import "errors"

// ErrInvalidROM covers the "no path supplied, or file open failed" case
// from spec §7; callers wrap it with the path via fmt.Errorf("...: %w").
var ErrInvalidROM = errors.New("invalid ROM")

// ErrInvalidROMSize is returned when a ROM exceeds the 64KB bus, per spec
// §3's loader invariant.
var ErrInvalidROMSize = errors.New("ROM exceeds 65536 bytes")
