package cartridge

import (
	"fmt"
	"os"
)

// Load reads a ROM file from disk and wraps it as a Cartridge. It fails
// with ErrInvalidROM when the path is empty or the file can't be opened,
// and ErrInvalidROMSize when the file is larger than the 64KB bus (spec
// §6/§7). No header validation is performed beyond that.
func Load(path string) (*Cartridge, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: no ROM path given", ErrInvalidROM)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidROM, path, err)
	}

	return LoadBytes(data)
}

// LoadBytes wraps ROM data already in memory, applying the same size check
// Load does. Useful for tests and for ROM data obtained some other way than
// a file path.
func LoadBytes(data []byte) (*Cartridge, error) {
	if len(data) > BusSize {
		return nil, fmt.Errorf("%w: got %d bytes, max is %d", ErrInvalidROMSize, len(data), BusSize)
	}
	return New(data), nil
}
