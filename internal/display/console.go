package display

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"gbcore/internal/ppu"
)

// ConsoleDisplay renders frames as ASCII art, useful for running headless
// without opening a window. It shares this package with SDL2Display, so
// building it still requires go-sdl2.
type ConsoleDisplay struct {
	cfg        Config
	frameCount uint64
	quit       bool
}

func NewConsoleDisplay() *ConsoleDisplay {
	return &ConsoleDisplay{}
}

func (c *ConsoleDisplay) Initialize(cfg Config) error {
	if err := ValidateConfig(cfg); err != nil {
		return fmt.Errorf("console display: %w", err)
	}
	c.cfg = cfg
	c.frameCount = 0
	c.quit = false
	fmt.Printf("console display initialized: %dx%d, scale %dx\n", ppu.ScreenWidth, ppu.ScreenHeight, cfg.ScaleFactor)
	return nil
}

var shadeChars = [4]rune{' ', '░', '▒', '█'}

// shadeIndex maps a resolved RGB shade back to one of the four glyphs.
// Present only ever receives the four DMG grayscale shades ppu.ApplyPalette
// produces, so a direct comparison is enough - no need to carry the 2-bit
// color id alongside the RGB value.
func shadeIndex(c ppu.RGB) int {
	switch c {
	case ppu.ShadeWhite:
		return 0
	case ppu.ShadeLight:
		return 1
	case ppu.ShadeDark:
		return 2
	default:
		return 3
	}
}

func (c *ConsoleDisplay) Present(frame *[ppu.ScreenHeight][ppu.ScreenWidth]ppu.RGB) error {
	c.frameCount++
	c.clearScreen()

	fmt.Printf("frame #%d | %dx%d | scale %dx\n", c.frameCount, ppu.ScreenWidth, ppu.ScreenHeight, c.cfg.ScaleFactor)
	fmt.Println("+" + strings.Repeat("-", ppu.ScreenWidth*c.cfg.ScaleFactor) + "+")

	for y := 0; y < ppu.ScreenHeight; y++ {
		for sy := 0; sy < c.cfg.ScaleFactor; sy++ {
			var row strings.Builder
			row.WriteByte('|')
			for x := 0; x < ppu.ScreenWidth; x++ {
				glyph := shadeChars[shadeIndex(frame[y][x])]
				for sx := 0; sx < c.cfg.ScaleFactor; sx++ {
					row.WriteRune(glyph)
				}
			}
			row.WriteByte('|')
			fmt.Println(row.String())
		}
	}

	fmt.Println("+" + strings.Repeat("-", ppu.ScreenWidth*c.cfg.ScaleFactor) + "+")
	return nil
}

func (c *ConsoleDisplay) SetTitle(title string) error {
	fmt.Printf("title: %s\n", title)
	return nil
}

func (c *ConsoleDisplay) ShouldClose() bool { return c.quit }

// PollEvents has nothing to poll: the console backend takes no input,
// ShouldClose never reports true, and it only ever stops via Ctrl+C.
func (c *ConsoleDisplay) PollEvents() {}

func (c *ConsoleDisplay) Cleanup() error {
	fmt.Println("console display cleanup complete")
	return nil
}

func (c *ConsoleDisplay) clearScreen() {
	var cmd *exec.Cmd
	if runtime.GOOS == "windows" {
		cmd = exec.Command("cmd", "/c", "cls")
	} else {
		cmd = exec.Command("clear")
	}
	cmd.Stdout = os.Stdout
	cmd.Run()
}
