package display

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"

	"gbcore/internal/ppu"
)

// SDL2Display renders frames to a real window via go-sdl2. The teacher repo
// only ever wired go-sdl2 into audio output (internal/audio/sdl2_audio.go);
// this is the same Init/device/Cleanup shape applied to SDL2's renderer
// instead of its audio device.
type SDL2Display struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture
	cfg      Config
}

// NewSDL2Display creates an uninitialized SDL2 display backend.
func NewSDL2Display() *SDL2Display {
	return &SDL2Display{}
}

func (d *SDL2Display) Initialize(cfg Config) error {
	if err := ValidateConfig(cfg); err != nil {
		return fmt.Errorf("sdl2 display: %w", err)
	}

	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return fmt.Errorf("sdl2 display: init: %w", err)
	}

	title := cfg.Title
	if title == "" {
		title = "gbcore"
	}

	w := int32(ppu.ScreenWidth * cfg.ScaleFactor)
	h := int32(ppu.ScreenHeight * cfg.ScaleFactor)

	window, err := sdl.CreateWindow(title, sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		w, h, sdl.WINDOW_SHOWN)
	if err != nil {
		sdl.Quit()
		return fmt.Errorf("sdl2 display: create window: %w", err)
	}

	rendererFlags := uint32(sdl.RENDERER_ACCELERATED)
	if cfg.VSync {
		rendererFlags |= sdl.RENDERER_PRESENTVSYNC
	}
	renderer, err := sdl.CreateRenderer(window, -1, rendererFlags)
	if err != nil {
		window.Destroy()
		sdl.Quit()
		return fmt.Errorf("sdl2 display: create renderer: %w", err)
	}

	scaleMode := sdl.HINT_RENDER_SCALE_QUALITY
	if cfg.ScalingMode == ScaleLinear {
		sdl.SetHint(scaleMode, "1")
	} else {
		sdl.SetHint(scaleMode, "0")
	}

	texture, err := renderer.CreateTexture(sdl.PIXELFORMAT_ABGR8888, sdl.TEXTUREACCESS_STREAMING,
		ppu.ScreenWidth, ppu.ScreenHeight)
	if err != nil {
		renderer.Destroy()
		window.Destroy()
		sdl.Quit()
		return fmt.Errorf("sdl2 display: create texture: %w", err)
	}

	d.window = window
	d.renderer = renderer
	d.texture = texture
	d.cfg = cfg
	return nil
}

// Present uploads the frame into the streaming texture and draws it scaled
// to the window's full extent.
func (d *SDL2Display) Present(frame *[ppu.ScreenHeight][ppu.ScreenWidth]ppu.RGB) error {
	pixels, _, err := d.texture.Lock(nil)
	if err != nil {
		return fmt.Errorf("sdl2 display: lock texture: %w", err)
	}

	for y := 0; y < ppu.ScreenHeight; y++ {
		rowOffset := y * ppu.ScreenWidth * 4
		for x := 0; x < ppu.ScreenWidth; x++ {
			c := frame[y][x]
			i := rowOffset + x*4
			pixels[i] = uint8(c >> 16)   // R
			pixels[i+1] = uint8(c >> 8)  // G
			pixels[i+2] = uint8(c)       // B
			pixels[i+3] = 0xFF           // A
		}
	}
	d.texture.Unlock()

	d.renderer.Clear()
	d.renderer.Copy(d.texture, nil, nil)
	d.renderer.Present()
	return nil
}

func (d *SDL2Display) SetTitle(title string) error {
	d.window.SetTitle(title)
	return nil
}

// ShouldClose always reports false: quit/Escape detection lives in
// input.SDL2Source, which the caller drains once per frame instead of this
// backend duplicating the same sdl.PollEvent loop.
func (d *SDL2Display) ShouldClose() bool { return false }

// PollEvents is a no-op. SDL2 has a single process-wide event queue, so only
// one consumer may drain it each frame; this core gives that job to
// input.SDL2Source and keeps the display backend a pure render target.
func (d *SDL2Display) PollEvents() {}

func (d *SDL2Display) Cleanup() error {
	if d.texture != nil {
		d.texture.Destroy()
	}
	if d.renderer != nil {
		d.renderer.Destroy()
	}
	if d.window != nil {
		d.window.Destroy()
	}
	sdl.Quit()
	return nil
}
