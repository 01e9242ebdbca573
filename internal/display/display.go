// Package display presents a resolved background frame to a host backend.
// The core itself is headless (spec §1): it only ever produces a
// [144][160]RGB buffer. Everything in this package is glue around that
// buffer - frame pacing, scaling, and the choice of graphics library - and
// none of it participates in emulation correctness.
package display

import (
	"fmt"
	"time"

	"gbcore/internal/ppu"
)

// TargetFPS is the DMG's authentic refresh rate, used by Display.Present for
// software frame pacing whenever VSync is requested.
const TargetFPS = 59.7275

// ScalingMode selects how a backend stretches the 160x144 frame to a
// larger window.
type ScalingMode int

const (
	ScaleNearest ScalingMode = iota
	ScaleLinear
)

// Config holds the settings a backend is initialized with.
type Config struct {
	ScaleFactor int
	ScalingMode ScalingMode
	VSync       bool
	Title       string
}

// Backend is the contract a concrete display implementation satisfies.
// gbcore ships two: SDL2Display for a real window and ConsoleDisplay for a
// terminal fallback with no graphics dependency.
type Backend interface {
	Initialize(cfg Config) error
	Present(frame *[ppu.ScreenHeight][ppu.ScreenWidth]ppu.RGB) error
	SetTitle(title string) error
	ShouldClose() bool
	PollEvents()
	Cleanup() error
}

// Display wraps a Backend with frame-rate limiting so callers don't each
// have to reimplement pacing.
type Display struct {
	cfg       Config
	backend   Backend
	lastFrame time.Time
	frameTime time.Duration
}

// New wraps a concrete backend in the shared pacing logic.
func New(backend Backend) *Display {
	return &Display{
		backend:   backend,
		frameTime: time.Duration(float64(time.Second) / TargetFPS),
	}
}

func (d *Display) Initialize(cfg Config) error {
	d.cfg = cfg
	d.lastFrame = time.Now()
	return d.backend.Initialize(cfg)
}

// Present paces frames to TargetFPS when VSync is requested and hands the
// frame to the backend.
func (d *Display) Present(frame *[ppu.ScreenHeight][ppu.ScreenWidth]ppu.RGB) error {
	if d.cfg.VSync {
		elapsed := time.Since(d.lastFrame)
		if elapsed < d.frameTime {
			time.Sleep(d.frameTime - elapsed)
		}
		d.lastFrame = time.Now()
	}
	return d.backend.Present(frame)
}

func (d *Display) SetTitle(title string) error { return d.backend.SetTitle(title) }
func (d *Display) ShouldClose() bool           { return d.backend.ShouldClose() }
func (d *Display) PollEvents()                 { d.backend.PollEvents() }
func (d *Display) Cleanup() error              { return d.backend.Cleanup() }

// ValidateConfig rejects scale factors and scaling modes a backend can't
// act on.
func ValidateConfig(cfg Config) error {
	if cfg.ScaleFactor < 1 || cfg.ScaleFactor > 8 {
		return fmt.Errorf("invalid scale factor: %d (must be 1-8)", cfg.ScaleFactor)
	}
	if cfg.ScalingMode != ScaleNearest && cfg.ScalingMode != ScaleLinear {
		return fmt.Errorf("invalid scaling mode: %d", cfg.ScalingMode)
	}
	return nil
}
