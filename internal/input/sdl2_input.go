package input

import "github.com/veandco/go-sdl2/sdl"

// SDL2Source pumps the SDL2 event queue and reports quit/escape signals.
// SDL2 has a single event queue per process, so it must be the only consumer
// draining it each frame: display.SDL2Display.PollEvents/ShouldClose are
// no-ops for exactly this reason. cmd/gbcore polls this Source once per
// frame to decide when to stop, keeping the display backend a pure render
// target.
type SDL2Source struct {
	quit bool
}

func NewSDL2Source() *SDL2Source {
	return &SDL2Source{}
}

// Poll drains the events SDL2 has queued since the last call, stopping at
// the first Escape key press (events queued after it stay for the next
// call). Once a quit or Escape has been seen, later calls that find no
// Escape report SignalQuit.
func (s *SDL2Source) Poll() Signal {
	for {
		event := sdl.PollEvent()
		if event == nil {
			break
		}
		switch e := event.(type) {
		case *sdl.QuitEvent:
			s.quit = true
		case *sdl.KeyboardEvent:
			if e.Keysym.Sym == sdl.K_ESCAPE && e.State == sdl.PRESSED {
				s.quit = true
				return SignalEscape
			}
		}
	}
	if s.quit {
		return SignalQuit
	}
	return SignalNone
}
