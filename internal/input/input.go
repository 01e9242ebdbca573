// Package input reports host-level control signals to the run loop.
// The joypad register and its button matrix are an explicit non-goal of
// this core (spec §6); this package exists only so a host backend has a
// way to say "stop" - window closed or Escape pressed - without the CLI
// reaching into SDL2 directly.
package input

// Signal names the host-level events the run loop reacts to.
type Signal int

const (
	// SignalNone means nothing happened this poll.
	SignalNone Signal = iota
	// SignalQuit means the host window was closed.
	SignalQuit
	// SignalEscape means the user pressed Escape.
	SignalEscape
)

// Source is the contract a concrete input backend satisfies.
type Source interface {
	// Poll returns the most urgent signal observed since the last call.
	// Poll is expected to be called once per frame, after the display's
	// own PollEvents.
	Poll() Signal
}
