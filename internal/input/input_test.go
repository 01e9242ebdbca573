package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// staticSource is a test double satisfying Source without touching SDL2.
type staticSource struct {
	signals []Signal
	i       int
}

func (s *staticSource) Poll() Signal {
	if s.i >= len(s.signals) {
		return SignalNone
	}
	sig := s.signals[s.i]
	s.i++
	return sig
}

func TestSourceInterfaceIsSatisfiedByStaticSource(t *testing.T) {
	var src Source = &staticSource{signals: []Signal{SignalNone, SignalEscape, SignalQuit}}

	assert.Equal(t, SignalNone, src.Poll())
	assert.Equal(t, SignalEscape, src.Poll())
	assert.Equal(t, SignalQuit, src.Poll())
}
