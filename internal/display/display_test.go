package display

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gbcore/internal/ppu"
)

type fakeBackend struct {
	initCfg   Config
	presented int
	title     string
	closed    bool
}

func (f *fakeBackend) Initialize(cfg Config) error {
	f.initCfg = cfg
	return nil
}
func (f *fakeBackend) Present(*[ppu.ScreenHeight][ppu.ScreenWidth]ppu.RGB) error {
	f.presented++
	return nil
}
func (f *fakeBackend) SetTitle(title string) error { f.title = title; return nil }
func (f *fakeBackend) ShouldClose() bool            { return f.closed }
func (f *fakeBackend) PollEvents()                  {}
func (f *fakeBackend) Cleanup() error               { return nil }

func TestDisplayDelegatesToBackend(t *testing.T) {
	backend := &fakeBackend{}
	d := New(backend)

	cfg := Config{ScaleFactor: 3, ScalingMode: ScaleNearest}
	require.NoError(t, d.Initialize(cfg))
	assert.Equal(t, cfg, backend.initCfg)

	var frame [ppu.ScreenHeight][ppu.ScreenWidth]ppu.RGB
	require.NoError(t, d.Present(&frame))
	assert.Equal(t, 1, backend.presented)

	require.NoError(t, d.SetTitle("hello"))
	assert.Equal(t, "hello", backend.title)

	assert.False(t, d.ShouldClose())
	backend.closed = true
	assert.True(t, d.ShouldClose())

	require.NoError(t, d.Cleanup())
}

func TestValidateConfigRejectsOutOfRangeScale(t *testing.T) {
	err := ValidateConfig(Config{ScaleFactor: 9, ScalingMode: ScaleNearest})
	require.Error(t, err)

	err = ValidateConfig(Config{ScaleFactor: 1, ScalingMode: ScalingMode(99)})
	require.Error(t, err)

	err = ValidateConfig(Config{ScaleFactor: 2, ScalingMode: ScaleLinear})
	require.NoError(t, err)
}
