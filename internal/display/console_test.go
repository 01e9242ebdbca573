package display

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gbcore/internal/ppu"
)

func TestConsoleDisplayCreation(t *testing.T) {
	console := NewConsoleDisplay()
	assert.NotNil(t, console)
	assert.False(t, console.ShouldClose())
}

func TestConsoleDisplayInitialization(t *testing.T) {
	console := NewConsoleDisplay()
	cfg := Config{ScaleFactor: 1, ScalingMode: ScaleNearest}

	err := console.Initialize(cfg)
	require.NoError(t, err)
	assert.Equal(t, cfg, console.cfg)
}

func TestConsoleDisplayRejectsInvalidConfig(t *testing.T) {
	console := NewConsoleDisplay()
	cfg := Config{ScaleFactor: 0, ScalingMode: ScaleNearest}

	err := console.Initialize(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "console display")
}

func TestConsoleDisplayPresentDoesNotError(t *testing.T) {
	console := NewConsoleDisplay()
	require.NoError(t, console.Initialize(Config{ScaleFactor: 1, ScalingMode: ScaleNearest}))

	var frame [ppu.ScreenHeight][ppu.ScreenWidth]ppu.RGB
	frame[0][0] = ppu.ShadeBlack
	frame[10][10] = ppu.ShadeDark

	require.NoError(t, console.Present(&frame))
	assert.Equal(t, uint64(1), console.frameCount)
}

func TestShadeIndexMapsAllFourShades(t *testing.T) {
	assert.Equal(t, 0, shadeIndex(ppu.ShadeWhite))
	assert.Equal(t, 1, shadeIndex(ppu.ShadeLight))
	assert.Equal(t, 2, shadeIndex(ppu.ShadeDark))
	assert.Equal(t, 3, shadeIndex(ppu.ShadeBlack))
}
