package gfx_test

import (
	"image/color"
	"math"
	"testing"

	"github.com/kjkrol/goquad/pkg/gfx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColorValidate(t *testing.T) {
	for _, c := range []gfx.Color{gfx.Red, gfx.Green, gfx.Blue, gfx.Black, {R: 0.5, G: 0.25, B: 1}} {
		assert.NoError(t, c.Validate(), c.String())
	}
	nan := float32(math.NaN())
	for _, c := range []gfx.Color{{R: -0.1}, {G: 1.01}, {B: nan}} {
		assert.ErrorIs(t, c.Validate(), gfx.ErrInvalidColor)
	}
}

func TestColorString(t *testing.T) {
	assert.Equal(t, "red", gfx.Red.String())
	assert.Equal(t, "black", gfx.Black.String())
	assert.Equal(t, "#ff8000", gfx.Color{R: 1, G: 128.0 / 255}.String())
	assert.Equal(t, "#0000ff", gfx.Blue.Hex())
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want gfx.Color
	}{
		{"red", gfx.Red},
		{" Green ", gfx.Green},
		{"BLUE", gfx.Blue},
		{"black", gfx.Black},
		{"#00ff00", gfx.Green},
		{"#000000", gfx.Black},
	}
	for _, tt := range tests {
		got, err := gfx.ParseColor(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
	for _, in := range []string{"", "purple", "#zzzzzz", "00ff00"} {
		_, err := gfx.ParseColor(in)
		assert.ErrorIs(t, err, gfx.ErrInvalidColor, in)
	}
}

func TestColorRoundTripsThroughImageColor(t *testing.T) {
	assert.Equal(t, gfx.Blue, gfx.FromColor(gfx.Blue))
	assert.Equal(t, gfx.Green, gfx.FromColor(color.RGBA{G: 255, A: 255}))
	assert.Equal(t, gfx.Black, gfx.FromColor(nil))
}
