package platform

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRGBASurfaceFill(t *testing.T) {
	s := NewRGBASurface(4, 3)
	red := color.RGBA{R: 255, A: 255}

	s.Fill(red)

	assert.Equal(t, image.Rect(0, 0, 4, 3), s.Bounds())
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			assert.Equal(t, red, s.RGBA().RGBAAt(x, y))
		}
	}
}

func TestPixelMapping(t *testing.T) {
	b := image.Rect(0, 0, 100, 50)

	x, y := PixelCenter(b, 0, 0)
	assert.InDelta(t, -0.99, x, 1e-6)
	assert.InDelta(t, 0.98, y, 1e-6)

	px, py := PixelAt(b, 0, 0)
	assert.Equal(t, 50, px)
	assert.Equal(t, 25, py)

	px, py = PixelAt(b, 1, -1)
	assert.Equal(t, 99, px, "clamped to the last column")
	assert.Equal(t, 49, py, "clamped to the last row")

	px, py = PixelAt(b, x, y)
	assert.Equal(t, 0, px)
	assert.Equal(t, 0, py)
}
