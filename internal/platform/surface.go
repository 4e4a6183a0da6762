package platform

import (
	"image"
	"image/color"
	"image/draw"
)

// Surface is an offscreen RGBA target. It stands in for a window's
// framebuffer where no GPU is available.
type Surface interface {
	ColorModel() color.Model
	Bounds() image.Rectangle
	At(x, y int) color.Color
	Set(x, y int, c color.Color)
	Fill(c color.Color)
	RGBA() *image.RGBA
}

// NewRGBASurface creates a Surface backed by image.RGBA.
func NewRGBASurface(width, height int) Surface {
	return &rgbaSurface{
		img: image.NewRGBA(image.Rect(0, 0, width, height)),
	}
}

type rgbaSurface struct {
	img *image.RGBA
}

func (s *rgbaSurface) ColorModel() color.Model {
	return s.img.ColorModel()
}

func (s *rgbaSurface) Bounds() image.Rectangle {
	return s.img.Bounds()
}

func (s *rgbaSurface) At(x, y int) color.Color {
	return s.img.At(x, y)
}

func (s *rgbaSurface) Set(x, y int, c color.Color) {
	s.img.Set(x, y, c)
}

func (s *rgbaSurface) Fill(c color.Color) {
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

func (s *rgbaSurface) RGBA() *image.RGBA {
	return s.img
}

// PixelCenter returns the normalized device coordinates of the center of
// pixel (px, py). NDC y grows upwards, pixel y downwards.
func PixelCenter(b image.Rectangle, px, py int) (x, y float32) {
	x = (float32(px-b.Min.X)+0.5)/float32(b.Dx())*2 - 1
	y = 1 - (float32(py-b.Min.Y)+0.5)/float32(b.Dy())*2
	return x, y
}

// PixelAt returns the pixel covering the NDC point (x, y), clamped to b.
func PixelAt(b image.Rectangle, x, y float32) (px, py int) {
	px = b.Min.X + int((x+1)/2*float32(b.Dx()))
	py = b.Min.Y + int((1-y)/2*float32(b.Dy()))
	px = min(max(px, b.Min.X), b.Max.X-1)
	py = min(max(py, b.Min.Y), b.Max.Y-1)
	return px, py
}
