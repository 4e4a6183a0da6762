package gfx

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
)

// Color is an opaque fill color with normalized components. Alpha is always 1.
type Color struct {
	R, G, B float32
}

var (
	Red   = Color{R: 1}
	Green = Color{G: 1}
	Blue  = Color{B: 1}
	Black = Color{}
)

// ClearColor is the background every draw starts from.
var ClearColor = Black

var ErrInvalidColor = errors.New("gfx: invalid color")

func (c Color) Validate() error {
	for _, v := range [3]float32{c.R, c.G, c.B} {
		f := float64(v)
		if math.IsNaN(f) || f < 0 || f > 1 {
			return errors.Wrapf(ErrInvalidColor, "component %v out of [0,1]", v)
		}
	}
	return nil
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	const max = 0xffff
	return uint32(c.R*max + 0.5), uint32(c.G*max + 0.5), uint32(c.B*max + 0.5), max
}

func (c Color) Hex() string {
	return colorful.Color{R: float64(c.R), G: float64(c.G), B: float64(c.B)}.Hex()
}

func (c Color) String() string {
	for _, p := range palette {
		if p.color == c {
			return p.name
		}
	}
	return c.Hex()
}

// FromColor converts any color.Color, dropping its alpha.
func FromColor(c color.Color) Color {
	if c == nil {
		return Black
	}
	r, g, b, _ := c.RGBA()
	const inv = 1.0 / 65535.0
	return Color{
		R: float32(r) * inv,
		G: float32(g) * inv,
		B: float32(b) * inv,
	}
}

// ParseColor accepts a palette name ("red", "green", "blue", "black") or a
// "#rrggbb" hex string.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	for _, p := range palette {
		if strings.EqualFold(p.name, s) {
			return p.color, nil
		}
	}
	if !strings.HasPrefix(s, "#") {
		return Black, errors.Wrapf(ErrInvalidColor, "unknown color %q", s)
	}
	cf, err := colorful.Hex(s)
	if err != nil {
		return Black, errors.Wrap(ErrInvalidColor, err.Error())
	}
	return Color{R: float32(cf.R), G: float32(cf.G), B: float32(cf.B)}, nil
}

type namedColor struct {
	name  string
	color Color
}

var palette = [...]namedColor{
	{"red", Red},
	{"green", Green},
	{"blue", Blue},
	{"black", Black},
}

// glslFloat renders v as a GLSL float literal, always with a decimal point.
func glslFloat(v float32) string {
	s := fmt.Sprint(v)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
