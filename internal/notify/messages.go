// Package notify turns renderer failures into the text a user sees.
package notify

import (
	"github.com/kjkrol/goquad/pkg/gfx"
	"github.com/pkg/errors"
)

// Messages holds the user-facing prefixes for each failure kind.
type Messages struct {
	Unsupported string
	Compile     string
	Link        string
}

var (
	Desktop = Messages{
		Unsupported: "Unable to initialize OpenGL. Your driver may not support OpenGL 3.3.",
		Compile:     "An error occurred compiling the shaders: ",
		Link:        "Unable to initialize the shader program: ",
	}
	Browser = Messages{
		Unsupported: "Unable to initialize WebGL. Your browser may not support it.",
		Compile:     "An error occurred compiling the shaders: ",
		Link:        "Unable to initialize the shader program: ",
	}
)

// Format returns the message for err. Errors the renderer does not define
// are shown as is.
func (m Messages) Format(err error) string {
	var compileErr *gfx.ShaderCompileError
	var linkErr *gfx.ShaderLinkError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &compileErr):
		return m.Compile + compileErr.Log
	case errors.As(err, &linkErr):
		return m.Link + linkErr.Log
	case errors.Is(err, gfx.ErrUnsupportedSurface):
		return m.Unsupported
	default:
		return err.Error()
	}
}
