package gfx

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrUnsupportedSurface is fatal to initialization.
	ErrUnsupportedSurface = errors.New("gfx: unsupported drawing surface")
	ErrClosed             = errors.New("gfx: renderer closed")
)

// ShaderCompileError carries the driver's compile log for one stage.
type ShaderCompileError struct {
	Stage ShaderStage
	Log   string
}

func (e *ShaderCompileError) Error() string {
	return fmt.Sprintf("gfx: compile %s shader: %s", e.Stage, e.Log)
}

// ShaderLinkError carries the driver's link log.
type ShaderLinkError struct {
	Log string
}

func (e *ShaderLinkError) Error() string {
	return "gfx: link program: " + e.Log
}

func unsupported(reason string) error {
	return errors.Wrap(ErrUnsupportedSurface, reason)
}
