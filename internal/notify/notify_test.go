package notify

import (
	"bytes"
	"testing"

	"github.com/kjkrol/goquad/pkg/gfx"
	"github.com/muesli/termenv"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestMessagesFormat(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"unsupported", errors.Wrap(gfx.ErrUnsupportedSurface, "no context"), Browser.Unsupported},
		{"compile", &gfx.ShaderCompileError{Stage: gfx.FragmentStage, Log: "0:1: syntax error"}, "An error occurred compiling the shaders: 0:1: syntax error"},
		{"link", errors.Wrap(&gfx.ShaderLinkError{Log: "missing main"}, "set color"), "Unable to initialize the shader program: missing main"},
		{"other", errors.New("boom"), "boom"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Browser.Format(tt.err))
		})
	}
}

func TestDesktopUnsupportedMessage(t *testing.T) {
	assert.Contains(t, Desktop.Format(gfx.ErrUnsupportedSurface), "OpenGL 3.3")
}

func TestTerminalNotify(t *testing.T) {
	var buf bytes.Buffer
	n := NewTerminal(&buf, Desktop, termenv.WithProfile(termenv.Ascii))

	n.Notify(&gfx.ShaderLinkError{Log: "bad"})
	n.Notify(nil)

	assert.Equal(t, "Unable to initialize the shader program: bad\n", buf.String())
}
