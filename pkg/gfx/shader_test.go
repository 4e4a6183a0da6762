package gfx_test

import (
	"strings"
	"testing"

	"github.com/kjkrol/goquad/pkg/gfx"
	"github.com/stretchr/testify/assert"
)

func TestVertexSource(t *testing.T) {
	es := gfx.VertexSource(gfx.GLSLES100)
	assert.Equal(t, "attribute vec4 aVertexPosition;\nvoid main() {\n\tgl_Position = aVertexPosition;\n}\n", es)

	core := gfx.VertexSource(gfx.GLSL330Core)
	assert.True(t, strings.HasPrefix(core, "#version 330 core\n"))
	assert.Contains(t, core, "in vec4 aVertexPosition;")
}

func TestFragmentSource(t *testing.T) {
	src := gfx.FragmentSource(gfx.GLSLES100, gfx.Red)
	assert.Equal(t, "precision mediump float;\nvoid main() {\n\tgl_FragColor = vec4(1.0, 0.0, 0.0, 1.0);\n}\n", src)

	core := gfx.FragmentSource(gfx.GLSL330Core, gfx.Color{R: 0.5, G: 0.25, B: 1})
	assert.Contains(t, core, "out vec4 fragColor;")
	assert.Contains(t, core, "fragColor = vec4(0.5, 0.25, 1.0, 1.0);")
	assert.NotContains(t, core, "gl_FragColor")
}

func TestFragmentSourceDiffersPerColor(t *testing.T) {
	seen := map[string]gfx.Color{}
	for _, c := range []gfx.Color{gfx.Red, gfx.Green, gfx.Blue, gfx.Black} {
		src := gfx.FragmentSource(gfx.GLSLES100, c)
		_, dup := seen[src]
		assert.False(t, dup, c.String())
		seen[src] = c
	}
}
