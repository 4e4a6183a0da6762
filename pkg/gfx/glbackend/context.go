//go:build !js

// Package glbackend implements gfx.Context over a desktop OpenGL 3.3 core
// profile context.
package glbackend

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/kjkrol/goquad/pkg/gfx"
	"github.com/pkg/errors"
)

var _ gfx.Context = (*Context)(nil)

type Context struct {
	vao     uint32
	version string
}

// New loads GL entry points for the context current on this thread and binds
// the vertex array object the core profile requires for any draw.
func New() (*Context, error) {
	if err := gl.Init(); err != nil {
		return nil, errors.Wrap(err, "gl.Init")
	}
	c := &Context{version: gl.GoStr(gl.GetString(gl.VERSION))}
	gl.GenVertexArrays(1, &c.vao)
	gl.BindVertexArray(c.vao)
	return c, nil
}

func (c *Context) Supported() error {
	var major, minor int32
	gl.GetIntegerv(gl.MAJOR_VERSION, &major)
	gl.GetIntegerv(gl.MINOR_VERSION, &minor)
	if major < 3 || (major == 3 && minor < 3) {
		return errors.Errorf("OpenGL 3.3 required, got %q", c.version)
	}
	if c.vao == 0 {
		return errors.New("no vertex array object")
	}
	return nil
}

func (c *Context) Dialect() gfx.Dialect {
	return gfx.GLSL330Core
}

func (c *Context) CreateShader(stage gfx.ShaderStage) gfx.Shader {
	kind := uint32(gl.VERTEX_SHADER)
	if stage == gfx.FragmentStage {
		kind = gl.FRAGMENT_SHADER
	}
	return gfx.Shader(gl.CreateShader(kind))
}

func (c *Context) ShaderSource(s gfx.Shader, src string) {
	csources, free := gl.Strs(src + "\x00")
	gl.ShaderSource(uint32(s), 1, csources, nil)
	free()
}

func (c *Context) CompileShader(s gfx.Shader) {
	gl.CompileShader(uint32(s))
}

func (c *Context) ShaderCompiled(s gfx.Shader) bool {
	var status int32
	gl.GetShaderiv(uint32(s), gl.COMPILE_STATUS, &status)
	return status != gl.FALSE
}

func (c *Context) ShaderInfoLog(s gfx.Shader) string {
	var logLength int32
	gl.GetShaderiv(uint32(s), gl.INFO_LOG_LENGTH, &logLength)
	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetShaderInfoLog(uint32(s), logLength, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (c *Context) DeleteShader(s gfx.Shader) {
	gl.DeleteShader(uint32(s))
}

func (c *Context) CreateProgram() gfx.Program {
	return gfx.Program(gl.CreateProgram())
}

func (c *Context) AttachShader(p gfx.Program, s gfx.Shader) {
	gl.AttachShader(uint32(p), uint32(s))
}

func (c *Context) BindAttribLocation(p gfx.Program, a gfx.Attrib, name string) {
	gl.BindAttribLocation(uint32(p), uint32(a), gl.Str(name+"\x00"))
}

func (c *Context) LinkProgram(p gfx.Program) {
	gl.LinkProgram(uint32(p))
}

func (c *Context) ProgramLinked(p gfx.Program) bool {
	var status int32
	gl.GetProgramiv(uint32(p), gl.LINK_STATUS, &status)
	return status != gl.FALSE
}

func (c *Context) ProgramInfoLog(p gfx.Program) string {
	var logLength int32
	gl.GetProgramiv(uint32(p), gl.INFO_LOG_LENGTH, &logLength)
	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetProgramInfoLog(uint32(p), logLength, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (c *Context) GetAttribLocation(p gfx.Program, name string) gfx.Attrib {
	return gfx.Attrib(gl.GetAttribLocation(uint32(p), gl.Str(name+"\x00")))
}

func (c *Context) UseProgram(p gfx.Program) {
	gl.UseProgram(uint32(p))
}

func (c *Context) DeleteProgram(p gfx.Program) {
	gl.DeleteProgram(uint32(p))
}

func (c *Context) CreateBuffer() gfx.Buffer {
	var b uint32
	gl.GenBuffers(1, &b)
	return gfx.Buffer(b)
}

func (c *Context) BindBuffer(b gfx.Buffer) {
	gl.BindBuffer(gl.ARRAY_BUFFER, uint32(b))
}

func (c *Context) BufferData(data []byte) {
	gl.BufferData(gl.ARRAY_BUFFER, len(data), gl.Ptr(data), gl.STATIC_DRAW)
}

func (c *Context) DeleteBuffer(b gfx.Buffer) {
	buf := uint32(b)
	gl.DeleteBuffers(1, &buf)
}

func (c *Context) VertexAttribPointer(a gfx.Attrib, size int) {
	gl.VertexAttribPointer(uint32(a), int32(size), gl.FLOAT, false, 0, gl.PtrOffset(0))
}

func (c *Context) EnableVertexAttribArray(a gfx.Attrib) {
	gl.EnableVertexAttribArray(uint32(a))
}

func (c *Context) Viewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

func (c *Context) ClearColor(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
}

func (c *Context) Clear() {
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

func (c *Context) DrawArrays(mode gfx.DrawMode, first, count int) {
	gl.DrawArrays(glMode(mode), int32(first), int32(count))
}

// Close releases the vertex array object.
func (c *Context) Close() {
	if c.vao != 0 {
		gl.DeleteVertexArrays(1, &c.vao)
		c.vao = 0
	}
}

func (c *Context) String() string {
	return fmt.Sprintf("OpenGL %s", c.version)
}

func glMode(mode gfx.DrawMode) uint32 {
	if mode == gfx.TriangleStrip {
		return gl.TRIANGLE_STRIP
	}
	return gl.TRIANGLES
}
