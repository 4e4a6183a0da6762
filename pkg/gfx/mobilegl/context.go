//go:build darwin || linux || windows

// Package mobilegl implements gfx.Context over golang.org/x/mobile/gl, the
// OpenGL ES 2 binding used by x/mobile apps.
package mobilegl

import (
	"github.com/kjkrol/goquad/pkg/gfx"
	"github.com/pkg/errors"
	"golang.org/x/mobile/gl"
)

var _ gfx.Context = (*Context)(nil)

// Context keeps the typed x/mobile objects behind plain gfx handles.
type Context struct {
	glctx    gl.Context
	shaders  map[gfx.Shader]gl.Shader
	programs map[gfx.Program]gl.Program
	buffers  map[gfx.Buffer]gl.Buffer
	next     uint32
}

// New wraps the draw context delivered by a lifecycle.Event. glctx may be
// nil before the app becomes visible.
func New(glctx gl.Context) *Context {
	return &Context{
		glctx:    glctx,
		shaders:  make(map[gfx.Shader]gl.Shader),
		programs: make(map[gfx.Program]gl.Program),
		buffers:  make(map[gfx.Buffer]gl.Buffer),
	}
}

func (c *Context) Supported() error {
	if c.glctx == nil {
		return errors.New("no GL ES draw context")
	}
	return nil
}

func (c *Context) Dialect() gfx.Dialect {
	return gfx.GLSLES100
}

func (c *Context) handle() uint32 {
	c.next++
	return c.next
}

func (c *Context) CreateShader(stage gfx.ShaderStage) gfx.Shader {
	kind := gl.Enum(gl.VERTEX_SHADER)
	if stage == gfx.FragmentStage {
		kind = gl.FRAGMENT_SHADER
	}
	s := c.glctx.CreateShader(kind)
	if s.Value == 0 {
		return 0
	}
	h := gfx.Shader(c.handle())
	c.shaders[h] = s
	return h
}

func (c *Context) ShaderSource(s gfx.Shader, src string) {
	c.glctx.ShaderSource(c.shaders[s], src)
}

func (c *Context) CompileShader(s gfx.Shader) {
	c.glctx.CompileShader(c.shaders[s])
}

func (c *Context) ShaderCompiled(s gfx.Shader) bool {
	return c.glctx.GetShaderi(c.shaders[s], gl.COMPILE_STATUS) != 0
}

func (c *Context) ShaderInfoLog(s gfx.Shader) string {
	return c.glctx.GetShaderInfoLog(c.shaders[s])
}

func (c *Context) DeleteShader(s gfx.Shader) {
	if shader, ok := c.shaders[s]; ok {
		c.glctx.DeleteShader(shader)
		delete(c.shaders, s)
	}
}

func (c *Context) CreateProgram() gfx.Program {
	p := c.glctx.CreateProgram()
	// Program 0 is a valid name on some drivers.
	if !p.Init {
		return 0
	}
	h := gfx.Program(c.handle())
	c.programs[h] = p
	return h
}

func (c *Context) AttachShader(p gfx.Program, s gfx.Shader) {
	c.glctx.AttachShader(c.programs[p], c.shaders[s])
}

func (c *Context) BindAttribLocation(p gfx.Program, a gfx.Attrib, name string) {
	c.glctx.BindAttribLocation(c.programs[p], gl.Attrib{Value: uint(a)}, name)
}

func (c *Context) LinkProgram(p gfx.Program) {
	c.glctx.LinkProgram(c.programs[p])
}

func (c *Context) ProgramLinked(p gfx.Program) bool {
	return c.glctx.GetProgrami(c.programs[p], gl.LINK_STATUS) != 0
}

func (c *Context) ProgramInfoLog(p gfx.Program) string {
	return c.glctx.GetProgramInfoLog(c.programs[p])
}

func (c *Context) GetAttribLocation(p gfx.Program, name string) gfx.Attrib {
	return gfx.Attrib(int32(c.glctx.GetAttribLocation(c.programs[p], name).Value))
}

func (c *Context) UseProgram(p gfx.Program) {
	c.glctx.UseProgram(c.programs[p])
}

func (c *Context) DeleteProgram(p gfx.Program) {
	if program, ok := c.programs[p]; ok {
		c.glctx.DeleteProgram(program)
		delete(c.programs, p)
	}
}

func (c *Context) CreateBuffer() gfx.Buffer {
	b := c.glctx.CreateBuffer()
	if b.Value == 0 {
		return 0
	}
	h := gfx.Buffer(c.handle())
	c.buffers[h] = b
	return h
}

func (c *Context) BindBuffer(b gfx.Buffer) {
	c.glctx.BindBuffer(gl.ARRAY_BUFFER, c.buffers[b])
}

func (c *Context) BufferData(data []byte) {
	c.glctx.BufferData(gl.ARRAY_BUFFER, data, gl.STATIC_DRAW)
}

func (c *Context) DeleteBuffer(b gfx.Buffer) {
	if buffer, ok := c.buffers[b]; ok {
		c.glctx.DeleteBuffer(buffer)
		delete(c.buffers, b)
	}
}

func (c *Context) VertexAttribPointer(a gfx.Attrib, size int) {
	c.glctx.VertexAttribPointer(gl.Attrib{Value: uint(a)}, size, gl.FLOAT, false, 0, 0)
}

func (c *Context) EnableVertexAttribArray(a gfx.Attrib) {
	c.glctx.EnableVertexAttribArray(gl.Attrib{Value: uint(a)})
}

func (c *Context) Viewport(width, height int) {
	c.glctx.Viewport(0, 0, width, height)
}

func (c *Context) ClearColor(r, g, b, a float32) {
	c.glctx.ClearColor(r, g, b, a)
}

func (c *Context) Clear() {
	c.glctx.Clear(gl.COLOR_BUFFER_BIT)
}

func (c *Context) DrawArrays(mode gfx.DrawMode, first, count int) {
	m := gl.Enum(gl.TRIANGLES)
	if mode == gfx.TriangleStrip {
		m = gl.TRIANGLE_STRIP
	}
	c.glctx.DrawArrays(m, first, count)
}
