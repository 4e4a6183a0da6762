//go:build js && wasm

// Package webgl implements gfx.Context over a browser WebGL 1 rendering context.
package webgl

import (
	"syscall/js"

	"github.com/kjkrol/goquad/pkg/gfx"
	"github.com/pkg/errors"
)

var _ gfx.Context = (*Context)(nil)

// Context maps gfx handles onto WebGL objects, which are JS values rather
// than integers.
type Context struct {
	gl      js.Value
	consts  glConsts
	objects map[uint32]js.Value
	next    uint32
}

type glConsts struct {
	arrayBuffer    int
	staticDraw     int
	floatType      int
	triangles      int
	triangleStrip  int
	colorBufferBit int
	compileStatus  int
	linkStatus     int
	vertexShader   int
	fragmentShader int
}

// New wraps gl, the value returned by canvas.getContext("webgl"). A null or
// undefined gl is accepted; Supported then reports the surface unusable.
func New(gl js.Value) *Context {
	c := &Context{gl: gl, objects: make(map[uint32]js.Value)}
	if c.usable() {
		c.initConsts()
	}
	return c
}

func (c *Context) usable() bool {
	return !c.gl.IsUndefined() && !c.gl.IsNull()
}

func (c *Context) initConsts() {
	c.consts = glConsts{
		arrayBuffer:    c.gl.Get("ARRAY_BUFFER").Int(),
		staticDraw:     c.gl.Get("STATIC_DRAW").Int(),
		floatType:      c.gl.Get("FLOAT").Int(),
		triangles:      c.gl.Get("TRIANGLES").Int(),
		triangleStrip:  c.gl.Get("TRIANGLE_STRIP").Int(),
		colorBufferBit: c.gl.Get("COLOR_BUFFER_BIT").Int(),
		compileStatus:  c.gl.Get("COMPILE_STATUS").Int(),
		linkStatus:     c.gl.Get("LINK_STATUS").Int(),
		vertexShader:   c.gl.Get("VERTEX_SHADER").Int(),
		fragmentShader: c.gl.Get("FRAGMENT_SHADER").Int(),
	}
}

func (c *Context) Supported() error {
	if !c.usable() {
		return errors.New("Unable to initialize WebGL. Your browser may not support it.")
	}
	return nil
}

func (c *Context) Dialect() gfx.Dialect {
	return gfx.GLSLES100
}

func (c *Context) CreateShader(stage gfx.ShaderStage) gfx.Shader {
	kind := c.consts.vertexShader
	if stage == gfx.FragmentStage {
		kind = c.consts.fragmentShader
	}
	return gfx.Shader(c.register(c.gl.Call("createShader", kind)))
}

func (c *Context) ShaderSource(s gfx.Shader, src string) {
	c.gl.Call("shaderSource", c.lookup(uint32(s)), src)
}

func (c *Context) CompileShader(s gfx.Shader) {
	c.gl.Call("compileShader", c.lookup(uint32(s)))
}

func (c *Context) ShaderCompiled(s gfx.Shader) bool {
	return c.gl.Call("getShaderParameter", c.lookup(uint32(s)), c.consts.compileStatus).Truthy()
}

func (c *Context) ShaderInfoLog(s gfx.Shader) string {
	return jsString(c.gl.Call("getShaderInfoLog", c.lookup(uint32(s))))
}

func (c *Context) DeleteShader(s gfx.Shader) {
	c.gl.Call("deleteShader", c.release(uint32(s)))
}

func (c *Context) CreateProgram() gfx.Program {
	return gfx.Program(c.register(c.gl.Call("createProgram")))
}

func (c *Context) AttachShader(p gfx.Program, s gfx.Shader) {
	c.gl.Call("attachShader", c.lookup(uint32(p)), c.lookup(uint32(s)))
}

func (c *Context) BindAttribLocation(p gfx.Program, a gfx.Attrib, name string) {
	c.gl.Call("bindAttribLocation", c.lookup(uint32(p)), int(a), name)
}

func (c *Context) LinkProgram(p gfx.Program) {
	c.gl.Call("linkProgram", c.lookup(uint32(p)))
}

func (c *Context) ProgramLinked(p gfx.Program) bool {
	return c.gl.Call("getProgramParameter", c.lookup(uint32(p)), c.consts.linkStatus).Truthy()
}

func (c *Context) ProgramInfoLog(p gfx.Program) string {
	return jsString(c.gl.Call("getProgramInfoLog", c.lookup(uint32(p))))
}

func (c *Context) GetAttribLocation(p gfx.Program, name string) gfx.Attrib {
	return gfx.Attrib(c.gl.Call("getAttribLocation", c.lookup(uint32(p)), name).Int())
}

func (c *Context) UseProgram(p gfx.Program) {
	c.gl.Call("useProgram", c.lookup(uint32(p)))
}

func (c *Context) DeleteProgram(p gfx.Program) {
	c.gl.Call("deleteProgram", c.release(uint32(p)))
}

func (c *Context) CreateBuffer() gfx.Buffer {
	return gfx.Buffer(c.register(c.gl.Call("createBuffer")))
}

func (c *Context) BindBuffer(b gfx.Buffer) {
	c.gl.Call("bindBuffer", c.consts.arrayBuffer, c.lookup(uint32(b)))
}

func (c *Context) BufferData(data []byte) {
	arr := js.Global().Get("Uint8Array").New(len(data))
	js.CopyBytesToJS(arr, data)
	c.gl.Call("bufferData", c.consts.arrayBuffer, arr, c.consts.staticDraw)
}

func (c *Context) DeleteBuffer(b gfx.Buffer) {
	c.gl.Call("deleteBuffer", c.release(uint32(b)))
}

func (c *Context) VertexAttribPointer(a gfx.Attrib, size int) {
	c.gl.Call("vertexAttribPointer", int(a), size, c.consts.floatType, false, 0, 0)
}

func (c *Context) EnableVertexAttribArray(a gfx.Attrib) {
	c.gl.Call("enableVertexAttribArray", int(a))
}

func (c *Context) Viewport(width, height int) {
	c.gl.Call("viewport", 0, 0, width, height)
}

func (c *Context) ClearColor(r, g, b, a float32) {
	c.gl.Call("clearColor", r, g, b, a)
}

func (c *Context) Clear() {
	c.gl.Call("clear", c.consts.colorBufferBit)
}

func (c *Context) DrawArrays(mode gfx.DrawMode, first, count int) {
	m := c.consts.triangles
	if mode == gfx.TriangleStrip {
		m = c.consts.triangleStrip
	}
	c.gl.Call("drawArrays", m, first, count)
}

// register stores a freshly created WebGL object and returns its handle.
// createX returns null when the context is lost; that maps to handle 0.
func (c *Context) register(v js.Value) uint32 {
	if v.IsNull() || v.IsUndefined() {
		return 0
	}
	c.next++
	c.objects[c.next] = v
	return c.next
}

func (c *Context) lookup(h uint32) js.Value {
	if v, ok := c.objects[h]; ok {
		return v
	}
	return js.Null()
}

func (c *Context) release(h uint32) js.Value {
	v := c.lookup(h)
	delete(c.objects, h)
	return v
}

func jsString(v js.Value) string {
	if v.IsNull() || v.IsUndefined() {
		return ""
	}
	return v.String()
}
