// Package gfxtest provides a gfx.Context that records every call and
// rasterizes draws into an in-memory framebuffer, for tests that have no GPU.
package gfxtest

import (
	"encoding/binary"
	"fmt"
	"image"
	"image/color"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/kjkrol/goquad/internal/platform"
	"github.com/kjkrol/goquad/pkg/gfx"
	"github.com/pkg/errors"
)

// CompileFunc decides whether src compiles, returning the info log otherwise.
type CompileFunc func(stage gfx.ShaderStage, src string) (ok bool, log string)

// LinkFunc decides whether a vertex/fragment pair links.
type LinkFunc func(vertexSrc, fragmentSrc string) (ok bool, log string)

type shaderObject struct {
	stage    gfx.ShaderStage
	src      string
	compiled bool
	log      string
	deleted  bool
}

type programObject struct {
	shaders  []gfx.Shader
	attribs  map[string]gfx.Attrib
	linked   bool
	log      string
	deleted  bool
	fragment string
}

// Context is a software gfx.Context. The zero value is not usable; call New.
type Context struct {
	// Unsupported makes Supported fail with this reason when non-empty.
	Unsupported string
	GLSL        gfx.Dialect
	Compile     CompileFunc
	Link        LinkFunc

	// Calls lists method names in call order.
	Calls []string
	// Uploads holds a copy of every BufferData payload.
	Uploads [][]byte
	// Errors collects API misuse a real driver would flag.
	Errors []string
	// Surface is the framebuffer draws land in.
	Surface platform.Surface
	// LastClear is a copy of the framebuffer taken right after the last Clear.
	LastClear *image.RGBA

	viewport   image.Point
	clearColor color.RGBA
	next       uint32
	shaders    map[gfx.Shader]*shaderObject
	programs   map[gfx.Program]*programObject
	buffers    map[gfx.Buffer][]byte
	current    gfx.Program
	bound      gfx.Buffer
	attribSize map[gfx.Attrib]int
	enabled    map[gfx.Attrib]bool
}

// New returns a Context with a width x height framebuffer speaking GLSL ES 1.00.
func New(width, height int) *Context {
	return &Context{
		GLSL:       gfx.GLSLES100,
		Surface:    platform.NewRGBASurface(width, height),
		viewport:   image.Pt(width, height),
		shaders:    make(map[gfx.Shader]*shaderObject),
		programs:   make(map[gfx.Program]*programObject),
		buffers:    make(map[gfx.Buffer][]byte),
		attribSize: make(map[gfx.Attrib]int),
		enabled:    make(map[gfx.Attrib]bool),
	}
}

// FailNextCompile makes the next compile of stage fail with log.
func (c *Context) FailNextCompile(stage gfx.ShaderStage, log string) {
	prev := c.Compile
	armed := true
	c.Compile = func(s gfx.ShaderStage, src string) (bool, string) {
		if armed && s == stage {
			armed = false
			return false, log
		}
		if prev != nil {
			return prev(s, src)
		}
		return defaultCompile(s, src)
	}
}

// FailNextLink makes the next link fail with log.
func (c *Context) FailNextLink(log string) {
	prev := c.Link
	armed := true
	c.Link = func(vs, fs string) (bool, string) {
		if armed {
			armed = false
			return false, log
		}
		if prev != nil {
			return prev(vs, fs)
		}
		return true, ""
	}
}

func (c *Context) Supported() error {
	c.record("Supported")
	if c.Unsupported != "" {
		return errors.New(c.Unsupported)
	}
	return nil
}

func (c *Context) Dialect() gfx.Dialect {
	return c.GLSL
}

func (c *Context) CreateShader(stage gfx.ShaderStage) gfx.Shader {
	c.record("CreateShader")
	c.next++
	s := gfx.Shader(c.next)
	c.shaders[s] = &shaderObject{stage: stage}
	return s
}

func (c *Context) ShaderSource(s gfx.Shader, src string) {
	c.record("ShaderSource")
	if obj := c.shader("ShaderSource", s); obj != nil {
		obj.src = src
	}
}

func (c *Context) CompileShader(s gfx.Shader) {
	c.record("CompileShader")
	obj := c.shader("CompileShader", s)
	if obj == nil {
		return
	}
	compile := c.Compile
	if compile == nil {
		compile = defaultCompile
	}
	obj.compiled, obj.log = compile(obj.stage, obj.src)
}

func (c *Context) ShaderCompiled(s gfx.Shader) bool {
	obj := c.shader("ShaderCompiled", s)
	return obj != nil && obj.compiled
}

func (c *Context) ShaderInfoLog(s gfx.Shader) string {
	if obj := c.shader("ShaderInfoLog", s); obj != nil {
		return obj.log
	}
	return ""
}

func (c *Context) DeleteShader(s gfx.Shader) {
	c.record("DeleteShader")
	if obj := c.shader("DeleteShader", s); obj != nil {
		obj.deleted = true
	}
}

func (c *Context) CreateProgram() gfx.Program {
	c.record("CreateProgram")
	c.next++
	p := gfx.Program(c.next)
	c.programs[p] = &programObject{attribs: make(map[string]gfx.Attrib)}
	return p
}

func (c *Context) AttachShader(p gfx.Program, s gfx.Shader) {
	c.record("AttachShader")
	obj := c.program("AttachShader", p)
	if obj == nil || c.shader("AttachShader", s) == nil {
		return
	}
	obj.shaders = append(obj.shaders, s)
}

func (c *Context) BindAttribLocation(p gfx.Program, a gfx.Attrib, name string) {
	c.record("BindAttribLocation")
	if obj := c.program("BindAttribLocation", p); obj != nil {
		obj.attribs[name] = a
	}
}

func (c *Context) LinkProgram(p gfx.Program) {
	c.record("LinkProgram")
	obj := c.program("LinkProgram", p)
	if obj == nil {
		return
	}
	var vertex, fragment *shaderObject
	for _, s := range obj.shaders {
		sh := c.shaders[s]
		if sh == nil || !sh.compiled {
			obj.linked, obj.log = false, fmt.Sprintf("shader %d is not compiled", s)
			return
		}
		switch sh.stage {
		case gfx.VertexStage:
			vertex = sh
		case gfx.FragmentStage:
			fragment = sh
		}
	}
	if vertex == nil || fragment == nil {
		obj.linked, obj.log = false, "missing vertex or fragment stage"
		return
	}
	link := c.Link
	if link == nil {
		link = func(string, string) (bool, string) { return true, "" }
	}
	obj.linked, obj.log = link(vertex.src, fragment.src)
	if obj.linked {
		obj.fragment = fragment.src
		if _, ok := obj.attribs["aVertexPosition"]; !ok && strings.Contains(vertex.src, "aVertexPosition") {
			obj.attribs["aVertexPosition"] = 0
		}
	}
}

func (c *Context) ProgramLinked(p gfx.Program) bool {
	obj := c.program("ProgramLinked", p)
	return obj != nil && obj.linked
}

func (c *Context) ProgramInfoLog(p gfx.Program) string {
	if obj := c.program("ProgramInfoLog", p); obj != nil {
		return obj.log
	}
	return ""
}

func (c *Context) GetAttribLocation(p gfx.Program, name string) gfx.Attrib {
	c.record("GetAttribLocation")
	obj := c.program("GetAttribLocation", p)
	if obj == nil || !obj.linked {
		return -1
	}
	if a, ok := obj.attribs[name]; ok {
		return a
	}
	return -1
}

func (c *Context) UseProgram(p gfx.Program) {
	c.record("UseProgram")
	if p == 0 {
		c.current = 0
		return
	}
	obj := c.program("UseProgram", p)
	if obj == nil {
		return
	}
	if !obj.linked {
		c.fail("UseProgram: program %d is not linked", p)
		return
	}
	c.current = p
}

func (c *Context) DeleteProgram(p gfx.Program) {
	c.record("DeleteProgram")
	if obj := c.program("DeleteProgram", p); obj != nil {
		obj.deleted = true
	}
}

func (c *Context) CreateBuffer() gfx.Buffer {
	c.record("CreateBuffer")
	c.next++
	b := gfx.Buffer(c.next)
	c.buffers[b] = nil
	return b
}

func (c *Context) BindBuffer(b gfx.Buffer) {
	c.record("BindBuffer")
	if _, ok := c.buffers[b]; !ok {
		c.fail("BindBuffer: unknown buffer %d", b)
		return
	}
	c.bound = b
}

func (c *Context) BufferData(data []byte) {
	c.record("BufferData")
	if c.bound == 0 {
		c.fail("BufferData: no buffer bound")
		return
	}
	cp := append([]byte(nil), data...)
	c.buffers[c.bound] = cp
	c.Uploads = append(c.Uploads, cp)
}

func (c *Context) DeleteBuffer(b gfx.Buffer) {
	c.record("DeleteBuffer")
	if _, ok := c.buffers[b]; !ok {
		c.fail("DeleteBuffer: unknown buffer %d", b)
		return
	}
	delete(c.buffers, b)
	if c.bound == b {
		c.bound = 0
	}
}

func (c *Context) VertexAttribPointer(a gfx.Attrib, size int) {
	c.record("VertexAttribPointer")
	c.attribSize[a] = size
}

func (c *Context) EnableVertexAttribArray(a gfx.Attrib) {
	c.record("EnableVertexAttribArray")
	c.enabled[a] = true
}

func (c *Context) Viewport(width, height int) {
	c.record("Viewport")
	c.viewport = image.Pt(width, height)
}

func (c *Context) ClearColor(r, g, b, a float32) {
	c.record("ClearColor")
	c.clearColor = color.RGBA{R: toByte(r), G: toByte(g), B: toByte(b), A: toByte(a)}
}

func (c *Context) Clear() {
	c.record("Clear")
	c.Surface.Fill(c.clearColor)
	src := c.Surface.RGBA()
	snap := image.NewRGBA(src.Rect)
	copy(snap.Pix, src.Pix)
	c.LastClear = snap
}

func (c *Context) DrawArrays(mode gfx.DrawMode, first, count int) {
	c.record("DrawArrays")
	prog := c.programs[c.current]
	if prog == nil || prog.deleted {
		c.fail("DrawArrays: no usable program")
		return
	}
	fill, err := fragmentColor(prog.fragment)
	if err != nil {
		c.fail("DrawArrays: %v", err)
		return
	}
	attrib, ok := prog.attribs["aVertexPosition"]
	if !ok || !c.enabled[attrib] || c.attribSize[attrib] != 2 {
		c.fail("DrawArrays: position attribute not set up")
		return
	}
	verts := decode(c.buffers[c.bound])
	if first < 0 || first+count > len(verts) {
		c.fail("DrawArrays: range %d+%d exceeds %d vertices", first, count, len(verts))
		return
	}
	verts = verts[first : first+count]
	switch mode {
	case gfx.TriangleStrip:
		for i := 0; i+2 < len(verts); i++ {
			c.fillTriangle(verts[i], verts[i+1], verts[i+2], fill)
		}
	case gfx.Triangles:
		for i := 0; i+2 < len(verts); i += 3 {
			c.fillTriangle(verts[i], verts[i+1], verts[i+2], fill)
		}
	}
}

// Sample returns the framebuffer pixel covering the NDC point (x, y).
func (c *Context) Sample(x, y float32) color.RGBA {
	img := c.Surface.RGBA()
	px, py := platform.PixelAt(img.Rect, x, y)
	return img.RGBAAt(px, py)
}

// Count returns how many times method was called.
func (c *Context) Count(method string) int {
	n := 0
	for _, call := range c.Calls {
		if call == method {
			n++
		}
	}
	return n
}

// CallsSince returns the calls recorded after the first mark calls.
func (c *Context) CallsSince(mark int) []string {
	return append([]string(nil), c.Calls[mark:]...)
}

func (c *Context) CurrentProgram() gfx.Program {
	return c.current
}

func (c *Context) LiveShaders() int {
	n := 0
	for _, s := range c.shaders {
		if !s.deleted {
			n++
		}
	}
	return n
}

func (c *Context) LivePrograms() int {
	n := 0
	for _, p := range c.programs {
		if !p.deleted {
			n++
		}
	}
	return n
}

func (c *Context) LiveBuffers() int {
	return len(c.buffers)
}

func (c *Context) ViewportSize() image.Point {
	return c.viewport
}

func (c *Context) record(method string) {
	c.Calls = append(c.Calls, method)
}

func (c *Context) fail(format string, args ...any) {
	c.Errors = append(c.Errors, fmt.Sprintf(format, args...))
}

func (c *Context) shader(method string, s gfx.Shader) *shaderObject {
	obj := c.shaders[s]
	if obj == nil {
		c.fail("%s: unknown shader %d", method, s)
		return nil
	}
	if obj.deleted && method != "ShaderInfoLog" {
		c.fail("%s: shader %d was deleted", method, s)
		return nil
	}
	return obj
}

func (c *Context) program(method string, p gfx.Program) *programObject {
	obj := c.programs[p]
	if obj == nil {
		c.fail("%s: unknown program %d", method, p)
		return nil
	}
	if obj.deleted && method != "ProgramInfoLog" {
		c.fail("%s: program %d was deleted", method, p)
		return nil
	}
	return obj
}

func (c *Context) fillTriangle(a, b, d gfx.Vertex, fill color.RGBA) {
	img := c.Surface.RGBA()
	bounds := img.Rect
	for py := bounds.Min.Y; py < bounds.Max.Y; py++ {
		for px := bounds.Min.X; px < bounds.Max.X; px++ {
			x, y := platform.PixelCenter(bounds, px, py)
			if inside(a, b, d, x, y) {
				img.SetRGBA(px, py, fill)
			}
		}
	}
}

func defaultCompile(stage gfx.ShaderStage, src string) (bool, string) {
	if !strings.Contains(src, "void main()") {
		return false, fmt.Sprintf("ERROR: 0:1: '%s' : no main function", stage)
	}
	return true, ""
}

var vec4Pattern = regexp.MustCompile(`=\s*vec4\(([^)]*)\)`)

func fragmentColor(src string) (color.RGBA, error) {
	m := vec4Pattern.FindStringSubmatch(src)
	if m == nil {
		return color.RGBA{}, errors.New("fragment stage has no constant output")
	}
	parts := strings.Split(m[1], ",")
	if len(parts) != 4 {
		return color.RGBA{}, errors.Errorf("vec4 with %d components", len(parts))
	}
	var v [4]float32
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
		if err != nil {
			return color.RGBA{}, errors.Wrapf(err, "component %d", i)
		}
		v[i] = float32(f)
	}
	return color.RGBA{R: toByte(v[0]), G: toByte(v[1]), B: toByte(v[2]), A: toByte(v[3])}, nil
}

func decode(data []byte) []gfx.Vertex {
	verts := make([]gfx.Vertex, 0, len(data)/8)
	for i := 0; i+8 <= len(data); i += 8 {
		verts = append(verts, gfx.Vertex{
			X: math.Float32frombits(binary.LittleEndian.Uint32(data[i:])),
			Y: math.Float32frombits(binary.LittleEndian.Uint32(data[i+4:])),
		})
	}
	return verts
}

func inside(a, b, c gfx.Vertex, x, y float32) bool {
	e0 := edge(a, b, x, y)
	e1 := edge(b, c, x, y)
	e2 := edge(c, a, x, y)
	return (e0 >= 0 && e1 >= 0 && e2 >= 0) || (e0 <= 0 && e1 <= 0 && e2 <= 0)
}

func edge(a, b gfx.Vertex, x, y float32) float32 {
	return (b.X-a.X)*(y-a.Y) - (b.Y-a.Y)*(x-a.X)
}

func toByte(v float32) uint8 {
	v = min(max(v, 0), 1)
	return uint8(v*255 + 0.5)
}
