package gfx

// Handles to GPU objects. The zero value means "no object".
type (
	Shader  uint32
	Program uint32
	Buffer  uint32
	Attrib  int32
)

type ShaderStage uint8

const (
	VertexStage ShaderStage = iota
	FragmentStage
)

func (s ShaderStage) String() string {
	switch s {
	case VertexStage:
		return "vertex"
	case FragmentStage:
		return "fragment"
	default:
		return "unknown"
	}
}

type DrawMode uint8

const (
	Triangles DrawMode = iota
	TriangleStrip
)

// Context is the drawing surface a Renderer borrows from its host. It covers
// the minimal GL feature set the quad needs: shader and program objects, one
// static array buffer feeding one float attribute, clear and draw arrays.
//
// Implementations are not safe for concurrent use; every call must come from
// the goroutine that owns the underlying GL context.
type Context interface {
	// Supported returns a non-nil error naming the missing feature when the
	// surface cannot run the renderer.
	Supported() error
	Dialect() Dialect

	CreateShader(stage ShaderStage) Shader
	ShaderSource(s Shader, src string)
	CompileShader(s Shader)
	ShaderCompiled(s Shader) bool
	ShaderInfoLog(s Shader) string
	DeleteShader(s Shader)

	CreateProgram() Program
	AttachShader(p Program, s Shader)
	BindAttribLocation(p Program, a Attrib, name string)
	LinkProgram(p Program)
	ProgramLinked(p Program) bool
	ProgramInfoLog(p Program) string
	GetAttribLocation(p Program, name string) Attrib
	UseProgram(p Program)
	DeleteProgram(p Program)

	CreateBuffer() Buffer
	BindBuffer(b Buffer)
	// BufferData uploads data to the bound array buffer for static drawing.
	BufferData(data []byte)
	DeleteBuffer(b Buffer)
	// VertexAttribPointer describes a, reading size tightly packed,
	// non-normalized floats per vertex from the bound buffer.
	VertexAttribPointer(a Attrib, size int)
	EnableVertexAttribArray(a Attrib)

	Viewport(width, height int)
	ClearColor(r, g, b, a float32)
	Clear()
	DrawArrays(mode DrawMode, first, count int)
}
