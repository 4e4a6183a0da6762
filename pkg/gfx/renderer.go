package gfx

import (
	"log/slog"

	"github.com/pkg/errors"
)

// Renderer draws QuadVertices in one flat color on a borrowed Context.
// It starts red and recompiles its fragment stage whenever the color changes.
//
// A Renderer is not safe for concurrent use. All calls must come from the
// goroutine that owns the Context.
type Renderer struct {
	ctx     Context
	dialect Dialect
	logger  *slog.Logger

	vertexShader Shader
	buffer       Buffer
	attrib       Attrib

	active *program
	cache  *programCache
	closed bool
}

// NewRenderer initializes the surface and draws the initial red quad on black.
// It fails with ErrUnsupportedSurface when ctx cannot run the renderer, or with
// a *ShaderCompileError / *ShaderLinkError when the initial program cannot be
// built. Every object created before a failure is released.
func NewRenderer(ctx Context, conf RendererConfig) (*Renderer, error) {
	if ctx == nil {
		return nil, unsupported("no drawing context")
	}
	if err := ctx.Supported(); err != nil {
		return nil, errors.Wrap(ErrUnsupportedSurface, err.Error())
	}
	r := &Renderer{
		ctx:     ctx,
		dialect: ctx.Dialect(),
		logger:  conf.logger(),
		cache:   newProgramCache(conf.cacheCapacity()),
	}
	if err := r.init(); err != nil {
		r.release()
		return nil, err
	}
	r.logger.Info("renderer initialized", "dialect", r.dialect.Name, "color", r.active.color, "cache", r.cache.capacity)
	return r, nil
}

func (r *Renderer) init() error {
	vertex, err := compileShader(r.ctx, VertexStage, VertexSource(r.dialect))
	if err != nil {
		return err
	}
	r.vertexShader = vertex

	p, err := r.buildProgram(Red)
	if err != nil {
		return err
	}
	r.attrib = r.ctx.GetAttribLocation(p.handle, positionName)
	if r.attrib < 0 {
		r.ctx.DeleteProgram(p.handle)
		return &ShaderLinkError{Log: positionName + " is not an active attribute"}
	}

	r.buffer = r.ctx.CreateBuffer()
	if r.buffer == 0 {
		r.ctx.DeleteProgram(p.handle)
		return unsupported("could not create vertex buffer")
	}
	r.ctx.BindBuffer(r.buffer)
	r.ctx.BufferData(QuadVertices.Bytes())
	r.ctx.VertexAttribPointer(r.attrib, coordsPerVertex)
	r.ctx.EnableVertexAttribArray(r.attrib)

	r.activate(p)
	r.draw()
	return nil
}

// SetColor makes c the quad's color and redraws. When the new program cannot
// be compiled or linked the previous one stays active and nothing is drawn.
func (r *Renderer) SetColor(c Color) error {
	if r.closed {
		return ErrClosed
	}
	if err := c.Validate(); err != nil {
		return err
	}
	if r.active.color != c {
		p := r.cache.get(c)
		if p == nil {
			var err error
			if p, err = r.buildProgram(c); err != nil {
				r.logger.Warn("color change aborted", "color", c, "active", r.active.color, "error", err)
				return err
			}
		}
		r.activate(p)
	}
	r.draw()
	r.logger.Debug("quad drawn", "color", c)
	return nil
}

// Reset paints the quad in the clear color. It is SetColor(Black): the quad
// merges with the background but is still drawn opaque.
func (r *Renderer) Reset() error {
	return r.SetColor(Black)
}

// Redraw repeats the last clear and draw, e.g. after the surface was exposed.
func (r *Renderer) Redraw() {
	if r.closed || r.active == nil {
		return
	}
	r.draw()
}

// Resize maps NDC onto a width x height surface and redraws.
func (r *Renderer) Resize(width, height int) {
	if r.closed || width <= 0 || height <= 0 {
		return
	}
	r.ctx.Viewport(width, height)
	r.Redraw()
}

func (r *Renderer) Color() Color {
	if r.active == nil {
		return Black
	}
	return r.active.color
}

// FragmentSource returns the source of the active fragment stage.
func (r *Renderer) FragmentSource() string {
	if r.active == nil {
		return ""
	}
	return r.active.fragSource
}

func (r *Renderer) ProgramState() ProgramState {
	if r.active == nil {
		return Uncompiled
	}
	return r.active.state
}

func (r *Renderer) CachedPrograms() int {
	return r.cache.len()
}

// Close releases every GPU object the renderer created. It is idempotent.
func (r *Renderer) Close() {
	if r == nil || r.closed {
		return
	}
	r.release()
	r.closed = true
}

func (r *Renderer) activate(p *program) {
	prev := r.active
	r.active = p
	r.ctx.UseProgram(p.handle)
	if r.cache.capacity == 0 {
		if prev != nil && prev != p {
			r.deleteProgram(prev)
		}
		return
	}
	for _, evicted := range r.cache.put(p) {
		r.deleteProgram(evicted)
	}
}

func (r *Renderer) draw() {
	r.ctx.ClearColor(ClearColor.R, ClearColor.G, ClearColor.B, 1)
	r.ctx.Clear()
	r.ctx.DrawArrays(TriangleStrip, 0, vertexCount)
}

func (r *Renderer) deleteProgram(p *program) {
	r.logger.Debug("program released", "color", p.color)
	r.ctx.DeleteProgram(p.handle)
}

func (r *Renderer) release() {
	for _, p := range r.cache.drain() {
		if p != r.active {
			r.deleteProgram(p)
		}
	}
	if r.active != nil {
		r.deleteProgram(r.active)
		r.active = nil
	}
	if r.vertexShader != 0 {
		r.ctx.DeleteShader(r.vertexShader)
		r.vertexShader = 0
	}
	if r.buffer != 0 {
		r.ctx.DeleteBuffer(r.buffer)
		r.buffer = 0
	}
}
