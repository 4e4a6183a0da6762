package gfx

import "log/slog"

type ProgramState uint8

const (
	Uncompiled ProgramState = iota
	Compiling
	Compiled
	CompileFailed
	Linking
	Linked
	LinkFailed
)

var programStateNames = [...]string{
	Uncompiled:    "uncompiled",
	Compiling:     "compiling",
	Compiled:      "compiled",
	CompileFailed: "compile-failed",
	Linking:       "linking",
	Linked:        "linked",
	LinkFailed:    "link-failed",
}

func (s ProgramState) String() string {
	if int(s) < len(programStateNames) {
		return programStateNames[s]
	}
	return "unknown"
}

// program is one linked vertex+fragment pair drawing a constant color.
type program struct {
	handle     Program
	color      Color
	fragSource string
	state      ProgramState
}

func (p *program) transition(logger *slog.Logger, to ProgramState) {
	logger.Debug("program state", "color", p.color, "from", p.state, "to", to)
	p.state = to
}

// compileShader creates, uploads and compiles one stage. A failed shader is
// deleted before the error is returned.
func compileShader(ctx Context, stage ShaderStage, src string) (Shader, error) {
	shader := ctx.CreateShader(stage)
	if shader == 0 {
		return 0, &ShaderCompileError{Stage: stage, Log: "could not create shader object"}
	}
	ctx.ShaderSource(shader, src)
	ctx.CompileShader(shader)
	if !ctx.ShaderCompiled(shader) {
		log := ctx.ShaderInfoLog(shader)
		ctx.DeleteShader(shader)
		return 0, &ShaderCompileError{Stage: stage, Log: log}
	}
	return shader, nil
}

// linkProgram attaches both stages, pins aVertexPosition to positionAttrib
// and links. A failed program is deleted before the error is returned.
func linkProgram(ctx Context, vertex, fragment Shader) (Program, error) {
	p := ctx.CreateProgram()
	if p == 0 {
		return 0, &ShaderLinkError{Log: "could not create program object"}
	}
	ctx.AttachShader(p, vertex)
	ctx.AttachShader(p, fragment)
	ctx.BindAttribLocation(p, positionAttrib, positionName)
	ctx.LinkProgram(p)
	if !ctx.ProgramLinked(p) {
		log := ctx.ProgramInfoLog(p)
		ctx.DeleteProgram(p)
		return 0, &ShaderLinkError{Log: log}
	}
	return p, nil
}

// buildProgram compiles a fragment stage for c and links it with the shared
// vertex stage. The fragment shader is released in every outcome: a linked
// program keeps its own reference.
func (r *Renderer) buildProgram(c Color) (*program, error) {
	p := &program{color: c, fragSource: FragmentSource(r.dialect, c)}
	p.transition(r.logger, Compiling)
	fragment, err := compileShader(r.ctx, FragmentStage, p.fragSource)
	if err != nil {
		p.transition(r.logger, CompileFailed)
		return nil, err
	}
	p.transition(r.logger, Compiled)

	p.transition(r.logger, Linking)
	handle, err := linkProgram(r.ctx, r.vertexShader, fragment)
	r.ctx.DeleteShader(fragment)
	if err != nil {
		p.transition(r.logger, LinkFailed)
		return nil, err
	}
	p.handle = handle
	p.transition(r.logger, Linked)
	return p, nil
}
