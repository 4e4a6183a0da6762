package gfx

import "strings"

// Dialect describes how one GLSL flavor spells the quad's two shaders.
type Dialect struct {
	Name string
	// Version is the first line of both stages, empty for GLSL ES 1.00.
	Version string
	// FragmentPrecision is emitted at the top of the fragment stage.
	FragmentPrecision string
	VertexInput       string
	FragmentOutput    string
	// FragmentOutputDecl declares FragmentOutput when it is not built in.
	FragmentOutputDecl string
}

var (
	// GLSLES100 serves WebGL 1 and OpenGL ES 2 contexts.
	GLSLES100 = Dialect{
		Name:              "glsl-es-100",
		FragmentPrecision: "precision mediump float;",
		VertexInput:       "attribute",
		FragmentOutput:    "gl_FragColor",
	}
	// GLSL330Core serves desktop OpenGL 3.3 core profile contexts.
	GLSL330Core = Dialect{
		Name:               "glsl-330-core",
		Version:            "#version 330 core",
		VertexInput:        "in",
		FragmentOutput:     "fragColor",
		FragmentOutputDecl: "out vec4 fragColor;",
	}
)

// VertexSource passes aVertexPosition through unchanged.
func VertexSource(d Dialect) string {
	var sb strings.Builder
	writeLine(&sb, d.Version)
	writeLine(&sb, d.VertexInput+" vec4 "+positionName+";")
	sb.WriteString("void main() {\n")
	sb.WriteString("\tgl_Position = " + positionName + ";\n")
	sb.WriteString("}\n")
	return sb.String()
}

// FragmentSource emits c as a constant, fully opaque output.
func FragmentSource(d Dialect, c Color) string {
	var sb strings.Builder
	writeLine(&sb, d.Version)
	writeLine(&sb, d.FragmentPrecision)
	writeLine(&sb, d.FragmentOutputDecl)
	sb.WriteString("void main() {\n")
	sb.WriteString("\t" + d.FragmentOutput + " = vec4(" +
		glslFloat(c.R) + ", " + glslFloat(c.G) + ", " + glslFloat(c.B) + ", 1.0);\n")
	sb.WriteString("}\n")
	return sb.String()
}

func writeLine(sb *strings.Builder, line string) {
	if line == "" {
		return
	}
	sb.WriteString(line)
	sb.WriteString("\n")
}
