// Package shader provides OpenGL shader compilation utilities.
package shader

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Stage is one shader stage's source and type.
type Stage struct {
	Type   uint32 // gl.VERTEX_SHADER, gl.TESS_CONTROL_SHADER, ...
	Source string
}

// Vertex returns a vertex stage.
func Vertex(src string) Stage { return Stage{Type: gl.VERTEX_SHADER, Source: src} }

// TessControl returns a tessellation control stage.
func TessControl(src string) Stage { return Stage{Type: gl.TESS_CONTROL_SHADER, Source: src} }

// TessEval returns a tessellation evaluation stage.
func TessEval(src string) Stage { return Stage{Type: gl.TESS_EVALUATION_SHADER, Source: src} }

// Fragment returns a fragment stage.
func Fragment(src string) Stage { return Stage{Type: gl.FRAGMENT_SHADER, Source: src} }

// CompileStages compiles every stage and links them into one program.
func CompileStages(stages ...Stage) (uint32, error) {
	if len(stages) == 0 {
		return 0, fmt.Errorf("link: no shader stages")
	}

	shaders := make([]uint32, 0, len(stages))
	defer func() {
		for _, s := range shaders {
			gl.DeleteShader(s)
		}
	}()

	for _, st := range stages {
		s, err := compileShader(st.Source, st.Type, StageName(st.Type))
		if err != nil {
			return 0, err
		}
		shaders = append(shaders, s)
	}

	program := gl.CreateProgram()
	for _, s := range shaders {
		gl.AttachShader(program, s)
	}
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
		log := make([]byte, logLen+1)
		gl.GetProgramInfoLog(program, logLen, nil, &log[0])
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link: %s", string(log))
	}

	for _, s := range shaders {
		gl.DetachShader(program, s)
	}
	return program, nil
}

// StageName returns a readable name for a shader type constant.
func StageName(shaderType uint32) string {
	switch shaderType {
	case gl.VERTEX_SHADER:
		return "vertex"
	case gl.TESS_CONTROL_SHADER:
		return "tess control"
	case gl.TESS_EVALUATION_SHADER:
		return "tess evaluation"
	case gl.GEOMETRY_SHADER:
		return "geometry"
	case gl.FRAGMENT_SHADER:
		return "fragment"
	}
	return fmt.Sprintf("shader 0x%x", shaderType)
}

// compileShader compiles a single shader of the given type.
func compileShader(source string, shaderType uint32, name string) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		log := make([]byte, logLen+1)
		gl.GetShaderInfoLog(shader, logLen, nil, &log[0])
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("%s shader: %s", name, string(log))
	}

	return shader, nil
}

// GetUniform returns the uniform location for the given name.
// Returns -1 if the uniform is not found or inactive.
func GetUniform(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}
