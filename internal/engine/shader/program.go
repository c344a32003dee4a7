package shader

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/midgard-ocean/internal/logger"
	"github.com/Faultbox/midgard-ocean/pkg/math"
)

// Program is a linked GL program with named uniform writes.
// Uniform locations are looked up once and cached; inactive uniforms
// (location -1) are skipped silently by GL and logged once at debug level.
type Program struct {
	id        uint32
	locations map[string]int32
}

// NewProgram compiles and links the given stages.
func NewProgram(stages ...Stage) (*Program, error) {
	id, err := CompileStages(stages...)
	if err != nil {
		return nil, err
	}
	logger.Debug("shader program linked",
		zap.Uint32("program", id),
		zap.Int("stages", len(stages)),
	)
	return &Program{
		id:        id,
		locations: make(map[string]int32),
	}, nil
}

func (p *Program) location(name string) int32 {
	if loc, ok := p.locations[name]; ok {
		return loc
	}
	loc := GetUniform(p.id, name)
	if loc < 0 {
		logger.Debug("inactive uniform", zap.String("name", name), zap.Uint32("program", p.id))
	}
	p.locations[name] = loc
	return loc
}

// Use makes this the current program.
func (p *Program) Use() {
	gl.UseProgram(p.id)
}

// SetInt writes an int (or sampler) uniform.
func (p *Program) SetInt(name string, v int32) {
	gl.Uniform1i(p.location(name), v)
}

// SetFloat writes a float uniform.
func (p *Program) SetFloat(name string, v float32) {
	gl.Uniform1f(p.location(name), v)
}

// SetVec3 writes a vec3 uniform.
func (p *Program) SetVec3(name string, v math.Vec3) {
	gl.Uniform3f(p.location(name), v.X, v.Y, v.Z)
}

// SetMat4 writes a mat4 uniform.
func (p *Program) SetMat4(name string, m math.Mat4) {
	gl.UniformMatrix4fv(p.location(name), 1, false, m.Ptr())
}

// BindTexture binds a 2D texture to texture unit `unit`.
func (p *Program) BindTexture(unit int, handle uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
	gl.BindTexture(gl.TEXTURE_2D, handle)
}

// BindVertexArray binds vao; 0 unbinds.
func (p *Program) BindVertexArray(vao uint32) {
	gl.BindVertexArray(vao)
}

// DrawPatchesInstanced draws instances of a patch primitive with no vertex
// buffers attached.
func (p *Program) DrawPatchesInstanced(verticesPerPatch, instances int32) {
	gl.PatchParameteri(gl.PATCH_VERTICES, verticesPerPatch)
	gl.DrawArraysInstanced(gl.PATCHES, 0, verticesPerPatch, instances)
}

// Delete releases the GL program.
func (p *Program) Delete() {
	if p.id != 0 {
		gl.DeleteProgram(p.id)
		p.id = 0
	}
}
