package ocean

import (
	"github.com/Faultbox/midgard-ocean/pkg/math"
)

// Patch grid defaults.
const (
	DefaultTileCount  = 64
	VerticesPerPatch  = 4
	DefaultTessLevel  = 1
	DefaultDepth      = 0.11
	DefaultModelScale = 100.0
)

// TextureProvider exposes the GPU texture handles the ocean samples from.
// HeightFrames and NormalFrames are index-aligned and of equal length.
type TextureProvider interface {
	HeightFrames() []uint32
	NormalFrames() []uint32
	Surface() uint32
	RippleHeight() uint32
	RippleNormal() uint32
}

// ShaderProgram is the slice of the GL pipeline the submitter drives.
type ShaderProgram interface {
	Use()
	SetInt(name string, v int32)
	SetFloat(name string, v float32)
	SetVec3(name string, v math.Vec3)
	SetMat4(name string, m math.Mat4)

	// BindTexture binds a 2D texture to the given unit; handle 0 unbinds.
	BindTexture(unit int, handle uint32)
	// BindVertexArray binds a vertex array; 0 unbinds.
	BindVertexArray(vao uint32)
	DrawPatchesInstanced(verticesPerPatch, instances int32)
}

// Light is a directional light in the Phong model used by the surface shader.
type Light struct {
	Direction math.Vec3
	Ambient   math.Vec3
	Diffuse   math.Vec3
	Specular  math.Vec3
}

// DefaultLight returns the overhead white light the ocean was tuned for.
func DefaultLight() Light {
	return Light{
		Direction: math.Vec3{X: 0, Y: -1, Z: 0},
		Ambient:   math.Vec3{X: 0.15, Y: 0.15, Z: 0.15},
		Diffuse:   math.Vec3{X: 0.75, Y: 0.75, Z: 0.75},
		Specular:  math.Vec3{X: 1, Y: 1, Z: 1},
	}
}

// SubmitterConfig holds per-deployment draw constants.
type SubmitterConfig struct {
	TileCount int // Patches per grid side
	TessLevel int
	Depth     float32 // Height map displacement scale
	Light     Light
}

// DefaultSubmitterConfig returns the reference draw constants.
func DefaultSubmitterConfig() SubmitterConfig {
	return SubmitterConfig{
		TileCount: DefaultTileCount,
		TessLevel: DefaultTessLevel,
		Depth:     DefaultDepth,
		Light:     DefaultLight(),
	}
}

// View carries the per-frame camera uniforms. The caller owns them.
type View struct {
	Model    math.Mat4
	MVP      math.Mat4
	Position math.Vec3
}

// Submitter issues the single instanced patch draw for the ocean.
type Submitter struct {
	cfg      SubmitterConfig
	vao      uint32
	bindings []Binding
}

// NewSubmitter creates a submitter drawing from the given vertex array.
// Non-positive tile counts and tessellation levels fall back to defaults.
func NewSubmitter(cfg SubmitterConfig, vao uint32) *Submitter {
	if cfg.TileCount <= 0 {
		cfg.TileCount = DefaultTileCount
	}
	if cfg.TessLevel <= 0 {
		cfg.TessLevel = DefaultTessLevel
	}
	return &Submitter{
		cfg:      cfg,
		vao:      vao,
		bindings: DefaultBindings(),
	}
}

// Instances returns the number of patches drawn per Submit.
func (s *Submitter) Instances() int32 {
	return int32(s.cfg.TileCount * s.cfg.TileCount)
}

// Submit binds the frame pair for state, pushes the uniforms and draws the
// patch grid. Texture units and the vertex array are unbound on return.
func (s *Submitter) Submit(state Snapshot, provider TextureProvider, prog ShaderProgram, view View) {
	// Resolve everything first so a bad index panics before any unit is bound.
	handles := make([]uint32, len(s.bindings))
	for i, b := range s.bindings {
		handles[i] = b.Source.Resolve(state, provider)
	}

	prog.Use()

	for i, b := range s.bindings {
		prog.SetInt(b.Uniform, int32(b.Slot))
		prog.BindTexture(b.Slot, handles[i])
	}

	prog.SetFloat("interpolateFactor", state.Weight)
	prog.SetFloat("wavesOffset", state.TimeOffset)

	prog.SetMat4("model", view.Model)
	prog.SetMat4("mvp", view.MVP)
	prog.SetVec3("viewPos", view.Position)

	prog.SetVec3("light.direction", s.cfg.Light.Direction)
	prog.SetVec3("light.ambient", s.cfg.Light.Ambient)
	prog.SetVec3("light.diffuse", s.cfg.Light.Diffuse)
	prog.SetVec3("light.specular", s.cfg.Light.Specular)
	prog.SetFloat("depth", s.cfg.Depth)
	prog.SetInt("tessLevel", int32(s.cfg.TessLevel))
	prog.SetInt("tileCount", int32(s.cfg.TileCount))

	prog.BindVertexArray(s.vao)
	prog.DrawPatchesInstanced(VerticesPerPatch, s.Instances())
	prog.BindVertexArray(0)

	for i := len(s.bindings) - 1; i >= 0; i-- {
		prog.BindTexture(s.bindings[i].Slot, 0)
	}
}
