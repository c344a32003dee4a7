package ocean

import "fmt"

// Source identifies where a texture binding takes its handle from.
type Source int

// Texture sources.
const (
	SourceHeightActive Source = iota
	SourceHeightNext
	SourceNormalActive
	SourceNormalNext
	SourceSurface
	SourceRippleHeight
	SourceRippleNormal
)

var sourceNames = [...]string{
	SourceHeightActive: "height[active]",
	SourceHeightNext:   "height[next]",
	SourceNormalActive: "normal[active]",
	SourceNormalNext:   "normal[next]",
	SourceSurface:      "surface",
	SourceRippleHeight: "ripple height",
	SourceRippleNormal: "ripple normal",
}

func (s Source) String() string {
	if s >= 0 && int(s) < len(sourceNames) {
		return sourceNames[s]
	}
	return fmt.Sprintf("Source(%d)", int(s))
}

// Resolve returns the texture handle for this source. A frame index outside
// the provider's sequence panics with *InvariantError.
func (s Source) Resolve(state Snapshot, p TextureProvider) uint32 {
	switch s {
	case SourceHeightActive:
		return frameAt(p.HeightFrames(), state.ActiveIndex, state)
	case SourceHeightNext:
		return frameAt(p.HeightFrames(), state.NextIndex, state)
	case SourceNormalActive:
		return frameAt(p.NormalFrames(), state.ActiveIndex, state)
	case SourceNormalNext:
		return frameAt(p.NormalFrames(), state.NextIndex, state)
	case SourceSurface:
		return p.Surface()
	case SourceRippleHeight:
		return p.RippleHeight()
	case SourceRippleNormal:
		return p.RippleNormal()
	}
	panic(fmt.Sprintf("ocean: unknown texture source %d", int(s)))
}

func frameAt(frames []uint32, idx int, state Snapshot) uint32 {
	if idx < 0 || idx >= len(frames) {
		panic(&InvariantError{
			Active: state.ActiveIndex,
			Next:   state.NextIndex,
			Count:  len(frames),
			Weight: float64(state.Weight),
			Reason: "frame index outside provider sequence",
		})
	}
	return frames[idx]
}

// Binding ties a texture unit to the sampler uniform reading it and to the
// handle bound there.
type Binding struct {
	Slot    int
	Uniform string
	Source  Source
}

// DefaultBindings returns the seven-unit layout the ocean shaders expect.
func DefaultBindings() []Binding {
	return []Binding{
		{Slot: 0, Uniform: "heightMap1", Source: SourceHeightActive},
		{Slot: 1, Uniform: "heightMap2", Source: SourceHeightNext},
		{Slot: 2, Uniform: "normalMap1", Source: SourceNormalActive},
		{Slot: 3, Uniform: "normalMap2", Source: SourceNormalNext},
		{Slot: 4, Uniform: "water", Source: SourceSurface},
		{Slot: 5, Uniform: "wavesHeightMap", Source: SourceRippleHeight},
		{Slot: 6, Uniform: "wavesNormalMap", Source: SourceRippleNormal},
	}
}
