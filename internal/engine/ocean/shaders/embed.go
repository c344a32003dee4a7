// Package shaders provides embedded GLSL sources for the ocean surface.
package shaders

import _ "embed"

// VertexShader places the four corners of each grid patch.
//
//go:embed ocean.vert
var VertexShader string

// TessControlShader sets the per-patch subdivision level.
//
//go:embed ocean.tesc
var TessControlShader string

// TessEvalShader displaces the subdivided patch by the blended height frames.
//
//go:embed ocean.tese
var TessEvalShader string

// FragmentShader shades the surface with the blended normal frames.
//
//go:embed ocean.frag
var FragmentShader string
