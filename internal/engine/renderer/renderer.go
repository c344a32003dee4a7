// Package renderer owns the global OpenGL state of the viewer.
package renderer

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/midgard-ocean/internal/logger"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Config holds renderer configuration.
type Config struct {
	Width     int
	Height    int
	Samples   int
	Wireframe bool
}

// Renderer handles frame setup and global OpenGL state.
type Renderer struct {
	config Config

	// The ocean vertex shader derives positions from gl_VertexID and
	// gl_InstanceID, so its VAO has no attributes. Core profile still
	// requires one to be bound for a draw.
	oceanVAO uint32
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	rendererName := gl.GoStr(gl.GetString(gl.RENDERER))
	logger.Info("OpenGL initialized",
		zap.String("version", version),
		zap.String("renderer", rendererName),
	)

	var maxPatch int32
	gl.GetIntegerv(gl.MAX_PATCH_VERTICES, &maxPatch)
	if maxPatch < 4 {
		return nil, fmt.Errorf("tessellation unsupported: GL_MAX_PATCH_VERTICES=%d", maxPatch)
	}

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	if cfg.Samples > 0 {
		gl.Enable(gl.MULTISAMPLE)
	}
	gl.ClearColor(0, 0, 0, 1)

	gl.GenVertexArrays(1, &r.oceanVAO)

	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))
	r.SetWireframe(cfg.Wireframe)

	logger.Debug("renderer ready",
		zap.Uint32("ocean_vao", r.oceanVAO),
		zap.Int32("max_patch_vertices", maxPatch),
	)
	return r, nil
}

// OceanVAO returns the attribute-less vertex array used for the ocean draw.
func (r *Renderer) OceanVAO() uint32 {
	return r.oceanVAO
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	if r.oceanVAO != 0 {
		gl.DeleteVertexArrays(1, &r.oceanVAO)
		r.oceanVAO = 0
	}
}

// Size returns the current viewport size.
func (r *Renderer) Size() (int, int) {
	return r.config.Width, r.config.Height
}

// Resize handles window resize. Zero sizes (minimized windows) are ignored.
func (r *Renderer) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// SetWireframe toggles between line and fill polygon modes.
func (r *Renderer) SetWireframe(on bool) {
	r.config.Wireframe = on
	if on {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	} else {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}
}

// Begin starts a new frame.
func (r *Renderer) Begin() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// End finishes the current frame.
func (r *Renderer) End() {
	gl.Flush()
}

// ReadPixels reads the back buffer as bottom-up RGBA rows.
func (r *Renderer) ReadPixels() (pixels []byte, width, height int) {
	width, height = r.config.Width, r.config.Height
	pixels = make([]byte, width*height*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels, width, height
}
