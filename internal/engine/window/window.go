// Package window creates the OS window and OpenGL context.
package window

import (
	"fmt"
	"runtime"

	"github.com/Faultbox/midgard-ocean/internal/engine/input"
)

func init() {
	// OpenGL calls must be made from the main thread
	runtime.LockOSThread()
}

// Backend names.
const (
	BackendSDL  = "sdl"
	BackendGLFW = "glfw"
)

// Config holds window configuration.
type Config struct {
	Title      string
	Width      int
	Height     int
	Fullscreen bool
	VSync      bool
	Samples    int    // MSAA samples, 0 disables
	Backend    string // BackendSDL or BackendGLFW
}

// Window is a window with a current OpenGL 4.1 core context.
type Window interface {
	input.Source

	// SwapBuffers presents the back buffer.
	SwapBuffers()
	// DrawableSize returns the framebuffer size in pixels, which differs
	// from the window size on HiDPI displays.
	DrawableSize() (int, int)
	SetTitle(title string)
	Close()
}

// New creates a window using the configured backend.
func New(cfg Config) (Window, error) {
	switch cfg.Backend {
	case BackendSDL, "":
		return newSDL(cfg)
	case BackendGLFW:
		return newGLFW(cfg)
	}
	return nil, fmt.Errorf("unknown window backend %q", cfg.Backend)
}
