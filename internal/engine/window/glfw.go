package window

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"

	"github.com/Faultbox/midgard-ocean/internal/engine/input"
	"github.com/Faultbox/midgard-ocean/internal/logger"
)

var glfwKeys = map[glfw.Key]input.Key{
	glfw.KeyEscape: input.KeyEscape,
	glfw.KeyP:      input.KeyP,
	glfw.KeyO:      input.KeyO,
	glfw.KeyR:      input.KeyR,
	glfw.KeyT:      input.KeyT,
	glfw.KeyF12:    input.KeyF12,
}

// glfwWindow wraps a GLFW window. GLFW delivers events through callbacks
// during PollEvents; they are buffered in pending until drained.
type glfwWindow struct {
	win     *glfw.Window
	pending []input.Event
}

func newGLFW(cfg Config) (*glfwWindow, error) {
	logger.Info("initializing GLFW")
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init failed: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.DepthBits, 24)
	glfw.WindowHint(glfw.Samples, cfg.Samples)

	var monitor *glfw.Monitor
	if cfg.Fullscreen {
		monitor = glfw.GetPrimaryMonitor()
	}

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, monitor, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("glfw create window failed: %w", err)
	}
	win.MakeContextCurrent()

	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	w := &glfwWindow{win: win}
	win.SetKeyCallback(w.onKey)
	win.SetFramebufferSizeCallback(w.onFramebufferSize)

	logger.Info("window created",
		zap.String("backend", BackendGLFW),
		zap.String("title", cfg.Title),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Bool("fullscreen", cfg.Fullscreen),
		zap.Bool("vsync", cfg.VSync),
		zap.Int("samples", cfg.Samples),
	)
	return w, nil
}

func (w *glfwWindow) onKey(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	var typ input.EventType
	switch action {
	case glfw.Press:
		typ = input.EventKeyDown
	case glfw.Release:
		typ = input.EventKeyUp
	default:
		return
	}
	w.pending = append(w.pending, input.Event{Type: typ, Key: glfwKeys[key]})
}

func (w *glfwWindow) onFramebufferSize(_ *glfw.Window, width, height int) {
	w.pending = append(w.pending, input.Event{
		Type:   input.EventWindowResize,
		Width:  width,
		Height: height,
	})
}

// PollEvents runs the GLFW callbacks and drains what they buffered.
func (w *glfwWindow) PollEvents(dst []input.Event) []input.Event {
	glfw.PollEvents()
	dst = append(dst, w.pending...)
	w.pending = w.pending[:0]
	if w.win.ShouldClose() {
		dst = append(dst, input.Event{Type: input.EventQuit})
	}
	return dst
}

func (w *glfwWindow) SwapBuffers() {
	w.win.SwapBuffers()
}

func (w *glfwWindow) DrawableSize() (int, int) {
	return w.win.GetFramebufferSize()
}

func (w *glfwWindow) SetTitle(title string) {
	w.win.SetTitle(title)
}

func (w *glfwWindow) Close() {
	logger.Info("closing window", zap.String("backend", BackendGLFW))
	w.win.Destroy()
	glfw.Terminate()
}
