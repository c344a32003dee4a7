// Package app runs the ocean viewer: it owns the window, the GL resources and
// the frame loop that drives the sequencer and the submitter.
package app

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/midgard-ocean/internal/assets"
	"github.com/Faultbox/midgard-ocean/internal/config"
	"github.com/Faultbox/midgard-ocean/internal/engine/camera"
	"github.com/Faultbox/midgard-ocean/internal/engine/input"
	"github.com/Faultbox/midgard-ocean/internal/engine/ocean"
	"github.com/Faultbox/midgard-ocean/internal/engine/ocean/shaders"
	"github.com/Faultbox/midgard-ocean/internal/engine/renderer"
	"github.com/Faultbox/midgard-ocean/internal/engine/screenshot"
	"github.com/Faultbox/midgard-ocean/internal/engine/shader"
	"github.com/Faultbox/midgard-ocean/internal/engine/texture"
	"github.com/Faultbox/midgard-ocean/internal/engine/window"
	"github.com/Faultbox/midgard-ocean/internal/logger"
)

// App is the viewer instance.
type App struct {
	config  *config.Config
	log     *zap.Logger
	running bool

	window   window.Window
	renderer *renderer.Renderer
	program  *shader.Program
	frames   *texture.FrameSet

	sequencer *ocean.Sequencer
	submitter *ocean.Submitter
	camera    *camera.Turntable
	input     *input.Input
	shots     *screenshot.Capture

	start time.Time
}

// New creates the window, compiles the ocean program and uploads the
// texture frames. Textures are decoded before the window opens so a missing
// asset fails fast.
func New(cfg *config.Config) (*App, error) {
	a := &App{
		config: cfg,
		log:    logger.Named("app"),
		input:  input.New(),
		shots:  screenshot.New(cfg.Debug.ScreenshotDir, "ocean"),
	}

	images, err := loadImages(cfg)
	if err != nil {
		return nil, err
	}

	a.sequencer, err = ocean.NewSequencer(sequencerConfig(cfg, len(images.Heights)))
	if err != nil {
		return nil, fmt.Errorf("failed to create sequencer: %w", err)
	}

	a.window, err = window.New(windowConfig(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Renderer AFTER window, since the OpenGL context must exist
	width, height := a.window.DrawableSize()
	a.renderer, err = renderer.New(rendererConfig(cfg, width, height))
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	a.program, err = shader.NewProgram(
		shader.Vertex(shaders.VertexShader),
		shader.TessControl(shaders.TessControlShader),
		shader.TessEval(shaders.TessEvalShader),
		shader.Fragment(shaders.FragmentShader),
	)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to build ocean program: %w", err)
	}

	a.frames, err = texture.UploadFrameSet(images, cfg.Ocean.Anisotropy)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to upload textures: %w", err)
	}

	a.submitter = ocean.NewSubmitter(submitterConfig(cfg), a.renderer.OceanVAO())
	a.camera = camera.NewTurntable(cameraParams(cfg))
	a.camera.SetRotating(cfg.Camera.RotateOnLoad)

	a.log.Info("viewer initialized",
		zap.Int("frames", a.frames.Len()),
		zap.Int32("patches", a.submitter.Instances()),
		zap.Int("width", width),
		zap.Int("height", height),
	)
	return a, nil
}

// loadImages decodes every ocean texture from the asset dir and its overlays.
func loadImages(cfg *config.Config) (*texture.FrameImages, error) {
	mgr := assets.NewManager()
	defer mgr.Close()

	for _, dir := range append([]string{cfg.Ocean.AssetsDir}, cfg.Ocean.OverlayDirs...) {
		if err := mgr.AddDir(dir); err != nil {
			return nil, fmt.Errorf("failed to load textures: %w", err)
		}
	}

	logger.Info("loading ocean textures", zap.Strings("layers", mgr.Layers()))
	images, err := texture.LoadImages(mgr, textureLayout(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to load textures: %w", err)
	}

	hits, misses := mgr.Stats()
	logger.Debug("texture reads", zap.Int("cache_hits", hits), zap.Int("cache_misses", misses))
	return images, nil
}

// Run starts the frame loop and returns when the window is closed or Escape
// is pressed.
func (a *App) Run() error {
	a.running = true
	a.start = time.Now()

	lastTime := a.start
	frameCount := 0
	fpsTimer := a.start

	a.log.Info("starting frame loop")

	for a.running {
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		if a.input.Update(a.window) {
			a.running = false
			break
		}
		a.handleInput()
		if !a.running {
			break
		}

		state := a.sequencer.Advance(dt)
		a.camera.Update(now.Sub(a.start).Seconds())

		a.render(state)
		if a.input.IsKeyPressed(input.KeyF12) {
			a.captureScreenshot()
		}
		a.window.SwapBuffers()

		frameCount++
		if since := time.Since(fpsTimer); since >= time.Second {
			fps := float64(frameCount) / since.Seconds()
			a.log.Debug("fps",
				zap.Float64("fps", fps),
				zap.Int("active", state.ActiveIndex),
				zap.Int("next", state.NextIndex),
				zap.Float32("weight", state.Weight),
			)
			if a.config.Debug.ShowFPS {
				a.window.SetTitle(fmt.Sprintf("%s - %.0f fps", Title, fps))
			}
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

func (a *App) handleInput() {
	if w, h, ok := a.input.Resized(); ok {
		a.renderer.Resize(w, h)
	}

	switch {
	case a.input.IsKeyPressed(input.KeyEscape):
		a.running = false
	case a.input.IsKeyPressed(input.KeyP):
		a.renderer.SetWireframe(true)
	case a.input.IsKeyPressed(input.KeyO):
		a.renderer.SetWireframe(false)
	}

	if a.input.IsKeyPressed(input.KeyR) {
		a.camera.SetRotating(true)
	}
	if a.input.IsKeyPressed(input.KeyT) {
		a.camera.SetRotating(false)
	}
}

func (a *App) render(state ocean.Snapshot) {
	width, height := a.renderer.Size()
	view := buildView(a.camera, a.config.Ocean.ModelScale, width, height)

	a.renderer.Begin()
	a.submitter.Submit(state, a.frames, a.program, view)
	a.renderer.End()
}

func (a *App) captureScreenshot() {
	pixels, width, height := a.renderer.ReadPixels()
	path, err := a.shots.SavePixels(pixels, width, height)
	if err != nil {
		a.log.Warn("screenshot failed", zap.Error(err))
		return
	}
	a.log.Info("screenshot saved", zap.String("path", path))
}

// Close releases GL resources and the window. It is safe to call on a
// partially initialized App.
func (a *App) Close() {
	a.log.Info("closing viewer")

	if a.frames != nil {
		a.frames.Delete()
		a.frames = nil
	}
	if a.program != nil {
		a.program.Delete()
		a.program = nil
	}
	if a.renderer != nil {
		a.renderer.Close()
		a.renderer = nil
	}
	if a.window != nil {
		a.window.Close()
		a.window = nil
	}
}
