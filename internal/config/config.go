// Package config handles viewer configuration loading and management.
package config

import (
	"errors"
	"fmt"
)

// Config holds all viewer settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Ocean    OceanConfig    `yaml:"ocean"`
	Light    LightConfig    `yaml:"light"`
	Camera   CameraConfig   `yaml:"camera"`
	Logging  LoggingConfig  `yaml:"logging"`
	Debug    DebugConfig    `yaml:"debug"`
}

// GraphicsConfig holds display and context settings.
type GraphicsConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
	Samples    int    `yaml:"samples"` // MSAA samples, 0 disables
	Backend    string `yaml:"backend"` // "sdl" or "glfw"
}

// OceanConfig holds the surface animation and texture settings.
type OceanConfig struct {
	AssetsDir     string   `yaml:"assets_dir"`
	OverlayDirs   []string `yaml:"overlay_dirs,omitempty"` // Searched before AssetsDir, last first
	HeightPattern string   `yaml:"height_pattern"`
	NormalPattern string   `yaml:"normal_pattern"`
	FrameCount    int      `yaml:"frame_count"`
	FirstIndex    int      `yaml:"first_index"`
	Surface       string   `yaml:"surface"`
	RippleHeight  string   `yaml:"ripple_height"`
	RippleNormal  string   `yaml:"ripple_normal"`
	Anisotropy    float32  `yaml:"anisotropy"`
	BlendRate     float64  `yaml:"blend_rate"`  // Frame pairs per second
	OffsetRate    float64  `yaml:"offset_rate"` // Ripple phase per second
	OffsetWrap    float64  `yaml:"offset_wrap"`
	TileCount     int      `yaml:"tile_count"`
	TessLevel     int      `yaml:"tess_level"`
	Depth         float32  `yaml:"depth"`
	ModelScale    float32  `yaml:"model_scale"`
}

// LightConfig holds the directional light.
type LightConfig struct {
	Direction [3]float32 `yaml:"direction"`
	Ambient   [3]float32 `yaml:"ambient"`
	Diffuse   [3]float32 `yaml:"diffuse"`
	Specular  [3]float32 `yaml:"specular"`
}

// CameraConfig holds projection and viewpoint settings.
type CameraConfig struct {
	FOV          float32 `yaml:"fov"` // Degrees
	Near         float32 `yaml:"near"`
	Far          float32 `yaml:"far"`
	Radius       float32 `yaml:"radius"`
	Height       float32 `yaml:"height"`
	OrbitRadius  float32 `yaml:"orbit_radius"`
	OrbitHeight  float32 `yaml:"orbit_height"`
	OrbitSpeed   float32 `yaml:"orbit_speed"` // Radians per second
	RotateOnLoad bool    `yaml:"rotate_on_load"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// DebugConfig holds developer conveniences.
type DebugConfig struct {
	ScreenshotDir string `yaml:"screenshot_dir"`
	Wireframe     bool   `yaml:"wireframe"`
	ShowFPS       bool   `yaml:"show_fps"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			Samples:    8,
			Backend:    "sdl",
		},
		Ocean: OceanConfig{
			AssetsDir:     "textures",
			HeightPattern: "heights/%d.png",
			NormalPattern: "normals/%d.png",
			FrameCount:    13,
			FirstIndex:    1,
			Surface:       "water.jpg",
			RippleHeight:  "wavesHeight.jpg",
			RippleNormal:  "wavesNormal.jpg",
			Anisotropy:    8,
			BlendRate:     0.4,
			OffsetRate:    0.2,
			OffsetWrap:    2147483645,
			TileCount:     64,
			TessLevel:     1,
			Depth:         0.11,
			ModelScale:    100,
		},
		Light: LightConfig{
			Direction: [3]float32{0, -1, 0},
			Ambient:   [3]float32{0.15, 0.15, 0.15},
			Diffuse:   [3]float32{0.75, 0.75, 0.75},
			Specular:  [3]float32{1, 1, 1},
		},
		Camera: CameraConfig{
			FOV:         45,
			Near:        0.1,
			Far:         500,
			Radius:      75,
			Height:      50,
			OrbitRadius: 60,
			OrbitHeight: 30,
			OrbitSpeed:  0.5,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
		Debug: DebugConfig{
			ScreenshotDir: "screenshots",
		},
	}
}

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

// Validate reports settings the viewer cannot run with.
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
		}
	}

	check(c.Graphics.Width > 0 && c.Graphics.Height > 0, "window size %dx%d", c.Graphics.Width, c.Graphics.Height)
	check(c.Graphics.Samples >= 0, "graphics.samples %d", c.Graphics.Samples)
	check(c.Graphics.Backend == "sdl" || c.Graphics.Backend == "glfw", "graphics.backend %q", c.Graphics.Backend)

	check(c.Ocean.FrameCount >= 2, "ocean.frame_count %d (need at least 2)", c.Ocean.FrameCount)
	check(c.Ocean.BlendRate >= 0, "ocean.blend_rate %v", c.Ocean.BlendRate)
	check(c.Ocean.OffsetRate >= 0, "ocean.offset_rate %v", c.Ocean.OffsetRate)
	check(c.Ocean.OffsetWrap >= 0, "ocean.offset_wrap %v", c.Ocean.OffsetWrap)
	check(c.Ocean.TileCount > 0, "ocean.tile_count %d", c.Ocean.TileCount)
	check(c.Ocean.TessLevel > 0, "ocean.tess_level %d", c.Ocean.TessLevel)

	check(c.Camera.Near > 0 && c.Camera.Far > c.Camera.Near, "camera near/far %v/%v", c.Camera.Near, c.Camera.Far)
	check(c.Camera.FOV > 0 && c.Camera.FOV < 180, "camera.fov %v", c.Camera.FOV)

	return errors.Join(errs...)
}
