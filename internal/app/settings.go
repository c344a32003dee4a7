package app

import (
	"github.com/Faultbox/midgard-ocean/internal/config"
	"github.com/Faultbox/midgard-ocean/internal/engine/camera"
	"github.com/Faultbox/midgard-ocean/internal/engine/ocean"
	"github.com/Faultbox/midgard-ocean/internal/engine/renderer"
	"github.com/Faultbox/midgard-ocean/internal/engine/texture"
	"github.com/Faultbox/midgard-ocean/internal/engine/window"
	"github.com/Faultbox/midgard-ocean/pkg/math"
)

// Title is the window title.
const Title = "Midgard Ocean"

func windowConfig(cfg *config.Config) window.Config {
	return window.Config{
		Title:      Title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
		Samples:    cfg.Graphics.Samples,
		Backend:    cfg.Graphics.Backend,
	}
}

func rendererConfig(cfg *config.Config, width, height int) renderer.Config {
	return renderer.Config{
		Width:     width,
		Height:    height,
		Samples:   cfg.Graphics.Samples,
		Wireframe: cfg.Debug.Wireframe,
	}
}

func textureLayout(cfg *config.Config) texture.Layout {
	o := cfg.Ocean
	return texture.Layout{
		HeightPattern: o.HeightPattern,
		NormalPattern: o.NormalPattern,
		FrameCount:    o.FrameCount,
		FirstIndex:    o.FirstIndex,
		Surface:       o.Surface,
		RippleHeight:  o.RippleHeight,
		RippleNormal:  o.RippleNormal,
	}
}

func sequencerConfig(cfg *config.Config, frames int) ocean.SequencerConfig {
	return ocean.SequencerConfig{
		FrameCount: frames,
		BlendRate:  cfg.Ocean.BlendRate,
		OffsetRate: cfg.Ocean.OffsetRate,
		OffsetWrap: cfg.Ocean.OffsetWrap,
	}
}

func vec3(v [3]float32) math.Vec3 {
	return math.Vec3{X: v[0], Y: v[1], Z: v[2]}
}

func submitterConfig(cfg *config.Config) ocean.SubmitterConfig {
	return ocean.SubmitterConfig{
		TileCount: cfg.Ocean.TileCount,
		TessLevel: cfg.Ocean.TessLevel,
		Depth:     cfg.Ocean.Depth,
		Light: ocean.Light{
			Direction: vec3(cfg.Light.Direction),
			Ambient:   vec3(cfg.Light.Ambient),
			Diffuse:   vec3(cfg.Light.Diffuse),
			Specular:  vec3(cfg.Light.Specular),
		},
	}
}

func cameraParams(cfg *config.Config) camera.Params {
	c := cfg.Camera
	return camera.Params{
		Radius:      c.Radius,
		Height:      c.Height,
		OrbitRadius: c.OrbitRadius,
		OrbitHeight: c.OrbitHeight,
		Speed:       c.OrbitSpeed,
		FOV:         c.FOV,
		Near:        c.Near,
		Far:         c.Far,
	}
}

// buildView assembles the per-frame camera uniforms for the ocean draw.
func buildView(cam *camera.Turntable, modelScale float32, width, height int) ocean.View {
	model := math.Scale(modelScale, modelScale, modelScale)
	mvp := cam.ProjectionMatrix(width, height).Mul(cam.ViewMatrix()).Mul(model)
	return ocean.View{
		Model:    model,
		MVP:      mvp,
		Position: cam.Position(),
	}
}
