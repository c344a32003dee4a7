package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/midgard-ocean/internal/config"
	"github.com/Faultbox/midgard-ocean/internal/engine/camera"
	"github.com/Faultbox/midgard-ocean/internal/engine/ocean"
	"github.com/Faultbox/midgard-ocean/internal/engine/texture"
	"github.com/Faultbox/midgard-ocean/pkg/math"
)

func TestDefaultsMatchEngineDefaults(t *testing.T) {
	cfg := config.Default()

	assert.Equal(t, texture.DefaultLayout(), textureLayout(cfg))
	assert.Equal(t, ocean.DefaultSequencerConfig(), sequencerConfig(cfg, ocean.DefaultFrameCount))
	assert.Equal(t, ocean.DefaultSubmitterConfig(), submitterConfig(cfg))
}

func TestSequencerConfigUsesLoadedFrameCount(t *testing.T) {
	cfg := config.Default()
	cfg.Ocean.BlendRate = 2

	sc := sequencerConfig(cfg, 5)
	assert.Equal(t, 5, sc.FrameCount)
	assert.Equal(t, 2.0, sc.BlendRate)

	seq, err := ocean.NewSequencer(sc)
	require.NoError(t, err)
	assert.Equal(t, 5, seq.FrameCount())
}

func TestWindowConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Graphics.Backend = "glfw"
	cfg.Graphics.Fullscreen = true

	wc := windowConfig(cfg)
	assert.Equal(t, Title, wc.Title)
	assert.Equal(t, 1280, wc.Width)
	assert.Equal(t, 720, wc.Height)
	assert.Equal(t, 8, wc.Samples)
	assert.Equal(t, "glfw", wc.Backend)
	assert.True(t, wc.Fullscreen)
}

func TestRendererConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Debug.Wireframe = true

	rc := rendererConfig(cfg, 2560, 1440)
	assert.Equal(t, 2560, rc.Width)
	assert.Equal(t, 1440, rc.Height)
	assert.True(t, rc.Wireframe)
}

func TestCameraParams(t *testing.T) {
	p := cameraParams(config.Default())
	assert.Equal(t, camera.Params{
		Radius:      75,
		Height:      50,
		OrbitRadius: 60,
		OrbitHeight: 30,
		Speed:       0.5,
		FOV:         45,
		Near:        0.1,
		Far:         500,
	}, p)
}

func TestBuildView(t *testing.T) {
	cam := camera.NewTurntable(cameraParams(config.Default()))
	view := buildView(cam, 100, 1280, 720)

	assert.Equal(t, math.Scale(100, 100, 100), view.Model)
	assert.Equal(t, cam.Position(), view.Position)

	want := cam.ProjectionMatrix(1280, 720).Mul(cam.ViewMatrix()).Mul(view.Model)
	assert.Equal(t, want, view.MVP)

	// The origin lands in front of the camera, at the centre of the screen.
	clip := view.MVP.MulVec4(math.Vec4{0, 0, 0, 1})
	require.Greater(t, clip[3], float32(0))
	assert.InDelta(t, 0, clip[0]/clip[3], 1e-5)
	assert.InDelta(t, 0, clip[1]/clip[3], 1e-5)
}
