package app

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/midgard-ocean/internal/config"
)

func writePNG(t *testing.T, path string, c color.Color) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))

	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			img.Set(x, y, c)
		}
	}
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

// writeAssets creates a frames-long texture tree using PNG for every file.
func writeAssets(t *testing.T, dir string, frames int) *config.Config {
	cfg := config.Default()
	cfg.Ocean.AssetsDir = dir
	cfg.Ocean.FrameCount = frames
	cfg.Ocean.Surface = "water.png"
	cfg.Ocean.RippleHeight = "wavesHeight.png"
	cfg.Ocean.RippleNormal = "wavesNormal.png"

	gray := color.RGBA{128, 128, 128, 255}
	for i := 1; i <= frames; i++ {
		writePNG(t, filepath.Join(dir, fmt.Sprintf("heights/%d.png", i)), gray)
		writePNG(t, filepath.Join(dir, fmt.Sprintf("normals/%d.png", i)), gray)
	}
	writePNG(t, filepath.Join(dir, "water.png"), gray)
	writePNG(t, filepath.Join(dir, "wavesHeight.png"), gray)
	writePNG(t, filepath.Join(dir, "wavesNormal.png"), gray)
	return cfg
}

func TestLoadImages(t *testing.T) {
	cfg := writeAssets(t, t.TempDir(), 3)

	imgs, err := loadImages(cfg)
	require.NoError(t, err)
	assert.Len(t, imgs.Heights, 3)
	assert.Len(t, imgs.Normals, 3)
	assert.NotNil(t, imgs.Surface)
}

func TestLoadImagesOverlayReplacesFrame(t *testing.T) {
	cfg := writeAssets(t, t.TempDir(), 2)
	overlay := t.TempDir()
	writePNG(t, filepath.Join(overlay, "heights/2.png"), color.RGBA{255, 0, 0, 255})
	cfg.Ocean.OverlayDirs = []string{overlay}

	imgs, err := loadImages(cfg)
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{128, 128, 128, 255}, imgs.Heights[0].RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, imgs.Heights[1].RGBAAt(0, 0))
}

func TestLoadImagesMissingDir(t *testing.T) {
	cfg := config.Default()
	cfg.Ocean.AssetsDir = filepath.Join(t.TempDir(), "nope")

	_, err := loadImages(cfg)
	assert.Error(t, err)
}
