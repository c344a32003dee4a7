package screenshot

import (
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestFromPixelsFlipsRows(t *testing.T) {
	// 1x2: bottom row red, top row blue (OpenGL order).
	pixels := []byte{
		255, 0, 0, 255,
		0, 0, 255, 255,
	}
	img, err := FromPixels(pixels, 1, 2)
	if err != nil {
		t.Fatalf("FromPixels failed: %v", err)
	}

	if got := img.RGBAAt(0, 0); got != (color.RGBA{0, 0, 255, 255}) {
		t.Errorf("top pixel = %v, want blue", got)
	}
	if got := img.RGBAAt(0, 1); got != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("bottom pixel = %v, want red", got)
	}
}

func TestFromPixelsSizeMismatch(t *testing.T) {
	if _, err := FromPixels(make([]byte, 7), 1, 2); err == nil {
		t.Error("expected error for short buffer")
	}
	if _, err := FromPixels(nil, 0, 0); err == nil {
		t.Error("expected error for empty frame")
	}
}

func TestSavePixels(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	c := New(dir, "ocean")
	c.now = func() time.Time { return time.Date(2024, 3, 1, 12, 30, 45, 0, time.UTC) }

	if _, err := c.SavePixels(make([]byte, 4*3*2), 4, 3); err == nil {
		t.Fatal("expected mismatch error")
	}

	path, err := c.SavePixels(make([]byte, 4*3*4), 4, 3)
	if err != nil {
		t.Fatalf("SavePixels failed: %v", err)
	}

	want := filepath.Join(dir, "ocean_2024-03-01_12-30-45.000.png")
	if path != want {
		t.Errorf("path = %q, want %q", path, want)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 4 || b.Dy() != 3 {
		t.Errorf("bounds = %v, want 4x3", b)
	}
}

func TestFilenameWithoutDir(t *testing.T) {
	c := New("", "shot")
	name := c.Filename()
	if filepath.Dir(name) != "." || !strings.HasPrefix(name, "shot_") || !strings.HasSuffix(name, ".png") {
		t.Errorf("unexpected filename %q", name)
	}
}
