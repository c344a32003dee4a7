package texture

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"testing"
	"testing/fstest"
)

func encodePNG(t *testing.T, w, h int, c color.Color) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

// tgaHeader builds an 18-byte TGA header.
func tgaHeader(imageType byte, w, h int, bpp byte, descriptor byte) []byte {
	hdr := make([]byte, 18)
	hdr[2] = imageType
	hdr[12] = byte(w)
	hdr[13] = byte(w >> 8)
	hdr[14] = byte(h)
	hdr[15] = byte(h >> 8)
	hdr[16] = bpp
	hdr[17] = descriptor
	return hdr
}

func TestDecodeTGAUncompressed(t *testing.T) {
	// 2x1, 24-bit BGR, top-to-bottom
	data := append(tgaHeader(TGATypeTrueColor, 2, 1, 24, 0x20),
		0, 0, 255, // red
		255, 0, 0, // blue
	)

	img, err := DecodeTGA(data)
	if err != nil {
		t.Fatalf("DecodeTGA: %v", err)
	}
	rgba := img.(*image.RGBA)
	if got := rgba.RGBAAt(0, 0); got != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("pixel 0: got %v, want red", got)
	}
	if got := rgba.RGBAAt(1, 0); got != (color.RGBA{0, 0, 255, 255}) {
		t.Errorf("pixel 1: got %v, want blue", got)
	}
}

func TestDecodeTGABottomUp(t *testing.T) {
	// 1x2, 32-bit, bottom-to-top: first stored row is the bottom one.
	data := append(tgaHeader(TGATypeTrueColor, 1, 2, 32, 0),
		0, 255, 0, 128, // green, stored first
		0, 0, 0, 255, // black
	)

	img, err := DecodeTGA(data)
	if err != nil {
		t.Fatalf("DecodeTGA: %v", err)
	}
	rgba := img.(*image.RGBA)
	if got := rgba.RGBAAt(0, 1); got != (color.RGBA{0, 255, 0, 128}) {
		t.Errorf("bottom pixel: got %v, want green", got)
	}
	if got := rgba.RGBAAt(0, 0); got != (color.RGBA{0, 0, 0, 255}) {
		t.Errorf("top pixel: got %v, want black", got)
	}
}

func TestDecodeTGARLE(t *testing.T) {
	// 4x1 grayscale RLE: run of 3 x 0x40, then one raw 0xFF.
	data := append(tgaHeader(TGATypeGrayRLE, 4, 1, 8, 0x20),
		0x82, 0x40,
		0x00, 0xFF,
	)

	img, err := DecodeTGA(data)
	if err != nil {
		t.Fatalf("DecodeTGA: %v", err)
	}
	rgba := img.(*image.RGBA)
	for x := 0; x < 3; x++ {
		if got := rgba.RGBAAt(x, 0); got != (color.RGBA{0x40, 0x40, 0x40, 255}) {
			t.Errorf("pixel %d: got %v", x, got)
		}
	}
	if got := rgba.RGBAAt(3, 0); got != (color.RGBA{0xFF, 0xFF, 0xFF, 255}) {
		t.Errorf("pixel 3: got %v", got)
	}
}

func TestDecodeTGAErrors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"short header", []byte{0, 0, 2}},
		{"color mapped", func() []byte {
			h := tgaHeader(TGATypeTrueColor, 1, 1, 24, 0)
			h[1] = 1
			return h
		}()},
		{"unsupported type", tgaHeader(1, 1, 1, 8, 0)},
		{"bad depth", tgaHeader(TGATypeTrueColor, 1, 1, 16, 0)},
		{"bad gray depth", tgaHeader(TGATypeGray, 1, 1, 24, 0)},
		{"truncated raw", append(tgaHeader(TGATypeTrueColor, 2, 2, 24, 0), 1, 2, 3)},
		{"truncated rle", append(tgaHeader(TGATypeTrueColorRLE, 2, 2, 24, 0), 0x81)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeTGA(tt.data); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestDecodeByExtension(t *testing.T) {
	pngData := encodePNG(t, 2, 2, color.RGBA{10, 20, 30, 255})
	img, err := Decode(pngData, "frames/1.png")
	if err != nil {
		t.Fatalf("Decode png: %v", err)
	}
	if img.Bounds().Dx() != 2 {
		t.Errorf("expected width 2, got %d", img.Bounds().Dx())
	}

	tga := append(tgaHeader(TGATypeGray, 1, 1, 8, 0), 7)
	if _, err := Decode(tga, "HEIGHT.TGA"); err != nil {
		t.Errorf("Decode tga: %v", err)
	}

	if _, err := Decode([]byte("not an image"), "x.png"); err == nil {
		t.Error("expected error decoding garbage")
	}
}

func TestToRGBA(t *testing.T) {
	gray := image.NewGray(image.Rect(5, 5, 8, 7))
	gray.SetGray(5, 5, color.Gray{Y: 200})

	rgba := ToRGBA(gray)
	if rgba.Bounds() != image.Rect(0, 0, 3, 2) {
		t.Fatalf("expected bounds at origin, got %v", rgba.Bounds())
	}
	if got := rgba.RGBAAt(0, 0); got != (color.RGBA{200, 200, 200, 255}) {
		t.Errorf("got %v", got)
	}

	same := image.NewRGBA(image.Rect(0, 0, 4, 4))
	if ToRGBA(same) != same {
		t.Error("packed RGBA at origin should be returned as-is")
	}
}

func testLayout(frames int) Layout {
	l := DefaultLayout()
	l.FrameCount = frames
	return l
}

func testFS(t *testing.T, frames int) fstest.MapFS {
	t.Helper()
	fsys := fstest.MapFS{}
	l := testLayout(frames)
	for i := 0; i < frames; i++ {
		fsys[l.HeightPath(i)] = &fstest.MapFile{Data: encodePNG(t, 4, 4, color.Gray{Y: uint8(i * 10)})}
		fsys[l.NormalPath(i)] = &fstest.MapFile{Data: encodePNG(t, 4, 4, color.RGBA{128, 128, 255, 255})}
	}
	for _, name := range []string{l.Surface, l.RippleHeight, l.RippleNormal} {
		fsys[name] = &fstest.MapFile{Data: encodePNG(t, 8, 8, color.RGBA{0, 80, 120, 255})}
	}
	return fsys
}

func TestLayoutPaths(t *testing.T) {
	l := DefaultLayout()
	if got := l.HeightPath(0); got != "heights/1.png" {
		t.Errorf("HeightPath(0) = %s", got)
	}
	if got := l.NormalPath(12); got != "normals/13.png" {
		t.Errorf("NormalPath(12) = %s", got)
	}
}

func TestLoadImages(t *testing.T) {
	imgs, err := LoadImages(testFS(t, 3), testLayout(3))
	if err != nil {
		t.Fatalf("LoadImages: %v", err)
	}
	if len(imgs.Heights) != 3 || len(imgs.Normals) != 3 {
		t.Fatalf("expected 3 frames, got %d/%d", len(imgs.Heights), len(imgs.Normals))
	}
	if got := imgs.Heights[2].RGBAAt(0, 0).R; got != 20 {
		t.Errorf("height frame 2: got %d, want 20", got)
	}
	if imgs.Surface == nil || imgs.RippleHeight == nil || imgs.RippleNormal == nil {
		t.Error("static textures not loaded")
	}
}

func TestLoadImagesMissingFrame(t *testing.T) {
	fsys := testFS(t, 3)
	delete(fsys, "normals/2.png")

	_, err := LoadImages(fsys, testLayout(3))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected ErrNotExist, got %v", err)
	}
}

func TestLoadImagesSizeMismatch(t *testing.T) {
	fsys := testFS(t, 2)
	fsys["normals/2.png"] = &fstest.MapFile{Data: encodePNG(t, 8, 8, color.White)}

	_, err := LoadImages(fsys, testLayout(2))
	if !errors.Is(err, ErrFrameMismatch) {
		t.Errorf("expected ErrFrameMismatch, got %v", err)
	}
}

func TestLoadImagesTooFewFrames(t *testing.T) {
	if _, err := LoadImages(testFS(t, 1), testLayout(1)); err == nil {
		t.Error("expected error for single frame layout")
	}
}

func TestNewFrameSet(t *testing.T) {
	fs, err := NewFrameSet([]uint32{1, 2, 3}, []uint32{4, 5, 6}, 7, 8, 9)
	if err != nil {
		t.Fatalf("NewFrameSet: %v", err)
	}
	if fs.Len() != 3 || fs.HeightFrames()[1] != 2 || fs.NormalFrames()[2] != 6 {
		t.Error("frame handles not preserved")
	}
	if fs.Surface() != 7 || fs.RippleHeight() != 8 || fs.RippleNormal() != 9 {
		t.Error("static handles not preserved")
	}
	if got := len(fs.all()); got != 9 {
		t.Errorf("all(): got %d handles, want 9", got)
	}

	if _, err := NewFrameSet([]uint32{1, 2}, []uint32{3}, 0, 0, 0); !errors.Is(err, ErrFrameMismatch) {
		t.Errorf("expected ErrFrameMismatch, got %v", err)
	}
}
