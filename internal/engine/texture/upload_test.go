package texture

import (
	"errors"
	"image"
	"sort"
	"testing"
)

// fakeGL replaces the GL upload and delete calls with a handle counter.
func fakeGL(t *testing.T) (released *[]uint32) {
	t.Helper()
	origUpload, origRelease := uploadTexture, releaseTextures
	t.Cleanup(func() {
		uploadTexture, releaseTextures = origUpload, origRelease
	})

	var next uint32
	var freed []uint32
	uploadTexture = func(*image.RGBA, float32) uint32 {
		next++
		return next
	}
	releaseTextures = func(ids []uint32) {
		freed = append(freed, ids...)
	}
	return &freed
}

func testImages(heights, normals int) *FrameImages {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	imgs := &FrameImages{Surface: img, RippleHeight: img, RippleNormal: img}
	for i := 0; i < heights; i++ {
		imgs.Heights = append(imgs.Heights, img)
	}
	for i := 0; i < normals; i++ {
		imgs.Normals = append(imgs.Normals, img)
	}
	return imgs
}

func TestUploadFrameSet(t *testing.T) {
	released := fakeGL(t)

	set, err := UploadFrameSet(testImages(2, 2), DefaultAnisotropy)
	if err != nil {
		t.Fatalf("UploadFrameSet: %v", err)
	}
	if set.Len() != 2 || set.Surface() != 5 || set.RippleNormal() != 7 {
		t.Errorf("unexpected handles: heights=%v normals=%v surface=%d",
			set.HeightFrames(), set.NormalFrames(), set.Surface())
	}
	if len(*released) != 0 {
		t.Errorf("nothing should be released on success, got %v", *released)
	}

	set.Delete()
	if len(*released) != 7 {
		t.Errorf("Delete released %v, want all 7 handles", *released)
	}
}

func TestUploadFrameSetReleasesEverythingOnError(t *testing.T) {
	released := fakeGL(t)

	_, err := UploadFrameSet(testImages(2, 3), DefaultAnisotropy)
	if !errors.Is(err, ErrFrameMismatch) {
		t.Fatalf("expected ErrFrameMismatch, got %v", err)
	}

	got := append([]uint32(nil), *released...)
	sort.Slice(got, func(i, j int) bool { return got[i] < got[j] })
	want := []uint32{1, 2, 3, 4, 5, 6, 7, 8}
	if len(got) != len(want) {
		t.Fatalf("released %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("released %v, want %v", got, want)
		}
	}
}
