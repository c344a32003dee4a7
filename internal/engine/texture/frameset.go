package texture

import (
	"errors"
	"fmt"
	"image"
	"io/fs"
)

// ErrFrameMismatch is returned when height and normal frames disagree.
var ErrFrameMismatch = errors.New("texture: height and normal frames do not match")

// Layout describes where the ocean textures live inside an asset tree.
// Frame patterns take a single %d verb, numbered from FirstIndex.
type Layout struct {
	HeightPattern string `yaml:"height_pattern"`
	NormalPattern string `yaml:"normal_pattern"`
	FrameCount    int    `yaml:"frame_count"`
	FirstIndex    int    `yaml:"first_index"`
	Surface       string `yaml:"surface"`
	RippleHeight  string `yaml:"ripple_height"`
	RippleNormal  string `yaml:"ripple_normal"`
}

// DefaultLayout returns the layout of the bundled ocean textures.
func DefaultLayout() Layout {
	return Layout{
		HeightPattern: "heights/%d.png",
		NormalPattern: "normals/%d.png",
		FrameCount:    13,
		FirstIndex:    1,
		Surface:       "water.jpg",
		RippleHeight:  "wavesHeight.jpg",
		RippleNormal:  "wavesNormal.jpg",
	}
}

// HeightPath returns the path of height frame i (zero based).
func (l Layout) HeightPath(i int) string {
	return fmt.Sprintf(l.HeightPattern, i+l.FirstIndex)
}

// NormalPath returns the path of normal frame i (zero based).
func (l Layout) NormalPath(i int) string {
	return fmt.Sprintf(l.NormalPattern, i+l.FirstIndex)
}

// FrameImages holds decoded ocean textures before upload.
type FrameImages struct {
	Heights      []*image.RGBA
	Normals      []*image.RGBA
	Surface      *image.RGBA
	RippleHeight *image.RGBA
	RippleNormal *image.RGBA
}

// LoadImages reads and decodes every texture named by layout from fsys.
func LoadImages(fsys fs.FS, layout Layout) (*FrameImages, error) {
	if layout.FrameCount < 2 {
		return nil, fmt.Errorf("texture: need at least 2 frames, layout has %d", layout.FrameCount)
	}

	imgs := &FrameImages{
		Heights: make([]*image.RGBA, layout.FrameCount),
		Normals: make([]*image.RGBA, layout.FrameCount),
	}

	var err error
	for i := 0; i < layout.FrameCount; i++ {
		if imgs.Heights[i], err = loadImage(fsys, layout.HeightPath(i)); err != nil {
			return nil, err
		}
		if imgs.Normals[i], err = loadImage(fsys, layout.NormalPath(i)); err != nil {
			return nil, err
		}
		hb, nb := imgs.Heights[i].Bounds(), imgs.Normals[i].Bounds()
		if hb != nb {
			return nil, fmt.Errorf("%w: frame %d height %v, normal %v", ErrFrameMismatch, i, hb.Size(), nb.Size())
		}
	}

	if imgs.Surface, err = loadImage(fsys, layout.Surface); err != nil {
		return nil, err
	}
	if imgs.RippleHeight, err = loadImage(fsys, layout.RippleHeight); err != nil {
		return nil, err
	}
	if imgs.RippleNormal, err = loadImage(fsys, layout.RippleNormal); err != nil {
		return nil, err
	}
	return imgs, nil
}

func loadImage(fsys fs.FS, name string) (*image.RGBA, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("reading texture: %w", err)
	}
	img, err := Decode(data, name)
	if err != nil {
		return nil, err
	}
	return ToRGBA(img), nil
}

// FrameSet holds the uploaded ocean textures. It satisfies the ocean
// package's TextureProvider.
type FrameSet struct {
	heights      []uint32
	normals      []uint32
	surface      uint32
	rippleHeight uint32
	rippleNormal uint32
}

// NewFrameSet wraps already-created texture handles.
func NewFrameSet(heights, normals []uint32, surface, rippleHeight, rippleNormal uint32) (*FrameSet, error) {
	if len(heights) != len(normals) {
		return nil, fmt.Errorf("%w: %d heights, %d normals", ErrFrameMismatch, len(heights), len(normals))
	}
	return &FrameSet{
		heights:      heights,
		normals:      normals,
		surface:      surface,
		rippleHeight: rippleHeight,
		rippleNormal: rippleNormal,
	}, nil
}

// HeightFrames returns the height map handles in sequence order.
func (f *FrameSet) HeightFrames() []uint32 { return f.heights }

// NormalFrames returns the normal map handles in sequence order.
func (f *FrameSet) NormalFrames() []uint32 { return f.normals }

// Surface returns the surface colour texture.
func (f *FrameSet) Surface() uint32 { return f.surface }

// RippleHeight returns the small-scale ripple height texture.
func (f *FrameSet) RippleHeight() uint32 { return f.rippleHeight }

// RippleNormal returns the small-scale ripple normal texture.
func (f *FrameSet) RippleNormal() uint32 { return f.rippleNormal }

// Len returns the number of frames.
func (f *FrameSet) Len() int { return len(f.heights) }

// all returns every handle in the set.
func (f *FrameSet) all() []uint32 {
	out := make([]uint32, 0, 2*len(f.heights)+3)
	out = append(out, f.heights...)
	out = append(out, f.normals...)
	return append(out, f.surface, f.rippleHeight, f.rippleNormal)
}
