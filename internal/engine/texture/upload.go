package texture

import (
	"image"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/midgard-ocean/internal/logger"
)

// EXT_texture_filter_anisotropic; not part of the 4.1 core bindings.
const (
	textureMaxAnisotropy    = 0x84FE
	maxTextureMaxAnisotropy = 0x84FF
)

// DefaultAnisotropy is the anisotropic filtering level requested for ocean
// textures. Drivers clamp it to their maximum.
const DefaultAnisotropy = 8

// Upload creates a repeating, trilinear-mipmapped 2D texture from img.
func Upload(img *image.RGBA, anisotropy float32) uint32 {
	var texID uint32
	gl.GenTextures(1, &texID)
	gl.BindTexture(gl.TEXTURE_2D, texID)

	w, h := int32(img.Bounds().Dx()), int32(img.Bounds().Dy())
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, w, h, 0, gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&img.Pix[0]))
	gl.GenerateMipmap(gl.TEXTURE_2D)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	if anisotropy > 1 {
		var maxAniso float32
		gl.GetFloatv(maxTextureMaxAnisotropy, &maxAniso)
		if maxAniso > 0 {
			if anisotropy > maxAniso {
				anisotropy = maxAniso
			}
			gl.TexParameterf(gl.TEXTURE_2D, textureMaxAnisotropy, anisotropy)
		}
	}

	gl.BindTexture(gl.TEXTURE_2D, 0)
	return texID
}

// GL entry points UploadFrameSet goes through; swapped out in tests.
var (
	uploadTexture   = Upload
	releaseTextures = deleteTextures
)

// UploadFrameSet uploads every decoded image and returns the handles. On
// error nothing it uploaded is left alive.
func UploadFrameSet(imgs *FrameImages, anisotropy float32) (*FrameSet, error) {
	heights := make([]uint32, len(imgs.Heights))
	normals := make([]uint32, len(imgs.Normals))
	for i := range imgs.Heights {
		heights[i] = uploadTexture(imgs.Heights[i], anisotropy)
	}
	for i := range imgs.Normals {
		normals[i] = uploadTexture(imgs.Normals[i], anisotropy)
	}
	surface := uploadTexture(imgs.Surface, anisotropy)
	rippleHeight := uploadTexture(imgs.RippleHeight, anisotropy)
	rippleNormal := uploadTexture(imgs.RippleNormal, anisotropy)

	fs, err := NewFrameSet(heights, normals, surface, rippleHeight, rippleNormal)
	if err != nil {
		uploaded := append(append(heights, normals...), surface, rippleHeight, rippleNormal)
		releaseTextures(uploaded)
		return nil, err
	}

	logger.Info("ocean textures uploaded",
		zap.Int("frames", fs.Len()),
		zap.Float32("anisotropy", anisotropy),
	)
	return fs, nil
}

// Delete releases every texture in the set.
func (f *FrameSet) Delete() {
	releaseTextures(f.all())
	f.heights = nil
	f.normals = nil
	f.surface, f.rippleHeight, f.rippleNormal = 0, 0, 0
}

func deleteTextures(ids []uint32) {
	live := ids[:0:0]
	for _, id := range ids {
		if id != 0 {
			live = append(live, id)
		}
	}
	if len(live) > 0 {
		gl.DeleteTextures(int32(len(live)), &live[0])
	}
}
