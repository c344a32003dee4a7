package texture

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

// TGA image types.
const (
	TGATypeTrueColor    = 2
	TGATypeGray         = 3
	TGATypeTrueColorRLE = 10
	TGATypeGrayRLE      = 11
)

var errTGATruncated = errors.New("tga: data truncated")

// DecodeTGA decodes an uncompressed or RLE-compressed TGA image.
// True-colour (24/32 bit) and 8-bit grayscale images are supported; grayscale
// is common for baked height maps.
func DecodeTGA(data []byte) (image.Image, error) {
	if len(data) < 18 {
		return nil, errTGATruncated
	}

	idLength := int(data[0])
	colorMapType := data[1]
	imageType := data[2]
	width := int(data[12]) | int(data[13])<<8
	height := int(data[14]) | int(data[15])<<8
	bpp := int(data[16])
	topToBottom := data[17]&0x20 != 0

	if colorMapType != 0 {
		return nil, fmt.Errorf("tga: color-mapped images not supported")
	}

	gray := imageType == TGATypeGray || imageType == TGATypeGrayRLE
	rle := imageType == TGATypeTrueColorRLE || imageType == TGATypeGrayRLE
	switch {
	case imageType != TGATypeTrueColor && imageType != TGATypeTrueColorRLE && !gray:
		return nil, fmt.Errorf("tga: unsupported image type %d", imageType)
	case gray && bpp != 8:
		return nil, fmt.Errorf("tga: unsupported grayscale depth %d", bpp)
	case !gray && bpp != 24 && bpp != 32:
		return nil, fmt.Errorf("tga: unsupported bit depth %d", bpp)
	}

	offset := 18 + idLength
	if offset > len(data) {
		return nil, errTGATruncated
	}
	r := &tgaReader{
		data:        data[offset:],
		img:         image.NewRGBA(image.Rect(0, 0, width, height)),
		width:       width,
		height:      height,
		bytesPerPx:  bpp / 8,
		topToBottom: topToBottom,
	}

	var err error
	if rle {
		err = r.readRLE()
	} else {
		err = r.readRaw()
	}
	if err != nil {
		return nil, err
	}
	return r.img, nil
}

type tgaReader struct {
	data        []byte
	pos         int
	img         *image.RGBA
	width       int
	height      int
	bytesPerPx  int
	topToBottom bool
}

// pixel reads one BGR(A) or gray pixel at the cursor.
func (r *tgaReader) pixel() (color.RGBA, bool) {
	if r.pos+r.bytesPerPx > len(r.data) {
		return color.RGBA{}, false
	}
	p := r.data[r.pos:]
	r.pos += r.bytesPerPx

	switch r.bytesPerPx {
	case 1:
		return color.RGBA{R: p[0], G: p[0], B: p[0], A: 255}, true
	case 3:
		return color.RGBA{R: p[2], G: p[1], B: p[0], A: 255}, true
	default:
		return color.RGBA{R: p[2], G: p[1], B: p[0], A: p[3]}, true
	}
}

func (r *tgaReader) set(idx int, c color.RGBA) {
	x := idx % r.width
	y := idx / r.width
	if !r.topToBottom {
		y = r.height - 1 - y
	}
	r.img.SetRGBA(x, y, c)
}

func (r *tgaReader) readRaw() error {
	if len(r.data) < r.width*r.height*r.bytesPerPx {
		return errTGATruncated
	}
	for i := 0; i < r.width*r.height; i++ {
		c, _ := r.pixel()
		r.set(i, c)
	}
	return nil
}

func (r *tgaReader) readRLE() error {
	total := r.width * r.height
	idx := 0
	for idx < total {
		if r.pos >= len(r.data) {
			return errTGATruncated
		}
		packet := r.data[r.pos]
		r.pos++
		count := int(packet&0x7F) + 1

		if packet&0x80 != 0 {
			c, ok := r.pixel()
			if !ok {
				return errTGATruncated
			}
			for i := 0; i < count && idx < total; i++ {
				r.set(idx, c)
				idx++
			}
			continue
		}

		for i := 0; i < count && idx < total; i++ {
			c, ok := r.pixel()
			if !ok {
				return errTGATruncated
			}
			r.set(idx, c)
			idx++
		}
	}
	return nil
}
