package thumbnail

import (
	"bytes"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/disintegration/imaging"
	"github.com/rwcarlsen/goexif/exif"
	"golang.org/x/image/riff"
	_ "golang.org/x/image/webp"
)

// DefaultMaxPixels caps width*height of a decodable original. Past this a
// small compressed file can expand to gigabytes in memory.
const DefaultMaxPixels = 89_478_485

var (
	webpForm  = riff.FourCC{'W', 'E', 'B', 'P'}
	exifChunk = riff.FourCC{'E', 'X', 'I', 'F'}
)

// Decode parses an original and rotates it so that its pixel "up" matches the
// orientation recorded in EXIF. Dimensions are read from the header first and
// anything over maxPixels is refused before the pixels are decoded. A
// maxPixels of zero or less means DefaultMaxPixels. Failures are classed as
// ErrInvalidImage.
func Decode(data []byte, maxPixels int) (image.Image, error) {
	if maxPixels <= 0 {
		maxPixels = DefaultMaxPixels
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, ErrInvalidImage.Wrap(err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, ErrInvalidImage.New("empty image")
	}
	if int64(cfg.Width)*int64(cfg.Height) > int64(maxPixels) {
		return nil, ErrInvalidImage.New("%s is %dx%d, over the %d pixel limit", format, cfg.Width, cfg.Height, maxPixels)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, ErrInvalidImage.Wrap(err)
	}
	if b := img.Bounds(); b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, ErrInvalidImage.New("empty image")
	}
	return applyOrientation(img, readOrientation(data)), nil
}

// readOrientation returns the EXIF orientation tag, or 1 when absent. JPEG
// carries EXIF in APP1; WebP in a RIFF EXIF chunk.
func readOrientation(data []byte) int {
	src := data
	if payload, ok := webpExif(data); ok {
		src = payload
	}

	x, err := exif.Decode(bytes.NewReader(src))
	if err != nil {
		return 1
	}
	tag, err := x.Get(exif.Orientation)
	if err != nil {
		return 1
	}
	v, err := tag.Int(0)
	if err != nil || v < 1 || v > 8 {
		return 1
	}
	return v
}

// webpExif returns the EXIF chunk of a WebP container. The payload is a TIFF
// header, sometimes behind an "Exif\0\0" prefix; goexif accepts both.
func webpExif(data []byte) ([]byte, bool) {
	form, chunks, err := riff.NewReader(bytes.NewReader(data))
	if err != nil || form != webpForm {
		return nil, false
	}
	for {
		id, n, body, err := chunks.Next()
		if err != nil {
			return nil, false
		}
		if id != exifChunk {
			continue
		}
		payload, err := io.ReadAll(io.LimitReader(body, int64(n)))
		if err != nil {
			return nil, false
		}
		return payload, true
	}
}

// applyOrientation transforms an image according to EXIF orientation value.
func applyOrientation(img image.Image, orientation int) image.Image {
	switch orientation {
	case 2:
		return imaging.FlipH(img)
	case 3:
		return imaging.Rotate180(img)
	case 4:
		return imaging.FlipV(img)
	case 5:
		return imaging.Transpose(img)
	case 6:
		return imaging.Rotate270(img)
	case 7:
		return imaging.Transverse(img)
	case 8:
		return imaging.Rotate90(img)
	default:
		return img
	}
}
