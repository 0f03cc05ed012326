package thumbnail

import (
	"bytes"
	"image"
	"image/color"
	"io"
	"math"

	"github.com/disintegration/imaging"
)

const (
	// DefaultQuality is the lossy quality used for every derivative.
	DefaultQuality = 85
	// ContentType is the MIME type of every derivative.
	ContentType = "image/webp"
	// CacheControl marks derivatives as immutable for a year.
	CacheControl = "max-age=31536000"
)

// Encoder writes an image in the derivative output format.
type Encoder interface {
	Encode(w io.Writer, img image.Image, quality int) error
}

// Geometry is the cover-fit plan for one source/target pair.
type Geometry struct {
	Scale        float64
	ScaledWidth  int
	ScaledHeight int
	// Crop is the target-sized window inside the scaled image.
	Crop image.Rectangle
}

// CoverGeometry computes the scale that makes a w x h source cover a tw x th
// box, and the centered crop window. Scaled sizes never undershoot the target.
func CoverGeometry(w, h, tw, th int) Geometry {
	scale := math.Max(float64(tw)/float64(w), float64(th)/float64(h))

	nw := int(math.Round(float64(w) * scale))
	nh := int(math.Round(float64(h) * scale))
	if nw < tw {
		nw = tw
	}
	if nh < th {
		nh = th
	}

	left := (nw - tw) / 2
	top := (nh - th) / 2

	return Geometry{
		Scale:        scale,
		ScaledWidth:  nw,
		ScaledHeight: nh,
		Crop:         image.Rect(left, top, left+tw, top+th),
	}
}

// CoverFit scales img to cover tw x th with Lanczos resampling, center-crops
// it to exactly that size and flattens any transparency onto white.
func CoverFit(img image.Image, tw, th int) (*image.NRGBA, error) {
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, ErrInvalidImage.New("empty image %dx%d", b.Dx(), b.Dy())
	}
	if tw <= 0 || th <= 0 {
		return nil, ErrInvalidImage.New("invalid target %dx%d", tw, th)
	}

	g := CoverGeometry(b.Dx(), b.Dy(), tw, th)

	scaled := img
	if g.ScaledWidth != b.Dx() || g.ScaledHeight != b.Dy() {
		scaled = imaging.Resize(img, g.ScaledWidth, g.ScaledHeight, imaging.Lanczos)
	}

	cropped := imaging.Crop(scaled, g.Crop.Add(scaled.Bounds().Min))
	return flatten(cropped), nil
}

// flatten composites img over an opaque white background.
func flatten(img *image.NRGBA) *image.NRGBA {
	if img.Opaque() {
		return img
	}
	b := img.Bounds()
	bg := imaging.New(b.Dx(), b.Dy(), color.White)
	return imaging.Overlay(bg, img, image.Pt(0, 0), 1.0)
}

// Renderer turns decoded originals into encoded derivatives.
type Renderer struct {
	encoder Encoder
	quality int
}

// NewRenderer creates a renderer that encodes with enc at the given quality.
func NewRenderer(enc Encoder, quality int) *Renderer {
	if quality <= 0 || quality > 100 {
		quality = DefaultQuality
	}
	return &Renderer{encoder: enc, quality: quality}
}

// Render produces the encoded tw x th derivative of img.
func (r *Renderer) Render(img image.Image, tw, th int) ([]byte, error) {
	out, err := CoverFit(img, tw, th)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := r.encoder.Encode(&buf, out, r.quality); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
