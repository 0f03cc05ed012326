//go:build cgo

package thumbnail

import (
	"image"
	"io"

	"github.com/chai2010/webp"
)

// webpEncoder encodes through libwebp.
type webpEncoder struct{}

func (webpEncoder) Encode(w io.Writer, img image.Image, quality int) error {
	return webp.Encode(w, img, &webp.Options{
		Lossless: false,
		Quality:  float32(quality),
	})
}

func localEncoder() Encoder {
	return webpEncoder{}
}
