package thumbnail

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"io"
	"testing"

	"thumbnail-manager/core/storage/memstore"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testBucket = "test-bucket"

// pngEncoder stands in for the WebP codec so tests run without cgo.
type pngEncoder struct{}

func (pngEncoder) Encode(w io.Writer, img image.Image, _ int) error {
	return png.Encode(w, img)
}

func solidPNG(t *testing.T, w, h int, c color.Color) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func newTestProcessor(store *memstore.Store) *Processor {
	logger := zap.NewNop()
	gen := NewGenerator(store, NewRenderer(pngEncoder{}, DefaultQuality), DefaultConfig(), logger)
	return NewProcessor(store, gen, DefaultConfig(), logger)
}
