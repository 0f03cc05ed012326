package thumbnail

import (
	"bytes"
	"fmt"
	"image"
)

// ProbeLocal reports whether this binary can encode derivatives itself.
// It returns the local encoder after a one-pixel self-test.
func ProbeLocal() (Encoder, error) {
	enc := localEncoder()
	if enc == nil {
		return nil, ErrCodecUnavailable
	}

	var buf bytes.Buffer
	if err := enc.Encode(&buf, image.NewNRGBA(image.Rect(0, 0, 1, 1)), DefaultQuality); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCodecUnavailable, err)
	}
	return enc, nil
}
