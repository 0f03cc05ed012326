package thumbnail

import (
	"errors"

	"github.com/zeebo/errs"
)

// ErrInvalidImage classifies originals that cannot be decoded or rendered.
var ErrInvalidImage = errs.Class("invalid image format")

// ErrCodecUnavailable is returned by ProbeLocal when the WebP encoder is not
// compiled into this binary or fails its self-test.
var ErrCodecUnavailable = errors.New("local webp encoder unavailable")

// ErrNoRenderer is returned when derivatives are requested from a service
// that was built without a local renderer.
var ErrNoRenderer = errors.New("no local renderer configured")
