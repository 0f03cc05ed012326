//go:build !cgo

package thumbnail

// libwebp needs cgo; pure-Go builds delegate rendering.
func localEncoder() Encoder {
	return nil
}
