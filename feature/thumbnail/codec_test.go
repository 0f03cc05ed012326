package thumbnail

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProbeLocal(t *testing.T) {
	enc, err := ProbeLocal()
	if err != nil {
		// pure-Go builds have no local encoder
		assert.True(t, errors.Is(err, ErrCodecUnavailable))
		assert.Nil(t, enc)
		return
	}
	assert.NotNil(t, enc)
}
