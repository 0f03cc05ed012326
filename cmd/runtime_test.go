package cmd

import (
	"context"
	"image"
	"io"
	"testing"

	"thumbnail-manager/core/storage/memstore"
	"thumbnail-manager/feature/backfill"
	"thumbnail-manager/feature/thumbnail"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type nopEncoder struct{}

func (nopEncoder) Encode(io.Writer, image.Image, int) error { return nil }

type nopInvoker struct{}

func (nopInvoker) Invoke(context.Context, thumbnail.Notification) (thumbnail.EventSummary, error) {
	return thumbnail.EventSummary{}, nil
}

func (nopInvoker) String() string { return "nop" }

func countingSelfTest(enc thumbnail.Encoder, err error) (func() (thumbnail.Encoder, error), *int) {
	calls := 0
	return func() (thumbnail.Encoder, error) {
		calls++
		return enc, err
	}, &calls
}

func TestLocalCapability_SharedByRendererAndStrategy(t *testing.T) {
	store := memstore.New("photos")
	cfg := thumbnail.DefaultConfig()

	t.Run("Available", func(t *testing.T) {
		selfTest, calls := countingSelfTest(nopEncoder{}, nil)
		local := probeLocal(selfTest, zap.NewNop())

		assert.NotNil(t, local.renderer(cfg))
		s, err := backfill.SelectStrategy(store, cfg, local.capabilities(nopInvoker{}), zap.NewNop())
		require.NoError(t, err)
		assert.Equal(t, backfill.ModeLocal, s.Mode())
		assert.Equal(t, 1, *calls)
	})

	t.Run("Unavailable", func(t *testing.T) {
		selfTest, calls := countingSelfTest(nil, thumbnail.ErrCodecUnavailable)
		local := probeLocal(selfTest, zap.NewNop())

		assert.Nil(t, local.renderer(cfg))
		s, err := backfill.SelectStrategy(store, cfg, local.capabilities(nopInvoker{}), zap.NewNop())
		require.NoError(t, err)
		assert.Equal(t, backfill.ModeRemote, s.Mode())

		_, err = backfill.SelectStrategy(store, cfg, local.capabilities(nil), zap.NewNop())
		assert.ErrorIs(t, err, backfill.ErrNoRenderer)
		assert.Equal(t, 1, *calls)
	})
}
