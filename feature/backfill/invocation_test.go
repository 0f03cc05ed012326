package backfill

import (
	"context"
	"testing"

	"thumbnail-manager/core/storage/memstore"
	"thumbnail-manager/feature/thumbnail"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestService_Invoke(t *testing.T) {
	t.Run("No Bucket", func(t *testing.T) {
		svc := NewService(memstore.New(testBucket), "", testConfig(), thumbnail.DefaultConfig(), nil, nil, zap.NewNop())
		resp := svc.Invoke(context.Background(), Options{})
		assert.Equal(t, 400, resp.StatusCode)
	})

	t.Run("No Renderer", func(t *testing.T) {
		svc := NewService(memstore.New(testBucket), testBucket, testConfig(), thumbnail.DefaultConfig(), nil, nil, zap.NewNop())
		resp := svc.Invoke(context.Background(), Options{})
		assert.Equal(t, 503, resp.StatusCode)
	})

	t.Run("Dry Run", func(t *testing.T) {
		store := memstore.New(testBucket)
		seedOriginals(t, store, 3)
		svc := NewService(store, testBucket, testConfig(), thumbnail.DefaultConfig(), nil, nil, zap.NewNop())

		resp := svc.Invoke(context.Background(), Options{DryRun: true})
		require.Equal(t, 200, resp.StatusCode)
		res, ok := resp.Body.(*Result)
		require.True(t, ok)
		assert.Equal(t, 3, res.TotalImages)
	})
}
