package thumbnail

import (
	"context"
	"image/color"
	"testing"

	"thumbnail-manager/core/storage/memstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const original = "owners/42/plant/7/abc-123.png"

func TestGenerateAll(t *testing.T) {
	store := memstore.New(testBucket)
	gen := NewGenerator(store, NewRenderer(pngEncoder{}, DefaultQuality), DefaultConfig(), zap.NewNop())

	keys, err := gen.GenerateAll(context.Background(), testBucket, original, solidPNG(t, 640, 480, color.RGBA{R: 200, A: 255}))
	require.NoError(t, err)
	assert.Equal(t, VariantKeys(original), keys)

	for _, k := range keys {
		obj, ok := store.Get(testBucket, k)
		require.True(t, ok, k)
		assert.Equal(t, ContentType, obj.ContentType)
		assert.Equal(t, CacheControl, obj.CacheControl)
		assert.NotEmpty(t, obj.Data)
	}
}

func TestGenerateAll_Idempotent(t *testing.T) {
	store := memstore.New(testBucket)
	gen := NewGenerator(store, NewRenderer(pngEncoder{}, DefaultQuality), DefaultConfig(), zap.NewNop())
	content := solidPNG(t, 100, 100, color.White)

	first, err := gen.GenerateAll(context.Background(), testBucket, original, content)
	require.NoError(t, err)
	firstData, _ := store.Get(testBucket, first[0])

	second, err := gen.GenerateAll(context.Background(), testBucket, original, content)
	require.NoError(t, err)
	secondData, _ := store.Get(testBucket, second[0])

	assert.Equal(t, first, second)
	assert.Equal(t, firstData.Data, secondData.Data)
}

func TestGenerateAll_PartialFailure(t *testing.T) {
	store := memstore.New(testBucket)
	failing := DerivativeKey(original, "thumb-200")
	store.PutErr = map[string]error{failing: assert.AnError}
	gen := NewGenerator(store, NewRenderer(pngEncoder{}, DefaultQuality), DefaultConfig(), zap.NewNop())

	keys, err := gen.GenerateAll(context.Background(), testBucket, original, solidPNG(t, 50, 50, color.White))
	require.NoError(t, err)
	assert.Len(t, keys, len(Variants)-1)
	assert.NotContains(t, keys, failing)

	_, ok := store.Get(testBucket, failing)
	assert.False(t, ok)
}

func TestGenerateAll_InvalidImage(t *testing.T) {
	store := memstore.New(testBucket)
	gen := NewGenerator(store, NewRenderer(pngEncoder{}, DefaultQuality), DefaultConfig(), zap.NewNop())

	keys, err := gen.GenerateAll(context.Background(), testBucket, original, []byte("garbage"))
	assert.True(t, ErrInvalidImage.Has(err))
	assert.Empty(t, keys)
	assert.Empty(t, store.Puts())
}

func TestGenerateAll_NoRenderer(t *testing.T) {
	gen := NewGenerator(memstore.New(testBucket), nil, DefaultConfig(), zap.NewNop())
	_, err := gen.GenerateAll(context.Background(), testBucket, original, nil)
	assert.ErrorIs(t, err, ErrNoRenderer)
}
