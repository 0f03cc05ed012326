package storage_test

import (
	"context"
	"testing"

	"thumbnail-manager/core/storage"
	"thumbnail-manager/core/storage/memstore"
	"thumbnail-manager/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReadObject(t *testing.T) {
	ctx := context.Background()
	store := memstore.New("photos")
	store.Add("photos", "owners/1/a.jpg", []byte("hello"), "image/jpeg")

	t.Run("Reads content and type", func(t *testing.T) {
		data, ct, err := storage.ReadObject(ctx, store, "photos", "owners/1/a.jpg", 0)
		require.NoError(t, err)
		assert.Equal(t, []byte("hello"), data)
		assert.Equal(t, "image/jpeg", ct)
	})

	t.Run("Limit exceeded", func(t *testing.T) {
		_, _, err := storage.ReadObject(ctx, store, "photos", "owners/1/a.jpg", 4)
		assert.ErrorIs(t, err, storage.ErrTooLarge)
	})

	t.Run("Limit equal to size", func(t *testing.T) {
		data, _, err := storage.ReadObject(ctx, store, "photos", "owners/1/a.jpg", 5)
		require.NoError(t, err)
		assert.Len(t, data, 5)
	})

	t.Run("Missing object", func(t *testing.T) {
		_, _, err := storage.ReadObject(ctx, store, "photos", "owners/1/missing.jpg", 0)
		assert.Error(t, err)
		assert.True(t, storage.IsNotFound(err))
	})
}

func TestExists(t *testing.T) {
	ctx := context.Background()

	t.Run("Present and absent", func(t *testing.T) {
		store := memstore.New("photos")
		store.Add("photos", "k", []byte("x"), "")

		ok, err := storage.Exists(ctx, store, "photos", "k")
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = storage.Exists(ctx, store, "photos", "other")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("Other errors propagate", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("StatObject", mock.Anything, "photos", "k", mock.Anything).
			Return(minio.ObjectInfo{}, minio.ErrorResponse{Code: "AccessDenied"})

		ok, err := storage.Exists(ctx, client, "photos", "k")
		assert.Error(t, err)
		assert.False(t, ok)
	})
}

func TestPutBytes(t *testing.T) {
	store := memstore.New("photos")

	err := storage.PutBytes(context.Background(), store, "photos", "d.webp", []byte{1, 2}, "image/webp", "max-age=31536000")
	require.NoError(t, err)

	obj, ok := store.Get("photos", "d.webp")
	require.True(t, ok)
	assert.Equal(t, "image/webp", obj.ContentType)
	assert.Equal(t, "max-age=31536000", obj.CacheControl)
	assert.Equal(t, []string{"d.webp"}, store.Puts())
}
