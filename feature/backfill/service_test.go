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

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.DelayMS = 0
	return cfg
}

func TestService_DryRun(t *testing.T) {
	store := memstore.New(testBucket)
	seedOriginals(t, store, 50)

	svc := NewService(store, testBucket, testConfig(), thumbnail.DefaultConfig(), nil, nil, zap.NewNop())
	res, err := svc.Run(context.Background(), Options{DryRun: true})

	require.NoError(t, err)
	assert.True(t, res.DryRun)
	assert.Equal(t, 50, res.TotalImages)
	assert.Len(t, res.SampleImages, 20)
	assert.Equal(t, 50, res.Scan.Missing)
	assert.Empty(t, store.Puts())
}

func TestService_Run(t *testing.T) {
	store := memstore.New(testBucket)
	keys := seedOriginals(t, store, 6)
	// already complete: only the probe derivative is checked
	store.Add(testBucket, thumbnail.DerivativeKey(keys[0], thumbnail.ProbeVariant), []byte("x"), thumbnail.ContentType)

	svc := NewService(store, testBucket, testConfig(), thumbnail.DefaultConfig(), localStrategy(t, store), nil, zap.NewNop())
	res, err := svc.Run(context.Background(), Options{BatchSize: 2})

	require.NoError(t, err)
	assert.Equal(t, Stats{Total: 5, Successful: 5}, res.Stats)
	assert.Equal(t, 1, res.Scan.Present)

	// a second run finds nothing left to do
	again, err := svc.Run(context.Background(), Options{})
	require.NoError(t, err)
	assert.Equal(t, Stats{}, again.Stats)
}

func TestService_MaxImages(t *testing.T) {
	store := memstore.New(testBucket)
	seedOriginals(t, store, 10)
	inv := &fakeInvoker{}

	svc := NewService(store, testBucket, testConfig(), thumbnail.DefaultConfig(), NewRemoteDelegate(inv, zap.NewNop()), nil, zap.NewNop())
	res, err := svc.Run(context.Background(), Options{MaxImages: 4})

	require.NoError(t, err)
	assert.Equal(t, 4, res.Stats.Total)
	assert.Equal(t, ModeRemote, res.Mode)
	assert.Equal(t, 4, inv.Calls())
	assert.Empty(t, store.Puts())
}

func TestService_SetupErrors(t *testing.T) {
	store := memstore.New(testBucket)

	_, err := NewService(store, "", testConfig(), thumbnail.DefaultConfig(), nil, nil, zap.NewNop()).
		Run(context.Background(), Options{DryRun: true})
	assert.ErrorIs(t, err, ErrNoBucket)

	_, err = NewService(store, testBucket, testConfig(), thumbnail.DefaultConfig(), nil, nil, zap.NewNop()).
		Run(context.Background(), Options{})
	assert.ErrorIs(t, err, ErrNoRenderer)
}

func TestService_ListErrorAborts(t *testing.T) {
	store := memstore.New(testBucket)
	seedOriginals(t, store, 3)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	svc := NewService(store, testBucket, testConfig(), thumbnail.DefaultConfig(), localStrategy(t, store), nil, zap.NewNop())
	_, err := svc.Run(ctx, Options{})
	assert.ErrorIs(t, err, context.Canceled)
}
