package storage

import (
	"sync"
	"sync/atomic"
	"testing"

	"thumbnail-manager/core/storage/memstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShared_BuildsOnce(t *testing.T) {
	ResetShared()
	defer ResetShared()

	var built int32
	orig := newClientFunc
	newClientFunc = func(cfg Config) (Client, error) {
		atomic.AddInt32(&built, 1)
		return memstore.New(), nil
	}
	defer func() { newClientFunc = orig }()

	cfg := Config{Endpoint: "localhost:9000", AccessKey: "k"}

	var wg sync.WaitGroup
	clients := make([]Client, 16)
	for i := range clients {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c, err := Shared(cfg)
			require.NoError(t, err)
			clients[i] = c
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&built))
	for _, c := range clients {
		assert.Same(t, clients[0], c)
	}
}

func TestShared_DistinctConfigs(t *testing.T) {
	ResetShared()
	defer ResetShared()

	a, err := Shared(Config{Endpoint: "a:9000"})
	require.NoError(t, err)
	b, err := Shared(Config{Endpoint: "b:9000"})
	require.NoError(t, err)
	assert.NotSame(t, a, b)
}
