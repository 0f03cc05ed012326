package reconcile

import (
	"context"
	"sync"
	"testing"
	"time"

	"thumbnail-manager/core/storage/memstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCollect(t *testing.T) {
	store := memstore.New(testBucket)
	seed(store, 4, 1)
	store.Add(testBucket, "items/notes.txt", nil, "")

	plan, err := Collect(context.Background(), &Spec{Adapter: mockAdapter{}}, store, testBucket, zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, []string{"items/001.src", "items/002.src", "items/003.src"}, plan.Missing)
	assert.Equal(t, Summary{Listed: 6, Candidates: 4, Present: 1, Missing: 3}, plan.Summary)
	assert.False(t, plan.Built.IsZero())
}

func TestCollect_Empty(t *testing.T) {
	plan, err := Collect(context.Background(), &Spec{Adapter: mockAdapter{}}, memstore.New(testBucket), testBucket, zap.NewNop())
	require.NoError(t, err)
	assert.NotNil(t, plan.Missing)
	assert.Empty(t, plan.Missing)
}

func TestPlan_Sample(t *testing.T) {
	p := &Plan{Missing: []string{"a", "b", "c"}}
	assert.Equal(t, []string{"a", "b"}, p.Sample(2))
	assert.Equal(t, []string{"a", "b", "c"}, p.Sample(10))
	assert.Equal(t, []string{"a", "b", "c"}, p.Sample(0))
}

func TestGetOrCollect_Caches(t *testing.T) {
	store := memstore.New(testBucket)
	seed(store, 3, 0)
	spec := &Spec{Adapter: mockAdapter{}, Prefix: "items/", CacheTTL: time.Minute}
	t.Cleanup(func() { InvalidateCache(spec, testBucket) })

	first, err := GetOrCollect(context.Background(), spec, store, testBucket, zap.NewNop())
	require.NoError(t, err)
	stats := store.Stats()

	second, err := GetOrCollect(context.Background(), spec, store, testBucket, zap.NewNop())
	require.NoError(t, err)
	assert.Same(t, first, second)
	assert.Equal(t, stats, store.Stats())

	InvalidateCache(spec, testBucket)
	third, err := GetOrCollect(context.Background(), spec, store, testBucket, zap.NewNop())
	require.NoError(t, err)
	assert.NotSame(t, first, third)
}

func TestGetOrCollect_Concurrent(t *testing.T) {
	store := memstore.New(testBucket)
	seed(store, 5, 0)
	spec := &Spec{Adapter: mockAdapter{}, Prefix: "items/0", CacheTTL: time.Minute}
	t.Cleanup(func() { InvalidateCache(spec, testBucket) })

	var wg sync.WaitGroup
	plans := make([]*Plan, 8)
	for i := range plans {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			p, err := GetOrCollect(context.Background(), spec, store, testBucket, zap.NewNop())
			assert.NoError(t, err)
			plans[i] = p
		}(i)
	}
	wg.Wait()

	for _, p := range plans {
		assert.Len(t, p.Missing, 5)
	}
}

func TestGetOrCollect_NoCacheWhenLimited(t *testing.T) {
	store := memstore.New(testBucket)
	seed(store, 3, 0)
	spec := &Spec{Adapter: mockAdapter{}, Limit: 1, CacheTTL: time.Minute}

	a, err := GetOrCollect(context.Background(), spec, store, testBucket, zap.NewNop())
	require.NoError(t, err)
	b, err := GetOrCollect(context.Background(), spec, store, testBucket, zap.NewNop())
	require.NoError(t, err)
	assert.NotSame(t, a, b)
	assert.Len(t, a.Missing, 1)
}
