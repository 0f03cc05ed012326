package backfill

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"sync"
	"testing"
	"time"

	"thumbnail-manager/core/storage/memstore"
	"thumbnail-manager/feature/thumbnail"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testBucket = "test-bucket"

type pngEncoder struct{}

func (pngEncoder) Encode(w io.Writer, img image.Image, _ int) error {
	return png.Encode(w, img)
}

func probeOK() (thumbnail.Encoder, error) { return pngEncoder{}, nil }

func probeMissing() (thumbnail.Encoder, error) { return nil, thumbnail.ErrCodecUnavailable }

func tinyPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 16, 12))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	img.Set(3, 3, color.Black)
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func originalKey(i int) string {
	return fmt.Sprintf("owners/%d/plant/%d/img-%03d.png", i%3, i, i)
}

// seedOriginals stores n valid originals and returns their keys in listing order.
func seedOriginals(t *testing.T, store *memstore.Store, n int) []string {
	t.Helper()
	data := tinyPNG(t)
	keys := make([]string, n)
	for i := 0; i < n; i++ {
		keys[i] = originalKey(i)
		store.Add(testBucket, keys[i], data, "image/png")
	}
	return keys
}

func localStrategy(t *testing.T, store *memstore.Store) Strategy {
	t.Helper()
	s, err := SelectStrategy(store, thumbnail.DefaultConfig(), Capabilities{Probe: probeOK}, zap.NewNop())
	require.NoError(t, err)
	return s
}

// fakeInvoker answers every call with the same summary or error.
type fakeInvoker struct {
	mu      sync.Mutex
	calls   []thumbnail.Notification
	summary thumbnail.EventSummary
	err     error
}

func (f *fakeInvoker) Invoke(ctx context.Context, n thumbnail.Notification) (thumbnail.EventSummary, error) {
	f.mu.Lock()
	f.calls = append(f.calls, n)
	f.mu.Unlock()
	return f.summary, f.err
}

func (f *fakeInvoker) String() string { return "fake" }

func (f *fakeInvoker) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

// funcStrategy adapts a function to Strategy.
type funcStrategy func(ctx context.Context, bucket, key string) thumbnail.Result

func (f funcStrategy) Mode() string { return "test" }

func (f funcStrategy) Process(ctx context.Context, bucket, key string) thumbnail.Result {
	return f(ctx, bucket, key)
}

// recordSleeps replaces the scheduler's sleep with a counter.
func recordSleeps(s *Scheduler) *[]time.Duration {
	var sleeps []time.Duration
	s.sleep = func(ctx context.Context, d time.Duration) error {
		sleeps = append(sleeps, d)
		return ctx.Err()
	}
	return &sleeps
}
