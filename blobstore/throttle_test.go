package blobstore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// blockingStore parks Put calls until release is closed, so tests can
// observe a held concurrency slot.
type blockingStore struct {
	BlobStore
	entered chan struct{}
	release chan struct{}
}

func (b *blockingStore) Put(ctx context.Context, name string, data []byte) error {
	b.entered <- struct{}{}
	select {
	case <-b.release:
	case <-ctx.Done():
		return ctx.Err()
	}
	return b.BlobStore.Put(ctx, name, data)
}

func TestThrottled_Passthrough(t *testing.T) {
	ctx := context.Background()

	// Zero limits mean unlimited; the decorator must be transparent.
	store := NewThrottled(NewMemory(), ThrottleConfig{})

	require.NoError(t, store.Put(ctx, "a.bin", []byte("alpha")))
	require.NoError(t, store.Put(ctx, "b.bin", []byte("beta")))

	got, err := store.Get(ctx, "a.bin")
	require.NoError(t, err)
	assert.Equal(t, []byte("alpha"), got)

	names, err := store.List(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"a.bin", "b.bin"}, names)

	require.NoError(t, store.Delete(ctx, "a.bin"))
	_, err = store.Get(ctx, "a.bin")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestThrottled_ConcurrencyLimit(t *testing.T) {
	ctx := context.Background()
	inner := &blockingStore{
		BlobStore: NewMemory(),
		entered:   make(chan struct{}, 1),
		release:   make(chan struct{}),
	}
	store := NewThrottled(inner, ThrottleConfig{MaxConcurrent: 1})

	errCh := make(chan error, 1)
	go func() {
		errCh <- store.Put(ctx, "slow.bin", []byte("payload"))
	}()
	<-inner.entered // the goroutine now holds the only slot

	// A second operation cannot acquire a slot before its deadline.
	shortCtx, cancel := context.WithTimeout(ctx, 20*time.Millisecond)
	defer cancel()
	err := store.Put(shortCtx, "blocked.bin", []byte("x"))
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	close(inner.release)
	require.NoError(t, <-errCh)

	got, err := store.Get(ctx, "slow.bin")
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), got)
}

func TestThrottled_RateLimit(t *testing.T) {
	ctx := context.Background()
	inner := NewMemory()
	store := NewThrottled(inner, ThrottleConfig{BytesPerSec: 1024})

	// Within the burst window: admitted immediately.
	require.NoError(t, store.Put(ctx, "small.bin", make([]byte, 512)))

	// Far beyond the burst window: cannot be admitted before the deadline.
	shortCtx, cancel := context.WithTimeout(ctx, 30*time.Millisecond)
	defer cancel()
	err := store.Put(shortCtx, "large.bin", make([]byte, 8192))
	require.Error(t, err)

	// The rejected write never reached the inner store.
	_, err = inner.Get(ctx, "large.bin")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestThrottled_GetPacesReads(t *testing.T) {
	ctx := context.Background()
	inner := NewMemory()
	require.NoError(t, inner.Put(ctx, "blob.bin", make([]byte, 4096)))

	store := NewThrottled(inner, ThrottleConfig{BytesPerSec: 1024})

	// The fetched bytes exceed what the limiter admits before the deadline.
	shortCtx, cancel := context.WithTimeout(ctx, 30*time.Millisecond)
	defer cancel()
	_, err := store.Get(shortCtx, "blob.bin")
	require.Error(t, err)

	// With no deadline pressure a small read passes.
	require.NoError(t, inner.Put(ctx, "tiny.bin", make([]byte, 64)))
	got, err := store.Get(ctx, "tiny.bin")
	require.NoError(t, err)
	assert.Len(t, got, 64)
}
