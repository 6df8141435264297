package blobstore

import (
	"context"

	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

// ThrottleConfig holds the limits enforced by Throttled.
type ThrottleConfig struct {
	// BytesPerSec is the maximum transfer throughput across Put and Get.
	// If 0, unlimited.
	BytesPerSec int64

	// MaxConcurrent is the maximum number of in-flight store operations.
	// If 0, unlimited.
	MaxConcurrent int64
}

// Throttled decorates a BlobStore with a byte-rate limit and a
// concurrency cap. Use it for background snapshot traffic that must not
// starve foreground IO.
type Throttled struct {
	inner BlobStore
	sem   *semaphore.Weighted // nil if unlimited
	lim   *rate.Limiter       // nil if unlimited
	burst int
}

// NewThrottled wraps inner with the given limits.
func NewThrottled(inner BlobStore, cfg ThrottleConfig) *Throttled {
	t := &Throttled{inner: inner}
	if cfg.MaxConcurrent > 0 {
		t.sem = semaphore.NewWeighted(cfg.MaxConcurrent)
	}
	if cfg.BytesPerSec > 0 {
		t.lim = rate.NewLimiter(rate.Limit(cfg.BytesPerSec), int(cfg.BytesPerSec))
		t.burst = int(cfg.BytesPerSec)
	}
	return t
}

func (t *Throttled) acquire(ctx context.Context) error {
	if t.sem == nil {
		return nil
	}
	return t.sem.Acquire(ctx, 1)
}

func (t *Throttled) release() {
	if t.sem != nil {
		t.sem.Release(1)
	}
}

// waitBytes blocks until the rate limiter admits n bytes. Transfers
// larger than the burst window are admitted in burst-sized steps.
func (t *Throttled) waitBytes(ctx context.Context, n int) error {
	if t.lim == nil {
		return nil
	}
	for n > 0 {
		step := n
		if step > t.burst {
			step = t.burst
		}
		if err := t.lim.WaitN(ctx, step); err != nil {
			return err
		}
		n -= step
	}
	return nil
}

// Put writes a blob through the inner store after the rate limiter
// admits its bytes.
func (t *Throttled) Put(ctx context.Context, name string, data []byte) error {
	if err := t.acquire(ctx); err != nil {
		return err
	}
	defer t.release()

	if err := t.waitBytes(ctx, len(data)); err != nil {
		return err
	}
	return t.inner.Put(ctx, name, data)
}

// Get fetches a blob through the inner store; the fetched bytes are
// charged against the rate limiter, pacing sustained read throughput.
func (t *Throttled) Get(ctx context.Context, name string) ([]byte, error) {
	if err := t.acquire(ctx); err != nil {
		return nil, err
	}
	defer t.release()

	data, err := t.inner.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	if err := t.waitBytes(ctx, len(data)); err != nil {
		return nil, err
	}
	return data, nil
}

// Delete removes a blob through the inner store.
func (t *Throttled) Delete(ctx context.Context, name string) error {
	if err := t.acquire(ctx); err != nil {
		return err
	}
	defer t.release()
	return t.inner.Delete(ctx, name)
}

// List enumerates blobs through the inner store.
func (t *Throttled) List(ctx context.Context, prefix string) ([]string, error) {
	if err := t.acquire(ctx); err != nil {
		return nil, err
	}
	defer t.release()
	return t.inner.List(ctx, prefix)
}
