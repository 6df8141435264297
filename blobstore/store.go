// Package blobstore abstracts where vector snapshots live.
//
// Snapshots are small immutable objects that are written and read whole,
// so the interface is deliberately object-shaped rather than streaming:
// Put replaces, Get fetches, List enumerates. Backends exist for memory,
// the local filesystem, Amazon S3 and MinIO, plus a throttling decorator
// for background work that must not saturate IO.
package blobstore

import (
	"context"
	"os"
)

// ErrNotFound is returned when a blob does not exist.
//
// Implementations must return an error that satisfies
// errors.Is(err, ErrNotFound). The default maps to os.ErrNotExist.
var ErrNotFound = os.ErrNotExist

// BlobStore stores immutable blobs by name.
//
// Implementations must be safe for concurrent use. Put overwrites
// atomically: a concurrent Get sees either the old bytes or the new,
// never a mix.
type BlobStore interface {
	// Put writes a blob, replacing any previous value.
	Put(ctx context.Context, name string, data []byte) error

	// Get returns the blob's contents. The returned slice is owned by
	// the caller.
	Get(ctx context.Context, name string) ([]byte, error)

	// Delete removes a blob. Deleting an absent blob is not an error.
	Delete(ctx context.Context, name string) error

	// List returns the names of all blobs with the given prefix, sorted.
	List(ctx context.Context, prefix string) ([]string, error)
}
