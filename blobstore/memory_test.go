package blobstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_Lifecycle(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()

	// 1. Put a blob
	data := []byte("alpha payload")
	require.NoError(t, store.Put(ctx, "alpha.bin", data))
	assert.Equal(t, 1, store.Len())

	// 2. Get it back
	got, err := store.Get(ctx, "alpha.bin")
	require.NoError(t, err)
	assert.Equal(t, data, got)

	// 3. Overwrite replaces the previous value
	require.NoError(t, store.Put(ctx, "alpha.bin", []byte("v2")))
	got, err = store.Get(ctx, "alpha.bin")
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), got)
	assert.Equal(t, 1, store.Len())

	// 4. List is sorted
	require.NoError(t, store.Put(ctx, "beta.bin", []byte("b")))
	names, err := store.List(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha.bin", "beta.bin"}, names)

	// 5. Delete
	require.NoError(t, store.Delete(ctx, "alpha.bin"))
	_, err = store.Get(ctx, "alpha.bin")
	assert.ErrorIs(t, err, ErrNotFound)

	// Deleting a missing blob is not an error.
	require.NoError(t, store.Delete(ctx, "alpha.bin"))
}

func TestMemory_DefensiveCopies(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()

	src := []byte{1, 2, 3}
	require.NoError(t, store.Put(ctx, "blob", src))

	// Mutating the source after Put must not affect the stored copy.
	src[0] = 99
	got, err := store.Get(ctx, "blob")
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, got)

	// Mutating a fetched slice must not affect later reads.
	got[1] = 42
	again, err := store.Get(ctx, "blob")
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, again)
}

func TestMemory_ListPrefix(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()

	for _, name := range []string{"snapshots/a", "snapshots/b", "manifest"} {
		require.NoError(t, store.Put(ctx, name, []byte(name)))
	}

	names, err := store.List(ctx, "snapshots/")
	require.NoError(t, err)
	assert.Equal(t, []string{"snapshots/a", "snapshots/b"}, names)

	names, err = store.List(ctx, "missing/")
	require.NoError(t, err)
	assert.Empty(t, names)
}
