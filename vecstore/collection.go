package vecstore

import (
	"context"
	"fmt"
	"hash/crc32"
	"path"
	"reflect"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hazed7/math-vector"
	"github.com/hazed7/math-vector/blobstore"
	"github.com/hazed7/math-vector/codec"
	"github.com/hazed7/math-vector/snapshot"
)

const blobExt = ".mvec"

// Collection persists named vectors of a single element type in a
// BlobStore. Every vector is stored as one snapshot blob under the
// collection's prefix, and a MANIFEST blob indexes what is stored.
type Collection[T vector.Number] struct {
	name        string
	store       blobstore.BlobStore
	codec       codec.Codec
	compression snapshot.Compression
	concurrency int
	metrics     MetricsCollector
	logger      *Logger

	mu sync.Mutex // serializes manifest read-modify-write cycles
}

// NewCollection binds a collection to the given store. The collection
// name becomes the blob key prefix, so several collections can share
// one store.
func NewCollection[T vector.Number](name string, store blobstore.BlobStore, optFns ...Option) *Collection[T] {
	opts := applyOptions(optFns)

	cdc := opts.codec
	if cdc == nil {
		cdc = codec.Default
	}
	mc := opts.metricsCollector
	if mc == nil {
		mc = NoopMetricsCollector{}
	}
	logger := opts.logger
	if logger == nil {
		logger = NoopLogger()
	}
	concurrency := opts.concurrency
	if concurrency < 1 {
		concurrency = defaultConcurrency
	}

	return &Collection[T]{
		name:        name,
		store:       store,
		codec:       cdc,
		compression: opts.compression,
		concurrency: concurrency,
		metrics:     mc,
		logger:      logger.WithCollection(name),
	}
}

// Name returns the collection name.
func (c *Collection[T]) Name() string {
	return c.name
}

func (c *Collection[T]) blobKey(name string) string {
	return path.Join(c.name, name+blobExt)
}

func validateName(name string) error {
	if name == "" {
		return fmt.Errorf("vecstore: empty vector name")
	}
	return nil
}

// Save encodes v as a snapshot, writes it to the store and registers it
// in the manifest.
func (c *Collection[T]) Save(ctx context.Context, name string, v *vector.Vector[T]) error {
	start := time.Now()

	entry, err := c.writeBlob(ctx, name, v)
	if err == nil {
		err = c.updateManifest(ctx, func(m *Manifest) {
			m.Entries[entry.Name] = entry
		})
	}

	c.metrics.RecordSave(time.Since(start), err)
	c.logger.LogSave(ctx, name, v.Len(), err)
	return err
}

// Load fetches and decodes the named vector. It returns
// blobstore.ErrNotFound if no such vector was saved, and a
// snapshot.KindMismatchError if it was saved with a different element
// type.
func (c *Collection[T]) Load(ctx context.Context, name string) (*vector.Vector[T], error) {
	start := time.Now()

	v, err := c.readBlob(ctx, name)
	count := 0
	if err == nil {
		count = v.Len()
	}

	c.metrics.RecordLoad(time.Since(start), err)
	c.logger.LogLoad(ctx, name, count, err)
	return v, err
}

// Delete removes the named vector from the store and the manifest.
// Deleting a vector that does not exist is not an error.
func (c *Collection[T]) Delete(ctx context.Context, name string) error {
	start := time.Now()

	err := c.deleteBlob(ctx, name)

	c.metrics.RecordDelete(time.Since(start), err)
	c.logger.LogDelete(ctx, name, err)
	return err
}

// Names returns the names of all vectors in the manifest, sorted.
func (c *Collection[T]) Names(ctx context.Context) ([]string, error) {
	m, err := c.loadManifest(ctx)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(m.Entries))
	for name := range m.Entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Manifest returns the collection's current manifest.
func (c *Collection[T]) Manifest(ctx context.Context) (*Manifest, error) {
	return c.loadManifest(ctx)
}

// SaveAll saves several vectors concurrently, then registers them in
// the manifest with a single update. If any save fails, the manifest is
// left untouched and already written blobs remain unregistered.
func (c *Collection[T]) SaveAll(ctx context.Context, vectors map[string]*vector.Vector[T]) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency)

	var (
		entryMu sync.Mutex
		entries = make([]Entry, 0, len(vectors))
	)

	for name, v := range vectors {
		g.Go(func() error {
			start := time.Now()
			entry, err := c.writeBlob(ctx, name, v)
			c.metrics.RecordSave(time.Since(start), err)
			c.logger.LogSave(ctx, name, v.Len(), err)
			if err != nil {
				return fmt.Errorf("save %q: %w", name, err)
			}

			entryMu.Lock()
			entries = append(entries, entry)
			entryMu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	return c.updateManifest(ctx, func(m *Manifest) {
		for _, e := range entries {
			m.Entries[e.Name] = e
		}
	})
}

// LoadAll fetches several vectors concurrently. It fails on the first
// missing or undecodable vector.
func (c *Collection[T]) LoadAll(ctx context.Context, names []string) (map[string]*vector.Vector[T], error) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency)

	var (
		outMu sync.Mutex
		out   = make(map[string]*vector.Vector[T], len(names))
	)

	for _, name := range names {
		g.Go(func() error {
			v, err := c.Load(ctx, name)
			if err != nil {
				return fmt.Errorf("load %q: %w", name, err)
			}

			outMu.Lock()
			out[name] = v
			outMu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Collection[T]) writeBlob(ctx context.Context, name string, v *vector.Vector[T]) (Entry, error) {
	if err := validateName(name); err != nil {
		return Entry{}, err
	}

	data, err := snapshot.Encode(v, c.compression)
	if err != nil {
		return Entry{}, err
	}
	if err := c.store.Put(ctx, c.blobKey(name), data); err != nil {
		return Entry{}, err
	}

	var zero T
	return Entry{
		Name:      name,
		Count:     v.Len(),
		Kind:      reflect.TypeOf(zero).Kind().String(),
		Checksum:  crc32.ChecksumIEEE(data),
		UpdatedAt: time.Now().UTC(),
	}, nil
}

func (c *Collection[T]) readBlob(ctx context.Context, name string) (*vector.Vector[T], error) {
	if err := validateName(name); err != nil {
		return nil, err
	}

	data, err := c.store.Get(ctx, c.blobKey(name))
	if err != nil {
		return nil, err
	}
	return snapshot.Decode[T](data)
}

func (c *Collection[T]) deleteBlob(ctx context.Context, name string) error {
	if err := validateName(name); err != nil {
		return err
	}

	if err := c.store.Delete(ctx, c.blobKey(name)); err != nil {
		return err
	}
	return c.updateManifest(ctx, func(m *Manifest) {
		delete(m.Entries, name)
	})
}
