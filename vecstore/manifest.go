package vecstore

import (
	"context"
	"errors"
	"fmt"
	"path"
	"time"

	"github.com/hazed7/math-vector/blobstore"
)

const (
	// ManifestBlobName is the blob holding a collection's manifest.
	ManifestBlobName = "MANIFEST"

	// ManifestVersion is the current manifest document version.
	ManifestVersion = 1
)

// Manifest indexes the vectors of a collection. It is stored as a codec
// document next to the vector snapshots, so a collection can be
// inspected without reading any payload.
type Manifest struct {
	Version   int              `json:"version"`
	UpdatedAt time.Time        `json:"updated_at"`
	Entries   map[string]Entry `json:"entries"`
}

// Entry describes one persisted vector.
type Entry struct {
	Name      string    `json:"name"`
	Count     int       `json:"count"`
	Kind      string    `json:"kind"`
	Checksum  uint32    `json:"checksum"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *Collection[T]) manifestKey() string {
	return path.Join(c.name, ManifestBlobName)
}

func (c *Collection[T]) loadManifest(ctx context.Context) (*Manifest, error) {
	data, err := c.store.Get(ctx, c.manifestKey())
	if errors.Is(err, blobstore.ErrNotFound) {
		// No manifest yet, return empty with current version
		return &Manifest{Version: ManifestVersion, Entries: map[string]Entry{}}, nil
	}
	if err != nil {
		return nil, err
	}

	var m Manifest
	if err := c.codec.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decode manifest: %w", err)
	}
	if m.Version != ManifestVersion {
		return nil, fmt.Errorf("unsupported manifest version: %d (expected %d)", m.Version, ManifestVersion)
	}
	if m.Entries == nil {
		m.Entries = map[string]Entry{}
	}
	return &m, nil
}

func (c *Collection[T]) saveManifest(ctx context.Context, m *Manifest) error {
	m.Version = ManifestVersion
	m.UpdatedAt = time.Now().UTC()

	data, err := c.codec.Marshal(m)
	if err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}
	return c.store.Put(ctx, c.manifestKey(), data)
}

// updateManifest runs a read-modify-write cycle on the manifest under
// the collection mutex. The blob write itself is atomic, so readers
// never observe a partial manifest.
func (c *Collection[T]) updateManifest(ctx context.Context, mutate func(*Manifest)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	m, err := c.loadManifest(ctx)
	if err != nil {
		return err
	}
	mutate(m)
	return c.saveManifest(ctx, m)
}
