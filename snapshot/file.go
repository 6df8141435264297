package snapshot

import (
	"os"
	"path/filepath"

	"github.com/hazed7/math-vector"
)

// WriteFile encodes v and writes it to filename atomically: the snapshot
// lands in a temp file in the same directory, is fsynced, then renamed
// over the target. A crash mid-write leaves the previous file intact.
func WriteFile[T vector.Number](filename string, v *vector.Vector[T], compression Compression) error {
	data, err := Encode(v, compression)
	if err != nil {
		return err
	}
	return writeFileAtomic(filename, data)
}

// ReadFile reads and decodes a snapshot written by WriteFile.
func ReadFile[T vector.Number](filename string) (*vector.Vector[T], error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return Decode[T](data)
}

func writeFileAtomic(filename string, data []byte) error {
	dir := filepath.Dir(filename)
	base := filepath.Base(filename)

	tmp, err := os.CreateTemp(dir, base+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		_ = tmp.Close()
		if tmpName != "" {
			_ = os.Remove(tmpName)
		}
	}()

	_ = tmp.Chmod(0o644)

	if _, err := tmp.Write(data); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	if err := os.Rename(tmpName, filename); err != nil {
		return err
	}

	// Best-effort: fsync the directory so the rename is durable on POSIX.
	if d, err := os.Open(dir); err == nil {
		_ = d.Sync()
		_ = d.Close()
	}

	tmpName = ""
	return nil
}
