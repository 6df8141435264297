package snapshot

import (
	"errors"
	"fmt"
	"reflect"
)

const (
	// Magic identifies vector snapshot files (ASCII "MVEC").
	Magic = 0x4D564543
	// Version is the current snapshot format version.
	Version = 1

	// headerSize is the encoded size of Header. The header is packed
	// little-endian with no implicit padding.
	headerSize = 32
)

// Compression selects the payload compression algorithm.
type Compression uint8

const (
	// CompressionNone stores the payload uncompressed.
	CompressionNone Compression = 0
	// CompressionLZ4 uses LZ4 block compression (fast, moderate ratio).
	CompressionLZ4 Compression = 1
	// CompressionZstd uses Zstandard block compression (better ratio).
	CompressionZstd Compression = 2
)

func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionLZ4:
		return "lz4"
	case CompressionZstd:
		return "zstd"
	default:
		return fmt.Sprintf("compression(%d)", uint8(c))
	}
}

var (
	ErrInvalidMagic       = errors.New("invalid magic number")
	ErrUnsupportedVersion = errors.New("unsupported snapshot version")
	ErrKindMismatch       = errors.New("element kind mismatch")
	ErrChecksumMismatch   = errors.New("checksum mismatch")
	ErrTruncated          = errors.New("truncated snapshot")
	ErrCorrupted          = errors.New("corrupted snapshot payload")
)

// Header is the fixed 32-byte header at the start of every snapshot.
// All fields are little-endian. The checksum covers the payload bytes
// exactly as stored, after compression.
type Header struct {
	Magic       uint32
	Version     uint16
	ElemKind    uint8 // reflect.Kind of the element type
	ElemSize    uint8 // bytes per element on the writing platform
	Compression Compression
	Padding     [3]byte
	Count       uint64
	Checksum    uint32
	Reserved    [8]byte
}

// KindMismatchError reports a snapshot whose element type does not match
// the requested decode type. ElemSize differences also land here: int and
// uint snapshots are only portable between platforms where their width
// agrees.
type KindMismatchError struct {
	Want     reflect.Kind
	Got      reflect.Kind
	WantSize int
	GotSize  int
}

func (e *KindMismatchError) Error() string {
	return fmt.Sprintf("element kind mismatch: snapshot holds %s (%d bytes), want %s (%d bytes)",
		e.Got, e.GotSize, e.Want, e.WantSize)
}

func (e *KindMismatchError) Unwrap() error { return ErrKindMismatch }

// ChecksumMismatchError reports payload corruption detected by CRC32.
type ChecksumMismatchError struct {
	Want uint32
	Got  uint32
}

func (e *ChecksumMismatchError) Error() string {
	return fmt.Sprintf("checksum mismatch: expected 0x%08x, got 0x%08x", e.Want, e.Got)
}

func (e *ChecksumMismatchError) Unwrap() error { return ErrChecksumMismatch }
