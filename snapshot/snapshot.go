// Package snapshot serializes vectors to a checksummed binary format.
//
// A snapshot is a 32-byte header followed by the vector's raw element
// bytes, optionally compressed. The header records the element kind and
// size, so decoding as the wrong type fails instead of reinterpreting
// memory, and a CRC32 of the stored payload, so corruption is detected
// before any bytes reach a vector.
//
// Element bytes are written in native layout, little-endian on every
// platform Go commonly targets. Snapshots of int and uint vectors carry
// the writing platform's word size and refuse to decode where it differs.
package snapshot

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"math"
	"reflect"
	"unsafe"

	"github.com/hazed7/math-vector"
)

// Encode serializes v. The compression is a request, not a promise: an
// incompressible payload is stored raw and the header says so.
func Encode[T vector.Number](v *vector.Vector[T], compression Compression) ([]byte, error) {
	var zero T
	elems := v.Elems()

	payload, applied, err := compressPayload(elemBytes(elems), compression)
	if err != nil {
		return nil, err
	}

	h := Header{
		Magic:       Magic,
		Version:     Version,
		ElemKind:    uint8(reflect.TypeOf(zero).Kind()),
		ElemSize:    uint8(unsafe.Sizeof(zero)),
		Compression: applied,
		Count:       uint64(len(elems)),
		Checksum:    crc32.ChecksumIEEE(payload),
	}

	buf := bytes.NewBuffer(make([]byte, 0, headerSize+len(payload)))
	if err := binary.Write(buf, binary.LittleEndian, &h); err != nil {
		return nil, err
	}
	buf.Write(payload)
	return buf.Bytes(), nil
}

// Decode deserializes a snapshot produced by Encode. The element type is
// validated against the header before any payload byte is interpreted,
// and the payload checksum before decompression.
func Decode[T vector.Number](data []byte) (*vector.Vector[T], error) {
	if len(data) < headerSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrTruncated, len(data))
	}

	var h Header
	if err := binary.Read(bytes.NewReader(data[:headerSize]), binary.LittleEndian, &h); err != nil {
		return nil, err
	}
	if h.Magic != Magic {
		return nil, fmt.Errorf("%w: got 0x%08x", ErrInvalidMagic, h.Magic)
	}
	if h.Version != Version {
		return nil, fmt.Errorf("%w: got %d", ErrUnsupportedVersion, h.Version)
	}

	var zero T
	wantKind := reflect.TypeOf(zero).Kind()
	wantSize := int(unsafe.Sizeof(zero))
	if reflect.Kind(h.ElemKind) != wantKind || int(h.ElemSize) != wantSize {
		return nil, &KindMismatchError{
			Want:     wantKind,
			Got:      reflect.Kind(h.ElemKind),
			WantSize: wantSize,
			GotSize:  int(h.ElemSize),
		}
	}

	payload := data[headerSize:]
	if got := crc32.ChecksumIEEE(payload); got != h.Checksum {
		return nil, &ChecksumMismatchError{Want: h.Checksum, Got: got}
	}

	if h.Count == 0 {
		if len(payload) != 0 {
			return nil, fmt.Errorf("%w: %d payload bytes for empty vector", ErrCorrupted, len(payload))
		}
		return vector.New[T](0), nil
	}
	if h.Count > uint64(math.MaxInt)/uint64(wantSize) {
		return nil, fmt.Errorf("%w: element count %d", ErrCorrupted, h.Count)
	}

	out := make([]T, h.Count)
	dst := unsafe.Slice((*byte)(unsafe.Pointer(&out[0])), int(h.Count)*wantSize)
	if err := decompressInto(dst, payload, h.Compression); err != nil {
		return nil, err
	}
	return vector.Adopt(out), nil
}

// elemBytes reinterprets the element buffer as raw bytes without copying.
func elemBytes[T vector.Number](elems []T) []byte {
	if len(elems) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&elems[0])), len(elems)*int(unsafe.Sizeof(elems[0])))
}
