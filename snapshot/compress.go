package snapshot

import (
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Zstd encoders and decoders are expensive to construct; pool them across
// Encode/Decode calls.
var (
	zstdEncoderPool sync.Pool
	zstdDecoderPool sync.Pool
)

func getZstdEncoder() *zstd.Encoder {
	if v := zstdEncoderPool.Get(); v != nil {
		return v.(*zstd.Encoder)
	}
	enc, _ := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	return enc
}

func putZstdEncoder(enc *zstd.Encoder) {
	zstdEncoderPool.Put(enc)
}

func getZstdDecoder() *zstd.Decoder {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder)
	}
	dec, _ := zstd.NewReader(nil)
	return dec
}

func putZstdDecoder(dec *zstd.Decoder) {
	zstdDecoderPool.Put(dec)
}

// compressPayload compresses data with the requested algorithm and
// returns the stored payload together with the compression actually
// applied. Payloads that do not compress well (ratio above 0.9) are
// stored raw so decode never pays for useless decompression.
func compressPayload(data []byte, c Compression) ([]byte, Compression, error) {
	if c == CompressionNone || len(data) == 0 {
		return data, CompressionNone, nil
	}

	var compressed []byte
	switch c {
	case CompressionLZ4:
		bound := lz4.CompressBlockBound(len(data))
		buf := make([]byte, bound)
		n, err := lz4.CompressBlock(data, buf, nil)
		if err != nil {
			return nil, 0, err
		}
		if n == 0 {
			// Incompressible input.
			return data, CompressionNone, nil
		}
		compressed = buf[:n]
	case CompressionZstd:
		enc := getZstdEncoder()
		compressed = enc.EncodeAll(data, nil)
		putZstdEncoder(enc)
	default:
		return nil, 0, fmt.Errorf("unknown compression: %s", c)
	}

	if float64(len(compressed)) > float64(len(data))*0.9 {
		return data, CompressionNone, nil
	}
	return compressed, c, nil
}

// decompressInto fills dst, whose length is the exact uncompressed
// payload size from the header, with the decoded payload bytes.
func decompressInto(dst, payload []byte, c Compression) error {
	switch c {
	case CompressionNone:
		if len(payload) != len(dst) {
			return fmt.Errorf("%w: payload is %d bytes, header claims %d", ErrCorrupted, len(payload), len(dst))
		}
		copy(dst, payload)
		return nil

	case CompressionLZ4:
		n, err := lz4.UncompressBlock(payload, dst)
		if err != nil {
			return fmt.Errorf("%w: lz4: %v", ErrCorrupted, err)
		}
		if n != len(dst) {
			return fmt.Errorf("%w: decompressed %d bytes, header claims %d", ErrCorrupted, n, len(dst))
		}
		return nil

	case CompressionZstd:
		dec := getZstdDecoder()
		decoded, err := dec.DecodeAll(payload, dst[:0])
		putZstdDecoder(dec)
		if err != nil {
			return fmt.Errorf("%w: zstd: %v", ErrCorrupted, err)
		}
		if len(decoded) != len(dst) {
			return fmt.Errorf("%w: decompressed %d bytes, header claims %d", ErrCorrupted, len(decoded), len(dst))
		}
		// DecodeAll appends into dst's capacity unless it had to grow.
		if &decoded[0] != &dst[0] {
			copy(dst, decoded)
		}
		return nil

	default:
		return fmt.Errorf("%w: unknown compression %d", ErrCorrupted, uint8(c))
	}
}
