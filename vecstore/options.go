package vecstore

import (
	"log/slog"

	"github.com/hazed7/math-vector/codec"
	"github.com/hazed7/math-vector/snapshot"
)

const defaultConcurrency = 4

type options struct {
	codec            codec.Codec
	compression      snapshot.Compression
	concurrency      int
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures Collection behavior.
type Option func(*options)

// WithCodec configures the codec used for the manifest document.
//
// If nil is passed, codec.Default is used.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c == nil {
			c = codec.Default
		}
		o.codec = c
	}
}

// WithCompression configures the compression applied to vector snapshots.
// The default is zstd; pass snapshot.CompressionNone to store raw bytes.
func WithCompression(c snapshot.Compression) Option {
	return func(o *options) {
		o.compression = c
	}
}

// WithConcurrency configures the number of parallel transfers used by
// SaveAll and LoadAll. Values below 1 fall back to the default.
func WithConcurrency(n int) Option {
	return func(o *options) {
		o.concurrency = n
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &vecstore.BasicMetricsCollector{}
//	col := vecstore.NewCollection[float64]("ratings", store, vecstore.WithMetricsCollector(metrics))
//	// ... use col ...
//	stats := metrics.GetStats()
//	fmt.Printf("Saves: %d, Avg latency: %dns\n", stats.SaveCount, stats.SaveAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := vecstore.NewJSONLogger(slog.LevelInfo)
//	col := vecstore.NewCollection[float64]("ratings", store, vecstore.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		codec:            nil,
		compression:      snapshot.CompressionZstd,
		concurrency:      defaultConcurrency,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
