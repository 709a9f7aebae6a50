package searchpool

import (
	"log/slog"

	"github.com/hupe1980/searchpool/lexical"
	"github.com/hupe1980/searchpool/tokenizer"
)

// DefaultFetchMultiplier is the over-fetch factor hybrid search applies
// to both sub-searches to build a deep enough candidate pool.
const DefaultFetchMultiplier = 5

// DefaultRRFK is the RRF smoothing constant (standard value from
// Cormack et al. 2009).
const DefaultRRFK = 60

type options struct {
	tokenizer        tokenizer.Tokenizer
	bm25             lexical.Options
	fetchMultiplier  int
	logger           *Logger
	metricsCollector MetricsCollector
}

// Option configures Pool constructor behavior.
type Option func(*options)

// WithTokenizer configures the text segmentation used for keyword
// indexing and querying. The same tokenizer is applied at ingestion and
// query time. If nil is passed, the default whitespace tokenizer is used.
func WithTokenizer(t tokenizer.Tokenizer) Option {
	return func(o *options) {
		if t == nil {
			t = tokenizer.Default
		}
		o.tokenizer = t
	}
}

// WithBM25Parameters configures the BM25 hyperparameters.
// k1 controls term-frequency saturation (default 1.5), b controls
// document-length normalization (default 0.75).
func WithBM25Parameters(k1, b float64) Option {
	return func(o *options) {
		o.bm25.K1 = k1
		o.bm25.B = b
	}
}

// WithFetchMultiplier configures the over-fetch factor used by hybrid
// search (default 5). Values below 1 are ignored.
func WithFetchMultiplier(n int) Option {
	return func(o *options) {
		if n >= 1 {
			o.fetchMultiplier = n
		}
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := searchpool.NewJSONLogger(slog.LevelInfo)
//	pool, _ := searchpool.New(768, fields, searchpool.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
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

// WithMetricsCollector configures a metrics collector for monitoring
// operations. Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &searchpool.BasicMetricsCollector{}
//	pool, _ := searchpool.New(768, fields, searchpool.WithMetricsCollector(metrics))
//	// ... use pool ...
//	stats := metrics.GetStats()
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		tokenizer:        tokenizer.Default,
		bm25:             lexical.DefaultOptions,
		fetchMultiplier:  DefaultFetchMultiplier,
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
