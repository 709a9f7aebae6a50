package searchpool

import (
	"context"
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/hupe1980/searchpool/docstore"
	"github.com/hupe1980/searchpool/lexical"
	"github.com/hupe1980/searchpool/model"
	"github.com/hupe1980/searchpool/tokenizer"
)

// Pool is an in-memory hybrid search engine over vectors and text
// payloads. It is safe for concurrent use: searches take a read lock,
// Insert takes a write lock.
type Pool struct {
	mu sync.RWMutex

	dimension  int
	textFields []string

	store *docstore.Store
	index *lexical.Index
	tok   tokenizer.Tokenizer

	fetchMultiplier int
	logger          *Logger
	metrics         MetricsCollector
}

// New creates a new Pool for vectors of the given size. textFields lists
// the payload keys whose values are concatenated (in order) into the
// text indexed for keyword search; missing fields contribute an empty
// string.
func New(vectorSize int, textFields []string, optFns ...Option) (*Pool, error) {
	if vectorSize <= 0 {
		return nil, &ErrInvalidDimension{Dimension: vectorSize}
	}

	o := applyOptions(optFns)

	index := lexical.New(o.tokenizer, func(lo *lexical.Options) {
		*lo = o.bm25
	})

	return &Pool{
		dimension:       vectorSize,
		textFields:      append([]string(nil), textFields...),
		store:           docstore.New(),
		index:           index,
		tok:             o.tokenizer,
		fetchMultiplier: o.fetchMultiplier,
		logger:          o.logger,
		metrics:         o.metricsCollector,
	}, nil
}

// InsertResult reports the outcome of a batch insert. IDs and Errors are
// parallel to the input batch: for an accepted record Errors[i] is nil
// and IDs[i] holds the assigned id; for a rejected record IDs[i] is zero
// and Errors[i] wraps ErrInvalidDocument.
type InsertResult struct {
	IDs    []model.DocumentID
	Errors []error
}

// Accepted returns the number of records that were stored.
func (r InsertResult) Accepted() int {
	n := 0
	for _, err := range r.Errors {
		if err == nil {
			n++
		}
	}
	return n
}

// Rejected returns the number of records that were skipped.
func (r InsertResult) Rejected() int {
	return len(r.Errors) - r.Accepted()
}

// Insert adds a batch of records to the pool. Each accepted record gets
// the next strictly increasing id, its vector stored L2-normalized and
// its text fields indexed for keyword search. Malformed records (missing
// vector, wrong dimension, non-finite component) are skipped; the rest
// of the batch proceeds.
//
// Corpus statistics are recomputed over the whole pool once per batch,
// so a batch is the unit of visible state change. The batch becomes
// visible to searches atomically.
func (p *Pool) Insert(ctx context.Context, records []model.Record) InsertResult {
	start := time.Now()

	result := InsertResult{
		IDs:    make([]model.DocumentID, len(records)),
		Errors: make([]error, len(records)),
	}

	if err := ctx.Err(); err != nil {
		for i := range result.Errors {
			result.Errors[i] = err
		}
		return result
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	for i, rec := range records {
		if err := p.validateRecord(rec); err != nil {
			result.Errors[i] = err
			continue
		}

		id := p.store.Append(rec.Vector, rec.Payload)
		p.index.Add(id, p.indexableText(rec.Payload))
		result.IDs[i] = id
	}

	// Full-corpus recompute, not just the new batch.
	p.index.RecomputeStats()

	rejected := result.Rejected()
	p.logger.LogBatchInsert(ctx, len(records), rejected)
	p.metrics.RecordBatchInsert(len(records), rejected, time.Since(start))

	return result
}

func (p *Pool) validateRecord(rec model.Record) error {
	if len(rec.Vector) == 0 {
		return fmt.Errorf("%w: missing vector", ErrInvalidDocument)
	}
	if len(rec.Vector) != p.dimension {
		return fmt.Errorf("%w: %w", ErrInvalidDocument,
			&ErrDimensionMismatch{Expected: p.dimension, Actual: len(rec.Vector)})
	}
	for _, v := range rec.Vector {
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
			return fmt.Errorf("%w: non-finite vector component", ErrInvalidDocument)
		}
	}
	return nil
}

// indexableText concatenates the configured payload fields, separated by
// whitespace. Missing fields contribute an empty string.
func (p *Pool) indexableText(payload model.Payload) string {
	values := make([]string, len(p.textFields))
	for i, field := range p.textFields {
		values[i] = payload[field]
	}
	return strings.Join(values, " ")
}

// GetAllIDs returns the set of all document ids currently in the pool.
func (p *Pool) GetAllIDs() *model.IDSet {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.store.IDs()
}

// Len returns the number of stored documents.
func (p *Pool) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.store.Len()
}

// Stats is a point-in-time snapshot of pool statistics.
type Stats struct {
	// Documents is the number of stored documents.
	Documents int
	// Dimension is the configured vector size.
	Dimension int
	// AvgDocLength is the average token count of the indexed text.
	AvgDocLength float64
	// VocabularySize is the number of distinct terms in the inverted index.
	VocabularySize int
}

// Stats returns a snapshot of pool statistics.
func (p *Pool) Stats() Stats {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return Stats{
		Documents:      p.store.Len(),
		Dimension:      p.dimension,
		AvgDocLength:   p.index.AvgDocLength(),
		VocabularySize: p.index.VocabularySize(),
	}
}
