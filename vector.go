package searchpool

import (
	"context"
	"slices"
	"time"

	"github.com/hupe1980/searchpool/distance"
	"github.com/hupe1980/searchpool/model"
)

// SearchOptions controls the execution of vector and keyword searches.
type SearchOptions struct {
	// Exclude is a set of document ids dropped during candidate
	// generation, before truncation to the limit. The returned count is
	// min(limit, candidates remaining after exclusion).
	Exclude *model.IDSet
}

func applySearchOptions(optFns []func(o *SearchOptions)) SearchOptions {
	var opts SearchOptions
	for _, fn := range optFns {
		fn(&opts)
	}
	return opts
}

// SearchVector ranks documents by cosine similarity to the query vector
// and returns at most limit hits, ordered by score descending with ties
// broken by ascending id.
//
// The query is normalized exactly as at ingestion time. An empty query
// vector returns an empty result; a query of the wrong length returns
// ErrDimensionMismatch. This is an intentional brute-force scan,
// O(documents x dimension) per call.
func (p *Pool) SearchVector(ctx context.Context, query []float32, limit int, optFns ...func(o *SearchOptions)) ([]model.VectorResult, error) {
	start := time.Now()

	results, err := p.searchVector(ctx, query, limit, optFns)

	p.logger.LogSearch(ctx, "vector", limit, len(results), err)
	p.metrics.RecordSearch("vector", limit, time.Since(start), err)

	return results, err
}

func (p *Pool) searchVector(ctx context.Context, query []float32, limit int, optFns []func(o *SearchOptions)) ([]model.VectorResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if limit <= 0 {
		return nil, ErrInvalidLimit
	}
	if len(query) == 0 {
		// Empty query is not an error.
		return nil, nil
	}
	if len(query) != p.dimension {
		return nil, &ErrDimensionMismatch{Expected: p.dimension, Actual: len(query)}
	}

	opts := applySearchOptions(optFns)

	p.mu.RLock()
	defer p.mu.RUnlock()

	candidates := p.vectorCandidates(query, limit, opts.Exclude)

	results := make([]model.VectorResult, len(candidates))
	for i, c := range candidates {
		results[i] = model.VectorResult{
			ID:      c.ID,
			Score:   float32(c.Score),
			Payload: p.store.Payload(c.ID),
		}
	}
	return results, nil
}

// vectorCandidates performs the brute-force scan. The caller must hold
// the read lock and must have validated the query dimension.
func (p *Pool) vectorCandidates(query []float32, limit int, exclude *model.IDSet) []model.Candidate {
	// Zero-norm queries are scanned unnormalized, mirroring ingestion.
	q, _ := distance.NormalizeL2Copy(query)

	candidates := make([]model.Candidate, 0, p.store.Len())
	for doc := range p.store.All() {
		if exclude.Contains(doc.ID) {
			continue
		}
		score := distance.Dot(q, doc.Vector)
		candidates = append(candidates, model.Candidate{ID: doc.ID, Score: float64(score)})
	}

	slices.SortFunc(candidates, model.CompareCandidates)

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	return candidates
}
