package searchpool

import (
	"context"
	"slices"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/searchpool/model"
)

// HybridSearchOptions controls the execution of hybrid searches.
type HybridSearchOptions struct {
	// Exclude is a set of document ids dropped during candidate
	// generation in both sub-searches, before truncation.
	Exclude *model.IDSet

	// RRFK is the smoothing constant k in 1/(k+rank). Default 60.
	RRFK int

	// FetchMultiplier overrides the pool's over-fetch factor for the two
	// sub-searches. Default: the value configured on the pool (5).
	FetchMultiplier int
}

// SearchHybrid runs the vector and keyword searches with an inflated
// candidate limit (limit x fetch multiplier) and fuses their rankings
// via Reciprocal Rank Fusion: every document appearing in either list
// accumulates 1/(k+rank) per list, where rank is its 1-based position in
// that list. Results are ordered by fused score descending with ties
// broken by ascending id and truncated to limit.
//
// A document absent from both candidate pools never appears in the fused
// result. If both sub-searches are empty, the result is empty.
func (p *Pool) SearchHybrid(ctx context.Context, queryVector []float32, queryText string, limit int, optFns ...func(o *HybridSearchOptions)) ([]model.HybridResult, error) {
	start := time.Now()

	results, err := p.searchHybrid(ctx, queryVector, queryText, limit, optFns)

	p.logger.LogSearch(ctx, "hybrid", limit, len(results), err)
	p.metrics.RecordSearch("hybrid", limit, time.Since(start), err)

	return results, err
}

func (p *Pool) searchHybrid(ctx context.Context, queryVector []float32, queryText string, limit int, optFns []func(o *HybridSearchOptions)) ([]model.HybridResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if limit <= 0 {
		return nil, ErrInvalidLimit
	}
	if len(queryVector) != 0 && len(queryVector) != p.dimension {
		return nil, &ErrDimensionMismatch{Expected: p.dimension, Actual: len(queryVector)}
	}

	opts := HybridSearchOptions{
		RRFK:            DefaultRRFK,
		FetchMultiplier: p.fetchMultiplier,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.RRFK < 0 {
		opts.RRFK = DefaultRRFK
	}
	if opts.FetchMultiplier < 1 {
		opts.FetchMultiplier = p.fetchMultiplier
	}

	fetchLimit := limit * opts.FetchMultiplier

	p.mu.RLock()
	defer p.mu.RUnlock()

	// Both sub-searches are read-only and run under the read lock held
	// by this goroutine.
	var (
		vectorCands  []model.Candidate
		keywordCands []model.Candidate
	)

	g := new(errgroup.Group)
	g.Go(func() error {
		if len(queryVector) == 0 {
			return nil
		}
		vectorCands = p.vectorCandidates(queryVector, fetchLimit, opts.Exclude)
		return nil
	})
	g.Go(func() error {
		keywordCands = p.index.Search(queryText, fetchLimit, opts.Exclude)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// The accumulator is keyed by document id; ranks are the 1-based
	// positions within each candidate list.
	k := float64(opts.RRFK)
	rrf := make(map[model.DocumentID]float64, len(vectorCands)+len(keywordCands))
	for i, c := range vectorCands {
		rrf[c.ID] += 1 / (k + float64(i+1))
	}
	for i, c := range keywordCands {
		rrf[c.ID] += 1 / (k + float64(i+1))
	}

	if len(rrf) == 0 {
		return nil, nil
	}

	fused := make([]model.Candidate, 0, len(rrf))
	for id, score := range rrf {
		fused = append(fused, model.Candidate{ID: id, Score: score})
	}

	slices.SortFunc(fused, model.CompareCandidates)

	if len(fused) > limit {
		fused = fused[:limit]
	}

	results := make([]model.HybridResult, len(fused))
	for i, c := range fused {
		results[i] = model.HybridResult{
			ID:      c.ID,
			Score:   c.Score,
			Payload: p.store.Payload(c.ID),
		}
	}
	return results, nil
}
