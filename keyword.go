package searchpool

import (
	"context"
	"time"

	"github.com/hupe1980/searchpool/model"
)

// SearchKeyword ranks documents against a free-text query using BM25 and
// returns at most limit hits with their 1-based ranks, ordered by score
// descending with ties broken by ascending id.
//
// The query is tokenized with the same tokenizer used at ingestion.
// Query terms absent from the index contribute nothing; an empty token
// sequence or an empty pool returns an empty result.
func (p *Pool) SearchKeyword(ctx context.Context, query string, limit int, optFns ...func(o *SearchOptions)) ([]model.KeywordResult, error) {
	start := time.Now()

	results, err := p.searchKeyword(ctx, query, limit, optFns)

	p.logger.LogSearch(ctx, "keyword", limit, len(results), err)
	p.metrics.RecordSearch("keyword", limit, time.Since(start), err)

	return results, err
}

func (p *Pool) searchKeyword(ctx context.Context, query string, limit int, optFns []func(o *SearchOptions)) ([]model.KeywordResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if limit <= 0 {
		return nil, ErrInvalidLimit
	}

	opts := applySearchOptions(optFns)

	p.mu.RLock()
	defer p.mu.RUnlock()

	candidates := p.index.Search(query, limit, opts.Exclude)

	results := make([]model.KeywordResult, len(candidates))
	for i, c := range candidates {
		results[i] = model.KeywordResult{
			ID:      c.ID,
			Score:   c.Score,
			Rank:    i + 1,
			Payload: p.store.Payload(c.ID),
		}
	}
	return results, nil
}
