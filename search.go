// Package searchpool provides an embedded, in-memory hybrid search engine.
//
// This file implements a fluent query API for hybrid searches.
package searchpool

import (
	"context"

	"github.com/hupe1980/searchpool/model"
)

// Query creates a new fluent builder for a hybrid search combining the
// given query vector and query text.
//
// Example:
//
//	hits, err := pool.Query(vec, "python finance").
//	    Limit(5).
//	    Exclude(model.NewIDSet(3)).
//	    Execute(ctx)
func (p *Pool) Query(vector []float32, text string) *QueryBuilder {
	return &QueryBuilder{
		pool:   p,
		vector: vector,
		text:   text,
		limit:  10, // Default limit
	}
}

// QueryBuilder is a fluent builder for constructing hybrid queries.
type QueryBuilder struct {
	pool   *Pool
	vector []float32
	text   string
	limit  int

	rrfK            int
	fetchMultiplier int
	exclude         *model.IDSet
}

// Limit sets the number of fused results to return.
func (qb *QueryBuilder) Limit(n int) *QueryBuilder {
	qb.limit = n
	return qb
}

// RRFK sets the RRF smoothing constant k.
func (qb *QueryBuilder) RRFK(k int) *QueryBuilder {
	qb.rrfK = k
	return qb
}

// FetchMultiplier sets the over-fetch factor for the two sub-searches.
func (qb *QueryBuilder) FetchMultiplier(n int) *QueryBuilder {
	qb.fetchMultiplier = n
	return qb
}

// Exclude sets the exclusion id set applied to both sub-searches.
func (qb *QueryBuilder) Exclude(ids *model.IDSet) *QueryBuilder {
	qb.exclude = ids
	return qb
}

// Execute runs the hybrid search and returns the fused results.
func (qb *QueryBuilder) Execute(ctx context.Context) ([]model.HybridResult, error) {
	return qb.pool.SearchHybrid(ctx, qb.vector, qb.text, qb.limit, func(o *HybridSearchOptions) {
		if qb.rrfK > 0 {
			o.RRFK = qb.rrfK
		}
		if qb.fetchMultiplier > 0 {
			o.FetchMultiplier = qb.fetchMultiplier
		}
		o.Exclude = qb.exclude
	})
}

// MustExecute runs the search, panicking on error.
// Use this only in tests or when you're certain the query is valid.
func (qb *QueryBuilder) MustExecute(ctx context.Context) []model.HybridResult {
	results, err := qb.Execute(ctx)
	if err != nil {
		panic(err)
	}
	return results
}

// First returns only the top fused result, or ErrNotFound if none.
func (qb *QueryBuilder) First(ctx context.Context) (model.HybridResult, error) {
	qb.limit = 1
	results, err := qb.Execute(ctx)
	if err != nil {
		return model.HybridResult{}, err
	}
	if len(results) == 0 {
		return model.HybridResult{}, ErrNotFound
	}
	return results[0], nil
}
