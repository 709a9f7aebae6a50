// Package searchpool provides an embedded, in-memory hybrid search engine
// for Go.
//
// A Pool stores embedding vectors together with structured text payloads
// and answers three kinds of ranked queries:
//
//   - Vector similarity: brute-force cosine scan over all stored vectors
//   - Keyword relevance: BM25 over a hand-built inverted index
//   - Hybrid: both searches fused via Reciprocal Rank Fusion (RRF)
//
// The engine is a pure in-process data structure: it performs no I/O, has
// no persistence and is insert-only for its lifetime. It is intended as
// the retrieval core of a surrounding pipeline that produces embeddings
// and assembles payload text.
//
// # Quick Start
//
//	pool, err := searchpool.New(768, []string{"title", "content"})
//	if err != nil {
//	    panic(err)
//	}
//
//	res := pool.Insert(ctx, []model.Record{
//	    {Vector: vec, Payload: model.Payload{"title": "...", "content": "..."}},
//	})
//	fmt.Println(res.Accepted(), res.Rejected())
//
//	hits, err := pool.SearchHybrid(ctx, queryVec, "python finance", 5)
//
// Every query accepts an exclusion set that is applied before truncation,
// so the returned count is min(limit, eligible candidates):
//
//	hits, err := pool.SearchKeyword(ctx, "python finance", 5,
//	    func(o *searchpool.SearchOptions) {
//	        o.Exclude = model.NewIDSet(3)
//	    })
//
// # Concurrency
//
// A Pool is safe for concurrent use: searches take a read lock, Insert
// takes a write lock, so a batch insert is atomically visible and no
// reader ever observes a partially updated index. Operations run to
// completion once started; cancellation is only observed on entry.
package searchpool
