// Package lexical implements the in-memory inverted index and BM25
// ranking used for keyword search.
//
// The index keeps, per term, a posting list of (document id, term
// frequency) pairs, plus per-document token lengths and corpus-level
// statistics. Document frequency of a term is the length of its posting
// list. Corpus statistics (document count, average document length) are
// recomputed over the whole corpus once per ingestion batch, which makes
// a batch the unit of visible state change.
//
// The index is append-only: documents can be added but never updated or
// removed, because postings, document frequencies and lengths are
// maintained additively and have no decrement path.
//
// Index carries no locking of its own; the owning engine serializes
// access (searches behind a read lock, ingestion behind a write lock).
package lexical
