package model

import "maps"

// DocumentID is the user-facing stable identifier of a stored document.
// IDs start at 1, increase strictly in insertion order and are never reused.
type DocumentID uint32

// Payload is the opaque key/value data stored alongside a vector.
// It is returned verbatim on query hits and partially consumed for
// keyword indexing (the configured text fields).
type Payload map[string]string

// Clone returns a copy of the payload. A nil payload clones to nil.
func (p Payload) Clone() Payload {
	if p == nil {
		return nil
	}
	return maps.Clone(p)
}

// Record is the caller-supplied input to ingestion.
type Record struct {
	Vector  []float32
	Payload Payload
}

// Document represents a stored record. The vector is L2-normalized at
// insert time unless its norm was exactly zero.
type Document struct {
	ID      DocumentID
	Vector  []float32
	Payload Payload
}

// Candidate is an intermediate ranking entry produced by a single search
// stage. Intermediate rankings are always keyed by document id, never by
// result object identity.
type Candidate struct {
	ID    DocumentID
	Score float64
}

// CompareCandidates orders candidates by score descending, breaking ties
// by ascending document id. Every ranking stage uses this comparator so
// that repeated identical queries return identical ordered results.
func CompareCandidates(a, b Candidate) int {
	switch {
	case a.Score > b.Score:
		return -1
	case a.Score < b.Score:
		return 1
	case a.ID < b.ID:
		return -1
	case a.ID > b.ID:
		return 1
	default:
		return 0
	}
}

// VectorResult is a hit from a vector similarity search.
type VectorResult struct {
	ID DocumentID
	// Score is the cosine similarity between query and document
	// (dot product of unit vectors).
	Score   float32
	Payload Payload
}

// KeywordResult is a hit from a BM25 keyword search.
type KeywordResult struct {
	ID DocumentID
	// Score is the accumulated BM25 score across matched query terms.
	Score float64
	// Rank is the 1-based position in the keyword ranking.
	Rank    int
	Payload Payload
}

// HybridResult is a hit from a fused (RRF) search.
type HybridResult struct {
	ID DocumentID
	// Score is the Reciprocal Rank Fusion score, sum of 1/(k+rank)
	// over the sub-rankings the document appears in.
	Score   float64
	Payload Payload
}
