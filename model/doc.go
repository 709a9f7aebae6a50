// Package model defines core types used throughout searchpool.
//
// # Identity Types
//
//   - DocumentID: Auto-incrementing primary key (uint32), assigned at insert
//   - IDSet: Roaring-bitmap backed set of document ids
//
// # Data Types
//
//   - Record: Caller-supplied vector plus payload, the unit of ingestion
//   - Document: A stored record with its assigned id and normalized vector
//   - Candidate: Intermediate ranking entry keyed by document id
//   - VectorResult / KeywordResult / HybridResult: Per-search result tuples
package model
