// Package distance provides the vector math used by searchpool: dot
// products on unit vectors (cosine similarity) and L2 normalization with
// an explicit zero-vector guard.
package distance
