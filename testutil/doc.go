// Package testutil provides deterministic helpers for tests and
// benchmarks: a seeded, thread-safe random number generator and vector
// generators.
package testutil
