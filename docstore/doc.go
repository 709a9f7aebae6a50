// Package docstore owns the stored documents: it assigns monotonically
// increasing ids, L2-normalizes vectors at insert time and keeps the
// payloads the engine hands back on query hits.
//
// The store is append-only and carries no locking of its own; the owning
// engine serializes access.
package docstore
