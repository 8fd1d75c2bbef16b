package domain

import "context"

// Responder produces an assistant reply for a user message without any
// external dependency. It is total: every input yields a usable reply.
// The demo responder is the canonical implementation and the orchestrator's
// fallback for every failure class.
type Responder interface {
	Respond(message string, region RegionFilter) (string, *Recipe)
}

// KeyValueStore is the opaque persistence boundary: string keys mapped to
// byte documents. Implementations can be file-based, SQLite, or any other
// backend. Get returns ErrNotFound when the key has never been written.
type KeyValueStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// StateSink receives state snapshots for durable storage. The store never
// waits on it; persistence is write-behind.
type StateSink interface {
	Enqueue(state AppState)
}
