// Package store provides the key-value persistence layer and the model
// snapshot codec. Snapshots come in two wire shapes - natively trained
// and foreign (pretrained, externally supplied) - resolved once at load
// time into a tagged union.
package store

import "context"

// KV is the persistence contract the engine depends on: an opaque
// blob store addressed by string key. The SQLite implementation is the
// production store; MemoryKV serves tests and embedding.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}
