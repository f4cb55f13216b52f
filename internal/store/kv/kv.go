// Package kv is the durable key-value port behind local mode.
// Values are opaque bytes; every Put replaces the whole value.
package kv

import "context"

// KV is a small persistent key-value store.
// Get returns (nil, nil) for a key that was never written.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Close() error
}
