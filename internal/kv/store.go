package kv

import "context"

// Store is the key-value persistence contract the cart engine writes
// through. Get returns domain.ErrNotFound for a missing key. A Set must be
// visible to a subsequent Get before it returns.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
