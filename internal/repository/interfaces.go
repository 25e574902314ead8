package repository

import "context"

// KVRepo is an opaque key-value sink used for small persisted records.
type KVRepo interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
