// Package metadata provides a small key-value store over the local database.
// The session manager keeps the persisted bearer token and its convenience
// mirrors here.
package metadata

import "context"

type Repository interface {
	// Get returns the value for key, or (nil, nil) when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
