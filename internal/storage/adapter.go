// Package storage provides the opaque key-value persistence adapter used by
// the session store to survive app restarts.
package storage

import "context"

// Adapter is an async get/set/remove of string blobs keyed by name.
// Get returns domain.ErrNotFound when no value exists for the key.
// Remove of an absent key is not an error.
type Adapter interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}
