// Package kvstore provides the durable key-value storage used to persist the
// product catalog: a single serialized JSON array written under a fixed key
// on every mutation and read back at startup. Backends cover local files,
// Redis and PostgreSQL, plus an in-memory store for tests.
package kvstore

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by Get when the key has never been written.
var ErrKeyNotFound = errors.New("key not found")

// Store is durable key-value storage for serialized blobs.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Close() error
}
