package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"zenflow/internal/core/ports"
)

const collectionPrefix = "db_"

// Collection is an ordered sequence of records persisted as one JSON array
// under a single Store key.
type Collection[T any] struct {
	store ports.Store
	key   string
}

type lockKey struct {
	store ports.Store
	key   string
}

// collectionLocks serializes read-modify-write cycles per store key, shared by every
// Collection opened on the same store and name.
var collectionLocks sync.Map

func NewCollection[T any](s ports.Store, name string) *Collection[T] {
	return &Collection[T]{store: s, key: collectionPrefix + name}
}

func (c *Collection[T]) Key() string {
	return c.key
}

// Get returns the stored records, or an empty slice when the collection was never written.
func (c *Collection[T]) Get(ctx context.Context) ([]T, error) {
	payload, err := c.store.Load(ctx, c.key)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", c.key, err)
	}
	if len(payload) == 0 {
		return []T{}, nil
	}

	var records []T
	if err := json.Unmarshal(payload, &records); err != nil {
		return nil, fmt.Errorf("decode %s: %w", c.key, err)
	}
	if records == nil {
		records = []T{}
	}
	return records, nil
}

// Set replaces the whole collection in a single write.
func (c *Collection[T]) Set(ctx context.Context, records []T) error {
	if records == nil {
		records = []T{}
	}
	payload, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.key, err)
	}
	if err := c.store.Save(ctx, c.key, payload); err != nil {
		return fmt.Errorf("save %s: %w", c.key, err)
	}
	return nil
}

// Update runs fn over the current records and writes its result back while holding the
// collection lock, so concurrent writers in this process never overwrite each other.
// An error from fn aborts the write.
func (c *Collection[T]) Update(ctx context.Context, fn func([]T) ([]T, error)) error {
	mu := c.lock()
	mu.Lock()
	defer mu.Unlock()

	records, err := c.Get(ctx)
	if err != nil {
		return err
	}
	updated, err := fn(records)
	if err != nil {
		return err
	}
	return c.Set(ctx, updated)
}

func (c *Collection[T]) lock() *sync.Mutex {
	mu, _ := collectionLocks.LoadOrStore(lockKey{store: c.store, key: c.key}, &sync.Mutex{})
	return mu.(*sync.Mutex)
}
