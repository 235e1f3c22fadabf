package cache

import "sync"

// Buffer is a bounded, keyed in-memory buffer. It is the last-resort tier of
// the layered chat store: when both Mongo and the journal are unavailable,
// messages land here instead of being lost. Capacity is per key; once full,
// the oldest entry is evicted, so the buffer can never grow without bound for
// the lifetime of the process.
type Buffer[T any] struct {
	mu       sync.RWMutex
	capacity int
	items    map[string][]T
}

const DefaultCapacity = 1000

func NewBuffer[T any](capacity int) *Buffer[T] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Buffer[T]{
		capacity: capacity,
		items:    make(map[string][]T),
	}
}

// Append adds an entry under key, evicting the oldest entry if the key is at
// capacity.
func (b *Buffer[T]) Append(key string, value T) {
	b.mu.Lock()
	defer b.mu.Unlock()

	entries := b.items[key]
	if len(entries) >= b.capacity {
		entries = entries[1:]
	}
	b.items[key] = append(entries, value)
}

// List returns a copy of the entries stored under key, in insertion order.
func (b *Buffer[T]) List(key string) []T {
	b.mu.RLock()
	defer b.mu.RUnlock()

	entries := b.items[key]
	out := make([]T, len(entries))
	copy(out, entries)
	return out
}

// Drop removes all entries under key and returns how many were removed.
func (b *Buffer[T]) Drop(key string) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	n := len(b.items[key])
	delete(b.items, key)
	return n
}

func (b *Buffer[T]) Len(key string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.items[key])
}
