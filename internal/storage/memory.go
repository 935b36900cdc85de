package storage

import (
	"context"
	"sync"
)

// Memory is an in-memory Store. It satisfies the same atomicity contract as
// the SQLite store: Update stages writes on a copy and swaps it in only if
// fn succeeds.
type Memory struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

func (m *Memory) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

func (m *Memory) Set(ctx context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := make([]byte, len(value))
	copy(stored, value)
	m.data[key] = stored
	return nil
}

func (m *Memory) Remove(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

// Update applies fn's writes all-or-nothing.
func (m *Memory) Update(ctx context.Context, fn func(s Store) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	staged := &memoryBatch{data: make(map[string][]byte, len(m.data))}
	for k, v := range m.data {
		staged.data[k] = v
	}

	if err := fn(staged); err != nil {
		return err
	}
	m.data = staged.data
	return nil
}

// memoryBatch is the unsynchronized view Update hands to fn. The enclosing
// Memory holds its lock for the whole batch.
type memoryBatch struct {
	data map[string][]byte
}

func (b *memoryBatch) Get(ctx context.Context, key string) ([]byte, error) {
	v, ok := b.data[key]
	if !ok {
		return nil, nil
	}
	return v, nil
}

func (b *memoryBatch) Set(ctx context.Context, key string, value []byte) error {
	stored := make([]byte, len(value))
	copy(stored, value)
	b.data[key] = stored
	return nil
}

func (b *memoryBatch) Remove(ctx context.Context, key string) error {
	delete(b.data, key)
	return nil
}

// Update inside a batch just joins the enclosing batch.
func (b *memoryBatch) Update(ctx context.Context, fn func(s Store) error) error {
	return fn(b)
}
