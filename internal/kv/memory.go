package kv

import (
	"context"
	"sync"
)

// Memory is an in-process Store. It is the substitute for the persistent
// backends in tests.
type Memory struct {
	mu     sync.RWMutex
	values map[string][]byte
	writes int
}

var _ Store = (*Memory)(nil)

// NewMemory returns an empty Memory store.
func NewMemory() *Memory {
	return &Memory{values: make(map[string][]byte)}
}

func (m *Memory) Get(_ context.Context, key string) ([]byte, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.values[key]
	if !ok {
		return nil, ErrNotFound
	}
	return cloneBytes(value), nil
}

func (m *Memory) Set(_ context.Context, key string, value []byte) error {
	if err := validateKey(key); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	m.values[key] = cloneBytes(value)
	m.writes++
	return nil
}

func (m *Memory) Delete(_ context.Context, key string) error {
	if err := validateKey(key); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.values[key]; ok {
		delete(m.values, key)
		m.writes++
	}
	return nil
}

// Writes reports how many mutations the store has accepted.
func (m *Memory) Writes() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.writes
}

func (m *Memory) Close() error { return nil }

func cloneBytes(b []byte) []byte {
	if b == nil {
		return []byte{}
	}
	dup := make([]byte, len(b))
	copy(dup, b)
	return dup
}
