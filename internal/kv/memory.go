// ABOUTME: In-memory key-value medium
// ABOUTME: Used by tests and as a fallback when no data directory is writable

package kv

import "sync"

// MemoryMedium implements Medium with a plain map.
type MemoryMedium struct {
	mu     sync.Mutex
	values map[string]string
}

var _ Medium = (*MemoryMedium)(nil)

// NewMemory creates an empty in-memory medium.
func NewMemory() *MemoryMedium {
	return &MemoryMedium{values: make(map[string]string)}
}

func (m *MemoryMedium) Get(key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	if !ok {
		return "", ErrNoValue
	}
	return v, nil
}

func (m *MemoryMedium) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *MemoryMedium) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}

func (m *MemoryMedium) Close() error { return nil }
