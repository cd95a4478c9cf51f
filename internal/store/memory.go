package store

import (
	"context"
	"sort"
	"sync"
)

// MemoryStore keeps documents in process. Used by STORE_BACKEND=memory and tests.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string]map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{collections: make(map[string]map[string][]byte)}
}

func (m *MemoryStore) Get(_ context.Context, collection, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.collections[collection][key]
	if !ok {
		return nil, ErrKeyNotFound
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

func (m *MemoryStore) Set(_ context.Context, collection, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	docs, ok := m.collections[collection]
	if !ok {
		docs = make(map[string][]byte)
		m.collections[collection] = docs
	}
	v := make([]byte, len(value))
	copy(v, value)
	docs[key] = v
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, collection, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.collections[collection], key)
	return nil
}

func (m *MemoryStore) List(_ context.Context, collection string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	keys := make([]string, 0, len(m.collections[collection]))
	for k := range m.collections[collection] {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}
