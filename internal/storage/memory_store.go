package storage

import (
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

// MemoryStore keeps encoded values in process memory.
type MemoryStore struct {
	mu     sync.Mutex
	values map[string][]byte
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string][]byte)}
}

// Get decodes the value stored under key into out.
func (store *MemoryStore) Get(key string, out any) (bool, error) {
	store.mu.Lock()
	data, ok := store.values[key]
	store.mu.Unlock()
	if !ok {
		return false, nil
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return true, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

// Set encodes value under key.
func (store *MemoryStore) Set(key string, value any) error {
	data, err := yaml.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	store.mu.Lock()
	store.values[key] = data
	store.mu.Unlock()
	return nil
}

// SetRaw stores pre-encoded YAML under key.
func (store *MemoryStore) SetRaw(key string, data []byte) {
	store.mu.Lock()
	store.values[key] = append([]byte(nil), data...)
	store.mu.Unlock()
}

// Close is a no-op.
func (store *MemoryStore) Close() error {
	return nil
}
