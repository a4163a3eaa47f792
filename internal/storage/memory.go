package storage

import (
	"context"
	"encoding/json"
	"sync"
)

// MemoryStore keeps blobs in a map. Used in tests.
type MemoryStore struct {
	mu    sync.Mutex
	blobs map[string]json.RawMessage
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{blobs: make(map[string]json.RawMessage)}
}

// Load returns the stored blob or an empty object.
func (m *MemoryStore) Load(ctx context.Context, namespace string) (json.RawMessage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if data, ok := m.blobs[namespace]; ok {
		return data, nil
	}
	return EmptyBlob, nil
}

// Save stores the blob.
func (m *MemoryStore) Save(ctx context.Context, namespace string, data json.RawMessage) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.blobs[namespace] = append(json.RawMessage(nil), data...)
	return nil
}

// Healthy always succeeds.
func (m *MemoryStore) Healthy(ctx context.Context) error { return nil }
