package store

import (
	"context"
	"sync"
)

// MemoryStore keeps blobs in process memory. A positive Quota caps the bytes held per profile,
// mirroring the per-origin limit of browser storage.
type MemoryStore struct {
	mu    sync.RWMutex
	data  map[string]map[string][]byte
	Quota int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]map[string][]byte)}
}

func (m *MemoryStore) Get(_ context.Context, profileID, key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.data[profileID][key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, true, nil
}

func (m *MemoryStore) Put(_ context.Context, profileID, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	blobs, ok := m.data[profileID]
	if !ok {
		blobs = make(map[string][]byte)
		m.data[profileID] = blobs
	}

	if m.Quota > 0 {
		used := len(value)
		for k, v := range blobs {
			if k != key {
				used += len(v)
			}
		}
		if used > m.Quota {
			return ErrQuotaExceeded
		}
	}

	stored := make([]byte, len(value))
	copy(stored, value)
	blobs[key] = stored
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, profileID, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.data[profileID], key)
	return nil
}
