package storage

import "sync"

// MemStore is an in-memory KV used by tests and as a fallback when no data
// directory is available. An optional Quota (total bytes of stored values)
// makes it reproduce the quota behavior of a constrained backing store.
type MemStore struct {
	mu    sync.Mutex
	data  map[string]string
	Quota int // 0 means unlimited
}

func NewMemStore() *MemStore {
	return &MemStore{data: make(map[string]string)}
}

func (m *MemStore) Get(key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *MemStore) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Quota > 0 {
		total := len(value)
		for k, v := range m.data {
			if k == key {
				continue
			}
			total += len(v)
		}
		if total > m.Quota {
			return &QuotaExceededError{Key: key}
		}
	}
	m.data[key] = value
	return nil
}
