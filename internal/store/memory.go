package store

import "sync"

// MemoryKV is the map-backed [KV] used for tests and for runs started with
// an in-memory DSN. Nothing survives process exit.
type MemoryKV struct {
	mu    sync.RWMutex
	slots map[string]string
}

// NewMemoryKV returns an empty in-memory slot storage.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{slots: make(map[string]string)}
}

func (m *MemoryKV) Get(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.slots[key]
	return v, ok
}

func (m *MemoryKV) Set(key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.slots[key] = value
}

func (m *MemoryKV) Remove(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.slots, key)
}
