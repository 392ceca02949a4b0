package yabotconfig

import (
	"maps"
	"sync"
)

// safeMap is a minimal RWMutex-guarded map backing the StaticProvider.
type safeMap[K comparable, V any] struct {
	data map[K]V
	mu   sync.RWMutex
}

func newSafeMap[K comparable, V any]() *safeMap[K, V] {
	return &safeMap[K, V]{data: make(map[K]V)}
}

// Get retrieves the value for a key and whether it was found.
func (m *safeMap[K, V]) Get(key K) (V, bool) {
	m.mu.RLock()
	val, ok := m.data[key]
	m.mu.RUnlock()

	return val, ok
}

// GetOrSet stores value under key unless the key already exists. It returns
// the value now in the map and whether the key was already present.
func (m *safeMap[K, V]) GetOrSet(key K, value V) (V, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if existing, ok := m.data[key]; ok {
		return existing, true
	}

	m.data[key] = value

	return value, false
}

// Has reports whether the key exists.
func (m *safeMap[K, V]) Has(key K) bool {
	m.mu.RLock()
	_, ok := m.data[key]
	m.mu.RUnlock()

	return ok
}

// Copy returns a snapshot of the map's content.
func (m *safeMap[K, V]) Copy() map[K]V {
	m.mu.RLock()
	snapshot := make(map[K]V, len(m.data))
	maps.Copy(snapshot, m.data)
	m.mu.RUnlock()

	return snapshot
}

// Length returns the number of stored pairs.
func (m *safeMap[K, V]) Length() int {
	m.mu.RLock()
	length := len(m.data)
	m.mu.RUnlock()

	return length
}
