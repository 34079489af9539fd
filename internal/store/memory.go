// internal/store/memory.go
//
// In-memory implementation of the Store interface.
// This is a lightweight persistence layer used for development and tests,
// or when durability is not required.
//
// Characteristics:
//   - Plain keys honor TTLs (expiry checked lazily on read).
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - State is lost when the process restarts.

package store

import (
	"context"
	"sort"
	"sync"
	"time"
)

// memory is a map-based Store implementation.
type memory struct {
	mu     sync.RWMutex
	keys   map[string]memoryValue
	hashes map[string]map[string]string
	zsets  map[string]map[string]float64
}

type memoryValue struct {
	value     string
	expiresAt time.Time // zero = no expiry
}

// NewMemory constructs an in-memory Store.
func NewMemory() Store {
	return &memory{
		keys:   make(map[string]memoryValue),
		hashes: make(map[string]map[string]string),
		zsets:  make(map[string]map[string]float64),
	}
}

func (m *memory) Get(ctx context.Context, key string) (string, error) {
	m.mu.RLock()
	v, ok := m.keys[key]
	m.mu.RUnlock()
	if !ok {
		return "", ErrNotFound
	}
	if !v.expiresAt.IsZero() && time.Now().After(v.expiresAt) {
		m.mu.Lock()
		delete(m.keys, key)
		m.mu.Unlock()
		return "", ErrNotFound
	}
	return v.value, nil
}

func (m *memory) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	var exp time.Time
	if ttl > 0 {
		exp = time.Now().Add(ttl)
	}
	m.mu.Lock()
	m.keys[key] = memoryValue{value: value, expiresAt: exp}
	m.mu.Unlock()
	return nil
}

func (m *memory) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	delete(m.keys, key)
	m.mu.Unlock()
	return nil
}

func (m *memory) HashGet(ctx context.Context, key, field string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if h, ok := m.hashes[key]; ok {
		if v, ok := h[field]; ok {
			return v, nil
		}
	}
	return "", ErrNotFound
}

func (m *memory) HashSet(ctx context.Context, key, field, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	h, ok := m.hashes[key]
	if !ok {
		h = make(map[string]string)
		m.hashes[key] = h
	}
	h[field] = value
	return nil
}

func (m *memory) HashGetAll(ctx context.Context, key string) (map[string]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[string]string, len(m.hashes[key]))
	for f, v := range m.hashes[key] {
		out[f] = v
	}
	return out, nil
}

func (m *memory) SortedSetAdd(ctx context.Context, key, member string, score float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	z, ok := m.zsets[key]
	if !ok {
		z = make(map[string]float64)
		m.zsets[key] = z
	}
	z[member] = score
	return nil
}

func (m *memory) SortedSetRange(ctx context.Context, key string, start, stop int, desc bool) ([]ScoredMember, error) {
	m.mu.RLock()
	members := make([]ScoredMember, 0, len(m.zsets[key]))
	for mem, sc := range m.zsets[key] {
		members = append(members, ScoredMember{Member: mem, Score: sc})
	}
	m.mu.RUnlock()

	sort.Slice(members, func(i, j int) bool {
		if members[i].Score != members[j].Score {
			if desc {
				return members[i].Score > members[j].Score
			}
			return members[i].Score < members[j].Score
		}
		return members[i].Member < members[j].Member
	})
	return sliceRange(members, start, stop), nil
}

// sliceRange applies redis-style start/stop rank bounds (stop inclusive,
// negative stop counts from the end).
func sliceRange(members []ScoredMember, start, stop int) []ScoredMember {
	n := len(members)
	if stop < 0 {
		stop = n + stop
	}
	if start < 0 {
		start = 0
	}
	if stop >= n {
		stop = n - 1
	}
	if start > stop || start >= n {
		return []ScoredMember{}
	}
	return members[start : stop+1]
}
