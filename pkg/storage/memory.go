package storage

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// MemoryBackend implements Backend using in-memory maps (not persistent)
type MemoryBackend struct {
	buckets map[string]map[string][]byte
	mu      sync.RWMutex
}

// NewMemoryBackend creates a new in-memory storage backend
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{
		buckets: make(map[string]map[string][]byte),
	}
}

func (m *MemoryBackend) EnsureBuckets(names ...[]byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, name := range names {
		if _, exists := m.buckets[string(name)]; !exists {
			m.buckets[string(name)] = make(map[string][]byte)
		}
	}

	return nil
}

func (m *MemoryBackend) PutAll(bucket []byte, entries []Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	bkt, exists := m.buckets[string(bucket)]
	if !exists {
		return fmt.Errorf("%w: %s", ErrBucketNotFound, bucket)
	}

	for _, e := range entries {
		bkt[string(e.Key)] = bytes.Clone(e.Value)
	}

	return nil
}

func (m *MemoryBackend) Get(bucket, key []byte) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	bkt, exists := m.buckets[string(bucket)]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrBucketNotFound, bucket)
	}

	value, exists := bkt[string(key)]
	if !exists {
		return nil, nil
	}

	return bytes.Clone(value), nil
}

func (m *MemoryBackend) ForEachPrefix(bucket, prefix []byte, fn func(k, v []byte) error) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	bkt, exists := m.buckets[string(bucket)]
	if !exists {
		return fmt.Errorf("%w: %s", ErrBucketNotFound, bucket)
	}

	// match bbolt's byte-ordered iteration
	keys := make([]string, 0, len(bkt))
	for k := range bkt {
		if strings.HasPrefix(k, string(prefix)) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	for _, k := range keys {
		if err := fn([]byte(k), bkt[k]); err != nil {
			return err
		}
	}

	return nil
}

// Close is a no-op for memory backend
func (m *MemoryBackend) Close() error {
	return nil
}
