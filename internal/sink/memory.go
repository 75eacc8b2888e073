package sink

import (
	"bytes"
	"context"
	"io"
	"maps"
	"sort"
	"sync"
)

type memoryObject struct {
	body        []byte
	contentType string
	metadata    map[string]string
}

// Memory keeps objects in process. Safe for concurrent use.
type Memory struct {
	mu      sync.RWMutex
	objects map[string]memoryObject
}

// NewMemory returns an empty in-memory sink.
func NewMemory() *Memory {
	return &Memory{objects: make(map[string]memoryObject)}
}

func (m *Memory) Driver() Driver { return DriverMemory }

func (m *Memory) Put(ctx context.Context, key string, r io.Reader, opts PutOptions) (Info, error) {
	if err := ctx.Err(); err != nil {
		return Info{}, err
	}
	k, err := cleanKey(key)
	if err != nil {
		return Info{}, err
	}
	body, err := io.ReadAll(r)
	if err != nil {
		return Info{}, err
	}

	m.mu.Lock()
	m.objects[k] = memoryObject{body: body, contentType: opts.ContentType, metadata: maps.Clone(opts.Metadata)}
	m.mu.Unlock()

	return Info{Key: k, Location: "memory://" + k, Size: int64(len(body))}, nil
}

// Bytes returns a copy of the object stored under key.
func (m *Memory) Bytes(key string) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	obj, ok := m.objects[key]
	if !ok {
		return nil, false
	}
	return bytes.Clone(obj.body), true
}

// ContentType returns the content type recorded for key.
func (m *Memory) ContentType(key string) string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.objects[key].contentType
}

// Metadata returns a copy of the metadata recorded for key.
func (m *Memory) Metadata(key string) map[string]string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return maps.Clone(m.objects[key].metadata)
}

// Keys lists stored keys in sorted order.
func (m *Memory) Keys() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	keys := make([]string, 0, len(m.objects))
	for k := range m.objects {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
