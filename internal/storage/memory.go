package storage

import (
	"context"
	"sync"

	"github.com/paragonforge/planner-api/internal/errors"
)

// Memory is an in-process Store for tests and single-node development runs
type Memory struct {
	mu      sync.RWMutex
	records map[string][]byte
}

// NewMemory creates an empty in-memory record store
func NewMemory() *Memory {
	return &Memory{records: make(map[string][]byte)}
}

// Get retrieves a copy of the record stored under key
func (m *Memory) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, errors.InvalidArgument("key cannot be empty")
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.records[key]
	if !ok {
		return nil, errors.NotFoundf("record %q not found", key)
	}

	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

// Set stores a copy of value under key
func (m *Memory) Set(ctx context.Context, key string, value []byte) error {
	if key == "" {
		return errors.InvalidArgument("key cannot be empty")
	}

	stored := make([]byte, len(value))
	copy(stored, value)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[key] = stored
	return nil
}

// Delete removes the record under key
func (m *Memory) Delete(ctx context.Context, key string) error {
	if key == "" {
		return errors.InvalidArgument("key cannot be empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.records, key)
	return nil
}
