package state

import (
	"context"
	"sync"
)

type memoryRow struct {
	state State
	data  map[string]any
}

// MemoryStorage is an in-memory Storage implementation for tests and
// development. Unlike PostgresStorage it is safe for concurrent use.
type MemoryStorage struct {
	mu   sync.RWMutex
	keys KeyBuilder
	rows map[string]*memoryRow
}

// NewMemoryStorage constructs an empty in-memory storage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		keys: DefaultKeyBuilder{},
		rows: make(map[string]*memoryRow),
	}
}

func (m *MemoryStorage) row(key StorageKey) *memoryRow {
	built := m.keys.Build(key)
	row, ok := m.rows[built]
	if !ok {
		row = &memoryRow{data: make(map[string]any)}
		m.rows[built] = row
	}
	return row
}

// SetState updates the state label for the conversation key.
func (m *MemoryStorage) SetState(_ context.Context, key StorageKey, st State) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.row(key).state = st
	return nil
}

// GetState returns the stored label, or StateNone for an unseen key.
func (m *MemoryStorage) GetState(_ context.Context, key StorageKey) (State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.row(key).state, nil
}

// SetData replaces the data document for the conversation key.
func (m *MemoryStorage) SetData(_ context.Context, key StorageKey, data map[string]any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := make(map[string]any, len(data))
	for k, v := range data {
		copied[k] = v
	}
	m.row(key).data = copied
	return nil
}

// GetData returns a copy of the stored data document.
func (m *MemoryStorage) GetData(_ context.Context, key StorageKey) (map[string]any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	row := m.row(key)
	copied := make(map[string]any, len(row.data))
	for k, v := range row.data {
		copied[k] = v
	}
	return copied, nil
}

// Close drops all sessions.
func (m *MemoryStorage) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rows = make(map[string]*memoryRow)
	return nil
}
