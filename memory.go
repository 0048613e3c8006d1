package swr

import (
	"context"
	"sync"
)

var _ Storage = &Memory{}

// Memory is an in-memory Storage.
//
// Entries live until RemoveAll, freshness is managed by the Cache on top.
// Please use NewMemory to create an instance.
type Memory struct {
	sync.RWMutex
	data map[string]string
}

// NewMemory creates an in-memory storage.
func NewMemory() *Memory {
	return &Memory{
		data: make(map[string]string),
	}
}

// GetItem returns stored value or ErrNotFound.
func (m *Memory) GetItem(_ context.Context, key string) (string, error) {
	m.RLock()
	value, ok := m.data[key]
	m.RUnlock()

	if !ok {
		return "", ErrNotFound
	}

	return value, nil
}

// SetItem stores value.
func (m *Memory) SetItem(_ context.Context, key string, value string) error {
	m.Lock()
	m.data[key] = value
	m.Unlock()

	return nil
}

// Len returns number of stored items.
func (m *Memory) Len() int {
	m.RLock()
	cnt := len(m.data)
	m.RUnlock()

	return cnt
}

// RemoveAll deletes all entries.
func (m *Memory) RemoveAll() {
	m.Lock()
	m.data = make(map[string]string)
	m.Unlock()
}
