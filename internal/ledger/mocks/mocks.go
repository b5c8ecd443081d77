// Package mocks provides hand-written fakes for the ledger interfaces.
package mocks

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/iho/dualstream/internal/adapter/store"
)

// MockIDGenerator is a mock implementation of IDGenerator. Without a
// GenerateFunc it yields id-1, id-2, ...
type MockIDGenerator struct {
	mu sync.Mutex
	n  int

	GenerateFunc func() string
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.n++
	return "id-" + strconv.Itoa(m.n)
}

// MockClock is a mock implementation of Clock pinned to a fixed time.
type MockClock struct {
	NowFunc func() time.Time
}

func NewMockClock() *MockClock {
	return &MockClock{}
}

func (m *MockClock) Now() time.Time {
	if m.NowFunc != nil {
		return m.NowFunc()
	}
	return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
}

// MockSnapshotStore is an in-memory mock of SnapshotStore.
type MockSnapshotStore struct {
	mu   sync.Mutex
	data []byte

	LoadFunc func(ctx context.Context) ([]byte, error)
	SaveFunc func(ctx context.Context, data []byte) error

	SaveCalls int
}

func NewMockSnapshotStore() *MockSnapshotStore {
	return &MockSnapshotStore{}
}

func (m *MockSnapshotStore) Load(ctx context.Context) ([]byte, error) {
	if m.LoadFunc != nil {
		return m.LoadFunc(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.data == nil {
		return nil, store.ErrNotFound
	}
	return append([]byte(nil), m.data...), nil
}

func (m *MockSnapshotStore) Save(ctx context.Context, data []byte) error {
	m.mu.Lock()
	m.SaveCalls++
	m.mu.Unlock()
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, data)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = append([]byte(nil), data...)
	return nil
}

// Stored returns the last saved snapshot bytes.
func (m *MockSnapshotStore) Stored() []byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]byte(nil), m.data...)
}
