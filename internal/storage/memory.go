package storage

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/techvault/storefront/internal/models"
)

// Memory keeps the serialized cart in process memory. Used in tests and when
// running without a Redis instance. It round-trips through JSON so it
// exercises the same serialization path as the durable backends.
type Memory struct {
	mu    sync.Mutex
	data  []byte
	found bool

	// SaveErr, when set, is returned from every Save call.
	SaveErr error
	// Saves counts successful Save calls.
	Saves int
}

func NewMemory() *Memory {
	return &Memory{}
}

// Seed marshals items into the store as if a previous session had saved them.
func (m *Memory) Seed(items []models.LineItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.data = data
	m.found = true

	return nil
}

// SeedRaw stores an arbitrary payload, useful for simulating corruption.
func (m *Memory) SeedRaw(data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.data = data
	m.found = true
}

func (m *Memory) Load(_ context.Context) ([]models.LineItem, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.found {
		return nil, false, nil
	}

	var items []models.LineItem
	if err := json.Unmarshal(m.data, &items); err != nil {
		return nil, false, err
	}

	return items, true, nil
}

func (m *Memory) Save(_ context.Context, items []models.LineItem) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}

	data, err := json.Marshal(items)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.data = data
	m.found = true
	m.Saves++

	return nil
}
