// Package storage provides concrete mission.Reader implementations: an
// in-memory one for tests and a SQLite-backed one (via gorm + glebarez's
// pure-Go driver) for the CLI.
package storage

import (
	"context"

	"github.com/pkg/errors"

	"github.com/tiiuae/missionfeasibility/internal/mission"
)

// ErrNotFound is returned by ReadAt when the index is out of range.
var ErrNotFound = errors.New("mission item not found")

// Memory is a slice-backed mission.Reader, keyed by storage ID.
type Memory struct {
	missions map[string][]mission.Item
}

func NewMemory() *Memory {
	return &Memory{missions: make(map[string][]mission.Item)}
}

// Put replaces the stored item sequence for storageID.
func (m *Memory) Put(storageID string, items []mission.Item) {
	m.missions[storageID] = items
}

func (m *Memory) ReadAt(_ context.Context, storageID string, index int) (mission.Item, error) {
	items, ok := m.missions[storageID]
	if !ok || index < 0 || index >= len(items) {
		return mission.Item{}, ErrNotFound
	}
	return items[index], nil
}

func (m *Memory) Count(_ context.Context, storageID string) (int, error) {
	return len(m.missions[storageID]), nil
}

var _ mission.Reader = (*Memory)(nil)
