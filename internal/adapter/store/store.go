// Package store provides durable key-value homes for encoded document
// snapshots. The ledger engine never touches these; the service layer
// loads one blob at startup and writes the full blob back after every
// successful mutation.
package store

import (
	"context"
	"errors"
	"fmt"
)

// ErrNotFound is returned by Load when no snapshot has been saved yet.
var ErrNotFound = errors.New("snapshot not found")

// Config identifies where a snapshot lives. The schema version is part
// of the effective key so format migrations can run outside the engine:
// bumping the version simply starts from a fresh key while the old blob
// stays readable by migration tooling.
type Config struct {
	StorageKey    string
	SchemaVersion int
}

// Key returns the effective storage key.
func (c Config) Key() string {
	return fmt.Sprintf("%s_v%d", c.StorageKey, c.SchemaVersion)
}

// SnapshotStore persists the encoded document blob under a fixed key.
type SnapshotStore interface {
	// Load returns the stored snapshot, or ErrNotFound if none exists.
	Load(ctx context.Context) ([]byte, error)
	// Save overwrites the stored snapshot atomically.
	Save(ctx context.Context, data []byte) error
	// Ping reports whether the backing store is reachable.
	Ping(ctx context.Context) error
}
