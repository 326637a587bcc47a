// Package store persists the editor's document collections in a Badger
// database. Each entity kind lives under its own key prefix and behaves
// like an independent document collection: list, get, insert with a
// generated id, put by explicit id, and remove.
package store

import (
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"

	"github.com/tanamapapp/tanamap-server/internal/domain"
)

// Store wraps a Badger database instance.
type Store struct {
	db     *badger.DB
	logger *slog.Logger

	// Document collections
	Categories  *Entity[domain.Category]
	Slots       *Entity[domain.Slot]
	Assignments *Entity[domain.Assignment]
	Floors      *Entity[domain.Floor]
}

// New creates a new Store instance with the given database path.
func New(path string, logger *slog.Logger) (*Store, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil            // Disable Badger's internal logging
	opts.SyncWrites = true       // Ensure writes are synced to disk to prevent corruption on crashes
	opts.CompactL0OnClose = true // Compact L0 tables on close for faster startup

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger db: %w", err)
	}

	store := &Store{
		db:     db,
		logger: logger,
	}

	// Collection names mirror the document-store layout: categories,
	// layoutSlots, slotAssignments, floors.
	store.Categories = NewEntity[domain.Category](store, "category:")
	store.Slots = NewEntity[domain.Slot](store, "slot:")
	store.Assignments = NewEntity[domain.Assignment](store, "assignment:")
	store.Floors = NewEntity[domain.Floor](store, "floor:")

	if logger != nil {
		logger.Info("Badger database opened successfully", "path", path)
	}

	return store, nil
}

// Close gracefully closes the database connection.
func (s *Store) Close() error {
	if s.logger != nil {
		s.logger.Info("Closing database connection")
	}
	return s.db.Close()
}
