// Package storage persists game snapshots to JSON slot files or SQLite.
package storage

import (
	"errors"
	"fmt"
	"strings"

	"tamagotchi/internal/game"
)

var (
	// ErrNoSave means the slot has never been saved to
	ErrNoSave = errors.New("no save in slot")
	// ErrInvalidSlot rejects slot names that could escape the save directory
	ErrInvalidSlot = errors.New("invalid slot name")
)

// Backend names accepted by Open
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// DBFileName is the database file created inside the save directory
const DBFileName = "saves.db"

// Store is a game.Store that can list its slots and may hold resources
type Store interface {
	game.Store
	Slots() ([]string, error)
	Close() error
}

// Open returns the store for a backend rooted at dir
func Open(backend, dir string) (Store, error) {
	switch backend {
	case BackendJSON, "":
		return NewFileStore(dir), nil
	case BackendSQLite:
		return OpenSQLite(dir)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", backend)
	}
}

func validSlot(slot string) error {
	if slot == "" || slot == "." || slot == ".." || strings.ContainsAny(slot, `/\`) {
		return fmt.Errorf("%w: %q", ErrInvalidSlot, slot)
	}
	return nil
}
