package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"tamagotchi/internal/game"
)

// FileStore keeps one JSON file per slot
type FileStore struct {
	Dir string
}

// NewFileStore returns a store writing to dir
func NewFileStore(dir string) *FileStore {
	return &FileStore{Dir: dir}
}

// Path returns the file backing a slot
func (s *FileStore) Path(slot string) string {
	return filepath.Join(s.Dir, slot+".json")
}

// Save writes the snapshot through a temporary file so a crash never leaves a
// half written slot behind
func (s *FileStore) Save(slot string, snap game.Snapshot) error {
	if err := validSlot(slot); err != nil {
		return err
	}
	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		return fmt.Errorf("creating save directory: %w", err)
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}

	tmp := s.Path(slot) + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.Path(slot)); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replacing %s: %w", s.Path(slot), err)
	}
	log.Printf("Wrote %s", s.Path(slot))
	return nil
}

// Load reads a slot, returning ErrNoSave when the file does not exist
func (s *FileStore) Load(slot string) (game.Snapshot, error) {
	var snap game.Snapshot
	if err := validSlot(slot); err != nil {
		return snap, err
	}

	data, err := os.ReadFile(s.Path(slot))
	if errors.Is(err, fs.ErrNotExist) {
		return snap, fmt.Errorf("%w: %s", ErrNoSave, slot)
	}
	if err != nil {
		return snap, fmt.Errorf("reading %s: %w", s.Path(slot), err)
	}
	if err := json.Unmarshal(data, &snap); err != nil {
		return snap, fmt.Errorf("decoding %s: %w", s.Path(slot), err)
	}
	log.Printf("Read %s", s.Path(slot))
	return snap, nil
}

// Slots lists the saved slot names
func (s *FileStore) Slots() ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(s.Dir, "*.json"))
	if err != nil {
		return nil, err
	}
	slots := make([]string, 0, len(matches))
	for _, m := range matches {
		name := filepath.Base(m)
		slots = append(slots, name[:len(name)-len(".json")])
	}
	return slots, nil
}

// Close is a no-op; files are not held open
func (s *FileStore) Close() error {
	return nil
}
