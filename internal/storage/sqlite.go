package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"tamagotchi/internal/game"
)

const schema = `
CREATE TABLE IF NOT EXISTS saves (
	id       TEXT PRIMARY KEY,
	slot     TEXT NOT NULL,
	saved_at INTEGER NOT NULL,
	data     TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS saves_slot ON saves(slot, saved_at);
`

// SQLiteStore appends every save as a new row, so a slot keeps its history.
// Load returns the most recent row.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (and creates if needed) saves.db inside dir
func OpenSQLite(dir string) (*SQLiteStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating save directory: %w", err)
	}
	path := filepath.Join(dir, DBFileName)

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	log.Printf("Connected to SQLite database at %s", path)
	return &SQLiteStore{db: db}, nil
}

// Save inserts a new row for the slot
func (s *SQLiteStore) Save(slot string, snap game.Snapshot) error {
	if err := validSlot(slot); err != nil {
		return err
	}
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}

	id := uuid.NewString()
	_, err = s.db.Exec(
		`INSERT INTO saves (id, slot, saved_at, data) VALUES (?, ?, ?, ?)`,
		id, slot, snap.SavedAt.UnixNano(), string(data),
	)
	if err != nil {
		return fmt.Errorf("inserting save: %w", err)
	}
	log.Printf("Stored save %s for slot %s", id, slot)
	return nil
}

// Load returns the latest save of a slot
func (s *SQLiteStore) Load(slot string) (game.Snapshot, error) {
	var snap game.Snapshot
	if err := validSlot(slot); err != nil {
		return snap, err
	}

	var id, data string
	err := s.db.QueryRow(`
		SELECT id, data
		FROM saves
		WHERE slot = ?
		ORDER BY saved_at DESC, rowid DESC
		LIMIT 1
	`, slot).Scan(&id, &data)
	if errors.Is(err, sql.ErrNoRows) {
		return snap, fmt.Errorf("%w: %s", ErrNoSave, slot)
	}
	if err != nil {
		return snap, fmt.Errorf("querying slot %s: %w", slot, err)
	}

	if err := json.Unmarshal([]byte(data), &snap); err != nil {
		return snap, fmt.Errorf("decoding save %s: %w", id, err)
	}
	log.Printf("Loaded save %s for slot %s", id, slot)
	return snap, nil
}

// Slots lists every slot with at least one save
func (s *SQLiteStore) Slots() ([]string, error) {
	rows, err := s.db.Query(`SELECT DISTINCT slot FROM saves ORDER BY slot`)
	if err != nil {
		return nil, fmt.Errorf("listing slots: %w", err)
	}
	defer rows.Close()

	var slots []string
	for rows.Next() {
		var slot string
		if err := rows.Scan(&slot); err != nil {
			return nil, fmt.Errorf("scanning slot: %w", err)
		}
		slots = append(slots, slot)
	}
	return slots, rows.Err()
}

// History counts the saves kept for a slot
func (s *SQLiteStore) History(slot string) (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM saves WHERE slot = ?`, slot).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting saves: %w", err)
	}
	return n, nil
}

// Close closes the database connection
func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
