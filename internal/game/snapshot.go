package game

import (
	"fmt"
	"log"
	"time"

	"tamagotchi/internal/achievement"
	"tamagotchi/internal/pet"
)

// TimeNow is swapped in tests
var TimeNow = time.Now

// Snapshot is the persisted form of a session
type Snapshot struct {
	Pet          *pet.Pet        `json:"pet"`
	Achievements achievement.Set `json:"achievements"`
	SavedAt      time.Time       `json:"saved_at"`
}

// Store persists snapshots under a slot name. Load returns an error wrapping a
// backend specific "no save" sentinel when the slot is empty.
type Store interface {
	Save(slot string, snap Snapshot) error
	Load(slot string) (Snapshot, error)
}

// Snapshot returns a deep copy of the session ready to be saved
func (s *Session) Snapshot() Snapshot {
	achievements := s.Achievements.Clone()
	achievement.EnsureAllKeysPresent(achievements)
	return Snapshot{
		Pet:          s.Pet.Clone(),
		Achievements: achievements,
		SavedAt:      TimeNow().UTC(),
	}
}

// Restore replaces the session state with a snapshot. The snapshot is copied
// and repaired, so older or hand-edited saves still satisfy every invariant.
func (s *Session) Restore(snap Snapshot) {
	if snap.Pet == nil {
		log.Printf("Snapshot has no pet, starting a new one")
		s.Pet = pet.NewPet("")
	} else {
		s.Pet = snap.Pet.Clone()
		s.Pet.Normalize()
	}

	if snap.Achievements == nil {
		s.Achievements = achievement.NewSet()
	} else {
		s.Achievements = snap.Achievements.Clone()
		achievement.EnsureAllKeysPresent(s.Achievements)
	}
	log.Printf("Restored %s with %d achievements unlocked", s.Pet.Name, s.Achievements.Unlocked())
}

// FromSnapshot builds a new session from a snapshot
func FromSnapshot(snap Snapshot) *Session {
	s := &Session{}
	s.Restore(snap)
	return s
}

// Save writes the session to a slot
func (s *Session) Save(store Store, slot string) error {
	if err := store.Save(slot, s.Snapshot()); err != nil {
		return fmt.Errorf("saving slot %q: %w", slot, err)
	}
	log.Printf("Saved %s to slot %s", s.Pet.Name, slot)
	return nil
}

// Load reads a session back from a slot
func Load(store Store, slot string) (*Session, error) {
	snap, err := store.Load(slot)
	if err != nil {
		return nil, fmt.Errorf("loading slot %q: %w", slot, err)
	}
	return FromSnapshot(snap), nil
}
