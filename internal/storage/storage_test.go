package storage

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"tamagotchi/internal/achievement"
	"tamagotchi/internal/game"
	"tamagotchi/internal/pet"
)

func sampleSession() *game.Session {
	s := game.New("Mochi")
	s.Act(pet.ActionFeed)
	s.Act(pet.ActionWalk)
	s.Tick()
	return s
}

func openBackends(t *testing.T) map[string]Store {
	t.Helper()
	stores := map[string]Store{}
	for _, backend := range []string{BackendJSON, BackendSQLite} {
		store, err := Open(backend, t.TempDir())
		if err != nil {
			t.Fatalf("Open(%s) failed: %v", backend, err)
		}
		t.Cleanup(func() { store.Close() })
		stores[backend] = store
	}
	return stores
}

func TestRoundTrip(t *testing.T) {
	for name, store := range openBackends(t) {
		t.Run(name, func(t *testing.T) {
			s := sampleSession()
			if err := s.Save(store, "default"); err != nil {
				t.Fatalf("Save failed: %v", err)
			}
			loaded, err := game.Load(store, "default")
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			if !reflect.DeepEqual(loaded.Pet, s.Pet) {
				t.Errorf("Expected pet %+v, got %+v", s.Pet, loaded.Pet)
			}
			if !reflect.DeepEqual(loaded.Achievements, s.Achievements) {
				t.Errorf("Expected achievements %v, got %v", s.Achievements, loaded.Achievements)
			}
		})
	}
}

func TestMissingSlot(t *testing.T) {
	for name, store := range openBackends(t) {
		t.Run(name, func(t *testing.T) {
			_, err := store.Load("nothing-here")
			if !errors.Is(err, ErrNoSave) {
				t.Errorf("Expected ErrNoSave, got %v", err)
			}
		})
	}
}

func TestInvalidSlot(t *testing.T) {
	for name, store := range openBackends(t) {
		t.Run(name, func(t *testing.T) {
			for _, slot := range []string{"", "..", "../escape", `a\b`} {
				if err := store.Save(slot, game.New("").Snapshot()); !errors.Is(err, ErrInvalidSlot) {
					t.Errorf("Save(%q): expected ErrInvalidSlot, got %v", slot, err)
				}
				if _, err := store.Load(slot); !errors.Is(err, ErrInvalidSlot) {
					t.Errorf("Load(%q): expected ErrInvalidSlot, got %v", slot, err)
				}
			}
		})
	}
}

func TestSlotsAreIndependent(t *testing.T) {
	for name, store := range openBackends(t) {
		t.Run(name, func(t *testing.T) {
			a := game.New("Alpha")
			b := game.New("Beta")
			if err := a.Save(store, "a"); err != nil {
				t.Fatal(err)
			}
			if err := b.Save(store, "b"); err != nil {
				t.Fatal(err)
			}
			loaded, err := game.Load(store, "a")
			if err != nil {
				t.Fatal(err)
			}
			if loaded.Pet.Name != "Alpha" {
				t.Errorf("Expected Alpha, got %s", loaded.Pet.Name)
			}
		})
	}
}

func TestUnknownBackend(t *testing.T) {
	if _, err := Open("floppy", t.TempDir()); err == nil {
		t.Error("Expected an error for an unknown backend")
	}
}

func TestFileStoreLayout(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "saves")
	store := NewFileStore(dir)
	if err := game.New("").Save(store, "default"); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "default.json")); err != nil {
		t.Errorf("Expected default.json to exist: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "default.json.tmp")); !os.IsNotExist(err) {
		t.Error("Temporary file should be gone after save")
	}

	slots, err := store.Slots()
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(slots, []string{"default"}) {
		t.Errorf("Expected [default], got %v", slots)
	}
}

func TestFileStoreRepairsOlderSave(t *testing.T) {
	dir := t.TempDir()
	old := `{
  "pet": {"name": "Old", "hunger": 50, "happiness": 60, "health": 70, "energy": 40, "meals_eaten": 2},
  "achievements": {"First Meal": true}
}`
	if err := os.WriteFile(filepath.Join(dir, "old.json"), []byte(old), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := game.Load(NewFileStore(dir), "old")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if s.Pet.Name != "Old" || s.Pet.MealsEaten != 2 || s.Pet.Hunger != 50 {
		t.Errorf("Unexpected pet %+v", s.Pet)
	}
	if len(s.Pet.Traits) != len(pet.Traits()) || s.Pet.Personality != pet.Normal {
		t.Errorf("Expected restored personality, got %v %s", s.Pet.Traits, s.Pet.Personality)
	}
	if len(s.Achievements) != len(achievement.Definitions) || !s.Achievements[achievement.FirstMeal] {
		t.Errorf("Expected reconciled achievements, got %v", s.Achievements)
	}
}

func TestFileStoreCorruptSave(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "bad.json"), []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	_, err := NewFileStore(dir).Load("bad")
	if err == nil || errors.Is(err, ErrNoSave) {
		t.Errorf("Expected a decode error, got %v", err)
	}
}

func TestSQLiteKeepsHistory(t *testing.T) {
	store, err := OpenSQLite(t.TempDir())
	if err != nil {
		t.Fatalf("OpenSQLite failed: %v", err)
	}
	defer store.Close()

	orig := game.TimeNow
	defer func() { game.TimeNow = orig }()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	s := game.New("Mochi")
	for i := 0; i < 3; i++ {
		game.TimeNow = func() time.Time { return base.Add(time.Duration(i) * time.Minute) }
		s.Act(pet.ActionFeed)
		if err := s.Save(store, "default"); err != nil {
			t.Fatalf("Save %d failed: %v", i, err)
		}
	}

	n, err := store.History("default")
	if err != nil {
		t.Fatal(err)
	}
	if n != 3 {
		t.Errorf("Expected 3 saves, got %d", n)
	}

	loaded, err := game.Load(store, "default")
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Pet.MealsEaten != 3 {
		t.Errorf("Expected the latest save with 3 meals, got %d", loaded.Pet.MealsEaten)
	}
}

func TestSQLiteReopen(t *testing.T) {
	dir := t.TempDir()
	store, err := OpenSQLite(dir)
	if err != nil {
		t.Fatal(err)
	}
	if err := game.New("Persisted").Save(store, "default"); err != nil {
		t.Fatal(err)
	}
	store.Close()

	store, err = OpenSQLite(dir)
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()
	s, err := game.Load(store, "default")
	if err != nil {
		t.Fatal(err)
	}
	if s.Pet.Name != "Persisted" {
		t.Errorf("Expected Persisted, got %s", s.Pet.Name)
	}
}

func TestSlots(t *testing.T) {
	for name, store := range openBackends(t) {
		t.Run(name, func(t *testing.T) {
			empty, err := store.Slots()
			if err != nil || len(empty) != 0 {
				t.Fatalf("Expected no slots, got %v (%v)", empty, err)
			}
			for _, slot := range []string{"beta", "alpha", "beta"} {
				if err := game.New("").Save(store, slot); err != nil {
					t.Fatal(err)
				}
			}
			slots, err := store.Slots()
			if err != nil {
				t.Fatal(err)
			}
			if !reflect.DeepEqual(slots, []string{"alpha", "beta"}) {
				t.Errorf("Expected [alpha beta], got %v", slots)
			}
		})
	}
}
