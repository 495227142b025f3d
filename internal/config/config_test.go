package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if cfg != Default() {
		t.Errorf("Expected defaults, got %+v", cfg)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tamagotchi.toml")
	data := `
pet_name = "Mochi"
tick_seconds = 5
backend = "sqlite"
autosave = false
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.PetName != "Mochi" || cfg.Backend != "sqlite" || cfg.Autosave {
		t.Errorf("Unexpected config %+v", cfg)
	}
	if cfg.TickInterval() != 5*time.Second {
		t.Errorf("Expected 5s tick, got %v", cfg.TickInterval())
	}
	if cfg.DayInterval() != time.Minute {
		t.Errorf("Expected default day of 1m, got %v", cfg.DayInterval())
	}
	if cfg.SaveDir != DefaultSaveDir || cfg.Slot != DefaultSlot {
		t.Errorf("Unset fields should keep defaults, got %+v", cfg)
	}
}

func TestLoadRejectsBadFiles(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"malformed", "pet_name = "},
		{"zero tick", "tick_seconds = 0"},
		{"negative day", "day_seconds = -1"},
		{"unknown backend", `backend = "floppy"`},
		{"empty slot", `slot = ""`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.toml")
			if err := os.WriteFile(path, []byte(tt.data), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Error("Expected an error")
			}
		})
	}
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.toml")
	want := Default()
	want.PetName = "Pixel"
	want.DaySeconds = 120

	if err := Save(path, want); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got != want {
		t.Errorf("Expected %+v, got %+v", want, got)
	}
}
