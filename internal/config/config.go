// Package config loads the TOML settings file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// DefaultPath is read when no --config flag is given
const DefaultPath = "tamagotchi.toml"

const (
	DefaultPetName     = "Tama"
	DefaultTickSeconds = 30
	DefaultDaySeconds  = 60
	DefaultBackend     = "json"
	DefaultSaveDir     = "saves"
	DefaultSlot        = "default"
	DefaultLogFile     = "tamagotchi.log"
)

// Config holds every user tunable setting
type Config struct {
	PetName     string `toml:"pet_name"`
	TickSeconds int    `toml:"tick_seconds"`
	DaySeconds  int    `toml:"day_seconds"`
	Backend     string `toml:"backend"`
	SaveDir     string `toml:"save_dir"`
	Slot        string `toml:"slot"`
	Autosave    bool   `toml:"autosave"`
	LogFile     string `toml:"log_file"`
}

// Default returns the built in settings
func Default() Config {
	return Config{
		PetName:     DefaultPetName,
		TickSeconds: DefaultTickSeconds,
		DaySeconds:  DefaultDaySeconds,
		Backend:     DefaultBackend,
		SaveDir:     DefaultSaveDir,
		Slot:        DefaultSlot,
		Autosave:    true,
		LogFile:     DefaultLogFile,
	}
}

// Load reads path on top of the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("No config at %s, using defaults", path)
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the config as TOML
func Save(path string, cfg Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Validate rejects settings the game cannot run with
func (c Config) Validate() error {
	if c.TickSeconds <= 0 {
		return fmt.Errorf("tick_seconds must be positive, got %d", c.TickSeconds)
	}
	if c.DaySeconds <= 0 {
		return fmt.Errorf("day_seconds must be positive, got %d", c.DaySeconds)
	}
	switch c.Backend {
	case "json", "sqlite":
	default:
		return fmt.Errorf("backend must be json or sqlite, got %q", c.Backend)
	}
	if c.Slot == "" {
		return errors.New("slot must not be empty")
	}
	return nil
}

// TickInterval is how often the pet advances
func (c Config) TickInterval() time.Duration {
	return time.Duration(c.TickSeconds) * time.Second
}

// DayInterval is how long one day of the pet's life lasts
func (c Config) DayInterval() time.Duration {
	return time.Duration(c.DaySeconds) * time.Second
}
