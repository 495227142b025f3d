package pet

import (
	"errors"
	"log"
)

// Precondition failures reported by Check. Action handlers never return these,
// they simply leave the pet untouched.
var (
	ErrSleeping = errors.New("pet is sleeping")
	ErrAwake    = errors.New("pet is already awake")
	ErrTooTired = errors.New("pet is too tired")
	ErrUnknown  = errors.New("unknown action")
)

// Stats is a set of changes to the six bounded stats. It is used both for
// action effects and for the per-tick decay tables.
type Stats struct {
	Hunger      int
	Happiness   int
	Health      int
	Energy      int
	Hygiene     int
	Exploration int
}

// Pet represents the virtual pet's state.
//
// Fields are exported so collaborators can read them and so the pet can be
// serialized, but every change should go through the methods in this package:
// they keep each stat in [MinStat, MaxStat] and every trait in [0, MaxTrait].
type Pet struct {
	Name        string `json:"name"`
	Hunger      int    `json:"hunger"`
	Happiness   int    `json:"happiness"`
	Health      int    `json:"health"`
	Energy      int    `json:"energy"`
	Hygiene     int    `json:"hygiene"`
	Exploration int    `json:"exploration"`
	Sleeping    bool   `json:"sleeping"`

	// Lifetime counters, only ever incremented
	MealsEaten   int `json:"meals_eaten"`
	GamesPlayed  int `json:"games_played"`
	BathsTaken   int `json:"baths_taken"`
	WalksTaken   int `json:"walks_taken"`
	Age          int `json:"age"`
	DaysSurvived int `json:"days_survived"`

	// Personality
	Traits      map[Trait]int `json:"traits"`
	Personality string        `json:"personality"`
}

// NewPet creates a pet with the default starting stats and a neutral personality
func NewPet(name string) *Pet {
	if name == "" {
		name = DefaultPetName
	}
	p := &Pet{
		Name:        name,
		Hunger:      InitialHunger,
		Happiness:   InitialHappiness,
		Health:      InitialHealth,
		Energy:      InitialEnergy,
		Hygiene:     InitialHygiene,
		Exploration: InitialExploration,
	}
	p.InitializePersonality()
	p.RecomputePersonality()
	log.Printf("Created new pet: %s", p.Name)
	return p
}

// IsAlive reports whether the pet still has any health left
func (p *Pet) IsAlive() bool {
	return p.Health > MinStat
}

// NeedsWalk reports whether the pet is desperate to go outside
func (p *Pet) NeedsWalk() bool {
	return p.Exploration < WalkNeedThreshold
}

// PassDay advances the age and survival counters by one day. The host decides
// how long a day lasts; AdvanceTime never touches these counters.
func (p *Pet) PassDay() {
	p.Age++
	p.DaysSurvived++
	log.Printf("%s is now %d days old", p.Name, p.Age)
}

// AdjustHappiness applies a mini-game reward or penalty
func (p *Pet) AdjustHappiness(delta int) {
	p.apply(Stats{Happiness: delta})
	log.Printf("Happiness changed by %d, now %d", delta, p.Happiness)
}

// Clone returns a deep copy of the pet
func (p *Pet) Clone() *Pet {
	c := *p
	if p.Traits != nil {
		c.Traits = make(map[Trait]int, len(p.Traits))
		for k, v := range p.Traits {
			c.Traits[k] = v
		}
	}
	return &c
}

// apply adds each delta to its stat, saturating at the bounds
func (p *Pet) apply(d Stats) {
	p.Hunger = clamp(p.Hunger+d.Hunger, MinStat, MaxStat)
	p.Happiness = clamp(p.Happiness+d.Happiness, MinStat, MaxStat)
	p.Health = clamp(p.Health+d.Health, MinStat, MaxStat)
	p.Energy = clamp(p.Energy+d.Energy, MinStat, MaxStat)
	p.Hygiene = clamp(p.Hygiene+d.Hygiene, MinStat, MaxStat)
	p.Exploration = clamp(p.Exploration+d.Exploration, MinStat, MaxStat)
}

// clampStats forces every stat back into range
func (p *Pet) clampStats() {
	p.apply(Stats{})
}

func clamp(value, lo, hi int) int {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}
