// Package achievement evaluates one-way milestone badges against a pet.
package achievement

import (
	"log"

	"tamagotchi/internal/pet"
)

// Key identifies an achievement. The values are the keys written to save files.
type Key string

const (
	FirstMeal         Key = "First Meal"
	PlayfulPet        Key = "Playful Pet"
	GoodCaretaker     Key = "Good Caretaker"
	Survivor          Key = "Survivor"
	Master            Key = "Master"
	CleanPet          Key = "Clean Pet"
	Explorer          Key = "Explorer"
	PersonalityMaster Key = "Personality Master"
)

// Thresholds for the counter based achievements
const (
	PlayfulGames       = 5
	CaretakerDays      = 3
	SurvivorDays       = 7
	PersonalityMastery = 80
)

// Definition describes an achievement for display
type Definition struct {
	Key         Key
	Title       string
	Description string
	Emoji       string
}

// Definitions lists every achievement in display order
var Definitions = []Definition{
	{FirstMeal, "First Meal", "Feed your pet for the first time", "🍖"},
	{PlayfulPet, "Playful Pet", "Play with your pet 5 times", "🎾"},
	{GoodCaretaker, "Good Caretaker", "Keep your pet alive for 3 days", "🏡"},
	{Survivor, "Survivor", "Keep your pet alive for 7 days", "🛡️"},
	{Master, "Tamagotchi Master", "Unlock every care achievement", "👑"},
	{CleanPet, "Squeaky Clean", "Give your pet a bath", "🛁"},
	{Explorer, "Explorer", "Take your pet for a walk", "🧭"},
	{PersonalityMaster, "Personality Master", "Develop a personality trait to 80 or more", "🎭"},
}

// masterRequires lists what Master needs. PersonalityMaster is not part of it.
var masterRequires = []Key{FirstMeal, PlayfulPet, GoodCaretaker, Survivor, CleanPet, Explorer}

// rules are evaluated in order; Master comes last so it can unlock in the
// same pass as its final prerequisite.
var rules = []struct {
	key       Key
	condition func(p *pet.Pet, s Set) bool
}{
	{FirstMeal, func(p *pet.Pet, _ Set) bool { return p.MealsEaten >= 1 }},
	{PlayfulPet, func(p *pet.Pet, _ Set) bool { return p.GamesPlayed >= PlayfulGames }},
	{GoodCaretaker, func(p *pet.Pet, _ Set) bool { return p.DaysSurvived >= CaretakerDays }},
	{Survivor, func(p *pet.Pet, _ Set) bool { return p.DaysSurvived >= SurvivorDays }},
	{CleanPet, func(p *pet.Pet, _ Set) bool { return p.BathsTaken >= 1 }},
	{Explorer, func(p *pet.Pet, _ Set) bool { return p.WalksTaken >= 1 }},
	{PersonalityMaster, func(p *pet.Pet, _ Set) bool { return hasMasteredTrait(p) }},
	{Master, func(_ *pet.Pet, s Set) bool { return s.All(masterRequires...) }},
}

// Set maps each achievement to whether it is unlocked
type Set map[Key]bool

// NewSet returns a set with every achievement locked
func NewSet() Set {
	s := make(Set, len(Definitions))
	EnsureAllKeysPresent(s)
	return s
}

// EnsureAllKeysPresent adds any missing canonical key as locked. Keys that are
// already present, including unknown ones, are left alone.
func EnsureAllKeysPresent(s Set) {
	for _, def := range Definitions {
		if _, ok := s[def.Key]; !ok {
			s[def.Key] = false
		}
	}
}

// Evaluate unlocks every achievement whose condition now holds and returns the
// newly unlocked keys. Unlocked flags are never reset, so calling it again
// without a change to the pet returns nothing.
func (s Set) Evaluate(p *pet.Pet) []Key {
	var unlocked []Key
	for _, rule := range rules {
		if s[rule.key] || !rule.condition(p, s) {
			continue
		}
		s[rule.key] = true
		unlocked = append(unlocked, rule.key)
		log.Printf("Achievement unlocked: %s", rule.key)
	}
	return unlocked
}

// All reports whether every given key is unlocked
func (s Set) All(keys ...Key) bool {
	for _, k := range keys {
		if !s[k] {
			return false
		}
	}
	return true
}

// Unlocked counts the unlocked achievements
func (s Set) Unlocked() int {
	n := 0
	for _, v := range s {
		if v {
			n++
		}
	}
	return n
}

// Clone returns a copy of the set
func (s Set) Clone() Set {
	c := make(Set, len(s))
	for k, v := range s {
		c[k] = v
	}
	return c
}

// Lookup returns the display definition for a key
func Lookup(k Key) (Definition, bool) {
	for _, def := range Definitions {
		if def.Key == k {
			return def, true
		}
	}
	return Definition{}, false
}

func hasMasteredTrait(p *pet.Pet) bool {
	for _, t := range pet.Traits() {
		if p.Traits[t] >= PersonalityMastery {
			return true
		}
	}
	return false
}
