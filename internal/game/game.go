// Package game owns the live pet and its achievements for one play session.
package game

import (
	"errors"
	"log"

	"tamagotchi/internal/achievement"
	"tamagotchi/internal/pet"
)

// ErrDead is returned by Reason once the pet has no health left
var ErrDead = errors.New("pet has passed away")

// Session is the single owner of a pet and its achievement set. It does no
// locking: callers must serialize every call, which the bubbletea update loop
// already does.
type Session struct {
	Pet          *pet.Pet
	Achievements achievement.Set
}

// New starts a session with a fresh pet and every achievement locked
func New(name string) *Session {
	return &Session{
		Pet:          pet.NewPet(name),
		Achievements: achievement.NewSet(),
	}
}

// Alive reports whether the pet can still be cared for
func (s *Session) Alive() bool {
	return s.Pet.IsAlive()
}

// Tick advances the pet by one tick and returns any newly unlocked
// achievements. A dead pet no longer changes.
func (s *Session) Tick() []achievement.Key {
	if !s.Alive() {
		return nil
	}
	s.Pet.AdvanceTime()
	if !s.Alive() {
		log.Printf("%s died after %d days", s.Pet.Name, s.Pet.DaysSurvived)
	}
	return s.EvaluateAchievements()
}

// PassDay ages the pet by one day
func (s *Session) PassDay() []achievement.Key {
	if !s.Alive() {
		return nil
	}
	s.Pet.PassDay()
	return s.EvaluateAchievements()
}

// Act performs a care action. It reports whether the action was applied and
// which achievements it unlocked.
func (s *Session) Act(a pet.Action) (bool, []achievement.Key) {
	if !s.Alive() {
		log.Printf("Refused to %s: %v", a, ErrDead)
		return false, nil
	}
	if !s.Pet.Do(a) {
		return false, nil
	}
	return true, s.EvaluateAchievements()
}

// Reason explains why Act would refuse an action, or returns nil
func (s *Session) Reason(a pet.Action) error {
	if !s.Alive() {
		return ErrDead
	}
	return s.Pet.Check(a)
}

// Reward applies a mini-game result to the pet's happiness
func (s *Session) Reward(delta int) []achievement.Key {
	if !s.Alive() {
		return nil
	}
	s.Pet.AdjustHappiness(delta)
	return s.EvaluateAchievements()
}

// EvaluateAchievements unlocks whatever the pet has earned so far
func (s *Session) EvaluateAchievements() []achievement.Key {
	if s.Achievements == nil {
		s.Achievements = achievement.NewSet()
	}
	return s.Achievements.Evaluate(s.Pet)
}
