package pet

import "log"

// Action identifies a player-initiated handler
type Action int

const (
	ActionFeed Action = iota
	ActionPlay
	ActionBath
	ActionWalk
	ActionSleep
	ActionWake
	ActionHeal
)

var actionNames = map[Action]string{
	ActionFeed:  "feed",
	ActionPlay:  "play",
	ActionBath:  "bath",
	ActionWalk:  "walk",
	ActionSleep: "sleep",
	ActionWake:  "wake",
	ActionHeal:  "heal",
}

var actionHandlers = map[Action]func(*Pet) bool{
	ActionFeed:  (*Pet).Feed,
	ActionPlay:  (*Pet).Play,
	ActionBath:  (*Pet).TakeBath,
	ActionWalk:  (*Pet).GoForWalk,
	ActionSleep: (*Pet).Sleep,
	ActionWake:  (*Pet).WakeUp,
	ActionHeal:  (*Pet).Heal,
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// Do runs the handler for an action and reports whether it was applied
func (p *Pet) Do(a Action) bool {
	handler, ok := actionHandlers[a]
	if !ok {
		log.Printf("Ignoring unknown action %d", a)
		return false
	}
	return handler(p)
}

// Check returns the reason an action would be refused, or nil
func (p *Pet) Check(a Action) error {
	switch a {
	case ActionWake:
		if !p.Sleeping {
			return ErrAwake
		}
		return nil
	case ActionFeed, ActionBath, ActionSleep, ActionHeal:
		if p.Sleeping {
			return ErrSleeping
		}
		return nil
	case ActionPlay:
		if p.Sleeping {
			return ErrSleeping
		}
		if p.Energy <= PlayMinEnergy {
			return ErrTooTired
		}
		return nil
	case ActionWalk:
		if p.Sleeping {
			return ErrSleeping
		}
		if p.Energy <= WalkMinEnergy {
			return ErrTooTired
		}
		return nil
	}
	return ErrUnknown
}

func (p *Pet) refused(a Action) bool {
	if err := p.Check(a); err != nil {
		log.Printf("Refused to %s: %v", a, err)
		return true
	}
	return false
}

// Feed fills the pet up. Eating while nearly full makes it lazier.
func (p *Pet) Feed() bool {
	if p.refused(ActionFeed) {
		return false
	}
	p.apply(Stats{Hunger: FeedHungerIncrease, Happiness: FeedHappinessIncrease})
	p.MealsEaten++
	if p.Hunger > OvereatThreshold {
		p.raiseTrait(Lazy, 1)
	}
	p.RecomputePersonality()
	log.Printf("Fed pet. Hunger is now %d, Happiness is now %d", p.Hunger, p.Happiness)
	return true
}

// Play needs more than PlayMinEnergy energy
func (p *Pet) Play() bool {
	if p.refused(ActionPlay) {
		return false
	}
	p.apply(Stats{
		Happiness:   PlayHappinessIncrease,
		Energy:      -PlayEnergyDecrease,
		Hygiene:     -PlayHygieneDecrease,
		Exploration: PlayExplorationIncrease,
	})
	p.GamesPlayed++
	p.raiseTrait(Active, 2)
	p.raiseTrait(Playful, 2)
	p.RecomputePersonality()
	log.Printf("Played with pet. Happiness is now %d, Energy is now %d", p.Happiness, p.Energy)
	return true
}

// TakeBath cleans the pet. A pet bathed too often gets moody about it.
func (p *Pet) TakeBath() bool {
	if p.refused(ActionBath) {
		return false
	}
	p.apply(Stats{
		Hygiene:   BathHygieneIncrease,
		Happiness: BathHappinessIncrease,
		Energy:    -BathEnergyDecrease,
	})
	p.BathsTaken++
	p.raiseTrait(Clean, 3)
	if p.BathsTaken > FussyBathCount && p.Hygiene > FussyBathHygiene {
		p.raiseTrait(Moody, 1)
	}
	p.RecomputePersonality()
	log.Printf("Bathed pet. Hygiene is now %d", p.Hygiene)
	return true
}

// GoForWalk needs more than WalkMinEnergy energy
func (p *Pet) GoForWalk() bool {
	if p.refused(ActionWalk) {
		return false
	}
	p.apply(Stats{
		Exploration: WalkExplorationIncrease,
		Happiness:   WalkHappinessIncrease,
		Energy:      -WalkEnergyDecrease,
		Hunger:      -WalkHungerDecrease,
		Hygiene:     -WalkHygieneDecrease,
	})
	p.WalksTaken++
	p.raiseTrait(Active, 3)
	p.raiseTrait(Curious, 3)
	p.RecomputePersonality()
	log.Printf("Walked pet. Exploration is now %d, Energy is now %d", p.Exploration, p.Energy)
	return true
}

// Sleep puts the pet to bed with an immediate energy boost
func (p *Pet) Sleep() bool {
	if p.refused(ActionSleep) {
		return false
	}
	p.Sleeping = true
	p.apply(Stats{Energy: SleepEnergyBonus})
	p.raiseTrait(Lazy, 2)
	p.RecomputePersonality()
	log.Printf("Pet is now sleeping. Energy is now %d", p.Energy)
	return true
}

// WakeUp is the only handler allowed while sleeping
func (p *Pet) WakeUp() bool {
	if p.refused(ActionWake) {
		return false
	}
	p.Sleeping = false
	log.Printf("Pet woke up")
	return true
}

// Heal restores health at the cost of some energy
func (p *Pet) Heal() bool {
	if p.refused(ActionHeal) {
		return false
	}
	p.apply(Stats{Health: HealHealthIncrease, Energy: -HealEnergyDecrease})
	log.Printf("Healed pet. Health is now %d", p.Health)
	return true
}
