package pet

import "log"

var (
	awakeDecay = Stats{
		Hunger:      -AwakeHungerDecay,
		Happiness:   -AwakeHappinessDecay,
		Energy:      -AwakeEnergyDecay,
		Hygiene:     -AwakeHygieneDecay,
		Exploration: -AwakeExplorationDecay,
	}
	sleepingDecay = Stats{
		Energy:      SleepEnergyRecovery,
		Hunger:      -SleepHungerDecay,
		Happiness:   -SleepHappinessDecay,
		Hygiene:     -SleepHygieneDecay,
		Exploration: -SleepExplorationDecay,
	}
)

// AdvanceTime runs one tick: baseline decay, the dominant personality's extra
// decay, health side effects, then a fresh personality.
func (p *Pet) AdvanceTime() {
	if p.Sleeping {
		p.apply(sleepingDecay)
		p.raiseTrait(Lazy, 1)
	} else {
		p.apply(awakeDecay)
		if p.Hygiene < DirtyThreshold {
			p.raiseTrait(Moody, 1)
		}
	}

	p.applyPersonalityModifiers()
	p.applyHealthEffects()
	p.clampStats()
	p.RecomputePersonality()

	log.Printf("Tick: hunger=%d happiness=%d health=%d energy=%d hygiene=%d exploration=%d personality=%s",
		p.Hunger, p.Happiness, p.Health, p.Energy, p.Hygiene, p.Exploration, p.Personality)
}

// applyHealthEffects checks each condition independently against the stats
// left by the decay pass
func (p *Pet) applyHealthEffects() {
	var d Stats
	if p.Hunger < StarvingThreshold {
		d.Health -= StarvingHealthLoss
	}
	if p.Happiness < MiseryThreshold {
		d.Health -= MiseryHealthLoss
	}
	if p.Energy < ExhaustedThreshold {
		d.Health -= ExhaustedHealthLoss
	}
	if p.Hygiene < FilthyThreshold {
		d.Health -= FilthyHealthLoss
	}
	if p.Exploration < BoredThreshold {
		d.Happiness -= BoredHappinessLoss
	}
	p.apply(d)

	if p.Hunger > RecoveryHunger && p.Happiness > RecoveryHappiness &&
		p.Hygiene > RecoveryHygiene && p.Exploration > RecoveryExploration {
		p.apply(Stats{Health: RecoveryHealthGain})
	}
}
