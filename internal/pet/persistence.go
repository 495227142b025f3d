package pet

import "log"

// RestorePersonality repairs the trait map of a pet read back from storage and
// recomputes the dominant personality. A nil or empty map is reinitialised;
// traits missing from an older save are added at zero and unknown ones dropped.
func (p *Pet) RestorePersonality() {
	if len(p.Traits) == 0 {
		log.Printf("Saved pet %s has no traits, reinitialising personality", p.Name)
		p.InitializePersonality()
	}
	for t := range p.Traits {
		if !IsTrait(t) {
			log.Printf("Dropping unknown trait %q from %s", t, p.Name)
			delete(p.Traits, t)
		}
	}
	for _, t := range Traits() {
		if _, ok := p.Traits[t]; !ok {
			p.Traits[t] = 0
		}
		p.Traits[t] = clamp(p.Traits[t], 0, MaxTrait)
	}
	p.RecomputePersonality()
}

// Normalize makes a loaded pet satisfy every invariant again: stats in range,
// counters non-negative and a complete trait map.
func (p *Pet) Normalize() {
	if p.Name == "" {
		p.Name = DefaultPetName
	}
	p.clampStats()
	for _, counter := range []*int{
		&p.MealsEaten, &p.GamesPlayed, &p.BathsTaken,
		&p.WalksTaken, &p.Age, &p.DaysSurvived,
	} {
		if *counter < 0 {
			*counter = 0
		}
	}
	p.RestorePersonality()
}
