package pet

// Trait is one of the seven personality strength counters
type Trait string

const (
	Lazy    Trait = "Lazy"
	Active  Trait = "Active"
	Smart   Trait = "Smart"
	Playful Trait = "Playful"
	Clean   Trait = "Clean"
	Curious Trait = "Curious"
	Moody   Trait = "Moody"
)

// Normal is the personality of a pet whose traits are all zero
const Normal = "Normal"

// personalities is ordered by trait declaration; the order breaks ties when
// several traits share the maximum. Effect is applied on every tick while the
// trait is dominant, on top of the baseline decay.
var personalities = []struct {
	Trait  Trait
	Emoji  string
	Effect Stats
}{
	{Lazy, "🦥", Stats{Energy: -1, Hunger: -1, Exploration: -1}},
	{Active, "⚡", Stats{Energy: -3, Happiness: -2, Exploration: -3}},
	{Smart, "🧠", Stats{}},
	{Playful, "🎾", Stats{}},
	{Clean, "🫧", Stats{}},
	{Curious, "🔭", Stats{Exploration: -4}},
	{Moody, "🌧️", Stats{Happiness: -3}},
}

// Traits returns all traits in declaration order
func Traits() []Trait {
	traits := make([]Trait, len(personalities))
	for i, entry := range personalities {
		traits[i] = entry.Trait
	}
	return traits
}

// IsTrait reports whether t is one of the seven known traits
func IsTrait(t Trait) bool {
	for _, entry := range personalities {
		if entry.Trait == t {
			return true
		}
	}
	return false
}

// InitializePersonality resets every trait to zero
func (p *Pet) InitializePersonality() {
	p.Traits = make(map[Trait]int, len(personalities))
	for _, entry := range personalities {
		p.Traits[entry.Trait] = 0
	}
}

// RecomputePersonality sets Personality to the trait with the strictly
// greatest value, or Normal when every trait is zero.
func (p *Pet) RecomputePersonality() {
	best, bestValue := Normal, 0
	for _, entry := range personalities {
		if v := p.Traits[entry.Trait]; v > bestValue {
			best, bestValue = string(entry.Trait), v
		}
	}
	p.Personality = best
}

// applyPersonalityModifiers applies the extra decay of the dominant personality
func (p *Pet) applyPersonalityModifiers() {
	for _, entry := range personalities {
		if string(entry.Trait) == p.Personality {
			p.apply(entry.Effect)
			return
		}
	}
}

// raiseTrait increases a trait, capped at MaxTrait
func (p *Pet) raiseTrait(t Trait, amount int) {
	if p.Traits == nil {
		p.InitializePersonality()
	}
	p.Traits[t] = clamp(p.Traits[t]+amount, 0, MaxTrait)
}

// PersonalityEmoji returns the icon for a personality label
func PersonalityEmoji(personality string) string {
	for _, entry := range personalities {
		if string(entry.Trait) == personality {
			return entry.Emoji
		}
	}
	return StatusEmojiCalm
}
