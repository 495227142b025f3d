package pet

import (
	"strings"
	"testing"
)

func TestMoodLabel(t *testing.T) {
	tests := []struct {
		name      string
		happiness int
		sleeping  bool
		want      Mood
	}{
		{"sleeping wins", 100, true, MoodSleeping},
		{"happy at threshold", 70, false, MoodHappy},
		{"calm below happy", 69, false, MoodCalm},
		{"calm at threshold", 40, false, MoodCalm},
		{"sad below calm", 39, false, MoodSad},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPet("")
			p.Happiness = tt.happiness
			p.Sleeping = tt.sleeping
			if got := p.MoodLabel(); got != tt.want {
				t.Errorf("Expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestHealthLabel(t *testing.T) {
	tests := []struct {
		health int
		want   HealthState
	}{
		{100, HealthExcellent},
		{70, HealthExcellent},
		{69, HealthGood},
		{40, HealthGood},
		{39, HealthPoor},
		{20, HealthPoor},
		{19, HealthCritical},
		{0, HealthCritical},
	}
	for _, tt := range tests {
		p := NewPet("")
		p.Health = tt.health
		if got := p.HealthLabel(); got != tt.want {
			t.Errorf("Health %d: expected %s, got %s", tt.health, tt.want, got)
		}
	}
}

func TestWalkLabel(t *testing.T) {
	tests := []struct {
		exploration int
		want        WalkNeed
	}{
		{100, WalkNoDesire},
		{80, WalkNoDesire},
		{79, WalkCould},
		{50, WalkCould},
		{49, WalkWants},
		{20, WalkWants},
		{19, WalkStronglyWants},
	}
	for _, tt := range tests {
		p := NewPet("")
		p.Exploration = tt.exploration
		if got := p.WalkLabel(); got != tt.want {
			t.Errorf("Exploration %d: expected %q, got %q", tt.exploration, tt.want, got)
		}
	}
}

func TestImageKey(t *testing.T) {
	tests := []struct {
		name  string
		setup func(p *Pet)
		want  Image
	}{
		{"dead beats sleeping", func(p *Pet) { p.Health = 0; p.Sleeping = true }, ImageDead},
		{"sleeping beats happy", func(p *Pet) { p.Sleeping = true; p.Happiness = 100 }, ImageSleeping},
		{"happy", func(p *Pet) { p.Happiness = 70 }, ImageHappy},
		{"normal", func(p *Pet) { p.Happiness = 40 }, ImageNormal},
		{"sad", func(p *Pet) { p.Happiness = 10 }, ImageSad},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPet("")
			tt.setup(p)
			if got := p.ImageKey(); got != tt.want {
				t.Errorf("Expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestGetStatusWithLabel(t *testing.T) {
	p := NewPet("")
	if got := GetStatusWithLabel(p); got != StatusEmojiHappy+" Happy" {
		t.Errorf("Expected happy status, got %q", got)
	}
	p.Health = 0
	if got := GetStatusWithLabel(p); got != StatusEmojiDead+" Dead" {
		t.Errorf("Expected dead status, got %q", got)
	}
}

func TestPersonalityInfo(t *testing.T) {
	p := NewPet("")
	if got := p.PersonalityInfo(); strings.Contains(got, "Traits:") || !strings.Contains(got, Normal) {
		t.Errorf("Expected a bare Normal personality, got %q", got)
	}

	p.Traits[Curious] = 45
	p.Traits[Clean] = 21
	p.Traits[Moody] = 20
	p.RecomputePersonality()
	got := p.PersonalityInfo()
	if !strings.Contains(got, "Personality: 🔭 Curious") {
		t.Errorf("Expected Curious as dominant, got %q", got)
	}
	if !strings.Contains(got, "Traits: Clean: 21, Curious: 45") {
		t.Errorf("Expected traits above 20 in declaration order, got %q", got)
	}
	if strings.Contains(got, "Moody") {
		t.Errorf("Traits at 20 should not be listed, got %q", got)
	}
}

func TestRestorePersonality(t *testing.T) {
	p := NewPet("")
	p.Traits = nil
	p.Personality = "Bogus"
	p.RestorePersonality()
	if len(p.Traits) != len(Traits()) || p.Personality != Normal {
		t.Errorf("Expected reinitialised traits, got %v %s", p.Traits, p.Personality)
	}

	p.Traits = map[Trait]int{Active: 150, Smart: -4}
	p.RestorePersonality()
	if p.Traits[Active] != MaxTrait || p.Traits[Smart] != 0 || len(p.Traits) != len(Traits()) {
		t.Errorf("Expected clamped and completed traits, got %v", p.Traits)
	}
	if p.Personality != string(Active) {
		t.Errorf("Expected Active, got %s", p.Personality)
	}
}

func TestNormalize(t *testing.T) {
	p := &Pet{Hunger: 120, Energy: -5, Health: 50, GamesPlayed: -2, Age: 3}
	p.Normalize()
	if p.Name != DefaultPetName {
		t.Errorf("Expected default name, got %q", p.Name)
	}
	if p.Hunger != MaxStat || p.Energy != MinStat {
		t.Errorf("Expected clamped stats, got hunger=%d energy=%d", p.Hunger, p.Energy)
	}
	if p.GamesPlayed != 0 || p.Age != 3 {
		t.Errorf("Expected counters floored at zero, got games=%d age=%d", p.GamesPlayed, p.Age)
	}
	if p.Personality != Normal {
		t.Errorf("Expected Normal, got %s", p.Personality)
	}
}

func TestNeedsWalk(t *testing.T) {
	tests := []struct {
		exploration int
		want        bool
	}{
		{0, true},
		{19, true},
		{20, false},
		{100, false},
	}
	for _, tt := range tests {
		p := NewPet("")
		p.Exploration = tt.exploration
		if got := p.NeedsWalk(); got != tt.want {
			t.Errorf("Exploration %d: expected %t, got %t", tt.exploration, tt.want, got)
		}
	}
}

func TestRestorePersonalityDropsUnknownTraits(t *testing.T) {
	p := NewPet("")
	p.Traits["Grumpy"] = 95
	p.Normalize()

	if _, ok := p.Traits["Grumpy"]; ok {
		t.Errorf("Expected the unknown trait to be dropped, got %v", p.Traits)
	}
	if len(p.Traits) != len(Traits()) {
		t.Errorf("Expected %d traits, got %d", len(Traits()), len(p.Traits))
	}
	if p.Personality != Normal {
		t.Errorf("Expected Normal, got %s", p.Personality)
	}

	p.Traits = map[Trait]int{"Grumpy": 40}
	p.RestorePersonality()
	if len(p.Traits) != len(Traits()) || p.Traits["Grumpy"] != 0 {
		t.Errorf("Expected only known traits, got %v", p.Traits)
	}
}
