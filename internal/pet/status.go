package pet

import (
	"fmt"
	"strings"
)

// Mood is the headline feeling shown next to the pet
type Mood string

const (
	MoodSleeping Mood = "Sleeping"
	MoodHappy    Mood = "Happy"
	MoodCalm     Mood = "Calm"
	MoodSad      Mood = "Sad"
)

// HealthState buckets the health stat
type HealthState string

const (
	HealthExcellent HealthState = "Excellent"
	HealthGood      HealthState = "Good"
	HealthPoor      HealthState = "Poor"
	HealthCritical  HealthState = "Critical"
)

// WalkNeed buckets the exploration stat
type WalkNeed string

const (
	WalkNoDesire      WalkNeed = "No desire to walk"
	WalkCould         WalkNeed = "Could go for a walk"
	WalkWants         WalkNeed = "Wants a walk"
	WalkStronglyWants WalkNeed = "Really wants a walk!"
)

// Image names the portrait to draw for the pet
type Image string

const (
	ImageDead     Image = "dead"
	ImageSleeping Image = "sleeping"
	ImageHappy    Image = "happy"
	ImageNormal   Image = "normal"
	ImageSad      Image = "sad"
)

// MoodLabel returns the pet's mood; sleeping wins over happiness
func (p *Pet) MoodLabel() Mood {
	switch {
	case p.Sleeping:
		return MoodSleeping
	case p.Happiness >= HappyThreshold:
		return MoodHappy
	case p.Happiness >= CalmThreshold:
		return MoodCalm
	default:
		return MoodSad
	}
}

// HealthLabel returns the health bucket
func (p *Pet) HealthLabel() HealthState {
	switch {
	case p.Health >= GoodHealthThreshold:
		return HealthExcellent
	case p.Health >= FairHealthThreshold:
		return HealthGood
	case p.Health >= PoorHealthThreshold:
		return HealthPoor
	default:
		return HealthCritical
	}
}

// WalkLabel returns how badly the pet wants to go outside
func (p *Pet) WalkLabel() WalkNeed {
	switch {
	case p.Exploration >= NoWalkThreshold:
		return WalkNoDesire
	case p.Exploration >= MaybeWalkThreshold:
		return WalkCould
	case p.Exploration >= WalkNeedThreshold:
		return WalkWants
	default:
		return WalkStronglyWants
	}
}

// ImageKey picks the portrait: dead, sleeping, happy, normal, then sad
func (p *Pet) ImageKey() Image {
	switch {
	case !p.IsAlive():
		return ImageDead
	case p.Sleeping:
		return ImageSleeping
	case p.Happiness >= HappyThreshold:
		return ImageHappy
	case p.Happiness >= CalmThreshold:
		return ImageNormal
	default:
		return ImageSad
	}
}

// GetStatus returns the status emoji for the pet
func GetStatus(p *Pet) string {
	if !p.IsAlive() {
		return StatusEmojiDead
	}
	switch p.MoodLabel() {
	case MoodSleeping:
		return StatusEmojiSleeping
	case MoodHappy:
		return StatusEmojiHappy
	case MoodCalm:
		return StatusEmojiCalm
	default:
		return StatusEmojiSad
	}
}

// GetStatusWithLabel returns status with a text label for the UI
func GetStatusWithLabel(p *Pet) string {
	if !p.IsAlive() {
		return StatusEmojiDead + " Dead"
	}
	return GetStatus(p) + " " + string(p.MoodLabel())
}

// PersonalityInfo summarises the dominant personality and every notable trait
func (p *Pet) PersonalityInfo() string {
	if len(p.Traits) == 0 {
		return "Personality: " + Normal
	}
	var notable []string
	for _, t := range Traits() {
		if v := p.Traits[t]; v > NotableTrait {
			notable = append(notable, fmt.Sprintf("%s: %d", t, v))
		}
	}
	info := fmt.Sprintf("Personality: %s %s", PersonalityEmoji(p.Personality), p.Personality)
	if len(notable) > 0 {
		info += "\nTraits: " + strings.Join(notable, ", ")
	}
	return info
}
