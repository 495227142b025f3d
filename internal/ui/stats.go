package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"tamagotchi/internal/achievement"
	"tamagotchi/internal/game"
	"tamagotchi/internal/pet"
)

func makeBar(value int) string {
	filled := value / 20
	var bar strings.Builder
	for i := 0; i < 5; i++ {
		if i < filled {
			bar.WriteString("█")
		} else {
			bar.WriteString("░")
		}
	}
	return bar.String()
}

// StatusCard renders a compact summary of the session for the status command
func StatusCard(s *game.Session) string {
	p := s.Pet
	bars := []struct {
		name  string
		value int
	}{
		{"Hunger", p.Hunger},
		{"Happiness", p.Happiness},
		{"Health", p.Health},
		{"Energy", p.Energy},
		{"Hygiene", p.Hygiene},
		{"Explore", p.Exploration},
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n\n", pet.GetStatus(p), p.Name)
	fmt.Fprintf(&b, "Status:  %s\n", pet.GetStatusWithLabel(p))
	fmt.Fprintf(&b, "Health:  %s\n", p.HealthLabel())
	fmt.Fprintf(&b, "Walk:    %s\n", p.WalkLabel())
	if p.NeedsWalk() {
		b.WriteString(walkHint + "\n")
	}
	fmt.Fprintf(&b, "Age:     %d days\n\n", p.Age)
	for _, bar := range bars {
		fmt.Fprintf(&b, "%-10s [%s] %3d%%\n", bar.name+":", makeBar(bar.value), bar.value)
	}
	b.WriteString("\n" + p.PersonalityInfo() + "\n")
	fmt.Fprintf(&b, "\nMeals %d • Games %d • Baths %d • Walks %d\n",
		p.MealsEaten, p.GamesPlayed, p.BathsTaken, p.WalksTaken)
	fmt.Fprintf(&b, "Achievements: %d/%d", s.Achievements.Unlocked(), len(achievement.Definitions))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#FF75B5")).
		Padding(0, 1).
		Render(b.String())
}

// AchievementList renders every achievement, unlocked or not
func AchievementList(set achievement.Set) string {
	var lines []string
	for _, def := range achievement.Definitions {
		if set[def.Key] {
			lines = append(lines, fmt.Sprintf("%s %-20s %s", def.Emoji, def.Title, def.Description))
		} else {
			lines = append(lines, gameStyles.locked.Render(fmt.Sprintf("🔒 %-20s %s", def.Title, def.Description)))
		}
	}
	return strings.Join(lines, "\n")
}
