package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"tamagotchi/internal/minigame"
	"tamagotchi/internal/pet"
)

var gameStyles = struct {
	title    lipgloss.Style
	status   lipgloss.Style
	menuBox  lipgloss.Style
	stats    lipgloss.Style
	portrait lipgloss.Style
	locked   lipgloss.Style
}{
	title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FF75B5")).
		Padding(0, 1),

	status: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FF75B5")).
		Width(40),

	stats: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FF75B5")).
		Width(34),

	menuBox: lipgloss.NewStyle().
		Padding(0, 2),

	portrait: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFD700")).
		Padding(0, 2),

	locked: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#777777")),
}

// portraits are drawn next to the stats, keyed by the pet's image
var portraits = map[pet.Image]string{
	pet.ImageHappy: `
  /\_/\
 ( ^.^ )
  > ♥ <`,
	pet.ImageNormal: `
  /\_/\
 ( o.o )
  > ^ <`,
	pet.ImageSad: `
  /\_/\
 ( ;.; )
  > _ <`,
	pet.ImageSleeping: `
  /\_/\  z
 ( -.- ) z
  > ~ <`,
	pet.ImageDead: `
  /\_/\
 ( x.x )
  > _ <`,
}

const walkHint = "🦮 Needs a walk!"

// View implements tea.Model
func (m Model) View() string {
	if m.Quitting {
		return "Thanks for playing!\n"
	}
	if !m.Session.Alive() {
		return m.deadView()
	}

	// Show animation if one is active
	if m.Animation.Type != AnimNone {
		return m.renderAnimation()
	}

	switch m.Screen {
	case screenGame:
		return lipgloss.JoinVertical(lipgloss.Left,
			m.renderTitle(),
			"",
			gameStyles.menuBox.Render(m.Game.View()),
		)
	case screenGames:
		return m.withMessage(m.renderTitle(), "", m.renderGamesMenu(),
			"", gameStyles.status.Render("enter to play • esc to go back"))
	case screenAchievements:
		return lipgloss.JoinVertical(lipgloss.Left,
			m.renderTitle(),
			"",
			gameStyles.menuBox.Render(AchievementList(m.Session.Achievements)),
			"",
			gameStyles.status.Render("esc to go back"),
		)
	}

	top := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderStats(),
		gameStyles.portrait.Render(portraits[m.Session.Pet.ImageKey()]),
	)

	return m.withMessage(
		m.renderTitle(),
		"",
		top,
		"",
		m.renderStatus(),
		"",
		m.renderMenu(),
		"",
		gameStyles.status.Render("arrows to move • enter to select • a achievements • q to quit"),
	)
}

// withMessage inserts the current message, if any, before the last section
func (m Model) withMessage(sections ...string) string {
	if m.Message != "" && TimeNow().Before(m.MessageExpires) {
		last := len(sections) - 1
		sections = append(sections[:last:last], "", gameStyles.status.Render(m.Message), "", sections[last])
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderTitle() string {
	emoji := pet.PersonalityEmoji(m.Session.Pet.Personality)
	return gameStyles.title.Render(emoji + " " + m.Session.Pet.Name + " " + emoji)
}

func (m Model) renderStats() string {
	p := m.Session.Pet
	stats := []struct {
		name, value string
	}{
		{"Hunger", fmt.Sprintf("%d%%", p.Hunger)},
		{"Happiness", fmt.Sprintf("%d%%", p.Happiness)},
		{"Health", fmt.Sprintf("%d%% (%s)", p.Health, p.HealthLabel())},
		{"Energy", fmt.Sprintf("%d%%", p.Energy)},
		{"Hygiene", fmt.Sprintf("%d%%", p.Hygiene)},
		{"Explore", fmt.Sprintf("%d%%", p.Exploration)},
		{"Age", fmt.Sprintf("%d days", p.Age)},
		{"Walk", string(p.WalkLabel())},
	}

	var lines []string
	for _, stat := range stats {
		lines = append(lines, fmt.Sprintf("%-10s %s", stat.name+":", stat.value))
	}

	return gameStyles.stats.Render(strings.Join(lines, "\n"))
}

func (m Model) renderStatus() string {
	p := m.Session.Pet
	status := fmt.Sprintf("Status: %s\n%s", pet.GetStatusWithLabel(p), p.PersonalityInfo())
	if p.NeedsWalk() {
		status += "\n" + walkHint
	}
	return gameStyles.status.Render(status)
}

func (m Model) menuLabel(item menuItem) string {
	switch item {
	case itemFeed:
		return "Feed"
	case itemPlay:
		return "Play"
	case itemBath:
		return "Bath"
	case itemWalk:
		return "Walk"
	case itemSleep:
		if m.Session.Pet.Sleeping {
			return "Wake up"
		}
		return "Sleep"
	case itemHeal:
		return "Heal"
	case itemGames:
		return "Mini-games"
	case itemAchievements:
		return fmt.Sprintf("Achievements (%d/%d)", m.Session.Achievements.Unlocked(), len(m.Session.Achievements))
	case itemSave:
		return "Save"
	case itemLoad:
		return "Load"
	case itemQuit:
		return "Quit"
	}
	return ""
}

func (m Model) renderMenu() string {
	var lines []string
	for i, item := range menuItems {
		cursor := " "
		if m.Choice == i {
			cursor = ">"
		}
		lines = append(lines, fmt.Sprintf("%s %s", cursor, m.menuLabel(item)))
	}
	return gameStyles.menuBox.Render(strings.Join(lines, "\n"))
}

func (m Model) renderGamesMenu() string {
	choices := make([]string, 0, len(minigame.Kinds)+1)
	for _, k := range minigame.Kinds {
		choices = append(choices, k.String())
	}
	choices = append(choices, "Back")

	var lines []string
	for i, choice := range choices {
		cursor := " "
		if m.GameChoice == i {
			cursor = ">"
		}
		lines = append(lines, fmt.Sprintf("%s %s", cursor, choice))
	}
	return gameStyles.menuBox.Render(strings.Join(lines, "\n"))
}

func (m Model) renderAnimation() string {
	frame := GetAnimationFrame(m.Animation)

	animStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFD700")).
		Bold(true).
		Padding(1, 2)

	return m.withMessage(m.renderTitle(), "", animStyle.Render(frame))
}

func (m Model) deadView() string {
	p := m.Session.Pet
	sections := []string{
		gameStyles.title.Render(pet.StatusEmojiDead + " " + p.Name + " " + pet.StatusEmojiDead),
		gameStyles.portrait.Render(portraits[pet.ImageDead]),
		"",
		gameStyles.status.Render("Your pet has passed away..."),
		gameStyles.status.Render(fmt.Sprintf("%s survived for %d days", p.Name, p.DaysSurvived)),
		"",
	}
	if m.ShowingAdoptPrompt {
		sections = append(sections,
			gameStyles.menuBox.Render("Would you like to adopt a new pet?"),
			"",
			gameStyles.status.Render("Press 'y' for yes, 'n' for no, 'l' to load a save"),
		)
	} else {
		sections = append(sections,
			gameStyles.status.Render("It will be remembered forever."),
			"",
			gameStyles.status.Render("Press 'l' to load a save or q to exit"),
		)
	}
	return lipgloss.JoinVertical(lipgloss.Center, sections...)
}
