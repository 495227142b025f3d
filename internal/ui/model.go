package ui

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"tamagotchi/internal/achievement"
	"tamagotchi/internal/config"
	"tamagotchi/internal/game"
	"tamagotchi/internal/minigame"
	"tamagotchi/internal/pet"
)

// TimeNow is swapped in tests
var TimeNow = time.Now

const messageDuration = 3 * time.Second

type screen int

const (
	screenMain screen = iota
	screenGames
	screenGame
	screenAchievements
)

type menuItem int

const (
	itemFeed menuItem = iota
	itemPlay
	itemBath
	itemWalk
	itemSleep
	itemHeal
	itemGames
	itemAchievements
	itemSave
	itemLoad
	itemQuit
)

var menuItems = []menuItem{
	itemFeed, itemPlay, itemBath, itemWalk, itemSleep, itemHeal,
	itemGames, itemAchievements, itemSave, itemLoad, itemQuit,
}

// careActions maps menu entries to pet actions. Sleep is resolved at selection
// time since the same entry also wakes the pet.
var careActions = map[menuItem]pet.Action{
	itemFeed: pet.ActionFeed,
	itemPlay: pet.ActionPlay,
	itemBath: pet.ActionBath,
	itemWalk: pet.ActionWalk,
	itemHeal: pet.ActionHeal,
}

var actionAnimations = map[pet.Action]AnimationType{
	pet.ActionFeed:  AnimFeed,
	pet.ActionPlay:  AnimPlay,
	pet.ActionBath:  AnimBath,
	pet.ActionWalk:  AnimWalk,
	pet.ActionSleep: AnimSleep,
	pet.ActionHeal:  AnimHeal,
}

var actionMessages = map[pet.Action]string{
	pet.ActionFeed:  "🍖 Yum!",
	pet.ActionPlay:  "🎾 Wheee!",
	pet.ActionBath:  "🛁 Squeaky clean!",
	pet.ActionWalk:  "🌳 What a nice walk!",
	pet.ActionSleep: "😴 Good night...",
	pet.ActionWake:  "☀️ Good morning!",
	pet.ActionHeal:  "💊 Feeling better!",
}

// Model represents the game state
type Model struct {
	Session            *game.Session
	Store              game.Store
	Config             config.Config
	Screen             screen
	Choice             int
	GameChoice         int
	Game               minigame.Model
	Quitting           bool
	ShowingAdoptPrompt bool
	Message            string
	MessageExpires     time.Time
	Animation          Animation

	// clock drops tick and day messages from before the last restart
	clock int
}

type tickMsg struct{ clock int }
type dayMsg struct{ clock int }
type animTickMsg struct {
	started time.Time
}

// NewModel creates a new game model around a session
func NewModel(s *game.Session, store game.Store, cfg config.Config) Model {
	return Model{
		Session:            s,
		Store:              store,
		Config:             cfg,
		ShowingAdoptPrompt: !s.Alive(),
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	if !m.Session.Alive() {
		return nil
	}
	return tea.Batch(m.tick(), m.day())
}

func (m Model) tick() tea.Cmd {
	clock := m.clock
	return tea.Tick(m.Config.TickInterval(), func(time.Time) tea.Msg {
		return tickMsg{clock: clock}
	})
}

func (m Model) day() tea.Cmd {
	clock := m.clock
	return tea.Tick(m.Config.DayInterval(), func(time.Time) tea.Msg {
		return dayMsg{clock: clock}
	})
}

// restartClock abandons any scheduled ticks and starts fresh ones
func (m *Model) restartClock() tea.Cmd {
	m.clock++
	if !m.Session.Alive() {
		return nil
	}
	return tea.Batch(m.tick(), m.day())
}

func animTick(start time.Time) tea.Cmd {
	return tea.Tick(AnimationFrameDuration, func(t time.Time) tea.Msg {
		return animTickMsg{started: start}
	})
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m.quit()
		}

		// While an animation is playing, ignore inputs except quit keys
		if m.Animation.Type != AnimNone {
			if msg.String() == "q" {
				return m.quit()
			}
			return m, nil
		}

		switch m.Screen {
		case screenGame:
			return m.updateGame(msg)
		case screenGames:
			return m.updateGamesMenu(msg)
		case screenAchievements:
			switch msg.String() {
			case "q":
				return m.quit()
			case "esc", "enter", " ", "a":
				m.Screen = screenMain
			}
			return m, nil
		}
		return m.updateMain(msg)

	case tickMsg:
		if msg.clock != m.clock || !m.Session.Alive() {
			return m, nil
		}
		m.afterChange(m.Session.Tick())
		if !m.Session.Alive() {
			m.ShowingAdoptPrompt = true
			m.Screen = screenMain
			return m, nil
		}
		return m, m.tick()

	case dayMsg:
		if msg.clock != m.clock || !m.Session.Alive() {
			return m, nil
		}
		m.afterChange(m.Session.PassDay())
		return m, m.day()

	case animTickMsg:
		// Drop ticks that belong to an older animation (e.g., if a new action started)
		if m.Animation.Type == AnimNone || !m.Animation.StartTime.Equal(msg.started) {
			return m, nil
		}

		m.Animation.Frame++
		if IsAnimationComplete(m.Animation) {
			m.Animation = Animation{}
			return m, nil
		}

		return m, animTick(m.Animation.StartTime)

	default:
		if m.Screen == screenGame {
			var cmd tea.Cmd
			m.Game, cmd = m.Game.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

func (m Model) updateMain(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if !m.Session.Alive() {
		switch msg.String() {
		case "q":
			return m.quit()
		case "y":
			if m.ShowingAdoptPrompt {
				m.Session = game.New(m.Config.PetName)
				m.ShowingAdoptPrompt = false
				m.Choice = 0
				m.save()
				cmd := m.restartClock()
				return m, cmd
			}
		case "n":
			m.ShowingAdoptPrompt = false
		case "l":
			cmd := m.load()
			return m, cmd
		}
		return m, nil
	}

	switch msg.String() {
	case "q":
		return m.quit()
	case "a":
		m.Screen = screenAchievements
	case "up", "k":
		if m.Choice > 0 {
			m.Choice--
		}
	case "down", "j":
		if m.Choice < len(menuItems)-1 {
			m.Choice++
		}
	case "enter", " ":
		return m.selectItem(menuItems[m.Choice])
	}
	return m, nil
}

func (m Model) selectItem(item menuItem) (tea.Model, tea.Cmd) {
	switch item {
	case itemSleep:
		if m.Session.Pet.Sleeping {
			return m.act(pet.ActionWake)
		}
		return m.act(pet.ActionSleep)
	case itemGames:
		m.Screen = screenGames
		m.GameChoice = 0
		return m, nil
	case itemAchievements:
		m.Screen = screenAchievements
		return m, nil
	case itemSave:
		if m.save() {
			m.setMessage("💾 Saved to slot " + m.Config.Slot)
		}
		return m, nil
	case itemLoad:
		cmd := m.load()
		return m, cmd
	case itemQuit:
		return m.quit()
	}
	return m.act(careActions[item])
}

// act runs a care action and reports a refusal the same way the menu shows it
func (m Model) act(a pet.Action) (tea.Model, tea.Cmd) {
	if err := m.Session.Reason(a); err != nil {
		m.setMessage(refusalMessage(a, err))
		return m, nil
	}
	applied, unlocked := m.Session.Act(a)
	if !applied {
		return m, nil
	}
	m.setMessage(actionMessages[a])
	m.afterChange(unlocked)

	if anim, ok := actionAnimations[a]; ok {
		m.startAnimation(anim)
		return m, animTick(m.Animation.StartTime)
	}
	return m, nil
}

func refusalMessage(a pet.Action, err error) string {
	switch {
	case errors.Is(err, pet.ErrSleeping):
		return "💤 Shh... your pet is sleeping"
	case errors.Is(err, pet.ErrAwake):
		return "👀 Already awake!"
	case errors.Is(err, pet.ErrTooTired):
		if a == pet.ActionWalk {
			return "😴 Too tired for a walk..."
		}
		return "😴 Too tired to play..."
	case errors.Is(err, game.ErrDead):
		return "💀 It's too late for that"
	}
	return fmt.Sprintf("Can't %s right now", a)
}

func (m Model) updateGamesMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m.quit()
	case "esc":
		m.Screen = screenMain
	case "up", "k":
		if m.GameChoice > 0 {
			m.GameChoice--
		}
	case "down", "j":
		if m.GameChoice < len(minigame.Kinds) {
			m.GameChoice++
		}
	case "enter", " ":
		if m.GameChoice == len(minigame.Kinds) {
			m.Screen = screenMain
			return m, nil
		}
		if m.Session.Pet.Sleeping {
			m.setMessage("💤 Shh... your pet is sleeping")
			m.Screen = screenMain
			return m, nil
		}
		var cmd tea.Cmd
		m.Game, cmd = minigame.New(minigame.Kinds[m.GameChoice], pet.GetStatus(m.Session.Pet))
		m.Screen = screenGame
		return m, cmd
	}
	return m, nil
}

func (m Model) updateGame(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.Game, cmd = m.Game.Update(msg)
	if !m.Game.Done {
		return m, cmd
	}

	m.Screen = screenMain
	m.setMessage(m.Game.Result)
	if m.Game.Played {
		m.afterChange(m.Session.Reward(m.Game.Reward))
	}
	return m, nil
}

// afterChange announces new achievements and autosaves
func (m *Model) afterChange(unlocked []achievement.Key) {
	if len(unlocked) > 0 {
		lines := make([]string, 0, len(unlocked))
		for _, k := range unlocked {
			title := string(k)
			if def, ok := achievement.Lookup(k); ok {
				title = def.Emoji + " " + def.Title
			}
			lines = append(lines, "🏆 Achievement unlocked: "+title)
		}
		m.setMessage(strings.Join(lines, "\n"))
	}
	if m.Config.Autosave {
		m.save()
	}
}

func (m *Model) save() bool {
	if m.Store == nil {
		return false
	}
	if err := m.Session.Save(m.Store, m.Config.Slot); err != nil {
		log.Printf("Error saving state: %v", err)
		m.setMessage("⚠️ Could not save")
		return false
	}
	return true
}

func (m *Model) load() tea.Cmd {
	if m.Store == nil {
		return nil
	}
	s, err := game.Load(m.Store, m.Config.Slot)
	if err != nil {
		log.Printf("Error loading state: %v", err)
		m.setMessage("⚠️ Nothing to load in slot " + m.Config.Slot)
		return nil
	}
	m.Session = s
	m.Choice = 0
	m.Screen = screenMain
	m.ShowingAdoptPrompt = !s.Alive()
	m.setMessage("📂 Loaded " + s.Pet.Name)
	return m.restartClock()
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	if m.Config.Autosave && m.Session.Alive() {
		m.save()
	}
	m.Quitting = true
	return m, tea.Quit
}

func (m *Model) setMessage(msg string) {
	m.Message = msg
	m.MessageExpires = TimeNow().Add(messageDuration)
}

func (m *Model) startAnimation(animType AnimationType) {
	m.Animation = Animation{
		Type:      animType,
		Frame:     0,
		StartTime: TimeNow(),
	}
}
