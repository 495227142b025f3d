package minigame

import (
	"fmt"
	"log"
	"math"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

// Kind selects a mini-game
type Kind int

const (
	KindGuess Kind = iota
	KindArithmetic
	KindReaction
)

// Kinds lists the games in menu order
var Kinds = []Kind{KindGuess, KindArithmetic, KindReaction}

func (k Kind) String() string {
	switch k {
	case KindGuess:
		return "Guess the Number"
	case KindArithmetic:
		return "Quick Maths"
	case KindReaction:
		return "Reaction Test"
	}
	return "Unknown"
}

const (
	flutterInterval = 70 * time.Millisecond
	trackWidth      = 32
	trackRows       = 5
	maxInputDigits  = 3
)

// TimeNow is swapped in tests
var TimeNow = time.Now

type reactionPhase int

const (
	phaseWaiting reactionPhase = iota
	phaseCue
)

// cueMsg fires when the reaction game should show its cue
type cueMsg struct{ round string }

// flutterMsg moves the butterfly while the player waits
type flutterMsg struct{ round string }

// Model is a running mini-game. The host forwards messages to Update until
// Done is set, then applies Reward to the pet.
type Model struct {
	Kind     Kind
	PetEmoji string

	input  string
	secret int
	a, b   int

	round   string
	phase   reactionPhase
	cueAt   time.Time
	frame   int
	targetX int
	targetY int

	Done   bool
	Played bool
	Reward int
	Result string
}

// New starts a round of the given game
func New(kind Kind, petEmoji string) (Model, tea.Cmd) {
	m := Model{Kind: kind, PetEmoji: petEmoji}
	switch kind {
	case KindGuess:
		m.secret = NewSecret()
	case KindArithmetic:
		m.a, m.b = NewOperands()
	case KindReaction:
		m.round = uuid.NewString()
		delay := NewCueDelay()
		log.Printf("Reaction round %s, cue in %v", m.round, delay)
		return m, tea.Batch(cueAfter(m.round, delay), flutter(m.round))
	}
	return m, nil
}

func cueAfter(r string, delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return cueMsg{round: r}
	})
}

func flutter(r string) tea.Cmd {
	return tea.Tick(flutterInterval, func(time.Time) tea.Msg {
		return flutterMsg{round: r}
	})
}

// Update handles keys and timers
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.Done {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			m.finish(false, 0, "Maybe later.")
			return m, nil
		}
		if m.Kind == KindReaction {
			return m.reactionKey(), nil
		}
		return m.answerKey(msg), nil

	case cueMsg:
		if m.Kind != KindReaction || msg.round != m.round {
			return m, nil
		}
		m.phase = phaseCue
		m.cueAt = TimeNow()
		return m, nil

	case flutterMsg:
		if m.Kind != KindReaction || msg.round != m.round || m.phase != phaseWaiting {
			return m, nil
		}
		m.moveTarget()
		return m, flutter(m.round)
	}
	return m, nil
}

func (m Model) answerKey(msg tea.KeyMsg) Model {
	switch msg.Type {
	case tea.KeyEnter:
		if m.input == "" {
			return m
		}
		value, err := strconv.Atoi(m.input)
		if err != nil {
			m.input = ""
			return m
		}
		m.score(value)
	case tea.KeyBackspace:
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
		}
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			if r >= '0' && r <= '9' && len(m.input) < maxInputDigits {
				m.input += string(r)
			}
		}
	}
	return m
}

func (m *Model) score(value int) {
	switch m.Kind {
	case KindGuess:
		reward := GuessReward(value, m.secret)
		if reward > 0 {
			m.finish(true, reward, fmt.Sprintf("🎉 Correct! +%d happiness", reward))
		} else {
			m.finish(true, reward, fmt.Sprintf("❌ Nope, it was %d. %d happiness", m.secret, reward))
		}
	case KindArithmetic:
		reward := ArithmeticReward(value, m.a, m.b)
		if reward > 0 {
			m.finish(true, reward, fmt.Sprintf("🎉 Correct! +%d happiness", reward))
		} else {
			m.finish(true, reward, fmt.Sprintf("❌ Wrong, %d + %d = %d. %d happiness", m.a, m.b, m.a+m.b, reward))
		}
	}
}

// reactionKey ignores presses before the cue
func (m Model) reactionKey() Model {
	if m.phase != phaseCue {
		return m
	}
	elapsed := TimeNow().Sub(m.cueAt)
	reward := ReactionReward(elapsed)
	var verdict string
	switch reward {
	case ReactionGreat:
		verdict = "🎉 Lightning fast!"
	case ReactionGood:
		verdict = "😊 Nice reflexes!"
	default:
		verdict = "🐌 Could be quicker!"
	}
	m.finish(true, reward, fmt.Sprintf("%s %d ms, +%d happiness", verdict, elapsed.Milliseconds(), reward))
	return m
}

func (m *Model) finish(played bool, reward int, result string) {
	m.Done = true
	m.Played = played
	m.Reward = reward
	m.Result = result
	log.Printf("%s finished: played=%t reward=%d", m.Kind, played, reward)
}

// moveTarget flutters the butterfly along a sine wave, wrapping at the edge
func (m *Model) moveTarget() {
	m.frame++
	if m.frame%2 != 0 {
		return
	}
	m.targetX = (m.targetX + 1) % (trackWidth - 2)
	center := float64(trackRows-1) / 2
	m.targetY = int(math.Round(center + center*math.Sin(float64(m.targetX)*0.4)))
}

// View renders the current round
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.Kind.String() + "\n\n")

	switch m.Kind {
	case KindGuess:
		fmt.Fprintf(&b, "I'm thinking of a number from 1 to %d.\n\nGuess: %s_\n", GuessMax, m.input)
	case KindArithmetic:
		fmt.Fprintf(&b, "What is %d + %d?\n\nAnswer: %s_\n", m.a, m.b, m.input)
	case KindReaction:
		b.WriteString(m.reactionView())
	}

	if m.Kind == KindReaction {
		b.WriteString("\nesc to give up")
	} else {
		b.WriteString("\nenter to answer • esc to give up")
	}
	return b.String()
}

func (m Model) reactionView() string {
	if m.phase == phaseCue {
		return fmt.Sprintf("\n   ⚡ PRESS ANY KEY NOW! ⚡   %s\n\n", m.PetEmoji)
	}

	grid := make([][]rune, trackRows)
	for y := range grid {
		grid[y] = []rune(strings.Repeat(" ", trackWidth))
	}
	grid[trackRows/2][0] = []rune(m.PetEmoji + " ")[0]
	if m.targetY >= 0 && m.targetY < trackRows {
		grid[m.targetY][m.targetX+2] = '🦋'
	}

	var b strings.Builder
	b.WriteString("Wait for the cue, then press any key.\n\n")
	for _, row := range grid {
		b.WriteString(strings.TrimRight(string(row), " "))
		b.WriteRune('\n')
	}
	return b.String()
}
