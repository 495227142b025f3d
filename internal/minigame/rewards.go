// Package minigame holds the three happiness mini-games: number guessing,
// arithmetic and a reaction test.
package minigame

import (
	"math/rand"
	"time"
)

// Happiness rewards and penalties
const (
	GuessWin       = 15
	GuessLoss      = -5
	ArithmeticWin  = 10
	ArithmeticLoss = -3
	ReactionGreat  = 20
	ReactionGood   = 10
	ReactionSlow   = 5

	// Round parameters
	GuessMax       = 10
	OperandMax     = 9
	GreatReaction  = 500 * time.Millisecond
	GoodReaction   = time.Second
	MinCueDelay    = 2 * time.Second
	CueDelaySpread = 3 * time.Second
)

// RandIntn is swapped in tests
var RandIntn = rand.Intn

// NewSecret picks the number to guess, between 1 and GuessMax
func NewSecret() int {
	return RandIntn(GuessMax) + 1
}

// NewOperands picks two addends between 1 and OperandMax
func NewOperands() (int, int) {
	return RandIntn(OperandMax) + 1, RandIntn(OperandMax) + 1
}

// NewCueDelay picks how long the reaction game waits before the cue
func NewCueDelay() time.Duration {
	return MinCueDelay + time.Duration(RandIntn(int(CueDelaySpread/time.Millisecond)))*time.Millisecond
}

// GuessReward scores a number guess
func GuessReward(guess, secret int) int {
	if guess == secret {
		return GuessWin
	}
	return GuessLoss
}

// ArithmeticReward scores an answer to a + b
func ArithmeticReward(answer, a, b int) int {
	if answer == a+b {
		return ArithmeticWin
	}
	return ArithmeticLoss
}

// ReactionReward scores the time between the cue and the key press
func ReactionReward(elapsed time.Duration) int {
	switch {
	case elapsed < GreatReaction:
		return ReactionGreat
	case elapsed < GoodReaction:
		return ReactionGood
	default:
		return ReactionSlow
	}
}
