// internal/game/engine.go
//
// Core engine for a single guess-the-number session.
// Responsibilities:
//   - Create new games with a target drawn from an injectable Picker.
//   - Apply guesses and compute the direction hint.
//   - Track state transitions: playing → won/exhausted.
//
// Notes:
//   - No hint is produced for the final trial, even on a miss. Callers
//     rely on this to reproduce the classic console output.
package game

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"math/big"
)

const (
	MinTarget        = 1
	MaxTarget        = 100
	DefaultMaxTrials = 5
)

// ErrFinished is returned when a guess is applied to a finished game.
var ErrFinished = errors.New("game finished")

// New constructs a game whose target is drawn from p.
// A nil picker falls back to crypto/rand.
func New(p Picker) *Game {
	if p == nil {
		p = CryptoPicker{}
	}
	return &Game{
		ID:        randomID(),
		Target:    MinTarget + p.Intn(MaxTarget-MinTarget+1),
		MaxTrials: DefaultMaxTrials,
		Guesses:   []int{},
	}
}

// ApplyGuess consumes one trial and mutates the game state.
// Returns the hint to show, the new state, or ErrFinished.
//
// State transitions:
//   - guess == Target → Finished = true, Won = true.
//   - else if Trials reaches MaxTrials → Finished = true (exhausted).
func (g *Game) ApplyGuess(guess int) (Hint, State, error) {
	if g.Finished {
		return HintNone, g.State(), ErrFinished
	}
	last := g.Trials == g.MaxTrials-1
	g.Trials++
	g.Guesses = append(g.Guesses, guess)

	if guess == g.Target {
		g.Finished, g.Won = true, true
		return HintNone, g.State(), nil
	}
	if last {
		g.Finished = true
		return HintNone, g.State(), nil
	}
	if g.Target > guess {
		return HintGreater, g.State(), nil
	}
	return HintLess, g.State(), nil
}

// State reports the current lifecycle state.
func (g *Game) State() State {
	if g.Finished {
		if g.Won {
			return StateWon
		}
		return StateExhausted
	}
	return StatePlaying
}

// CryptoPicker draws from crypto/rand.
type CryptoPicker struct{}

// Intn returns a uniform int in [0, n). It panics if n <= 0.
func (CryptoPicker) Intn(n int) int {
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic(err)
	}
	return int(nBig.Int64())
}

// randomID returns a compact 16‑hex‑char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
