// internal/game/types.go
//
// Core type definitions for the guess-the-number engine.
// Defines:
//   - State: coarse lifecycle of a session (playing/won/exhausted).
//   - Hint:  direction feedback printed after a wrong guess.
//   - Game:  state for a single in-progress or finished session.
//   - Picker: injectable random source for the target.

package game

// State is the lifecycle of a single session.
type State string

const (
	StatePlaying   State = "playing"
	StateWon       State = "won"
	StateExhausted State = "exhausted"
)

// Hint tells the player which way the target lies relative to a guess.
// HintNone is returned on a match and on the final trial.
type Hint string

const (
	HintNone    Hint = ""
	HintGreater Hint = "greater"
	HintLess    Hint = "less"
)

// Picker returns a uniformly distributed int in [0, n).
// *math/rand.Rand satisfies it, which keeps tests deterministic.
type Picker interface {
	Intn(n int) int
}

// PickerFunc adapts a plain function to Picker.
type PickerFunc func(n int) int

func (f PickerFunc) Intn(n int) int { return f(n) }

// Game holds the state of a single guessing session.
type Game struct {
	ID        string // Random hex id, used to correlate log lines.
	Target    int    // Secret number in [MinTarget, MaxTarget].
	MaxTrials int    // Guesses allowed before the session is exhausted.
	Trials    int    // Guesses consumed so far.
	Guesses   []int  // Guesses in the order they were made.
	Finished  bool   // True once won or exhausted.
	Won       bool   // True if finished with a match.
}
