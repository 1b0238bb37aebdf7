// internal/game/session.go
//
// Console loop for one session: banner, prompt, read, feedback.
// Output strings are fixed; downstream tooling matches on them verbatim.

package game

import (
	"fmt"
	"io"
)

// GuessSource yields guesses one at a time.
type GuessSource interface {
	NextGuess() (int, error)
}

// InputError reports a guess that could not be read. It ends the session.
type InputError struct {
	Trial int // 1-based trial that failed
	Err   error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("trial %d: read guess: %v", e.Trial, e.Err)
}

func (e *InputError) Unwrap() error { return e.Err }

// Play runs g to completion, reading from src and writing to out.
// It returns an *InputError as soon as src fails; nothing more is read.
func Play(g *Game, src GuessSource, out io.Writer) error {
	fmt.Fprintf(out, "A number is chosen between %d to %d. Guess the number within %d trials.\n",
		MinTarget, MaxTarget, g.MaxTrials)

	for !g.Finished {
		fmt.Fprintln(out, "Guess the number:")
		guess, err := src.NextGuess()
		if err != nil {
			return &InputError{Trial: g.Trials + 1, Err: err}
		}
		hint, state, err := g.ApplyGuess(guess)
		if err != nil {
			return err
		}
		switch {
		case state == StateWon:
			fmt.Fprintln(out, "Congratulations! You guessed the number.")
		case hint == HintGreater:
			fmt.Fprintf(out, "The number is greater than %d\n", guess)
		case hint == HintLess:
			fmt.Fprintf(out, "The number is less than %d\n", guess)
		}
	}

	if !g.Won {
		fmt.Fprintf(out, "You have exhausted%d trials.\n", g.MaxTrials)
		fmt.Fprintf(out, "The number was %d\n", g.Target)
	}
	return nil
}
