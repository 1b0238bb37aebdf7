package game

import (
	"bytes"
	"errors"
	"io"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	banner  = "A number is chosen between 1 to 100. Guess the number within 5 trials."
	prompt  = "Guess the number:"
	success = "Congratulations! You guessed the number."
)

// sliceSource serves guesses from a slice and counts reads.
type sliceSource struct {
	guesses []int
	failAt  int // 1-based read that fails with failErr; 0 disables
	failErr error
	reads   int
}

func (s *sliceSource) NextGuess() (int, error) {
	s.reads++
	if s.failAt == s.reads {
		return 0, s.failErr
	}
	i := s.reads - 1
	if i >= len(s.guesses) {
		return 0, io.EOF
	}
	return s.guesses[i], nil
}

func lines(b *bytes.Buffer) []string {
	return strings.Split(strings.TrimSuffix(b.String(), "\n"), "\n")
}

func TestPlay_WinAfterHints(t *testing.T) {
	g := New(fixed(42))
	src := &sliceSource{guesses: []int{10, 60, 42, 99, 99}}
	var out bytes.Buffer

	require.NoError(t, Play(g, src, &out))
	require.Equal(t, []string{
		banner,
		prompt, "The number is greater than 10",
		prompt, "The number is less than 60",
		prompt, success,
	}, lines(&out))
	require.Equal(t, 3, src.reads)
	require.Equal(t, StateWon, g.State())
}

func TestPlay_FirstGuessWins(t *testing.T) {
	g := New(fixed(1))
	src := &sliceSource{guesses: []int{1}}
	var out bytes.Buffer

	require.NoError(t, Play(g, src, &out))
	require.Equal(t, []string{banner, prompt, success}, lines(&out))
	require.Equal(t, 1, src.reads)
}

func TestPlay_Exhausted(t *testing.T) {
	g := New(fixed(100))
	src := &sliceSource{guesses: []int{1, 2, 3, 4, 5, 100, 100}}
	var out bytes.Buffer

	require.NoError(t, Play(g, src, &out))
	require.Equal(t, []string{
		banner,
		prompt, "The number is greater than 1",
		prompt, "The number is greater than 2",
		prompt, "The number is greater than 3",
		prompt, "The number is greater than 4",
		prompt,
		"You have exhausted5 trials.",
		"The number was 100",
	}, lines(&out))
	require.Equal(t, 5, src.reads)
	require.Equal(t, StateExhausted, g.State())
}

func TestPlay_WinOnFinalTrial(t *testing.T) {
	g := New(fixed(50))
	src := &sliceSource{guesses: []int{90, 80, 70, 60, 50}}
	var out bytes.Buffer

	require.NoError(t, Play(g, src, &out))
	got := lines(&out)
	require.Equal(t, success, got[len(got)-1])
	require.NotContains(t, out.String(), "exhausted")
}

func TestPlay_MalformedInputStops(t *testing.T) {
	bad := &strconv.NumError{Func: "Atoi", Num: "abc", Err: strconv.ErrSyntax}
	g := New(fixed(42))
	src := &sliceSource{guesses: []int{10, 0, 42}, failAt: 2, failErr: bad}
	var out bytes.Buffer

	err := Play(g, src, &out)

	var inErr *InputError
	require.True(t, errors.As(err, &inErr))
	require.Equal(t, 2, inErr.Trial)
	require.ErrorIs(t, err, strconv.ErrSyntax)
	require.Equal(t, 2, src.reads)
	require.Equal(t, 1, g.Trials)
	require.Equal(t, StatePlaying, g.State())
	require.Equal(t, []string{
		banner,
		prompt, "The number is greater than 10",
		prompt,
	}, lines(&out))
}

func TestPlay_ExhaustedInput(t *testing.T) {
	g := New(fixed(42))
	src := &sliceSource{guesses: []int{10}}
	var out bytes.Buffer

	err := Play(g, src, &out)
	require.ErrorIs(t, err, io.EOF)

	var inErr *InputError
	require.True(t, errors.As(err, &inErr))
	require.Equal(t, 2, inErr.Trial)
	require.Equal(t, "trial 2: read guess: EOF", err.Error())
}
