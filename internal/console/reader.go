// internal/console/reader.go
//
// Token-oriented guess input. Guesses are whitespace-separated, so blank
// lines are skipped and several guesses may share one line. Each call to
// NextGuess consumes exactly one token and parses a base-10, 32-bit
// integer (optional sign).

package console

import (
	"bufio"
	"io"
	"strconv"
)

// TokenReader reads one guess per whitespace-separated token.
type TokenReader struct {
	sc *bufio.Scanner
}

// NewTokenReader wraps r.
func NewTokenReader(r io.Reader) *TokenReader {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	return &TokenReader{sc: sc}
}

// NextGuess returns the next guess.
// End of input yields io.EOF; a malformed or out-of-range token yields a
// *strconv.NumError.
func (t *TokenReader) NextGuess() (int, error) {
	if !t.sc.Scan() {
		if err := t.sc.Err(); err != nil {
			return 0, err
		}
		return 0, io.EOF
	}
	n, err := strconv.ParseInt(t.sc.Text(), 10, 32)
	if err != nil {
		return 0, err
	}
	return int(n), nil
}
