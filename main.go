package main

import (
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/guessnumber/internal/console"
	"github.com/robalobadob/guessnumber/internal/game"
)

func main() {
	_ = godotenv.Load()
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "warn")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	if err := run(os.Stdin, os.Stdout, game.CryptoPicker{}); err != nil {
		log.Fatal().Err(err).Msg("session aborted")
	}
}

// run plays one session against in/out.
func run(in io.Reader, out io.Writer, p game.Picker) error {
	g := game.New(p)
	log.Debug().Str("session", g.ID).Int("maxTrials", g.MaxTrials).Msg("session started")

	if err := game.Play(g, console.NewTokenReader(in), out); err != nil {
		return err
	}
	log.Info().
		Str("session", g.ID).
		Str("state", string(g.State())).
		Int("trials", g.Trials).
		Ints("guesses", g.Guesses).
		Msg("session finished")
	return nil
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
