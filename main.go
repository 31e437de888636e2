package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/cemysce/termle/internal/config"
	"github.com/cemysce/termle/internal/words"
)

func main() {
	_ = godotenv.Load()
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	wl, err := words.Load(cfg.WordsFile)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word lists")
	}
	log.Debug().
		Int("answers", len(wl.Answers())).
		Int("additional", len(wl.AdditionalValidGuesses())).
		Str("fingerprint", wl.Fingerprint()).
		Msg("word lists loaded")

	ctx := context.Background()
	switch cfg.Mode {
	case config.ModeWordStats:
		err = printWordStats(os.Stdout, wl)
	case config.ModeExportWords:
		err = exportWords(os.Stdout, wl)
	case config.ModeHistory:
		err = printHistory(ctx, os.Stdout, cfg)
	default:
		err = play(ctx, cfg, wl, os.Stdin, os.Stdout)
	}
	if err != nil {
		log.Fatal().Err(err).Str("mode", cfg.Mode).Msg("termle exited")
	}
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
