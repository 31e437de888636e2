// play.go
//
// Wiring for a single play session.
// Daily games for today restore and save progress plus statistics; daily
// games for past days and random games are played without persistence.
// Finished games go to the journal when TERMLE_JOURNAL_FILE is set; a daily
// game already in the journal is not recorded again.

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/cemysce/termle/internal/config"
	"github.com/cemysce/termle/internal/console"
	"github.com/cemysce/termle/internal/daily"
	"github.com/cemysce/termle/internal/game"
	"github.com/cemysce/termle/internal/journal"
	"github.com/cemysce/termle/internal/share"
	"github.com/cemysce/termle/internal/stats"
	"github.com/cemysce/termle/internal/store"
	"github.com/cemysce/termle/internal/words"
)

// session is what play needs to know about the chosen game.
type session struct {
	answer   string
	label    string
	day      *int
	progress *daily.Store // nil unless playing today's daily game
	restored daily.Progress
}

func newSession(ctx context.Context, cfg *config.Config, wl *words.WordList, now time.Time) (session, error) {
	if !cfg.Daily {
		answer, err := wl.RandomAnswer()
		if err != nil {
			return session{}, err
		}
		return session{answer: answer, label: "random"}, nil
	}

	offset, isToday, err := words.ResolveDay(cfg.Day, now)
	if err != nil {
		return session{}, err
	}
	answer, err := wl.DailyAnswer(offset)
	if err != nil {
		return session{}, err
	}
	s := session{answer: answer, label: strconv.Itoa(offset), day: &offset}
	if isToday {
		s.progress = daily.NewStore(store.NewFile(cfg.DailyStateFile), wl.Fingerprint(), cfg.MaxGuesses, offset)
		if s.restored, err = s.progress.Load(ctx); err != nil {
			return session{}, err
		}
	}
	log.Debug().Int("day", offset).Bool("today", isToday).Msg("daily game selected")
	return s, nil
}

func play(ctx context.Context, cfg *config.Config, wl *words.WordList, in io.Reader, out io.Writer) error {
	s, err := newSession(ctx, cfg, wl, time.Now())
	if err != nil {
		return err
	}

	var jr *journal.Journal
	if cfg.JournalFile != "" {
		if jr, err = journal.Open(cfg.JournalFile); err != nil {
			return err
		}
		defer jr.Close()
		if s.day != nil {
			done, err := jr.AlreadyRecorded(ctx, wl.Fingerprint(), *s.day)
			if err != nil {
				return err
			}
			if done {
				// Replays of a journaled day are played but not recorded again.
				log.Info().Int("day", *s.day).Msg("daily game already in journal")
				if _, err := fmt.Fprintf(out, "Day %d is already in the journal; this game will not be recorded.\n", *s.day); err != nil {
					return err
				}
				jr = nil
			}
		}
	}

	gcfg := game.Config{
		Answer:       s.answer,
		ValidGuesses: wl.ValidGuesses(),
		MaxGuesses:   cfg.MaxGuesses,
		HardMode:     cfg.HardMode,
		Guesses:      s.restored.Guesses,
		Pending:      s.restored.Pending,
	}
	if s.restored.Stats != nil {
		gcfg.Recorder = s.restored.Stats
	}
	g, err := game.New(gcfg)
	if err != nil {
		return err
	}

	opts := console.Options{
		Label: s.label,
		Style: share.Style{Dark: cfg.DarkMode, HighContrast: cfg.HighContrastMode},
		Stats: s.restored.Stats,
	}
	if err := console.Run(in, out, g, opts); err != nil {
		return err
	}

	if s.progress != nil {
		if err := s.progress.Save(ctx, s.restored.Stats, g.GuessWords(), g.PendingLetters(), g.IsCompleted()); err != nil {
			return err
		}
	}
	if jr != nil && g.IsCompleted() {
		answer, _ := g.Answer()
		if _, err := jr.Record(ctx, journal.Entry{
			Fingerprint: wl.Fingerprint(),
			Day:         s.day,
			Answer:      answer,
			Guesses:     g.GuessWords(),
			Won:         g.IsWon(),
			HardMode:    g.HardMode(),
			MaxGuesses:  g.MaxGuesses(),
		}); err != nil {
			return err
		}
	}

	cfg.HardMode = g.HardMode()
	return cfg.Save(ctx)
}

func printWordStats(out io.Writer, wl *words.WordList) error {
	f := wl.LetterFrequencies()
	total := f.Answers * wl.WordLength()
	var sb strings.Builder
	sb.WriteString("Overall Statistics:\n")
	width := len(strconv.Itoa(total))
	for _, lc := range f.Overall {
		fmt.Fprintf(&sb, "%*d/%d %c\n", width, lc.Count, total, lc.Letter)
	}
	width = len(strconv.Itoa(f.Answers))
	for i, rows := range f.ByPosition {
		fmt.Fprintf(&sb, "\nLetter %d Statistics:\n", i+1)
		for _, lc := range rows {
			fmt.Fprintf(&sb, "%*d/%d %c\n", width, lc.Count, f.Answers, lc.Letter)
		}
	}
	_, err := io.WriteString(out, sb.String())
	return err
}

func exportWords(out io.Writer, wl *words.WordList) error {
	data, err := wl.Encode(words.DefaultCodec)
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}

func printHistory(ctx context.Context, out io.Writer, cfg *config.Config) error {
	if cfg.JournalFile == "" {
		return errors.New("history needs TERMLE_JOURNAL_FILE")
	}
	jr, err := journal.Open(cfg.JournalFile)
	if err != nil {
		return err
	}
	defer jr.Close()

	entries, err := jr.Recent(ctx, 0)
	if err != nil {
		return err
	}
	for _, e := range entries {
		label := "random"
		if e.Day != nil {
			label = "#" + strconv.Itoa(*e.Day)
		}
		result := "X"
		if e.Won {
			result = strconv.Itoa(len(e.Guesses))
		}
		hard := ""
		if e.HardMode {
			hard = "*"
		}
		if _, err := fmt.Fprintf(out, "%s  %-8s %s  %s/%d%s  %s\n",
			e.FinishedAt.Local().Format("2006-01-02 15:04"), label, strings.ToUpper(e.Answer),
			result, e.MaxGuesses, hard, strings.Join(e.Guesses, " ")); err != nil {
			return err
		}
	}
	return nil
}

// stats.Stats is the game's Recorder.
var _ game.Recorder = (*stats.Stats)(nil)
