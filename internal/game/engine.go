// internal/game/engine.go
//
// Core game engine for a single Termle session.
// Responsibilities:
//   - Validate construction arguments (answer, dictionary, restored history).
//   - Maintain the pending guess buffer typed by the player.
//   - Validate and apply submitted guesses, including hard-mode rules.
//   - Track state transitions: not started → in progress → won/lost.
//   - Report completed games to an optional Recorder.
//
// Notes:
//   - All words are normalized to lowercase a–z.
//   - Invalid player actions come back as Outcome values, never as errors.
//     Errors are reserved for broken invariants (bad construction arguments,
//     a Recorder rejecting a win).
package game

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
)

// ErrInvalidConfig is returned by New when the construction arguments are inconsistent.
var ErrInvalidConfig = errors.New("game: invalid config")

// Config carries everything needed to construct a Game.
// Guesses and Pending restore a previously saved session.
type Config struct {
	Answer       string
	ValidGuesses []string
	MaxGuesses   int
	HardMode     bool
	// Recorder may be nil. Do not pass a typed nil pointer.
	Recorder Recorder
	Guesses  []string
	Pending  []string
}

// Game holds the state of a single game.
type Game struct {
	answer     string
	valid      map[string]struct{}
	wordLength int
	maxGuesses int
	hardMode   bool
	recorder   Recorder
	guesses    []Guess
	pending    []byte
}

// New constructs a game, replaying any restored guesses.
func New(cfg Config) (*Game, error) {
	answer := strings.ToLower(cfg.Answer)
	n := len(answer)
	if n == 0 {
		return nil, fmt.Errorf("%w: empty answer", ErrInvalidConfig)
	}
	if !isAlpha(answer) {
		return nil, fmt.Errorf("%w: answer %q is not alphabetic", ErrInvalidConfig, cfg.Answer)
	}

	valid := make(map[string]struct{}, len(cfg.ValidGuesses))
	for _, w := range cfg.ValidGuesses {
		w = strings.ToLower(w)
		if len(w) != n || !isAlpha(w) {
			return nil, fmt.Errorf("%w: valid guess %q does not match a %d-letter word", ErrInvalidConfig, w, n)
		}
		valid[w] = struct{}{}
	}

	guesses := make([]string, len(cfg.Guesses))
	for i, w := range cfg.Guesses {
		w = strings.ToLower(w)
		if len(w) != n || !isAlpha(w) {
			return nil, fmt.Errorf("%w: guess %q does not match a %d-letter word", ErrInvalidConfig, w, n)
		}
		guesses[i] = w
	}

	pending := make([]byte, 0, n)
	for _, l := range cfg.Pending {
		l = strings.ToLower(l)
		if len(l) != 1 || !isAlpha(l) {
			return nil, fmt.Errorf("%w: pending letter %q is not a single letter", ErrInvalidConfig, l)
		}
		pending = append(pending, l[0])
	}
	if len(pending) > n {
		return nil, fmt.Errorf("%w: %d pending letters exceed word length %d", ErrInvalidConfig, len(pending), n)
	}

	if cfg.MaxGuesses < 1 {
		return nil, fmt.Errorf("%w: max guesses must be at least 1, got %d", ErrInvalidConfig, cfg.MaxGuesses)
	}
	used := len(guesses)
	if len(pending) > 0 {
		used++
	}
	if used > cfg.MaxGuesses {
		return nil, fmt.Errorf("%w: restored state needs %d rows but max guesses is %d", ErrInvalidConfig, used, cfg.MaxGuesses)
	}

	if _, ok := valid[answer]; !ok {
		return nil, fmt.Errorf("%w: answer is not a valid guess", ErrInvalidConfig)
	}
	for i := 0; i+1 < len(guesses); i++ {
		if guesses[i] == answer {
			return nil, fmt.Errorf("%w: answer already guessed at row %d", ErrInvalidConfig, i+1)
		}
	}

	g := &Game{
		answer:     answer,
		valid:      valid,
		wordLength: n,
		maxGuesses: cfg.MaxGuesses,
		hardMode:   cfg.HardMode,
		recorder:   cfg.Recorder,
		pending:    pending,
	}
	for _, w := range guesses {
		g.ingest(w)
	}
	return g, nil
}

// ChangeMaxGuesses raises or lowers the guess limit.
// It refuses any limit that would leave no room for another guess.
func (g *Game) ChangeMaxGuesses(n int) bool {
	if n < len(g.guesses)+1 {
		return false
	}
	g.maxGuesses = n
	return true
}

// ToggleHardMode flips hard mode, subject to the same rule as SetHardMode.
func (g *Game) ToggleHardMode() bool {
	return g.SetHardMode(!g.hardMode)
}

// SetHardMode sets hard mode explicitly. Enabling it is refused while a game
// is in progress; disabling is always allowed.
func (g *Game) SetHardMode(on bool) bool {
	if on && g.InProgress() {
		return false
	}
	g.hardMode = on
	return true
}

// LetterStatus returns the best status ever observed for l across all
// guesses, or StatusUnknown if l has not been guessed.
func (g *Game) LetterStatus(l rune) LetterStatus {
	b, ok := lowerLetter(l)
	if !ok {
		return StatusUnknown
	}
	best := StatusUnknown
	for _, gs := range g.guesses {
		for i := 0; i < g.wordLength; i++ {
			if gs.Word[i] == b {
				best = Best(best, gs.Statuses[i])
			}
		}
	}
	return best
}

func (g *Game) IsStarted() bool { return len(g.guesses) > 0 }

func (g *Game) IsWon() bool {
	return len(g.guesses) > 0 && allRight(g.guesses[len(g.guesses)-1].Statuses)
}

func (g *Game) IsLost() bool { return len(g.guesses) == g.maxGuesses && !g.IsWon() }

func (g *Game) IsCompleted() bool { return len(g.guesses) == g.maxGuesses || g.IsWon() }

func (g *Game) InProgress() bool { return g.IsStarted() && !g.IsCompleted() }

// AppendLetter adds l to the pending guess. It fails once the game is
// completed, for non-letters, and when the buffer is already full.
func (g *Game) AppendLetter(l rune) bool {
	if g.IsCompleted() || len(g.pending) == g.wordLength {
		return false
	}
	b, ok := lowerLetter(l)
	if !ok {
		return false
	}
	g.pending = append(g.pending, b)
	return true
}

// RemoveLastLetter drops the last pending letter, if any.
func (g *Game) RemoveLastLetter() bool {
	if len(g.pending) == 0 {
		return false
	}
	g.pending = g.pending[:len(g.pending)-1]
	return true
}

// SubmitPending validates the pending guess and, if acceptable, scores it
// and appends it to the history.
//
// Validation order:
//  1. too short
//  2. not in the dictionary
//  3. hard mode: a right letter of the previous guess moved or dropped
//  4. hard mode: a misplaced letter of the previous guess dropped
//
// Rule 3 is checked over every position before rule 4 is considered.
// The returned error is non-nil only if the Recorder rejects a win.
func (g *Game) SubmitPending() (Result, error) {
	word := string(g.pending)
	none := Result{Position: -1}

	if len(word) < g.wordLength {
		none.Outcome = OutcomeInvalidTooShort
		return none, nil
	}
	if _, ok := g.valid[word]; !ok {
		none.Outcome = OutcomeInvalid
		return none, nil
	}
	if g.hardMode && len(g.guesses) > 0 {
		prev := g.guesses[len(g.guesses)-1]
		for i, s := range prev.Statuses {
			if s == StatusRight && word[i] != prev.Word[i] {
				return Result{Outcome: OutcomeHardModeMissingRight, Letter: rune(prev.Word[i]), Position: i}, nil
			}
		}
		for i, s := range prev.Statuses {
			if s == StatusMisplaced && strings.IndexByte(word, prev.Word[i]) < 0 {
				return Result{Outcome: OutcomeHardModeMissingMisplace, Letter: rune(prev.Word[i]), Position: -1}, nil
			}
		}
	}

	g.pending = g.pending[:0]
	g.ingest(word)
	log.Debug().Str("guess", word).Int("row", len(g.guesses)).Msg("guess accepted")

	switch {
	case g.IsWon():
		if g.recorder != nil {
			if err := g.recorder.RegisterWin(len(g.guesses)); err != nil {
				return Result{Outcome: OutcomeRight, Position: -1}, fmt.Errorf("record win: %w", err)
			}
		}
		none.Outcome = OutcomeRight
	case len(g.guesses) < g.maxGuesses:
		none.Outcome = OutcomeWrong
	default:
		if g.recorder != nil {
			g.recorder.RegisterLoss()
		}
		none.Outcome = OutcomeWrongAndGameOver
	}
	return none, nil
}

// Answer reveals the answer once the game is completed.
func (g *Game) Answer() (string, bool) {
	if !g.IsCompleted() {
		return "", false
	}
	return g.answer, true
}

// Guesses returns a copy of the guess history.
func (g *Game) Guesses() []Guess {
	out := make([]Guess, len(g.guesses))
	for i, gs := range g.guesses {
		out[i] = Guess{Word: gs.Word, Statuses: append([]LetterStatus(nil), gs.Statuses...)}
	}
	return out
}

// GuessWords returns just the words of the guess history.
func (g *Game) GuessWords() []string {
	out := make([]string, len(g.guesses))
	for i, gs := range g.guesses {
		out[i] = gs.Word
	}
	return out
}

// Pending returns the pending guess as typed so far.
func (g *Game) Pending() string { return string(g.pending) }

// PendingLetters returns the pending guess split into one-letter strings.
func (g *Game) PendingLetters() []string {
	out := make([]string, len(g.pending))
	for i, b := range g.pending {
		out[i] = string(b)
	}
	return out
}

func (g *Game) WordLength() int { return g.wordLength }
func (g *Game) MaxGuesses() int { return g.maxGuesses }
func (g *Game) HardMode() bool  { return g.hardMode }

// ingest scores word and appends it to the history.
func (g *Game) ingest(word string) {
	g.guesses = append(g.guesses, Guess{Word: word, Statuses: Score(g.answer, word)})
}

// isAlpha checks that a string consists only of lowercase a–z.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// lowerLetter maps an ASCII letter to its lowercase byte.
func lowerLetter(r rune) (byte, bool) {
	switch {
	case r >= 'a' && r <= 'z':
		return byte(r), true
	case r >= 'A' && r <= 'Z':
		return byte(r - 'A' + 'a'), true
	}
	return 0, false
}
