// internal/game/types.go
//
// Core type definitions for the Termle game engine.
// Defines:
//   - LetterStatus: per-letter result of a guess (right/misplaced/wrong).
//   - Guess: one submitted word together with its statuses.
//   - Outcome/Result: what happened when a pending guess was submitted.
//   - Recorder: the statistics sink a game reports wins and losses to.

package game

// LetterStatus represents the evaluation result for a single letter in a guess.
// The zero value is StatusUnknown, used for letters that were never guessed.
type LetterStatus int

const (
	StatusUnknown LetterStatus = iota
	StatusWrong
	StatusMisplaced
	StatusRight
)

func (s LetterStatus) String() string {
	switch s {
	case StatusRight:
		return "right"
	case StatusMisplaced:
		return "misplaced"
	case StatusWrong:
		return "wrong"
	}
	return "unknown"
}

// Rank orders statuses from least to most informative:
// unknown < wrong < misplaced < right.
func Rank(s LetterStatus) int {
	switch s {
	case StatusRight:
		return 3
	case StatusMisplaced:
		return 2
	case StatusWrong:
		return 1
	}
	return 0
}

// Best returns whichever of a and b ranks higher.
func Best(a, b LetterStatus) LetterStatus {
	if Rank(b) > Rank(a) {
		return b
	}
	return a
}

// Guess holds one submitted word and the status of each of its letters.
type Guess struct {
	Word     string
	Statuses []LetterStatus
}

// Outcome is the kind of result produced by SubmitPending.
type Outcome string

const (
	OutcomeRight                   Outcome = "right_guess"
	OutcomeWrong                   Outcome = "wrong_guess"
	OutcomeWrongAndGameOver        Outcome = "wrong_guess_game_over"
	OutcomeInvalidTooShort         Outcome = "invalid_short"
	OutcomeInvalid                 Outcome = "invalid"
	OutcomeHardModeMissingRight    Outcome = "invalid_hard_missing_correct"
	OutcomeHardModeMissingMisplace Outcome = "invalid_hard_missing_misplaced"
)

// Valid reports whether the guess was accepted into the history.
func (o Outcome) Valid() bool {
	switch o {
	case OutcomeRight, OutcomeWrong, OutcomeWrongAndGameOver:
		return true
	}
	return false
}

// Result is returned by SubmitPending.
// Letter is set for both hard-mode outcomes; Position is only meaningful
// for OutcomeHardModeMissingRight and is -1 otherwise.
type Result struct {
	Outcome  Outcome
	Letter   rune
	Position int
}

// Recorder receives the result of every completed game.
// *stats.Stats satisfies it.
type Recorder interface {
	RegisterWin(guesses int) error
	RegisterLoss()
}
