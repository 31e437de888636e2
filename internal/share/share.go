// Package share renders a finished or in-progress game as spoiler-free text
// for pasting elsewhere.
package share

import (
	"fmt"
	"strings"

	"github.com/cemysce/termle/internal/game"
)

// Board is the read side of a game that Text needs.
type Board interface {
	Guesses() []game.Guess
	IsWon() bool
	IsLost() bool
	MaxGuesses() int
	HardMode() bool
}

// Style picks the glyph palette.
type Style struct {
	Dark         bool
	HighContrast bool
}

// glyphs is indexed by status, then by Style.index().
var glyphs = map[game.LetterStatus][4]string{
	game.StatusWrong:     {"⬜", "⬛", "⬜", "⬛"},
	game.StatusMisplaced: {"\U0001f7e8", "\U0001f7e8", "\U0001f7e6", "\U0001f7e6"},
	game.StatusRight:     {"\U0001f7e9", "\U0001f7e9", "\U0001f7e7", "\U0001f7e7"},
}

func (s Style) index() int {
	i := 0
	if s.Dark {
		i++
	}
	if s.HighContrast {
		i += 2
	}
	return i
}

// Text returns e.g.
//
//	Termle 412 3/6*
//
//	⬜🟨⬜⬜⬜
//	⬜🟩🟩⬜🟨
//	🟩🟩🟩🟩🟩
//
// The score is the guess count when won, X when lost and ? otherwise; the
// trailing * marks hard mode.
func Text(b Board, label string, style Style) string {
	guesses := b.Guesses()

	var sb strings.Builder
	fmt.Fprintf(&sb, "Termle %s ", label)
	switch {
	case b.IsWon():
		fmt.Fprintf(&sb, "%d", len(guesses))
	case b.IsLost():
		sb.WriteString("X")
	default:
		sb.WriteString("?")
	}
	fmt.Fprintf(&sb, "/%d", b.MaxGuesses())
	if b.HardMode() {
		sb.WriteString("*")
	}
	sb.WriteString("\n")

	idx := style.index()
	for _, g := range guesses {
		sb.WriteString("\n")
		for _, s := range g.Statuses {
			sb.WriteString(glyphs[s][idx])
		}
	}
	return sb.String()
}
