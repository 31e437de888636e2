// internal/words/words.go
//
// Word list management.
//
// A WordList is an ordered answer series (one answer per day, cycling) plus a
// set of additional valid guesses. Every word has the same length and is
// lowercase ASCII. The list is immutable once built.
//
// Sources:
//   - Load(path): JSON words file, optionally obfuscated (see file.go).
//   - Default(): the small lists embedded in package assets.

package words

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"sort"
	"strings"

	"github.com/samber/lo"

	"github.com/cemysce/termle/assets"
)

// ErrMalformed is returned for word lists that are empty, non-alphabetic, of
// mixed lengths, or otherwise unusable.
var ErrMalformed = errors.New("words: malformed word list")

// WordList is an answer series plus additional valid guesses.
type WordList struct {
	answers []string            // play order, may repeat
	extra   []string            // sorted, unique
	valid   map[string]struct{} // answers ∪ extra
	length  int
	source  string
}

// New builds a WordList. Words are trimmed and lowercased; duplicate
// additional guesses collapse.
func New(answers, extra []string) (*WordList, error) {
	normalize := func(w string, _ int) string { return strings.ToLower(strings.TrimSpace(w)) }
	ans := lo.Map(answers, normalize)
	ext := lo.Uniq(lo.Map(extra, normalize))
	sort.Strings(ext)

	if len(ans) == 0 {
		return nil, fmt.Errorf("%w: answer series is empty", ErrMalformed)
	}
	length := len(ans[0])
	if length == 0 {
		return nil, fmt.Errorf("%w: empty word", ErrMalformed)
	}
	for _, w := range append(append([]string{}, ans...), ext...) {
		if !isAlpha(w) {
			return nil, fmt.Errorf("%w: %q is not alphabetic", ErrMalformed, w)
		}
		if len(w) != length {
			return nil, fmt.Errorf("%w: %q has length %d, want %d", ErrMalformed, w, len(w), length)
		}
	}

	valid := make(map[string]struct{}, len(ans)+len(ext))
	for _, w := range ans {
		valid[w] = struct{}{}
	}
	for _, w := range ext {
		valid[w] = struct{}{}
	}
	return &WordList{answers: ans, extra: ext, valid: valid, length: length}, nil
}

// Default returns the embedded word lists.
func Default() (*WordList, error) {
	ans, err := assets.AnswerSeries()
	if err != nil {
		return nil, err
	}
	ext, err := assets.AdditionalGuesses()
	if err != nil {
		return nil, err
	}
	wl, err := New(ans, ext)
	if err != nil {
		return nil, err
	}
	wl.source = "embedded"
	return wl, nil
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// WordLength is the common length of every word.
func (w *WordList) WordLength() int { return w.length }

// Source describes where the list came from, if known.
func (w *WordList) Source() string { return w.source }

// Answers returns the answer series in play order.
func (w *WordList) Answers() []string {
	return append([]string(nil), w.answers...)
}

// AdditionalValidGuesses returns the non-answer guesses, sorted.
func (w *WordList) AdditionalValidGuesses() []string {
	return append([]string(nil), w.extra...)
}

// ValidGuesses returns answers ∪ additional guesses, sorted.
func (w *WordList) ValidGuesses() []string {
	out := lo.Keys(w.valid)
	sort.Strings(out)
	return out
}

// IsValid reports whether word is an accepted guess.
func (w *WordList) IsValid(word string) bool {
	_, ok := w.valid[strings.ToLower(word)]
	return ok
}

// RandomAnswer returns a cryptographically random answer from the series.
func (w *WordList) RandomAnswer() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(w.answers))))
	if err != nil {
		return "", fmt.Errorf("random answer: %w", err)
	}
	return w.answers[n.Int64()], nil
}

// LetterCount is one row of a letter frequency table.
type LetterCount struct {
	Letter rune
	Count  int
}

// Frequencies holds letter counts over the answer series: Overall across all
// positions and ByPosition per letter index. Rows are sorted by count
// descending, then letter.
type Frequencies struct {
	Overall    []LetterCount
	ByPosition [][]LetterCount
	Answers    int
}

// LetterFrequencies tallies letters over the answer series.
func (w *WordList) LetterFrequencies() Frequencies {
	count := func(letters []rune) []LetterCount {
		rows := lo.MapToSlice(lo.CountValues(letters), func(r rune, n int) LetterCount {
			return LetterCount{Letter: r, Count: n}
		})
		sort.Slice(rows, func(i, j int) bool {
			if rows[i].Count != rows[j].Count {
				return rows[i].Count > rows[j].Count
			}
			return rows[i].Letter < rows[j].Letter
		})
		return rows
	}

	all := lo.FlatMap(w.answers, func(a string, _ int) []rune { return []rune(a) })
	f := Frequencies{Overall: count(all), Answers: len(w.answers)}
	for i := 0; i < w.length; i++ {
		col := lo.Map(w.answers, func(a string, _ int) rune { return rune(a[i]) })
		f.ByPosition = append(f.ByPosition, count(col))
	}
	return f
}
