// Package assets embeds the default word lists used when no words file is
// present on disk.
package assets

import (
	"bufio"
	"embed"
	"fmt"
	"strings"
)

//go:embed allowed.txt answers.txt
var FS embed.FS

// readLines returns the non-blank, non-comment lines of an embedded file,
// trimmed and lowercased, in file order.
func readLines(name string) ([]string, error) {
	f, err := FS.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open embedded %s: %w", name, err)
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, strings.ToLower(s))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scan embedded %s: %w", name, err)
	}
	return out, nil
}

// AnswerSeries returns the default daily answers in play order.
func AnswerSeries() ([]string, error) {
	return readLines("answers.txt")
}

// AdditionalGuesses returns the default extra guesses, excluding answers.
func AdditionalGuesses() ([]string, error) {
	return readLines("allowed.txt")
}
