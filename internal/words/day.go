// internal/words/day.go
//
// Day offsets: mapping calendar dates and user-supplied day specs to the
// index of a daily puzzle.

package words

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrBadDay is returned by ResolveDay for specs that are unparsable, before
// the first puzzle, or in the future.
var ErrBadDay = errors.New("words: invalid day")

// FirstDay is the calendar date of day offset 0.
var FirstDay = civil(2021, time.June, 19)

// civil returns midnight UTC of a calendar date so day arithmetic ignores
// time zones and daylight saving.
func civil(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DayOffset returns whole days from FirstDay to t's calendar date in t's
// location. Dates before FirstDay give negative offsets.
func DayOffset(t time.Time) int {
	y, m, d := t.Date()
	return int(civil(y, m, d).Sub(FirstDay).Hours() / 24)
}

// ResolveDay turns a day spec into a day offset:
//
//	""           today
//	"412"        offset 412
//	"2022-08-04" that calendar date
//
// It also reports whether the offset is today's. Days before the first puzzle
// or after today are rejected.
func ResolveDay(spec string, today time.Time) (int, bool, error) {
	todayOffset := DayOffset(today)
	if todayOffset < 0 {
		return 0, false, fmt.Errorf("%w: today precedes the first puzzle", ErrBadDay)
	}

	var offset int
	switch {
	case spec == "":
		offset = todayOffset
	case isDecimal(spec):
		n, err := strconv.Atoi(spec)
		if err != nil {
			return 0, false, fmt.Errorf("%w: %q: %v", ErrBadDay, spec, err)
		}
		offset = n
	default:
		parts := strings.SplitN(spec, "-", 3)
		if len(parts) != 3 || !isDecimal(parts[0]) || !isDecimal(parts[1]) || !isDecimal(parts[2]) {
			return 0, false, fmt.Errorf("%w: %q is neither a day number nor YYYY-MM-DD", ErrBadDay, spec)
		}
		y, _ := strconv.Atoi(parts[0])
		m, _ := strconv.Atoi(parts[1])
		d, _ := strconv.Atoi(parts[2])
		date := civil(y, time.Month(m), d)
		if date.Year() != y || int(date.Month()) != m || date.Day() != d {
			return 0, false, fmt.Errorf("%w: %q is not a calendar date", ErrBadDay, spec)
		}
		offset = DayOffset(date)
	}

	if offset < 0 {
		return 0, false, fmt.Errorf("%w: %q precedes the first puzzle", ErrBadDay, spec)
	}
	if offset > todayOffset {
		return 0, false, fmt.Errorf("%w: %q is in the future", ErrBadDay, spec)
	}
	return offset, offset == todayOffset, nil
}

// DailyAnswer returns the answer for a non-negative day offset; the series
// repeats once exhausted.
func (w *WordList) DailyAnswer(offset int) (string, error) {
	if offset < 0 {
		return "", fmt.Errorf("%w: offset %d", ErrBadDay, offset)
	}
	return w.answers[offset%len(w.answers)], nil
}

func isDecimal(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
