// internal/stats/stats.go
//
// Aggregate play statistics for one word-list identity:
// completed/won counts, streaks and the guess-count histogram.
//
// The JSON form keeps histogram keys as decimal strings, so they are
// converted explicitly at the boundary instead of relying on map[int]int
// surviving a round trip.

package stats

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
)

var (
	// ErrInvalidGuessCount is returned by RegisterWin for counts below 1.
	ErrInvalidGuessCount = errors.New("stats: guess count must be at least 1")
	// ErrMalformed is returned when persisted statistics are missing a field
	// or carry a non-integer histogram key.
	ErrMalformed = errors.New("stats: malformed statistics")
)

// Stats holds the counters. The zero value is not ready for use; call New.
type Stats struct {
	completed     int
	won           int
	currentStreak int
	maxStreak     int
	distribution  map[int]int
}

// New returns empty statistics with a zeroed histogram bucket for every
// guess count from 1 to maxGuesses.
func New(maxGuesses int) *Stats {
	d := make(map[int]int, maxGuesses)
	for g := 1; g <= maxGuesses; g++ {
		d[g] = 0
	}
	return &Stats{distribution: d}
}

func (s *Stats) AnyCompleted() bool { return s.completed > 0 }
func (s *Stats) Completed() int     { return s.completed }
func (s *Stats) Won() int           { return s.won }
func (s *Stats) CurrentStreak() int { return s.currentStreak }
func (s *Stats) MaxStreak() int     { return s.maxStreak }

// PercentWon is the floored integer percentage of completed games that were won.
func (s *Stats) PercentWon() int {
	if s.completed == 0 {
		return 0
	}
	return s.won * 100 / s.completed
}

// Distribution returns a copy of the guess-count histogram.
func (s *Stats) Distribution() map[int]int {
	out := make(map[int]int, len(s.distribution))
	for k, v := range s.distribution {
		out[k] = v
	}
	return out
}

// Buckets returns the histogram keys in ascending order.
func (s *Stats) Buckets() []int {
	keys := make([]int, 0, len(s.distribution))
	for k := range s.distribution {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

// RegisterWin records a game won in the given number of guesses.
func (s *Stats) RegisterWin(guesses int) error {
	if guesses < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidGuessCount, guesses)
	}
	s.completed++
	s.won++
	s.currentStreak++
	if s.currentStreak > s.maxStreak {
		s.maxStreak = s.currentStreak
	}
	if s.distribution == nil {
		s.distribution = map[int]int{}
	}
	s.distribution[guesses]++
	return nil
}

// RegisterLoss records a lost game and breaks the streak.
func (s *Stats) RegisterLoss() {
	s.completed++
	s.currentStreak = 0
}

// RegisterStreakLapse breaks the streak without counting a game,
// used when a previous day's puzzle was skipped.
func (s *Stats) RegisterStreakLapse() {
	s.currentStreak = 0
}

// wire is the persisted shape. Pointers detect missing fields.
type wire struct {
	NumCompleted      *int           `json:"num_completed"`
	NumWon            *int           `json:"num_won"`
	CurrentStreak     *int           `json:"current_streak"`
	MaxStreak         *int           `json:"max_streak"`
	GuessDistribution map[string]int `json:"guess_distribution"`
}

func (s *Stats) MarshalJSON() ([]byte, error) {
	d := make(map[string]int, len(s.distribution))
	for k, v := range s.distribution {
		d[strconv.Itoa(k)] = v
	}
	return json.Marshal(wire{
		NumCompleted:      &s.completed,
		NumWon:            &s.won,
		CurrentStreak:     &s.currentStreak,
		MaxStreak:         &s.maxStreak,
		GuessDistribution: d,
	})
}

func (s *Stats) UnmarshalJSON(data []byte) error {
	var w wire
	if err := json.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	switch {
	case w.NumCompleted == nil:
		return fmt.Errorf("%w: missing num_completed", ErrMalformed)
	case w.NumWon == nil:
		return fmt.Errorf("%w: missing num_won", ErrMalformed)
	case w.CurrentStreak == nil:
		return fmt.Errorf("%w: missing current_streak", ErrMalformed)
	case w.MaxStreak == nil:
		return fmt.Errorf("%w: missing max_streak", ErrMalformed)
	case w.GuessDistribution == nil:
		return fmt.Errorf("%w: missing guess_distribution", ErrMalformed)
	}

	d := make(map[int]int, len(w.GuessDistribution))
	for k, v := range w.GuessDistribution {
		n, err := strconv.Atoi(k)
		if err != nil {
			return fmt.Errorf("%w: guess_distribution key %q", ErrMalformed, k)
		}
		d[n] = v
	}

	s.completed = *w.NumCompleted
	s.won = *w.NumWon
	s.currentStreak = *w.CurrentStreak
	s.maxStreak = *w.MaxStreak
	s.distribution = d
	return nil
}
