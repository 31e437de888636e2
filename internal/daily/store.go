// internal/daily/store.go
//
// Daily progress persistence.
//
// The backing document is a JSON object keyed by StateKey. Each state record
// holds "play_stats" plus one "day:<offset>" entry per day played:
//
//	{
//	    "wldig:<fingerprint>_maxg:6": {
//	        "day:412": {"guesses": [...], "is_completed": true, "pending_guess_letters": []},
//	        "play_stats": {...}
//	    }
//	}
//
// Saves are read-merge-write so other days and other word lists survive.

package daily

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/cemysce/termle/internal/stats"
	"github.com/cemysce/termle/internal/store"
)

var (
	// ErrInconsistentSave is returned when a completed game is saved with no
	// guesses or with leftover pending letters.
	ErrInconsistentSave = errors.New("daily: inconsistent completed state")
	// ErrMalformed is returned when the persisted document exists but lacks
	// expected keys or has the wrong shape.
	ErrMalformed = errors.New("daily: malformed state document")
)

// Progress is what Load hands back to start a daily game.
type Progress struct {
	Stats   *stats.Stats
	Guesses []string
	Pending []string
}

// Store loads and saves progress for one (fingerprint, max guesses, day).
type Store struct {
	doc        store.Document
	key        string
	maxGuesses int
	day        int
}

// NewStore binds a Store to a document and a composite key.
func NewStore(doc store.Document, fingerprint string, maxGuesses, dayOffset int) *Store {
	return &Store{
		doc:        doc,
		key:        StateKey(fingerprint, maxGuesses),
		maxGuesses: maxGuesses,
		day:        dayOffset,
	}
}

// dayRecord is one "day:<offset>" entry. Pointers detect missing fields.
type dayRecord struct {
	Guesses     *[]string `json:"guesses"`
	Pending     *[]string `json:"pending_guess_letters"`
	IsCompleted *bool     `json:"is_completed"`
}

// Load returns the saved statistics and today's partial game.
// With no saved record it returns fresh statistics and empty history.
//
// If neither today nor yesterday is recorded as completed, the streak is
// lapsed before returning: missing yesterday's puzzle breaks the streak
// whether or not today's has been finished yet.
func (s *Store) Load(ctx context.Context) (Progress, error) {
	fresh := Progress{Stats: stats.New(s.maxGuesses), Guesses: []string{}, Pending: []string{}}

	all, err := s.readAll(ctx)
	if err != nil {
		return Progress{}, err
	}
	rec, ok, err := record(all, s.key)
	if err != nil {
		return Progress{}, err
	}
	if !ok {
		log.Debug().Str("key", s.key).Msg("no saved daily state")
		return fresh, nil
	}

	rawStats, ok := rec[playStatsKey]
	if !ok {
		return Progress{}, fmt.Errorf("%w: %s has no %s", ErrMalformed, s.key, playStatsKey)
	}
	st := stats.New(s.maxGuesses)
	if err := json.Unmarshal(rawStats, st); err != nil {
		return Progress{}, fmt.Errorf("%w: %s: %v", ErrMalformed, s.key, err)
	}

	today, err := decodeDay(rec, DayKey(s.day))
	if err != nil {
		return Progress{}, err
	}
	yesterday, err := decodeDay(rec, DayKey(s.day-1))
	if err != nil {
		return Progress{}, err
	}
	if !today.completed() && !yesterday.completed() {
		if st.CurrentStreak() > 0 {
			log.Info().Int("day", s.day).Int("streak", st.CurrentStreak()).Msg("previous puzzle missed, streak lapsed")
		}
		st.RegisterStreakLapse()
	}

	if today == nil {
		return Progress{Stats: st, Guesses: []string{}, Pending: []string{}}, nil
	}
	log.Debug().Str("key", s.key).Int("day", s.day).Int("guesses", len(*today.Guesses)).Msg("restored daily state")
	return Progress{Stats: st, Guesses: *today.Guesses, Pending: *today.Pending}, nil
}

// Save writes the statistics and today's game state, preserving every other
// record already in the document. Any error means nothing was written.
func (s *Store) Save(ctx context.Context, st *stats.Stats, guesses, pending []string, completed bool) error {
	if completed && (len(guesses) == 0 || len(pending) > 0) {
		return fmt.Errorf("%w: %d guesses, %d pending letters", ErrInconsistentSave, len(guesses), len(pending))
	}
	if guesses == nil {
		guesses = []string{}
	}
	if pending == nil {
		pending = []string{}
	}

	all, err := s.readAll(ctx)
	if err != nil {
		return err
	}
	rec, ok, err := record(all, s.key)
	if err != nil {
		return err
	}
	if !ok {
		rec = map[string]json.RawMessage{}
	}

	rawStats, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("encode stats: %w", err)
	}
	rawDay, err := json.Marshal(dayRecord{Guesses: &guesses, Pending: &pending, IsCompleted: &completed})
	if err != nil {
		return fmt.Errorf("encode day: %w", err)
	}
	rec[playStatsKey] = rawStats
	rec[DayKey(s.day)] = rawDay

	rawRec, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode record: %w", err)
	}
	all[s.key] = rawRec

	out, err := json.MarshalIndent(all, "", "    ")
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	if err := s.doc.Write(ctx, out); err != nil {
		return fmt.Errorf("save daily state: %w", err)
	}
	log.Debug().Str("key", s.key).Int("day", s.day).Bool("completed", completed).Msg("saved daily state")
	return nil
}

// readAll decodes the whole document; a missing document is an empty one.
func (s *Store) readAll(ctx context.Context) (map[string]json.RawMessage, error) {
	data, err := s.doc.Read(ctx)
	if errors.Is(err, store.ErrNotFound) {
		return map[string]json.RawMessage{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load daily state: %w", err)
	}
	var all map[string]json.RawMessage
	if err := json.Unmarshal(data, &all); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if all == nil {
		return nil, fmt.Errorf("%w: document is null", ErrMalformed)
	}
	return all, nil
}

// record extracts and decodes the state record stored under key.
func record(all map[string]json.RawMessage, key string) (map[string]json.RawMessage, bool, error) {
	raw, ok := all[key]
	if !ok {
		return nil, false, nil
	}
	var rec map[string]json.RawMessage
	if err := json.Unmarshal(raw, &rec); err != nil || rec == nil {
		return nil, false, fmt.Errorf("%w: %s is not an object", ErrMalformed, key)
	}
	return rec, true, nil
}

// decodeDay returns nil when the day has no entry.
func decodeDay(rec map[string]json.RawMessage, key string) (*dayRecord, error) {
	raw, ok := rec[key]
	if !ok {
		return nil, nil
	}
	var d dayRecord
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformed, key, err)
	}
	if d.Guesses == nil || d.Pending == nil || d.IsCompleted == nil {
		return nil, fmt.Errorf("%w: %s is missing fields", ErrMalformed, key)
	}
	return &d, nil
}

func (d *dayRecord) completed() bool {
	return d != nil && d.IsCompleted != nil && *d.IsCompleted
}
