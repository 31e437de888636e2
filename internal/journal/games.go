// internal/journal/games.go
//
// Queries over the games table.
// Responsibilities:
//   - Record finished games (one row per fingerprint and day).
//   - Look up whether a daily game was already recorded.
//   - List recent games for the history view.

package journal

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Entry is one finished game.
type Entry struct {
	ID          string    // generated on Record when empty
	Fingerprint string    // word-list fingerprint
	Day         *int      // day offset for daily games, nil otherwise
	Answer      string
	Guesses     []string
	Won         bool
	HardMode    bool
	MaxGuesses  int
	FinishedAt  time.Time // defaults to now
}

// Record stores e. A daily entry whose (fingerprint, day) is already present
// is ignored and reported as not recorded.
func (j *Journal) Record(ctx context.Context, e Entry) (bool, error) {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.FinishedAt.IsZero() {
		e.FinishedAt = time.Now().UTC()
	}
	var day sql.NullInt64
	if e.Day != nil {
		day = sql.NullInt64{Int64: int64(*e.Day), Valid: true}
	}

	res, err := j.db.ExecContext(ctx, `
        INSERT OR IGNORE INTO games
            (id, fingerprint, day_offset, answer, guesses, won, hard_mode, max_guesses, finished_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.Fingerprint, day, e.Answer, strings.Join(e.Guesses, ","),
		e.Won, e.HardMode, e.MaxGuesses, e.FinishedAt,
	)
	if err != nil {
		return false, fmt.Errorf("record game: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	if n == 0 {
		log.Debug().Str("fingerprint", e.Fingerprint).Msg("game already in journal")
		return false, nil
	}
	log.Info().Str("id", e.ID).Bool("won", e.Won).Int("guesses", len(e.Guesses)).Msg("game recorded")
	return true, nil
}

// AlreadyRecorded reports whether the daily game for (fingerprint, day) is
// in the journal.
func (j *Journal) AlreadyRecorded(ctx context.Context, fingerprint string, day int) (bool, error) {
	var cnt int
	if err := j.db.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM games WHERE fingerprint=? AND day_offset=?`,
		fingerprint, day,
	).Scan(&cnt); err != nil {
		return false, err
	}
	return cnt > 0, nil
}

// Recent returns the latest entries, newest first. Default limit is 20.
func (j *Journal) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := j.db.QueryContext(ctx, `
        SELECT id, fingerprint, day_offset, answer, guesses, won, hard_mode, max_guesses, finished_at
        FROM games
        ORDER BY finished_at DESC, rowid DESC
        LIMIT ?`, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Entry, 0, limit)
	for rows.Next() {
		var (
			e       Entry
			day     sql.NullInt64
			guesses string
		)
		if err := rows.Scan(&e.ID, &e.Fingerprint, &day, &e.Answer, &guesses,
			&e.Won, &e.HardMode, &e.MaxGuesses, &e.FinishedAt); err != nil {
			return nil, err
		}
		if day.Valid {
			d := int(day.Int64)
			e.Day = &d
		}
		if guesses != "" {
			e.Guesses = strings.Split(guesses, ",")
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
