package journal

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTest(t *testing.T) *Journal {
	t.Helper()
	j, err := Open(filepath.Join(t.TempDir(), "data", "journal.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = j.Close() })
	return j
}

func dayPtr(d int) *int { return &d }

func TestOpen_MigrationsIdempotent(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "journal.db")
	j, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, j.Close())

	j, err = Open(path)
	require.NoError(t, err)
	defer j.Close()

	var n int
	require.NoError(t, j.db.QueryRow(`SELECT COUNT(1) FROM _migrations`).Scan(&n))
	assert.Equal(t, 1, n)
}

func TestRecord_DailyOncePerDay(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	j := openTest(t)

	e := Entry{
		Fingerprint: "fp",
		Day:         dayPtr(412),
		Answer:      "hello",
		Guesses:     []string{"crane", "hello"},
		Won:         true,
		MaxGuesses:  6,
	}
	ok, err := j.Record(ctx, e)
	require.NoError(t, err)
	assert.True(t, ok)

	done, err := j.AlreadyRecorded(ctx, "fp", 412)
	require.NoError(t, err)
	assert.True(t, done)

	ok, err = j.Record(ctx, e)
	require.NoError(t, err)
	assert.False(t, ok, "second daily record for the same day is ignored")

	done, err = j.AlreadyRecorded(ctx, "fp", 413)
	require.NoError(t, err)
	assert.False(t, done)

	done, err = j.AlreadyRecorded(ctx, "other", 412)
	require.NoError(t, err)
	assert.False(t, done)
}

func TestRecord_RandomGamesNotDeduplicated(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	j := openTest(t)

	for i := 0; i < 3; i++ {
		ok, err := j.Record(ctx, Entry{Fingerprint: "fp", Answer: "hello", Guesses: []string{"hello"}, Won: true, MaxGuesses: 6})
		require.NoError(t, err)
		assert.True(t, ok)
	}
	got, err := j.Recent(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestRecent_NewestFirstWithLimit(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	j := openTest(t)
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	answers := []string{"crane", "fluid", "speed"}
	for i, a := range answers {
		_, err := j.Record(ctx, Entry{
			Fingerprint: "fp",
			Day:         dayPtr(i),
			Answer:      a,
			Guesses:     []string{"blimp", a},
			Won:         i != 1,
			HardMode:    i == 2,
			MaxGuesses:  6,
			FinishedAt:  base.Add(time.Duration(i) * time.Hour),
		})
		require.NoError(t, err)
	}

	got, err := j.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "speed", got[0].Answer)
	assert.True(t, got[0].Won)
	assert.True(t, got[0].HardMode)
	require.NotNil(t, got[0].Day)
	assert.Equal(t, 2, *got[0].Day)
	assert.Equal(t, []string{"blimp", "speed"}, got[0].Guesses)
	assert.NotEmpty(t, got[0].ID)
	assert.True(t, got[0].FinishedAt.Equal(base.Add(2*time.Hour)))

	assert.Equal(t, "fluid", got[1].Answer)
	assert.False(t, got[1].Won)
}
