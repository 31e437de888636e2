package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cemysce/termle/internal/config"
	"github.com/cemysce/termle/internal/daily"
	"github.com/cemysce/termle/internal/journal"
	"github.com/cemysce/termle/internal/store"
	"github.com/cemysce/termle/internal/words"
)

func testSetup(t *testing.T) (*config.Config, *words.WordList) {
	t.Helper()
	dir := t.TempDir()
	cfg, err := config.LoadFile(filepath.Join(dir, "termle-config.json"))
	require.NoError(t, err)
	cfg.DailyStateFile = filepath.Join(dir, "daily.json")
	cfg.JournalFile = filepath.Join(dir, "journal.db")

	wl, err := words.New([]string{"speed"}, []string{"erase", "crane"})
	require.NoError(t, err)
	return cfg, wl
}

func TestPlay_DailyResumesAndRecords(t *testing.T) {
	ctx := context.Background()
	cfg, wl := testSetup(t)
	cfg.Daily = true

	var out bytes.Buffer
	require.NoError(t, play(ctx, cfg, wl, strings.NewReader("erase\n:type cr\n:quit\n"), &out))

	today := words.DayOffset(time.Now())
	p, err := daily.NewStore(store.NewFile(cfg.DailyStateFile), wl.Fingerprint(), cfg.MaxGuesses, today).Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"erase"}, p.Guesses)
	assert.Equal(t, []string{"c", "r"}, p.Pending)

	out.Reset()
	require.NoError(t, play(ctx, cfg, wl, strings.NewReader("speed\n"), &out))
	assert.Contains(t, out.String(), "Magnificent")

	p, err = daily.NewStore(store.NewFile(cfg.DailyStateFile), wl.Fingerprint(), cfg.MaxGuesses, today).Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"erase", "speed"}, p.Guesses)
	assert.Equal(t, 1, p.Stats.Won())
	assert.Equal(t, 1, p.Stats.CurrentStreak())

	jr, err := journal.Open(cfg.JournalFile)
	require.NoError(t, err)
	defer jr.Close()
	done, err := jr.AlreadyRecorded(ctx, wl.Fingerprint(), today)
	require.NoError(t, err)
	assert.True(t, done)
}

func TestPlay_RandomSavesHardMode(t *testing.T) {
	ctx := context.Background()
	cfg, wl := testSetup(t)

	var out bytes.Buffer
	require.NoError(t, play(ctx, cfg, wl, strings.NewReader(":hard\nspeed\n"), &out))
	assert.Contains(t, out.String(), "Termle random 1/6*")

	again, err := config.LoadFile(cfg.Path)
	require.NoError(t, err)
	assert.True(t, again.HardMode)

	var hist bytes.Buffer
	require.NoError(t, printHistory(ctx, &hist, cfg))
	assert.Contains(t, hist.String(), "random")
	assert.Contains(t, hist.String(), "SPEED  1/6*  speed")
}

func TestPlay_PastDayNotPersisted(t *testing.T) {
	ctx := context.Background()
	cfg, wl := testSetup(t)
	cfg.Daily = true
	cfg.Day = "0"

	var out bytes.Buffer
	require.NoError(t, play(ctx, cfg, wl, strings.NewReader("speed\n"), &out))
	assert.Contains(t, out.String(), "Termle 0 1/6")

	_, err := store.NewFile(cfg.DailyStateFile).Read(ctx)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestPlay_JournaledDayNotRecordedAgain(t *testing.T) {
	ctx := context.Background()
	cfg, wl := testSetup(t)
	cfg.Daily = true
	cfg.Day = "0"

	var out bytes.Buffer
	require.NoError(t, play(ctx, cfg, wl, strings.NewReader("speed\n"), &out))
	assert.NotContains(t, out.String(), "already in the journal")

	out.Reset()
	require.NoError(t, play(ctx, cfg, wl, strings.NewReader("erase\nspeed\n"), &out))
	assert.Contains(t, out.String(), "Day 0 is already in the journal")
	assert.Contains(t, out.String(), "Termle 0 2/6")

	jr, err := journal.Open(cfg.JournalFile)
	require.NoError(t, err)
	defer jr.Close()
	entries, err := jr.Recent(ctx, 0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, []string{"speed"}, entries[0].Guesses)
}

func TestPrintWordStats(t *testing.T) {
	wl, err := words.New([]string{"speed", "erase"}, nil)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, printWordStats(&out, wl))
	assert.Contains(t, out.String(), "Overall Statistics:\n 4/10 e\n 2/10 s\n")
	assert.Contains(t, out.String(), "\nLetter 4 Statistics:\n1/2 e\n1/2 s\n")
}

func TestExportWords(t *testing.T) {
	wl, err := words.New([]string{"speed"}, []string{"erase"})
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, exportWords(&out, wl))
	back, err := words.Parse(out.Bytes())
	require.NoError(t, err)
	assert.Equal(t, wl.Fingerprint(), back.Fingerprint())
}
