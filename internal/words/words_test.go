package words

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func smallList(t *testing.T) *WordList {
	t.Helper()
	wl, err := New([]string{"hello", "crane"}, []string{"speed", "blimp", "speed"})
	require.NoError(t, err)
	return wl
}

func TestNew(t *testing.T) {
	t.Parallel()

	wl := smallList(t)
	assert.Equal(t, 5, wl.WordLength())
	assert.Equal(t, []string{"hello", "crane"}, wl.Answers())
	assert.Equal(t, []string{"blimp", "speed"}, wl.AdditionalValidGuesses())
	assert.Equal(t, []string{"blimp", "crane", "hello", "speed"}, wl.ValidGuesses())
	assert.True(t, wl.IsValid("HELLO"))
	assert.True(t, wl.IsValid("blimp"))
	assert.False(t, wl.IsValid("ghost"))
}

func TestNew_Invalid(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		answers, extra []string
	}{
		"no answers":      {nil, []string{"hello"}},
		"empty word":      {[]string{""}, nil},
		"non alphabetic":  {[]string{"hell0"}, nil},
		"mixed lengths":   {[]string{"hello"}, []string{"hi"}},
		"answers differ":  {[]string{"hello", "hey"}, nil},
		"non ascii guess": {[]string{"hello"}, []string{"héllo"}},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := New(tc.answers, tc.extra)
			assert.ErrorIs(t, err, ErrMalformed)
		})
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	t.Parallel()

	wl := smallList(t)
	a := wl.Answers()
	a[0] = "zzzzz"
	assert.Equal(t, "hello", wl.Answers()[0])
}

func TestFingerprint(t *testing.T) {
	t.Parallel()

	wl := smallList(t)
	assert.Equal(t, "dd4b01a54d314e7baa20040a31edd10f1d14437028e40640100d553af90892f8", wl.Fingerprint())

	reordered, err := New([]string{"hello", "crane"}, []string{"blimp", "speed"})
	require.NoError(t, err)
	assert.Equal(t, wl.Fingerprint(), reordered.Fingerprint(), "guess order does not matter")

	swapped, err := New([]string{"crane", "hello"}, []string{"blimp", "speed"})
	require.NoError(t, err)
	assert.NotEqual(t, wl.Fingerprint(), swapped.Fingerprint(), "answer order does")
}

func TestRandomAnswer(t *testing.T) {
	t.Parallel()

	wl := smallList(t)
	for i := 0; i < 20; i++ {
		a, err := wl.RandomAnswer()
		require.NoError(t, err)
		assert.Contains(t, wl.Answers(), a)
	}
}

func TestLetterFrequencies(t *testing.T) {
	t.Parallel()

	wl, err := New([]string{"speed", "erase"}, nil)
	require.NoError(t, err)
	f := wl.LetterFrequencies()

	assert.Equal(t, 2, f.Answers)
	require.NotEmpty(t, f.Overall)
	assert.Equal(t, LetterCount{Letter: 'e', Count: 4}, f.Overall[0])
	assert.Equal(t, LetterCount{Letter: 's', Count: 2}, f.Overall[1])

	require.Len(t, f.ByPosition, 5)
	assert.Equal(t, []LetterCount{{'e', 1}, {'s', 1}}, f.ByPosition[0])
	assert.Equal(t, []LetterCount{{'a', 1}, {'e', 1}}, f.ByPosition[2])
}

func TestDefault(t *testing.T) {
	t.Parallel()

	wl, err := Default()
	require.NoError(t, err)
	assert.Equal(t, 5, wl.WordLength())
	assert.Equal(t, "cigar", wl.Answers()[0])
	for _, a := range wl.Answers() {
		assert.True(t, wl.IsValid(a))
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("plain", func(t *testing.T) {
		wl, err := Parse([]byte(`{"answer_series":["hello","crane"],"additional_valid_guesses":["speed"]}`))
		require.NoError(t, err)
		assert.Equal(t, []string{"hello", "crane"}, wl.Answers())
	})

	t.Run("ascii85", func(t *testing.T) {
		wl, err := Parse([]byte(`{"source":"x","answer_series":["BOu!rDZ","@rc!qAH"],"additional_valid_guesses":[],"obfuscation":"Ascii85"}`))
		require.NoError(t, err)
		assert.Equal(t, []string{"hello", "crane"}, wl.Answers())
		assert.Equal(t, "x", wl.Source())
	})

	t.Run("base16", func(t *testing.T) {
		wl, err := Parse([]byte(`{"answer_series":["68656C6C6F"],"additional_valid_guesses":["6372616E65"],"obfuscation":"Base16"}`))
		require.NoError(t, err)
		assert.Equal(t, []string{"crane"}, wl.AdditionalValidGuesses())
	})

	bad := map[string]string{
		"not json":        `[`,
		"missing answers": `{"additional_valid_guesses":[]}`,
		"missing guesses": `{"answer_series":["hello"]}`,
		"unknown codec":   `{"answer_series":["hello"],"additional_valid_guesses":[],"obfuscation":"Rot13"}`,
		"undecodable":     `{"answer_series":["zz"],"additional_valid_guesses":[],"obfuscation":"Base16"}`,
		"mixed lengths":   `{"answer_series":["hello"],"additional_valid_guesses":["hi"]}`,
	}
	for name, body := range bad {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(body))
			assert.ErrorIs(t, err, ErrMalformed)
		})
	}
}

func TestEncode_RoundTrip(t *testing.T) {
	t.Parallel()

	wl := smallList(t)
	for _, c := range append(Codecs(), "") {
		t.Run("codec "+c, func(t *testing.T) {
			data, err := wl.Encode(c)
			require.NoError(t, err)
			back, err := Parse(data)
			require.NoError(t, err)
			assert.Equal(t, wl.Fingerprint(), back.Fingerprint())
		})
	}

	_, err := wl.Encode("Rot13")
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	wl, err := Load(filepath.Join(dir, "missing.json"))
	require.NoError(t, err)
	assert.Equal(t, "embedded", wl.Source())

	path := filepath.Join(dir, "words.json")
	data, err := smallList(t).Encode("Base64")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	wl, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"hello", "crane"}, wl.Answers())
}

func TestResolveDay(t *testing.T) {
	t.Parallel()

	today := time.Date(2024, time.March, 1, 18, 30, 0, 0, time.Local)

	ok := []struct {
		spec    string
		offset  int
		isToday bool
	}{
		{"", 986, true},
		{"986", 986, true},
		{"0", 0, false},
		{"411", 411, false},
		{"2022-08-04", 411, false},
		{"2021-06-19", 0, false},
		{"2024-3-1", 986, true},
	}
	for _, tc := range ok {
		offset, isToday, err := ResolveDay(tc.spec, today)
		require.NoError(t, err, tc.spec)
		assert.Equal(t, tc.offset, offset, tc.spec)
		assert.Equal(t, tc.isToday, isToday, tc.spec)
	}

	for _, spec := range []string{"987", "2024-03-02", "2021-06-18", "-1", "yesterday", "2022-02-30", "2022-08"} {
		_, _, err := ResolveDay(spec, today)
		assert.ErrorIs(t, err, ErrBadDay, spec)
	}

	_, _, err := ResolveDay("", time.Date(2021, time.June, 18, 12, 0, 0, 0, time.Local))
	assert.ErrorIs(t, err, ErrBadDay)
}

func TestDailyAnswer(t *testing.T) {
	t.Parallel()

	wl := smallList(t)
	for offset, want := range map[int]string{0: "hello", 1: "crane", 2: "hello", 411: "crane"} {
		got, err := wl.DailyAnswer(offset)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := wl.DailyAnswer(-1)
	assert.ErrorIs(t, err, ErrBadDay)
}
