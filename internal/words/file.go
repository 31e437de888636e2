// internal/words/file.go
//
// Words file format.
// Responsibilities:
//   - Decode the JSON lists, plain or wrapped in one of the text codecs.
//   - Encode a WordList back out for export.

package words

import (
	"bytes"
	"encoding/ascii85"
	"encoding/base32"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

// fileFormat is the on-disk words file.
type fileFormat struct {
	Source                 string    `json:"source,omitempty"`
	AnswerSeries           *[]string `json:"answer_series"`
	AdditionalValidGuesses *[]string `json:"additional_valid_guesses"`
	Obfuscation            string    `json:"obfuscation,omitempty"`
}

// codec reversibly disguises each word so the answer series is not readable
// at a glance.
type codec struct {
	encode func([]byte) string
	decode func(string) ([]byte, error)
}

// DefaultCodec is used by Encode when no codec is named.
const DefaultCodec = "Ascii85"

var codecs = map[string]codec{
	"Base16": {
		encode: func(b []byte) string { return strings.ToUpper(hex.EncodeToString(b)) },
		decode: func(s string) ([]byte, error) { return hex.DecodeString(s) },
	},
	"Base32": {
		encode: base32.StdEncoding.EncodeToString,
		decode: base32.StdEncoding.DecodeString,
	},
	"Base64": {
		encode: base64.StdEncoding.EncodeToString,
		decode: base64.StdEncoding.DecodeString,
	},
	"Ascii85": {
		encode: func(b []byte) string {
			out := make([]byte, ascii85.MaxEncodedLen(len(b)))
			return string(out[:ascii85.Encode(out, b)])
		},
		decode: func(s string) ([]byte, error) {
			out := make([]byte, len(s)*4)
			n, _, err := ascii85.Decode(out, []byte(s), true)
			if err != nil {
				return nil, err
			}
			return out[:n], nil
		},
	},
}

// Codecs lists the supported obfuscation names.
func Codecs() []string {
	names := lo.Keys(codecs)
	sort.Strings(names)
	return names
}

// Load reads a words file. A missing file falls back to Default.
func Load(path string) (*WordList, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Info().Str("path", path).Msg("no words file, using embedded lists")
		return Default()
	}
	if err != nil {
		return nil, fmt.Errorf("read words file: %w", err)
	}
	wl, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return wl, nil
}

// Parse decodes the contents of a words file.
func Parse(data []byte) (*WordList, error) {
	var f fileFormat
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if f.AnswerSeries == nil || f.AdditionalValidGuesses == nil {
		return nil, fmt.Errorf("%w: answer_series and additional_valid_guesses are required", ErrMalformed)
	}
	answers, extra := *f.AnswerSeries, *f.AdditionalValidGuesses

	if f.Obfuscation != "" {
		c, ok := codecs[f.Obfuscation]
		if !ok {
			return nil, fmt.Errorf("%w: unknown obfuscation %q", ErrMalformed, f.Obfuscation)
		}
		var err error
		if answers, err = decodeAll(c, answers); err != nil {
			return nil, err
		}
		if extra, err = decodeAll(c, extra); err != nil {
			return nil, err
		}
	}

	wl, err := New(answers, extra)
	if err != nil {
		return nil, err
	}
	wl.source = f.Source
	return wl, nil
}

func decodeAll(c codec, in []string) ([]string, error) {
	out := make([]string, len(in))
	for i, s := range in {
		b, err := c.decode(s)
		if err != nil {
			return nil, fmt.Errorf("%w: cannot decode %q: %v", ErrMalformed, s, err)
		}
		out[i] = string(b)
	}
	return out, nil
}

// Encode renders w as a words file using the named codec ("" = plain text).
func (w *WordList) Encode(codecName string) ([]byte, error) {
	answers, extra := w.Answers(), w.AdditionalValidGuesses()
	if codecName != "" {
		c, ok := codecs[codecName]
		if !ok {
			return nil, fmt.Errorf("unknown obfuscation %q", codecName)
		}
		answers = lo.Map(answers, func(s string, _ int) string { return c.encode([]byte(s)) })
		extra = lo.Map(extra, func(s string, _ int) string { return c.encode([]byte(s)) })
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(fileFormat{
		Source:                 w.source,
		AnswerSeries:           &answers,
		AdditionalValidGuesses: &extra,
		Obfuscation:            codecName,
	}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
