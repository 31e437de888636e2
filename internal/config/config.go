package config

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/rs/zerolog/log"

	"github.com/cemysce/termle/internal/store"
)

// Config is the application configuration.
//
// The player settings (max guesses, the modes) live in a JSON file and are
// written back by Save. The remaining fields come from the environment only.
type Config struct {
	MaxGuesses       int  `json:"max_guesses"        env:"TERMLE_MAX_GUESSES"        env-default:"6"`
	HardMode         bool `json:"hard_mode"          env:"TERMLE_HARD_MODE"          env-default:"false"`
	DarkMode         bool `json:"dark_mode"          env:"TERMLE_DARK_MODE"          env-default:"false"`
	HighContrastMode bool `json:"high_contrast_mode" env:"TERMLE_HIGH_CONTRAST_MODE" env-default:"false"`

	WordsFile      string `json:"-" env:"TERMLE_WORDS_FILE"       env-default:"termle-words.json"`
	DailyStateFile string `json:"-" env:"TERMLE_DAILY_STATE_FILE" env-default:"termle-daily-state.json"`
	JournalFile    string `json:"-" env:"TERMLE_JOURNAL_FILE"`
	Daily          bool   `json:"-" env:"TERMLE_DAILY"            env-default:"false"`
	Day            string `json:"-" env:"TERMLE_DAY"`
	Mode           string `json:"-" env:"TERMLE_MODE"             env-default:"play"`

	// Path is the settings file this Config was read from and saves to.
	Path string `json:"-"`
}

// Modes selectable with TERMLE_MODE.
const (
	ModePlay        = "play"
	ModeWordStats   = "word-stats"
	ModeExportWords = "export-words"
	ModeHistory     = "history"
)

// settings is the persisted subset of Config.
type settings struct {
	MaxGuesses       int  `json:"max_guesses"`
	HardMode         bool `json:"hard_mode"`
	DarkMode         bool `json:"dark_mode"`
	HighContrastMode bool `json:"high_contrast_mode"`
}

// Load reads configuration from a JSON file and environment variables.
// Priority: ENV > file > defaults (via env-default tags).
// The file path is TERMLE_CONFIG (fallback "termle-config.json"). If the file
// does not exist, configuration is loaded from ENV + defaults only.
func Load() (*Config, error) {
	path := os.Getenv("TERMLE_CONFIG")
	if path == "" {
		path = "termle-config.json"
	}
	return LoadFile(path)
}

// LoadFile is Load with an explicit settings path.
func LoadFile(path string) (*Config, error) {
	var cfg Config

	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	}
	cfg.Path = path

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

// Validate performs rule validation on the loaded configuration.
func (c *Config) Validate() error {
	if c.MaxGuesses < 1 {
		return fmt.Errorf("max_guesses must be >= 1 (got %d)", c.MaxGuesses)
	}
	switch c.Mode {
	case ModePlay, ModeWordStats, ModeExportWords, ModeHistory:
	default:
		return fmt.Errorf("unknown mode %q", c.Mode)
	}
	return nil
}

// Save writes the player settings back to Path.
func (c *Config) Save(ctx context.Context) error {
	if err := c.Validate(); err != nil {
		return fmt.Errorf("config: validate: %w", err)
	}
	data, err := json.MarshalIndent(settings{
		MaxGuesses:       c.MaxGuesses,
		HardMode:         c.HardMode,
		DarkMode:         c.DarkMode,
		HighContrastMode: c.HighContrastMode,
	}, "", "    ")
	if err != nil {
		return err
	}
	if err := store.NewFile(c.Path).Write(ctx, data); err != nil {
		return fmt.Errorf("config: save: %w", err)
	}
	log.Debug().Str("path", c.Path).Msg("settings saved")
	return nil
}
