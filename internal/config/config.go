// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/javiermolinar/rutina/internal/dateutil"
)

// Config holds the application configuration.
type Config struct {
	Durations DurationsConfig `toml:"durations"`
	Limits    LimitsConfig    `toml:"limits"`
	Schedule  ScheduleConfig  `toml:"schedule"`
	Storage   StorageConfig   `toml:"storage"`
	UI        UIConfig        `toml:"ui"`
}

// DurationsConfig holds the fixed per-activity durations, in minutes,
// used when building the daily template.
type DurationsConfig struct {
	Breakfast      int `toml:"breakfast"`
	Dinner         int `toml:"dinner"`
	Jogging        int `toml:"jogging"`
	Meditation     int `toml:"meditation"`
	Reading        int `toml:"reading"`
	MorningDefault int `toml:"morning_default"` // any other morning habit
	EveningDefault int `toml:"evening_default"` // any other evening habit
}

// LimitsConfig constrains manually added tasks.
type LimitsConfig struct {
	MinTaskMinutes int `toml:"min_task_minutes"`
	MaxTaskMinutes int `toml:"max_task_minutes"`
}

// ScheduleConfig holds normalization policy settings.
type ScheduleConfig struct {
	EarlyCutoff         string `toml:"early_cutoff"`          // clocks before this may roll to next day
	LateCutoff          string `toml:"late_cutoff"`           // ...when entered after this
	RespectFixedAnchors bool   `toml:"respect_fixed_anchors"` // fixed tasks become immovable anchors
}

// StorageConfig holds database settings.
type StorageConfig struct {
	DBPath string `toml:"db_path"`
}

// UIConfig holds dashboard settings.
type UIConfig struct {
	Theme string `toml:"theme"` // "green", "mono"
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Durations: DurationsConfig{
			Breakfast:      20,
			Dinner:         60,
			Jogging:        30,
			Meditation:     20,
			Reading:        45,
			MorningDefault: 20,
			EveningDefault: 30,
		},
		Limits: LimitsConfig{
			MinTaskMinutes: 5,
			MaxTaskMinutes: 600,
		},
		Schedule: ScheduleConfig{
			EarlyCutoff:         "04:00",
			LateCutoff:          "20:00",
			RespectFixedAnchors: false,
		},
		Storage: StorageConfig{
			DBPath: defaultDBPath(),
		},
		UI: UIConfig{
			Theme: "green",
		},
	}
}

// defaultDBPath returns the default database path.
func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "rutina.db"
	}
	return filepath.Join(home, ".local", "share", "rutina", "rutina.db")
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "rutina", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)

	cfg.Storage.DBPath = expandPath(cfg.Storage.DBPath)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // File doesn't exist, use defaults
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("RUTINA_EARLY_CUTOFF"); v != "" {
		cfg.Schedule.EarlyCutoff = v
	}
	if v := os.Getenv("RUTINA_LATE_CUTOFF"); v != "" {
		cfg.Schedule.LateCutoff = v
	}
	if v := os.Getenv("RUTINA_RESPECT_FIXED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Schedule.RespectFixedAnchors = b
		}
	}
	if v := os.Getenv("RUTINA_DB_PATH"); v != "" {
		cfg.Storage.DBPath = v
	}
	if v := os.Getenv("RUTINA_UI_THEME"); v != "" {
		cfg.UI.Theme = v
	}
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	for field, v := range map[string]int{
		"breakfast":       c.Durations.Breakfast,
		"dinner":          c.Durations.Dinner,
		"jogging":         c.Durations.Jogging,
		"meditation":      c.Durations.Meditation,
		"reading":         c.Durations.Reading,
		"morning_default": c.Durations.MorningDefault,
		"evening_default": c.Durations.EveningDefault,
	} {
		if v <= 0 {
			return fmt.Errorf("durations.%s must be positive, got %d", field, v)
		}
	}

	if c.Limits.MinTaskMinutes < 1 {
		return errors.New("min_task_minutes must be at least 1")
	}
	if c.Limits.MaxTaskMinutes < c.Limits.MinTaskMinutes {
		return errors.New("max_task_minutes must be >= min_task_minutes")
	}

	if err := dateutil.ValidateClock(c.Schedule.EarlyCutoff); err != nil {
		return fmt.Errorf("early_cutoff: %w", err)
	}
	if err := dateutil.ValidateClock(c.Schedule.LateCutoff); err != nil {
		return fmt.Errorf("late_cutoff: %w", err)
	}
	if c.Schedule.EarlyCutoff >= c.Schedule.LateCutoff {
		return errors.New("early_cutoff must be before late_cutoff")
	}

	if c.Storage.DBPath == "" {
		return errors.New("db_path must be set")
	}
	return nil
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigPath())
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
