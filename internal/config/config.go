package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Environment variables that override values read from the YAML file.
const (
	EnvTimezone = "EVTSCHED_TIMEZONE"
	EnvLogLevel = "EVTSCHED_LOG_LEVEL"
)

const (
	defaultTimezone        = "Local"
	defaultLogLevel        = "info"
	defaultInitialCapacity = 4
	defaultGrowthIncrement = 4
	defaultMinDuration     = 30
	defaultMaxDuration     = 120
	defaultICSProdID       = "-//evtsched//Event Organizer//EN"
)

// Config is the top-level application configuration.
type Config struct {
	// Timezone is the IANA zone that decides what "today" is for the
	// booking window, and the zone exported slot times are written in.
	// "Local" uses the host zone.
	Timezone string `yaml:"timezone"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// InitialCapacity and GrowthIncrement size the in-memory event store.
	InitialCapacity int `yaml:"initial_capacity"`
	GrowthIncrement int `yaml:"growth_increment"`

	// MinDurationMinutes and MaxDurationMinutes bound event length, inclusive.
	MinDurationMinutes int `yaml:"min_duration_minutes"`
	MaxDurationMinutes int `yaml:"max_duration_minutes"`

	// ICSProdID is the PRODID written by the PI command.
	ICSProdID string `yaml:"ics_prodid"`
}

// DefaultConfig returns an in-memory default configuration.
func DefaultConfig() *Config {
	return &Config{
		Timezone:           defaultTimezone,
		LogLevel:           defaultLogLevel,
		InitialCapacity:    defaultInitialCapacity,
		GrowthIncrement:    defaultGrowthIncrement,
		MinDurationMinutes: defaultMinDuration,
		MaxDurationMinutes: defaultMaxDuration,
		ICSProdID:          defaultICSProdID,
	}
}

// Normalize fills in missing/zero values with defaults so that partially
// filled files still behave correctly.
func (c *Config) Normalize() {
	if c.Timezone == "" {
		c.Timezone = defaultTimezone
	}
	if c.LogLevel == "" {
		c.LogLevel = defaultLogLevel
	}
	if c.InitialCapacity <= 0 {
		c.InitialCapacity = defaultInitialCapacity
	}
	if c.GrowthIncrement <= 0 {
		c.GrowthIncrement = defaultGrowthIncrement
	}
	if c.MinDurationMinutes <= 0 {
		c.MinDurationMinutes = defaultMinDuration
	}
	if c.MaxDurationMinutes <= 0 {
		c.MaxDurationMinutes = defaultMaxDuration
	}
	// An inverted range would reject every booking; fall back to defaults.
	if c.MinDurationMinutes > c.MaxDurationMinutes {
		c.MinDurationMinutes = defaultMinDuration
		c.MaxDurationMinutes = defaultMaxDuration
	}
	if c.ICSProdID == "" {
		c.ICSProdID = defaultICSProdID
	}
}

// ApplyEnv overrides file values with EVTSCHED_* environment variables.
func (c *Config) ApplyEnv() {
	if v := strings.TrimSpace(os.Getenv(EnvTimezone)); v != "" {
		c.Timezone = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		c.LogLevel = v
	}
}

// Location resolves Timezone.
func (c *Config) Location() (*time.Location, error) {
	switch c.Timezone {
	case "", defaultTimezone:
		return time.Local, nil
	default:
		loc, err := time.LoadLocation(c.Timezone)
		if err != nil {
			return nil, fmt.Errorf("config: timezone %q: %w", c.Timezone, err)
		}
		return loc, nil
	}
}

// Load loads configuration from the given YAML path.
//
// Behavior:
//   - If path is empty, the defaults are returned and nothing is written.
//   - If the file does not exist:
//   - create parent directory if needed
//   - write a default config with 0600 perms
//   - return the default config
//   - If the file exists:
//   - read YAML and unmarshal into Config
//   - normalize defaults
func Load(path string) (*Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			// First run: create default config file.
			cfg := DefaultConfig()
			if err := Save(path, cfg); err != nil {
				// Even if save fails, return cfg with error so caller can decide.
				return cfg, err
			}
			return cfg, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	cfg.Normalize()

	return &cfg, nil
}

// Save writes the given configuration to the specified path.
//
// Implementation details:
//   - Ensures parent directory exists (0700).
//   - Marshals cfg to YAML.
//   - Writes atomically via a temp file + rename.
//   - Ensures final file permissions are 0600.
func Save(path string, cfg *Config) error {
	if path == "" {
		return errors.New("config path is empty")
	}
	if cfg == nil {
		return errors.New("config is nil")
	}

	cfg.Normalize()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".evtsched-config-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	// No-op once the rename has happened.
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	if err := os.Chmod(tmpName, 0o600); err != nil {
		return err
	}

	return os.Rename(tmpName, path)
}

// Save is a convenience method on Config that delegates to the package-level
// Save function.
func (c *Config) Save(path string) error {
	return Save(path, c)
}
