package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	DBPath    string `toml:"db_path"`
	BabyName  string `toml:"baby_name"`
	BirthDate string `toml:"birth_date"` // YYYY-MM-DD
	Sender    string `toml:"sender"`     // default sender for manual entries
}

func Load() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		DBPath: filepath.Join(home, ".config", "babylog", "babylog.db"),
	}

	cfgPath := filepath.Join(home, ".config", "babylog", "config.toml")
	if _, err := os.Stat(cfgPath); err == nil {
		if _, err := toml.DecodeFile(cfgPath, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", cfgPath, err)
		}
	}

	cfg.DBPath = expandHome(cfg.DBPath, home)

	return cfg, nil
}

// Birth parses the configured birth date; ok is false when unset or
// malformed.
func (c *Config) Birth() (time.Time, bool) {
	if c.BirthDate == "" {
		return time.Time{}, false
	}
	t, err := time.Parse("2006-01-02", c.BirthDate)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// AgeDays returns the baby's age in days as of now.
func AgeDays(birth, now time.Time) int {
	return int(now.Sub(birth).Hours() / 24)
}

// AgeMonths returns the baby's age in months, using the mean month length.
func AgeMonths(birth, now time.Time) float64 {
	return float64(AgeDays(birth, now)) / 30.44
}

func expandHome(path, home string) string {
	if len(path) > 1 && path[0] == '~' && path[1] == '/' {
		return filepath.Join(home, path[2:])
	}
	return path
}
