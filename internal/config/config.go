// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"shadbala/internal/errors"
	"shadbala/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Calculation contains calculation-related settings
	Calculation CalculationConfig `json:"calculation"`

	// Output contains output configuration
	Output OutputConfig `json:"output"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// CalculationConfig contains calculation-related settings
type CalculationConfig struct {
	// ObliquityDegrees is the obliquity of the ecliptic used by Ayana Bala
	ObliquityDegrees float64 `json:"obliquity_degrees"`

	// YuddhaStrategy selects the planetary-war winner rule
	// (latitude, declination)
	YuddhaStrategy string `json:"yuddha_strategy"`

	// WarOrbDegrees is the conjunction orb for planetary war detection
	WarOrbDegrees float64 `json:"war_orb_degrees"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// DefaultFormat is the default output format (table, json)
	DefaultFormat string `json:"default_format"`

	// ShowBreakdown includes per-sub-term breakdowns in output
	ShowBreakdown bool `json:"show_breakdown"`
}

// Default returns the default configuration
func Default() Config {
	return Config{
		Version: "1",
		Calculation: CalculationConfig{
			ObliquityDegrees: 23.43929111,
			YuddhaStrategy:   "latitude",
			WarOrbDegrees:    1.0,
		},
		Output: OutputConfig{
			DefaultFormat: "table",
			ShowBreakdown: false,
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load reads configuration from a file, filling defaults for absent fields
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Config("failed to read config file", err)
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Config("failed to parse config file", err)
	}

	return cfg, nil
}

// DefaultPath returns the default config file location
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".shadbala.json"
	}
	return filepath.Join(home, ".shadbala.json")
}

var (
	current Config = Default()
	mu      sync.RWMutex
)

// Get returns the active configuration
func Get() Config {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// Set replaces the active configuration
func Set(cfg Config) {
	mu.Lock()
	defer mu.Unlock()
	current = cfg
}
