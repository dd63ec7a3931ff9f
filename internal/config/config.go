package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/xolan/timewext/internal/osutil"
)

const (
	// AppName is the application name used for config directory
	AppName = "timewext"
	// ConfigFile is the name of the TOML configuration file
	ConfigFile = "config.toml"
)

// Color modes for styled output.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config represents the application configuration
type Config struct {
	// CttCommand is the executable invoked to record exported intervals
	CttCommand string `toml:"ctt_command"`
	// Timezone for ctt timestamps: "UTC" keeps Timewarrior's clock reading,
	// "Local" or an IANA name (e.g. "Europe/Berlin") converts first
	Timezone string `toml:"timezone"`
	// Color controls transcript styling: auto, always or never
	Color string `toml:"color"`
}

// DefaultConfig returns a Config with sensible defaults.
// - ctt_command: "ctt" (resolved through PATH)
// - timezone: "UTC" (no conversion)
// - color: "auto" (style only when writing to a terminal)
func DefaultConfig() Config {
	return Config{
		CttCommand: "ctt",
		Timezone:   "UTC",
		Color:      ColorAuto,
	}
}

// Normalize trims values and lowercases the color mode.
func (c *Config) Normalize() {
	c.CttCommand = strings.TrimSpace(c.CttCommand)
	c.Timezone = strings.TrimSpace(c.Timezone)
	c.Color = strings.ToLower(strings.TrimSpace(c.Color))
}

// Validate checks that every field holds a usable value.
func (c Config) Validate() error {
	if c.CttCommand == "" {
		return errors.New("invalid ctt_command: must not be empty")
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil || c.Timezone == "" {
		return fmt.Errorf("invalid timezone %q: use \"UTC\", \"Local\" or an IANA name like \"Europe/Berlin\"", c.Timezone)
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("invalid color %q: must be one of auto, always, never", c.Color)
	}
	return nil
}

// Location returns the timezone used for ctt timestamps.
// Validate must have succeeded first.
func (c Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Load reads the TOML file at path on top of the defaults.
// Fields missing from the file keep their default values.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return cfg, nil
}

// LoadOrDefault loads the config at path, returning defaults when the file
// does not exist. An existing but invalid file is still an error.
func LoadOrDefault(path string) (Config, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	return Load(path)
}

// GetConfigPath returns the path to the config file.
// Uses the user config directory and creates the app directory if needed.
func GetConfigPath() (string, error) {
	configDir, err := osutil.Provider.UserConfigDir()
	if err != nil {
		return "", err
	}

	appDir := filepath.Join(configDir, AppName)

	if err := osutil.Provider.MkdirAll(appDir, 0755); err != nil {
		return "", err
	}

	return filepath.Join(appDir, ConfigFile), nil
}
