// internal/config/config.go
//
// This package handles runtime settings and the .panic-factory directory
// structure. The game keeps its settings and session logs in a dot-folder
// under the user's home directory.

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// AppDir is the name of the directory we create in the user's home.
	AppDir = ".panic-factory"

	// DefaultTickRate is the simulation rate in ticks per second.
	DefaultTickRate = 30

	minTickRate = 1
	maxTickRate = 120
)

const defaultSettingsYAML = `# panic-factory settings
version: 1

# Simulation ticks per second (1-120).
tick_rate: 30

# Random seed. 0 draws a fresh seed every session.
seed: 0

# Suppress all audio cues.
muted: false

# Extra order pack files merged into the built-in catalog.
# Paths are relative to this directory unless absolute.
order_packs: []
`

// Settings models .panic-factory/config.yaml.
type Settings struct {
	Version    int      `yaml:"version"`
	TickRate   int      `yaml:"tick_rate"`
	Seed       int64    `yaml:"seed"`
	Muted      bool     `yaml:"muted"`
	OrderPacks []string `yaml:"order_packs"`
}

// Config holds the resolved runtime configuration for a session.
type Config struct {
	// HomeDir is the directory the dot-folder lives under.
	HomeDir string

	// AppConfigDir is HomeDir/.panic-factory.
	AppConfigDir string

	Settings Settings
}

// InitAppDir creates the .panic-factory directory structure.
//
// Structure created:
// .panic-factory/
// ├── logs/        <- session logs
// └── config.yaml  <- settings (written with defaults on first run)
func InitAppDir(homeDir string) error {
	appDir := filepath.Join(homeDir, AppDir)
	if err := os.MkdirAll(filepath.Join(appDir, "logs"), 0755); err != nil {
		return err
	}
	return ensureSettingsFile(filepath.Join(appDir, "config.yaml"))
}

// NewConfig loads settings for the given home directory, creating the
// dot-folder if needed.
func NewConfig(homeDir string) (*Config, error) {
	if err := InitAppDir(homeDir); err != nil {
		return nil, fmt.Errorf("config: init app dir: %w", err)
	}
	cfg := &Config{
		HomeDir:      homeDir,
		AppConfigDir: filepath.Join(homeDir, AppDir),
		Settings:     defaultSettings(),
	}
	if err := cfg.loadSettings(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LogsDir returns the path to the logs directory.
func (c *Config) LogsDir() string {
	return filepath.Join(c.AppConfigDir, "logs")
}

// SettingsPath returns the on-disk location for the settings file.
func (c *Config) SettingsPath() string {
	return filepath.Join(c.AppConfigDir, "config.yaml")
}

// OrderPacks returns the resolved extra order pack paths.
func (c *Config) OrderPacks() []string {
	return c.Settings.OrderPacks
}

// SetMuted updates the mute flag and persists it.
func (c *Config) SetMuted(muted bool) error {
	c.Settings.Muted = muted
	return c.saveSettings()
}

func (c *Config) loadSettings() error {
	path := c.SettingsPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config: read %s: %w", path, err)
	}

	var parsed Settings
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}

	parsed.applyDefaults()
	parsed.normalize(c.AppConfigDir)
	if err := parsed.validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	c.Settings = parsed
	return nil
}

func (c *Config) saveSettings() error {
	if c == nil {
		return fmt.Errorf("config: nil receiver")
	}
	c.Settings.applyDefaults()
	if err := c.Settings.validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	data, err := yaml.Marshal(c.Settings)
	if err != nil {
		return fmt.Errorf("config: encode settings: %w", err)
	}
	if err := os.MkdirAll(c.AppConfigDir, 0o755); err != nil {
		return fmt.Errorf("config: ensure app dir: %w", err)
	}
	if err := os.WriteFile(c.SettingsPath(), data, 0644); err != nil {
		return fmt.Errorf("config: write settings: %w", err)
	}
	return nil
}

func defaultSettings() Settings {
	return Settings{
		Version:  1,
		TickRate: DefaultTickRate,
	}
}

func (s *Settings) applyDefaults() {
	if s.Version == 0 {
		s.Version = 1
	}
	if s.TickRate == 0 {
		s.TickRate = DefaultTickRate
	}
}

func (s *Settings) normalize(base string) {
	resolved := s.OrderPacks[:0]
	for _, path := range s.OrderPacks {
		if p := resolvePath(base, path); p != "" {
			resolved = append(resolved, p)
		}
	}
	s.OrderPacks = resolved
}

func (s Settings) validate() error {
	if s.Version < 1 {
		return fmt.Errorf("settings version must be >= 1")
	}
	if s.TickRate < minTickRate || s.TickRate > maxTickRate {
		return fmt.Errorf("tick_rate must be between %d and %d, got %d", minTickRate, maxTickRate, s.TickRate)
	}
	return nil
}

func resolvePath(base, candidate string) string {
	trimmed := strings.TrimSpace(candidate)
	if trimmed == "" {
		return ""
	}
	if filepath.IsAbs(trimmed) {
		return filepath.Clean(trimmed)
	}
	return filepath.Clean(filepath.Join(base, trimmed))
}

func ensureSettingsFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return os.WriteFile(path, []byte(defaultSettingsYAML), 0644)
}
