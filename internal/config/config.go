// Package config handles configuration file loading and parsing.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Default locations of the files read from the working directory.
const (
	DefaultTemplate = "alacritty.yml.tmpl"
	DefaultExtra    = "extra.json"
)

// Config represents the termcfg configuration.
type Config struct {
	Paths  PathsConfig  `toml:"paths"`
	Random RandomConfig `toml:"random"`
}

// PathsConfig holds the input and output file locations.
type PathsConfig struct {
	Xdefaults  string `toml:"xdefaults"`   // Base16 #define file
	FontConfig string `toml:"font_config"` // JSON or YAML font settings
	Template   string `toml:"template"`    // Relative to the working directory
	Extra      string `toml:"extra"`       // Persisted extra settings
	Output     string `toml:"output"`      // Empty = stdout
}

// RandomConfig holds options for --random.
type RandomConfig struct {
	Seed uint64 `toml:"seed"` // 0 = seed from the runtime
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Paths: PathsConfig{
			Xdefaults:  "~/.Xdefaults",
			FontConfig: "~/.font/config.json",
			Template:   DefaultTemplate,
			Extra:      DefaultExtra,
		},
	}
}

// ConfigPath returns the path to the config file.
// Uses XDG_CONFIG_HOME if set, otherwise ~/.config.
func ConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "termcfg", "config.toml")
}

// LoadConfig loads configuration from the specified path.
// If path is empty, uses the default config path.
// Returns default config if file doesn't exist.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = ConfigPath()
	}

	// Start with defaults
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Resolved returns a copy of the paths with "~" expanded.
func (p PathsConfig) Resolved() PathsConfig {
	return PathsConfig{
		Xdefaults:  ExpandPath(p.Xdefaults),
		FontConfig: ExpandPath(p.FontConfig),
		Template:   ExpandPath(p.Template),
		Extra:      ExpandPath(p.Extra),
		Output:     ExpandPath(p.Output),
	}
}

// ExpandPath replaces a leading "~" with the user's home directory.
func ExpandPath(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
