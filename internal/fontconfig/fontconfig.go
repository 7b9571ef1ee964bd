// Package fontconfig loads the user's font settings. The file's contents are
// not validated; every top-level key is handed to the template as-is.
package fontconfig

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the decoded font configuration.
type Config map[string]any

// ErrNotObject is returned when the file's top level is not a mapping.
var ErrNotObject = errors.New("font config must be an object")

// DefaultPath returns ~/.font/config.json.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".font", "config.json")
	}
	return filepath.Join(home, ".font", "config.json")
}

// Load reads a font config. Files ending in .yaml or .yml are decoded as
// YAML, everything else as JSON.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read font config: %w", err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		err = json.Unmarshal(data, &cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse font config %s: %w", path, err)
	}
	if cfg == nil {
		return nil, fmt.Errorf("%s: %w", path, ErrNotObject)
	}

	return cfg, nil
}
