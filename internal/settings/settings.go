// Package settings persists the extra, non-color settings carried across runs.
package settings

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultPath is the settings file name, relative to the working directory.
const DefaultPath = "extra.json"

// DefaultAlpha is used when no alpha has been persisted.
const DefaultAlpha = 1.0

// AlphaKey is the key holding the background opacity.
const AlphaKey = "alpha"

// Extra is a freeform settings object. It always contains AlphaKey once
// returned from Load or DefaultExtra.
type Extra map[string]any

// DefaultExtra returns {"alpha": 1.0}.
func DefaultExtra() Extra {
	return Extra{AlphaKey: DefaultAlpha}
}

// Alpha returns the alpha value, or DefaultAlpha if it is absent or not a number.
func (e Extra) Alpha() float64 {
	switch v := e[AlphaKey].(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case json.Number:
		if f, err := v.Float64(); err == nil {
			return f
		}
	}
	return DefaultAlpha
}

// SetAlpha overwrites the alpha value.
func (e Extra) SetAlpha(alpha float64) {
	e[AlphaKey] = alpha
}

// File manages the settings file on disk.
type File struct {
	path string
}

// NewFile creates a File for the given path.
func NewFile(path string) *File {
	if path == "" {
		path = DefaultPath
	}
	return &File{path: path}
}

// Path returns the file path.
func (f *File) Path() string {
	return f.path
}

// Load reads the settings file. On any failure it returns DefaultExtra
// along with the error, so callers can warn and carry on.
func (f *File) Load() (Extra, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return DefaultExtra(), err
	}

	var extra Extra
	if err := json.Unmarshal(data, &extra); err != nil {
		return DefaultExtra(), fmt.Errorf("failed to parse %s: %w", f.path, err)
	}
	// "null" decodes without error into a nil map
	if extra == nil {
		return DefaultExtra(), fmt.Errorf("failed to parse %s: not a JSON object", f.path)
	}
	if _, ok := extra[AlphaKey]; !ok {
		extra[AlphaKey] = DefaultAlpha
	}

	return extra, nil
}

// Save writes the settings, replacing any previous contents.
func (f *File) Save(extra Extra) error {
	// Ensure parent directory exists
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.Marshal(extra)
	if err != nil {
		return err
	}

	return os.WriteFile(f.path, data, 0644)
}
