// Package render loads the terminal config template and renders it.
package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/jmylchreest/termcfg/internal/color"
)

// DefaultPath is the template file name, relative to the working directory.
const DefaultPath = "alacritty.yml.tmpl"

// ConfigKey is the top-level name the run configuration is exposed under.
const ConfigKey = "config"

// Template is a parsed config template.
type Template struct {
	Path string
	tmpl *template.Template
}

// Load reads and parses a template file.
func Load(path string) (*Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read template: %w", err)
	}
	return Parse(path, string(data))
}

// Parse parses template source. The name is used in error messages.
func Parse(name, src string) (*Template, error) {
	tmpl, err := template.New(name).
		Funcs(templateFuncs()).
		Option("missingkey=zero").
		Parse(src)
	if err != nil {
		return nil, fmt.Errorf("parse template %q: %w", name, err)
	}
	return &Template{Path: name, tmpl: tmpl}, nil
}

// Data builds the template data: every font key at the top level, plus
// the run configuration under ConfigKey. ConfigKey wins on collision.
func Data(config any, font map[string]any) map[string]any {
	data := make(map[string]any, len(font)+1)
	for key, value := range font {
		data[key] = value
	}
	data[ConfigKey] = config
	return data
}

// Execute renders the template to w.
func (t *Template) Execute(w io.Writer, data map[string]any) error {
	if err := t.tmpl.Execute(w, data); err != nil {
		return fmt.Errorf("render template %q: %w", t.Path, err)
	}
	return nil
}

// Render renders the template into a byte slice. Nothing is returned
// on error.
func (t *Template) Render(data map[string]any) ([]byte, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type hexer interface {
	Hex() string
}

type colorer interface {
	Color() color.Color
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"hex":     hexValue,
		"alpha":   alphaValue,
		"default": defaultValue,
		"toJSON":  toJSON,
	}
}

func hexValue(v any) (string, error) {
	switch c := v.(type) {
	case hexer:
		return c.Hex(), nil
	case int:
		return fmt.Sprintf("#%06x", c&0xFFFFFF), nil
	default:
		return "", fmt.Errorf("hex: unsupported value %T", v)
	}
}

// alphaValue accepts a color.Color, anything with a Color method (the run
// config), or a plain number.
func alphaValue(v any) (float64, error) {
	switch c := v.(type) {
	case color.Color:
		return c.A, nil
	case colorer:
		return c.Color().A, nil
	case float64:
		return c, nil
	case int:
		return float64(c), nil
	default:
		return 0, fmt.Errorf("alpha: unsupported value %T", v)
	}
}

func defaultValue(def any, value any) any {
	if value == nil {
		return def
	}
	if s, ok := value.(string); ok && strings.TrimSpace(s) == "" {
		return def
	}
	return value
}

func toJSON(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
