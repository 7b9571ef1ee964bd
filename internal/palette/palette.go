package palette

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// defineRegex matches "#define base00 #1a1b26" style directives.
var defineRegex = regexp.MustCompile(`^#define (base.*) (#.*)$`)

// BackgroundSlot is the palette slot used as the default background color.
const BackgroundSlot = "base00"

// Base16Names lists the sixteen conventional Base16 slot names in order.
var Base16Names = []string{
	"base00", "base01", "base02", "base03",
	"base04", "base05", "base06", "base07",
	"base08", "base09", "base0A", "base0B",
	"base0C", "base0D", "base0E", "base0F",
}

// ErrSlotNotFound is returned when a requested slot is not defined.
var ErrSlotNotFound = errors.New("palette slot not defined")

// Palette maps slot names to their hex color strings as written in the
// source file. A Palette is not modified after Load returns it.
type Palette struct {
	Path   string
	colors map[string]string
}

// DefaultPath returns the path to the user's ~/.Xdefaults file.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".Xdefaults"
	}
	return filepath.Join(home, ".Xdefaults")
}

// Load reads a defaults file and collects every "#define base..." directive.
// Lines that don't match are ignored.
func Load(path string) (Palette, error) {
	f, err := os.Open(path)
	if err != nil {
		return Palette{}, fmt.Errorf("failed to open theme defaults: %w", err)
	}
	defer func() { _ = f.Close() }()

	colors := make(map[string]string)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		match := defineRegex.FindStringSubmatch(strings.TrimSpace(scanner.Text()))
		if match == nil {
			continue
		}
		colors[match[1]] = match[2]
	}
	if err := scanner.Err(); err != nil {
		return Palette{}, fmt.Errorf("failed to read theme defaults %s: %w", path, err)
	}

	return Palette{Path: path, colors: colors}, nil
}

// Get returns the raw value of a slot, e.g. "#1a1b26".
func (p Palette) Get(name string) (string, bool) {
	v, ok := p.colors[name]
	return v, ok
}

// Len returns the number of defined slots.
func (p Palette) Len() int {
	return len(p.colors)
}

// Names returns the defined slot names in sorted order.
func (p Palette) Names() []string {
	names := make([]string, 0, len(p.colors))
	for name := range p.colors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Int returns a slot's value parsed as a 24-bit integer.
func (p Palette) Int(name string) (int, error) {
	v, ok := p.colors[name]
	if !ok {
		return 0, fmt.Errorf("%s: %w", name, ErrSlotNotFound)
	}
	n, err := strconv.ParseInt(strings.TrimPrefix(v, "#"), 16, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid color %q for %s: %w", v, name, err)
	}
	return int(n), nil
}

// Background returns the base00 slot as an integer color.
func (p Palette) Background() (int, error) {
	return p.Int(BackgroundSlot)
}
