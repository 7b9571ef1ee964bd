// Package generate assembles the run configuration and drives a single
// generation pass: load inputs, render, write, persist.
package generate

import (
	"github.com/jmylchreest/termcfg/internal/color"
	"github.com/jmylchreest/termcfg/internal/settings"
)

// Overrides holds the values supplied on the command line. A nil field was
// not supplied.
type Overrides struct {
	Red    *int
	Green  *int
	Blue   *int
	Alpha  *float64
	Random bool
}

// RunConfig is exposed to the template under "config".
type RunConfig struct {
	Red   int            `json:"red"`
	Green int            `json:"green"`
	Blue  int            `json:"blue"`
	Extra settings.Extra `json:"extra"`
}

// Assemble builds a RunConfig from the background color, the persisted
// extra settings and the command-line overrides. extra is modified in place
// when an alpha override is supplied. rnd is only used with ov.Random.
func Assemble(bg color.RGB, extra settings.Extra, ov Overrides, rnd *color.Randomizer) *RunConfig {
	if extra == nil {
		extra = settings.DefaultExtra()
	}
	cfg := &RunConfig{
		Red:   bg.R,
		Green: bg.G,
		Blue:  bg.B,
		Extra: extra,
	}

	if ov.Random {
		if rnd == nil {
			rnd = color.DefaultRandomizer()
		}
		rgb := rnd.RGB()
		cfg.Red, cfg.Green, cfg.Blue = rgb.R, rgb.G, rgb.B
	} else {
		if ov.Red != nil {
			cfg.Red = *ov.Red
		}
		if ov.Green != nil {
			cfg.Green = *ov.Green
		}
		if ov.Blue != nil {
			cfg.Blue = *ov.Blue
		}
	}

	if ov.Alpha != nil {
		cfg.Extra.SetAlpha(*ov.Alpha)
	}

	return cfg
}

// Color returns red, green, blue and alpha as one value.
func (c *RunConfig) Color() color.Color {
	return color.Compose(color.RGB{R: c.Red, G: c.Green, B: c.Blue}, c.Extra.Alpha())
}

// SetColor writes all four components back into their fields.
func (c *RunConfig) SetColor(v color.Color) {
	rgb, alpha := v.Decompose()
	c.Red, c.Green, c.Blue = rgb.R, rgb.G, rgb.B
	if c.Extra == nil {
		c.Extra = settings.DefaultExtra()
	}
	c.Extra.SetAlpha(alpha)
}
