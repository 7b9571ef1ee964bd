// Package color provides the RGB and RGBA values handed to templates.
package color

import "fmt"

// RGB holds three 8-bit channel values. Values are not range checked;
// overrides pass through untouched.
type RGB struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

// Color is an RGB value plus a separate alpha, consumed as one unit.
type Color struct {
	R int     `json:"r"`
	G int     `json:"g"`
	B int     `json:"b"`
	A float64 `json:"alpha"`
}

// HexToRGB splits a 24-bit integer into its channels.
// Bits above 0xFFFFFF are discarded.
func HexToRGB(c int) RGB {
	return RGB{
		R: (c & 0xFF0000) >> 16,
		G: (c & 0x00FF00) >> 8,
		B: c & 0x0000FF,
	}
}

// Compose joins channels and alpha into a Color.
func Compose(rgb RGB, alpha float64) Color {
	return Color{R: rgb.R, G: rgb.G, B: rgb.B, A: alpha}
}

// Decompose splits a Color back into channels and alpha.
func (c Color) Decompose() (RGB, float64) {
	return RGB{R: c.R, G: c.G, B: c.B}, c.A
}

// RGB returns the color without alpha.
func (c Color) RGB() RGB {
	return RGB{R: c.R, G: c.G, B: c.B}
}

// Hex formats the channels as #rrggbb, masking each to 8 bits.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R&0xFF, c.G&0xFF, c.B&0xFF)
}

// Hex formats the color as #rrggbb; alpha is not included.
func (c Color) Hex() string {
	return c.RGB().Hex()
}

// String renders the color as "r, g, b, a".
func (c Color) String() string {
	return fmt.Sprintf("%d, %d, %d, %g", c.R, c.G, c.B, c.A)
}
