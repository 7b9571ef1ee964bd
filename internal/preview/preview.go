// Package preview prints palette swatches to a terminal.
package preview

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jmylchreest/termcfg/internal/color"
	"github.com/jmylchreest/termcfg/internal/palette"
)

var (
	labelStyle = lipgloss.NewStyle().Width(8)
	hexStyle   = lipgloss.NewStyle().Faint(true)
)

func swatch(hex string) string {
	return lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("    ")
}

// Palette renders one row per Base16 slot, in Base16 order. Undefined
// slots are shown as "-".
func Palette(p palette.Palette) string {
	var sb strings.Builder
	for _, name := range palette.Base16Names {
		hex, ok := p.Get(name)
		if !ok {
			sb.WriteString(labelStyle.Render(name) + " -\n")
			continue
		}
		sb.WriteString(labelStyle.Render(name) + " " + swatch(hex) + " " + hexStyle.Render(hex) + "\n")
	}
	return sb.String()
}

// Color renders the generated background color and alpha.
func Color(c color.Color) string {
	return fmt.Sprintf("%s %s %s\n",
		labelStyle.Render("result"),
		swatch(c.Hex()),
		hexStyle.Render(fmt.Sprintf("%s alpha=%g", c.Hex(), c.A)))
}

// Write prints the palette followed by the generated color.
func Write(w io.Writer, p palette.Palette, c color.Color) error {
	_, err := io.WriteString(w, Palette(p)+Color(c))
	return err
}
