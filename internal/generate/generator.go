package generate

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"

	"github.com/jmylchreest/termcfg/internal/color"
	"github.com/jmylchreest/termcfg/internal/fontconfig"
	"github.com/jmylchreest/termcfg/internal/palette"
	"github.com/jmylchreest/termcfg/internal/render"
	"github.com/jmylchreest/termcfg/internal/settings"
)

// Options configures a Generator.
type Options struct {
	XdefaultsPath  string
	FontConfigPath string
	TemplatePath   string
	ExtraPath      string

	// OutputPath receives the rendered config. Empty means Stdout.
	OutputPath string
	Stdout     io.Writer

	Overrides  Overrides
	Randomizer *color.Randomizer
	Logger     *slog.Logger
}

// Result describes a completed generation pass.
type Result struct {
	Palette  palette.Palette
	Config   *RunConfig
	Rendered []byte
}

// Generator runs generation passes.
type Generator struct {
	opts   Options
	logger *slog.Logger
}

// New creates a Generator, filling in default paths.
func New(opts Options) *Generator {
	if opts.XdefaultsPath == "" {
		opts.XdefaultsPath = palette.DefaultPath()
	}
	if opts.FontConfigPath == "" {
		opts.FontConfigPath = fontconfig.DefaultPath()
	}
	if opts.TemplatePath == "" {
		opts.TemplatePath = render.DefaultPath
	}
	if opts.ExtraPath == "" {
		opts.ExtraPath = settings.DefaultPath
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Generator{opts: opts, logger: logger}
}

// Options returns the resolved options.
func (g *Generator) Options() Options {
	return g.opts
}

// WatchedPaths returns the input files whose changes should trigger a rerun.
func (g *Generator) WatchedPaths() []string {
	return []string{g.opts.XdefaultsPath, g.opts.FontConfigPath, g.opts.TemplatePath}
}

// Run performs one pass. The theme, template and font config are required;
// a failure on any of them returns before anything is written.
func (g *Generator) Run() (*Result, error) {
	pal, err := palette.Load(g.opts.XdefaultsPath)
	if err != nil {
		return nil, err
	}
	bgHex, err := pal.Background()
	if err != nil {
		return nil, err
	}
	bg := color.HexToRGB(bgHex)
	g.logger.Debug("loaded palette", "path", pal.Path, "slots", pal.Len(), "background", bg.Hex())

	store := settings.NewFile(g.opts.ExtraPath)
	extra, err := store.Load()
	if err != nil {
		g.logger.Warn("couldn't load extra settings, using defaults", "path", store.Path(), "error", err)
	} else if info, statErr := os.Stat(store.Path()); statErr == nil {
		g.logger.Debug("loaded extra settings", "path", store.Path(), "saved", humanize.Time(info.ModTime()))
	}

	cfg := Assemble(bg, extra, g.opts.Overrides, g.opts.Randomizer)
	g.logger.Debug("assembled config", "color", cfg.Color().String(), "random", g.opts.Overrides.Random)

	tmpl, err := render.Load(g.opts.TemplatePath)
	if err != nil {
		return nil, err
	}

	font, err := fontconfig.Load(g.opts.FontConfigPath)
	if err != nil {
		return nil, err
	}

	out, err := tmpl.Render(render.Data(cfg, font))
	if err != nil {
		return nil, err
	}

	if err := g.write(out); err != nil {
		return nil, err
	}
	g.logger.Debug("rendered config", "template", tmpl.Path, "size", humanize.Bytes(uint64(len(out))))

	if err := store.Save(cfg.Extra); err != nil {
		return nil, fmt.Errorf("failed to save extra settings: %w", err)
	}

	return &Result{Palette: pal, Config: cfg, Rendered: out}, nil
}

func (g *Generator) write(out []byte) error {
	if g.opts.OutputPath == "" {
		_, err := g.opts.Stdout.Write(out)
		return err
	}

	if err := os.MkdirAll(filepath.Dir(g.opts.OutputPath), 0755); err != nil {
		return err
	}
	if err := os.WriteFile(g.opts.OutputPath, out, 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
