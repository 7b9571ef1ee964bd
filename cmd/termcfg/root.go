package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/termcfg/internal/color"
	"github.com/jmylchreest/termcfg/internal/config"
	"github.com/jmylchreest/termcfg/internal/generate"
	"github.com/jmylchreest/termcfg/internal/preview"
	"github.com/jmylchreest/termcfg/internal/watch"
)

// Build-time variables (set via ldflags)
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

// rootOptions holds every flag value.
type rootOptions struct {
	// Color overrides
	red    int
	green  int
	blue   int
	alpha  float64
	random bool
	seed   uint64

	// Paths
	configPath     string
	xdefaultsPath  string
	fontConfigPath string
	templatePath   string
	extraPath      string
	outputPath     string

	verbose     bool
	showPreview bool
	watch       bool
}

var (
	opts   rootOptions
	logger *slog.Logger
)

// rootCmd represents the base command; termcfg has no subcommands.
var rootCmd = &cobra.Command{
	Use:   "termcfg",
	Short: "Generate a terminal emulator config from your Base16 theme",
	Long: `termcfg renders a terminal emulator config template using the Base16
background color from ~/.Xdefaults, your font settings from
~/.font/config.json and the extra settings persisted in ./extra.json.

The rendered config is printed to stdout.

Examples:
  # Render with the theme background
  termcfg > ~/.config/alacritty/alacritty.yml

  # Override the background and opacity
  termcfg -r 10 -g 20 -b 30 -a 0.8

  # Pick a random dark background
  termcfg --random`,
	Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildTime),
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogger(cmd.ErrOrStderr())
	},
	RunE: runGenerate,
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	bindFlags(rootCmd, &opts)
}

func bindFlags(cmd *cobra.Command, o *rootOptions) {
	flags := cmd.Flags()

	flags.IntVarP(&o.red, "red", "r", 0, "Red channel override (default: theme background)")
	flags.IntVarP(&o.green, "green", "g", 0, "Green channel override (default: theme background)")
	flags.IntVarP(&o.blue, "blue", "b", 0, "Blue channel override (default: theme background)")
	flags.Float64VarP(&o.alpha, "alpha", "a", 0, "Alpha override, persisted to the extra settings file")
	flags.BoolVarP(&o.random, "random", "R", false, "Randomize red, green and blue (ignores -r/-g/-b)")
	flags.Uint64Var(&o.seed, "seed", 0, "Seed for --random (0 = random seed)")

	flags.StringVar(&o.configPath, "config", "",
		"Path to config file (default: ~/.config/termcfg/config.toml)")
	flags.StringVar(&o.xdefaultsPath, "xdefaults", "",
		"Path to the Base16 defaults file (default: ~/.Xdefaults)")
	flags.StringVar(&o.fontConfigPath, "font-config", "",
		"Path to the font config, JSON or YAML (default: ~/.font/config.json)")
	flags.StringVar(&o.templatePath, "template", "",
		"Path to the config template (default: ./alacritty.yml.tmpl)")
	flags.StringVar(&o.extraPath, "extra", "",
		"Path to the extra settings file (default: ./extra.json)")
	flags.StringVarP(&o.outputPath, "output", "o", "",
		"Write the rendered config to a file instead of stdout")

	flags.BoolVarP(&o.verbose, "verbose", "v", false, "Enable verbose logging")
	flags.BoolVar(&o.showPreview, "preview", false, "Print palette swatches to stderr")
	flags.BoolVar(&o.watch, "watch", false, "Regenerate whenever an input file changes (requires --output)")
}

// setupLogger configures the global slog logger to write to w.
func setupLogger(w io.Writer) {
	level := slog.LevelWarn
	if opts.verbose {
		level = slog.LevelDebug
	}

	// Log to stderr so stdout is clean for output
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	logger = slog.New(handler)
	slog.SetDefault(logger)
}

// overrides collects the color overrides that were actually supplied.
func overrides(cmd *cobra.Command, o *rootOptions) generate.Overrides {
	flags := cmd.Flags()
	ov := generate.Overrides{Random: o.random}
	if flags.Changed("red") {
		ov.Red = &o.red
	}
	if flags.Changed("green") {
		ov.Green = &o.green
	}
	if flags.Changed("blue") {
		ov.Blue = &o.blue
	}
	if flags.Changed("alpha") {
		ov.Alpha = &o.alpha
	}
	return ov
}

// resolvePaths layers flag values over the config file.
func resolvePaths(cfg *config.Config, o *rootOptions) config.PathsConfig {
	p := cfg.Paths
	for _, f := range []struct {
		flag string
		dst  *string
	}{
		{o.xdefaultsPath, &p.Xdefaults},
		{o.fontConfigPath, &p.FontConfig},
		{o.templatePath, &p.Template},
		{o.extraPath, &p.Extra},
		{o.outputPath, &p.Output},
	} {
		if f.flag != "" {
			*f.dst = f.flag
		}
	}
	return p.Resolved()
}

func randomizer(cfg *config.Config, o *rootOptions) *color.Randomizer {
	seed := cfg.Random.Seed
	if o.seed != 0 {
		seed = o.seed
	}
	if seed == 0 {
		return color.DefaultRandomizer()
	}
	return color.NewRandomizer(seed)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(opts.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	paths := resolvePaths(cfg, &opts)
	if opts.watch && paths.Output == "" {
		return errors.New("--watch requires --output")
	}

	gen := generate.New(generate.Options{
		XdefaultsPath:  paths.Xdefaults,
		FontConfigPath: paths.FontConfig,
		TemplatePath:   paths.Template,
		ExtraPath:      paths.Extra,
		OutputPath:     paths.Output,
		Stdout:         cmd.OutOrStdout(),
		Overrides:      overrides(cmd, &opts),
		Randomizer:     randomizer(cfg, &opts),
		Logger:         logger,
	})

	res, err := gen.Run()
	if err != nil {
		return err
	}

	if opts.showPreview {
		if err := preview.Write(cmd.ErrOrStderr(), res.Palette, res.Config.Color()); err != nil {
			return err
		}
	}

	if !opts.watch {
		return nil
	}
	return runWatch(gen)
}

func runWatch(gen *generate.Generator) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	fw, err := watch.NewFileWatcher(gen.WatchedPaths(), func() {
		if _, err := gen.Run(); err != nil {
			logger.Error("regeneration failed", "error", err)
			return
		}
		logger.Info("regenerated config", "output", gen.Options().OutputPath)
	}, logger)
	if err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}

	logger.Info("watching inputs for changes", "files", gen.WatchedPaths())
	return fw.Run(ctx)
}
