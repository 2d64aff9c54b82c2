package main

import (
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/ingyamilmolinar/apothecary/core/engine"
	"github.com/ingyamilmolinar/apothecary/core/model"
	"github.com/ingyamilmolinar/apothecary/internal/config"
	game_log "github.com/ingyamilmolinar/apothecary/internal/log"
	"github.com/ingyamilmolinar/apothecary/internal/oracle"
	"github.com/ingyamilmolinar/apothecary/internal/ui"
)

type flags struct {
	logLevel   string
	width      int
	height     int
	fullscreen bool
	debug      bool
	seed       int64
}

// newRootCmd builds the CLI; start receives the resolved configuration.
func newRootCmd(start func(config.Config) error) *cobra.Command {
	var f flags
	def := config.Default()
	cmd := &cobra.Command{
		Use:   "apothecary",
		Short: "Sonic Apothecary, a five-phase sound therapy wizard",
		Long: `Sonic Apothecary walks through diagnosis, pharmacology, alchemy and
prescription. Use the left and right arrow keys to move between phases.`,
		Version:       model.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(cmd, f, os.Getenv)
			if err != nil {
				return err
			}
			return start(cfg)
		},
	}
	cmd.Flags().StringVarP(&f.logLevel, "log-level", "l", def.LogLevel.String(),
		"Log level: DEBUG, INFO, WARN, ERROR or NONE (overrides "+config.EnvLogLevel+")")
	cmd.Flags().IntVar(&f.width, "width", def.Width, "Window width in pixels")
	cmd.Flags().IntVar(&f.height, "height", def.Height, "Window height in pixels")
	cmd.Flags().BoolVarP(&f.fullscreen, "fullscreen", "f", false, "Start in fullscreen")
	cmd.Flags().BoolVarP(&f.debug, "debug", "d", false, "Show the TPS/FPS overlay")
	cmd.Flags().Int64Var(&f.seed, "seed", 0, "Random seed (0 seeds from the clock)")
	return cmd
}

// resolveConfig layers explicitly set flags over the environment.
func resolveConfig(cmd *cobra.Command, f flags, getenv func(string) string) (config.Config, error) {
	cfg, err := config.FromEnv(getenv)
	if err != nil {
		return cfg, err
	}
	fs := cmd.Flags()
	if fs.Changed("log-level") {
		lv, ok := game_log.LevelFromString(f.logLevel)
		if !ok {
			return cfg, fmt.Errorf("--log-level: unknown level %q", f.logLevel)
		}
		cfg.LogLevel = lv
	}
	if fs.Changed("width") {
		cfg.Width = f.width
	}
	if fs.Changed("height") {
		cfg.Height = f.height
	}
	cfg.Fullscreen = f.fullscreen
	cfg.Debug = f.debug
	cfg.Seed = f.seed
	return cfg, cfg.Validate()
}

func run(cfg config.Config) error {
	logger := game_log.New(os.Stdout, cfg.LogLevel)
	mainLog := logger.Tag("main")
	mainLog.Infof("starting %s, window %dx%d", model.Version, cfg.Width, cfg.Height)

	store := engine.New(logger, engine.Options{
		Seed:   cfg.Seed,
		Oracle: oracle.NewClient(cfg.APIKey),
	})
	g := ui.New(store, logger, ui.Options{Debug: cfg.Debug, Seed: cfg.Seed})
	defer g.Close()

	// one tick per display refresh
	ebiten.SetTPS(ebiten.SyncWithFPS)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle("Sonic Apothecary")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(cfg.Fullscreen)

	if err := ebiten.RunGame(g); err != nil {
		mainLog.Errorf("game exited: %v", err)
		return err
	}
	return nil
}

func main() {
	if err := newRootCmd(run).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
