package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/san-kum/orrery/internal/celestial"
	"github.com/san-kum/orrery/internal/config"
	"github.com/san-kum/orrery/internal/logging"
	"github.com/san-kum/orrery/internal/solar"
)

var (
	configFile string
	preset     string
	dataDir    string
	logLevel   string
	logJSON    bool
)

// main registers the orrery commands and runs the windowed view when no
// subcommand is given.
func main() {
	rootCmd := &cobra.Command{
		Use:           "orrery",
		Short:         "interactive 3d solar system",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runGUI,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "start from a named preset")
	pf.StringVar(&dataDir, "data", "", "data directory for saved runs")
	pf.StringVar(&logLevel, "log-level", "", "log level (trace, debug, info, warn, error, off)")
	pf.BoolVar(&logJSON, "log-json", false, "log as json")

	rootCmd.AddCommand(
		newGUICmd(),
		newTUICmd(),
		newRunCmd(),
		newSweepCmd(),
		newListCmd(),
		newPlotCmd(),
		newExportCSVCmd(),
		newExportJSONCmd(),
		newExportSVGCmd(),
		newSnapshotCmd(),
		newCatalogCmd(),
		newPresetsCmd(),
		newConfigCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// loadConfig resolves the effective configuration: defaults, then the
// preset, then the config file, then flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.LoadOver(configFile, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("data") {
		cfg.DataDir = dataDir
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = logLevel
	}
	if cmd.Flags().Changed("log-json") {
		cfg.Log.JSON = logJSON
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger(cfg *config.Config, out io.Writer) zerolog.Logger {
	return logging.New(logging.Options{
		Level: cfg.Log.Level,
		JSON:  cfg.Log.JSON,
		Out:   out,
	})
}

// buildSystem creates the solar system on r with the configured planets,
// state and moons.
func buildSystem(r celestial.Renderer, cfg *config.Config, log zerolog.Logger) (*solar.SolarSystem, error) {
	st, err := cfg.State()
	if err != nil {
		return nil, err
	}
	sys := solar.New(r,
		solar.WithLogger(logging.Component(log, "solar")),
		solar.WithPlanets(cfg.PlanetSpecs()),
		solar.WithState(st),
	)
	cfg.Apply(sys)
	return sys, nil
}

func presetName() string {
	if preset == "" {
		return "default"
	}
	return preset
}
