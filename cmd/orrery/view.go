package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"

	"github.com/spf13/cobra"

	"github.com/san-kum/orrery/internal/celestial"
	"github.com/san-kum/orrery/internal/config"
	"github.com/san-kum/orrery/internal/export"
	"github.com/san-kum/orrery/internal/gui"
	"github.com/san-kum/orrery/internal/logging"
	"github.com/san-kum/orrery/internal/solar"
	"github.com/san-kum/orrery/internal/tui"
	"github.com/san-kum/orrery/internal/viz"
)

var (
	tuiWidth     int
	tuiHeight    int
	snapOut      string
	snapFrames   int
	snapMode     string
	snapSize     int
	snapDotScale float64
)

func newGUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gui",
		Short: "open the 3d window",
		Args:  cobra.NoArgs,
		RunE:  runGUI,
	}
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log := newLogger(cfg, os.Stderr)

	return gui.Run(gui.Options{
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
		Title:  cfg.Window.Title,
		FPS:    cfg.FPS,
		Logger: logging.Component(log, "gui"),
	}, func(r celestial.Renderer) (*solar.SolarSystem, error) {
		return buildSystem(r, cfg, log)
	})
}

func newTUICmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "run the orrery in the terminal",
		Args:  cobra.NoArgs,
		RunE:  runTUI,
	}
	cmd.Flags().IntVar(&tuiWidth, "width", 80, "canvas width in cells")
	cmd.Flags().IntVar(&tuiHeight, "height", 36, "canvas height in cells")
	return cmd
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := checkTheme(cfg.Theme); err != nil {
		return err
	}

	// the alternate screen owns stdout, so logs go to a file
	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		return err
	}
	logFile, err := os.Create(filepath.Join(cfg.DataDir, "tui.log"))
	if err != nil {
		return err
	}
	defer logFile.Close()
	cfg.Log.JSON = true
	log := newLogger(cfg, logFile)

	r := viz.NewTermRenderer(tuiWidth, tuiHeight)
	sys, err := buildSystem(r, cfg, log)
	if err != nil {
		return err
	}
	defer sys.Cleanup()

	return tui.Run(sys, r, tui.Options{
		FPS:    cfg.FPS,
		Theme:  cfg.Theme,
		Logger: logging.Component(log, "tui"),
	})
}

func newSnapshotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "render one frame to an svg file",
		Args:  cobra.NoArgs,
		RunE:  runSnapshot,
	}
	cmd.Flags().StringVarP(&snapOut, "output", "o", "orrery.svg", "output file, - for stdout")
	cmd.Flags().IntVar(&snapFrames, "frames", 0, "frames to advance before rendering")
	cmd.Flags().StringVar(&snapMode, "mode", "top", "projection: top (orthographic from above) or term (braille camera view)")
	cmd.Flags().IntVar(&snapSize, "size", 800, "image size in pixels (top mode)")
	cmd.Flags().Float64Var(&snapDotScale, "dot-scale", 4, "pixels per braille dot (term mode)")
	return cmd
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log := newLogger(cfg, os.Stderr)

	var (
		r     celestial.Renderer
		write func(io.Writer) error
	)
	switch snapMode {
	case "top":
		svg := export.NewSVGRenderer(snapSize, snapSize, outerDistance(cfg)*1.1)
		r = svg
		write = func(w io.Writer) error {
			_, err := svg.WriteTo(w)
			return err
		}
	case "term":
		term := viz.NewTermRenderer(120, 60)
		r = term
		write = func(w io.Writer) error {
			_, err := io.WriteString(w, export.CanvasToSVG(term.Canvas(), snapDotScale))
			return err
		}
	default:
		return fmt.Errorf("unknown mode: %s (available: top, term)", snapMode)
	}

	sys, err := buildSystem(r, cfg, log)
	if err != nil {
		return err
	}
	defer sys.Cleanup()

	for i := 0; i < snapFrames; i++ {
		sys.Update()
	}
	if term, ok := r.(*viz.TermRenderer); ok {
		term.BeginFrame(*sys.State())
	}
	sys.Render()

	if snapOut == "-" {
		return write(os.Stdout)
	}
	f, err := os.Create(snapOut)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	log.Info().Str("file", snapOut).Int("frame", sys.Frames()).Msg("snapshot written")
	return nil
}

// outerDistance returns the largest configured orbital radius.
func outerDistance(cfg *config.Config) float64 {
	d := 0.0
	for _, p := range cfg.PlanetSpecs() {
		d = max(d, p.Distance)
	}
	return d
}

func checkTheme(name string) error {
	if slices.Contains(viz.ThemeNames(), name) {
		return nil
	}
	return fmt.Errorf("unknown theme: %s (available: %v)", name, viz.ThemeNames())
}
