package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/orrery/internal/celestial"
	"github.com/san-kum/orrery/internal/export"
	"github.com/san-kum/orrery/internal/logging"
	"github.com/san-kum/orrery/internal/metrics"
	"github.com/san-kum/orrery/internal/orbit"
	"github.com/san-kum/orrery/internal/sim"
	"github.com/san-kum/orrery/internal/storage"
	"github.com/san-kum/orrery/internal/tui"
)

const planeTolerance = 1e-6

var (
	frames    int
	every     int
	live      bool
	frameRate int
	plotBody  string
	plotAxis  string
	outPath   string
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "run the system headless and save the positions",
		Args:  cobra.NoArgs,
		RunE:  runSimulation,
	}
	cmd.Flags().IntVar(&frames, "frames", 3650, "number of frames")
	cmd.Flags().IntVar(&every, "every", 10, "sample every n frames")
	cmd.Flags().BoolVar(&live, "live", false, "draw a live map while running")
	cmd.Flags().IntVar(&frameRate, "fps", 30, "live map frame rate")
	return cmd
}

func attachMetrics(s *sim.Simulator) {
	for _, m := range metrics.AllRevolutions(s.System()) {
		s.AddMetric(m)
	}
	s.AddMetric(metrics.NewMoonSync())
	s.AddMetric(metrics.NewPlaneStability(planeTolerance))
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log := newLogger(cfg, os.Stderr)

	st := storage.New(cfg.DataDir)
	if err := st.Init(); err != nil {
		return err
	}

	sys, err := buildSystem(celestial.NewNopRenderer(), cfg, log)
	if err != nil {
		return err
	}
	defer sys.Cleanup()

	s := sim.New(sys)
	attachMetrics(s)

	if live {
		lr := tui.NewLiveRenderer(os.Stdout, frameRate, 0)
		lr.Start()
		defer lr.Stop()
		s.AddObserver(lr)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	log.Info().Int("frames", frames).Float64("time_factor", sys.TimeFactor()).Msg("running")
	start := time.Now()

	result, err := s.Run(ctx, sim.Config{Frames: frames, Every: every})
	if err != nil && ctx.Err() == nil {
		return err
	}
	if ctx.Err() != nil {
		log.Warn().Int("frames", result.Frames).Msg("interrupted, saving partial run")
	}

	runID, err := st.Save(storage.RunInfo{
		Preset:     presetName(),
		TimeFactor: sys.TimeFactor(),
		Frames:     frames,
		Every:      every,
		Moons:      cfg.Moons,
	}, result)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", time.Since(start).Round(time.Millisecond))
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("saved to %s\n", filepath.Join(st.Dir(), runID))
	fmt.Printf("frames: %d  samples: %d  elapsed: %.1f\n\n", result.Frames, len(result.Samples), result.Elapsed)
	return printMetrics(result.Metrics)
}

func printMetrics(m map[string]float64) error {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "METRIC\tVALUE")
	for _, name := range names {
		fmt.Fprintf(w, "%s\t%.6f\n", name, m[name])
	}
	return w.Flush()
}

func newSweepCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sweep [time_factor]...",
		Short: "compare revolutions across several speeds",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runSweep,
	}
	cmd.Flags().IntVar(&frames, "frames", 3650, "number of frames per run")
	return cmd
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log := newLogger(cfg, os.Stderr)

	factors := make([]float64, len(args))
	for i, a := range args {
		tf, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return fmt.Errorf("invalid time factor %q: %w", a, err)
		}
		factors[i] = tf
	}

	results, err := sim.Sweep(cmd.Context(), factors, sim.Config{Frames: frames, Every: frames}, func(tf float64) (*sim.Simulator, error) {
		sys, err := buildSystem(celestial.NewNopRenderer(), cfg, logging.Discard())
		if err != nil {
			return nil, err
		}
		if err := sys.SetTimeFactor(tf); err != nil {
			sys.Cleanup()
			return nil, err
		}
		s := sim.New(sys)
		attachMetrics(s)
		return s, nil
	})
	if err != nil {
		return err
	}
	log.Debug().Int("runs", len(results)).Msg("sweep done")

	names := make([]string, 0)
	for name := range results[0].Metrics {
		if strings.HasPrefix(name, "revolutions_") {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprint(w, "SPEED")
	for _, name := range names {
		fmt.Fprintf(w, "\t%s", strings.TrimPrefix(name, "revolutions_"))
	}
	fmt.Fprintln(w, "\tMOON_SYNC")
	for _, r := range results {
		fmt.Fprintf(w, "%.2fx", r.TimeFactor)
		for _, name := range names {
			fmt.Fprintf(w, "\t%.3f", r.Metrics[name])
		}
		fmt.Fprintf(w, "\t%.1e\n", r.Metrics["moon_sync"])
	}
	return w.Flush()
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		Args:  cobra.NoArgs,
		RunE:  listRuns,
	}
}

func listRuns(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	runs, err := storage.New(cfg.DataDir).List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPRESET\tTIME\tSPEED\tFRAMES\tSAMPLES")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.2fx\t%d\t%d\n",
			run.ID,
			run.Preset,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.TimeFactor,
			run.Frames,
			run.Samples,
		)
	}
	return w.Flush()
}

func newPlotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a body's coordinate over a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	cmd.Flags().StringVar(&plotBody, "body", "Earth", "body label, e.g. Earth or Earth/1")
	cmd.Flags().StringVar(&plotAxis, "axis", "x", "coordinate: x, y, z or dist")
	return cmd
}

func plotRun(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	st := storage.New(cfg.DataDir)

	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	samples, err := st.LoadSamples(args[0])
	if err != nil {
		return err
	}

	data := make([]float64, 0)
	for _, s := range samples {
		if s.Body != plotBody {
			continue
		}
		switch plotAxis {
		case "x":
			data = append(data, s.X)
		case "y":
			data = append(data, s.Y)
		case "z":
			data = append(data, s.Z)
		case "dist":
			data = append(data, orbit.Vec3{X: s.X, Y: s.Y, Z: s.Z}.Length())
		default:
			return fmt.Errorf("unknown axis: %s", plotAxis)
		}
	}
	if len(data) == 0 {
		return fmt.Errorf("no samples for body %q", plotBody)
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("speed: %.2fx  samples: %d\n\n", meta.TimeFactor, len(data))
	fmt.Println(asciigraph.Plot(data,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("%s %s", plotBody, plotAxis)),
	))
	return nil
}

func newExportCSVCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export saved positions to csv",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}
	cmd.Flags().StringVarP(&outPath, "output", "o", "-", "output file, - for stdout")
	return cmd
}

func exportCSV(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	samples, err := storage.New(cfg.DataDir).LoadSamples(args[0])
	if err != nil {
		return err
	}
	return storage.ExportCSV(outPath, samples)
}

func newExportJSONCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a saved run to json",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}
	cmd.Flags().StringVarP(&outPath, "output", "o", "-", "output file, - for stdout")
	return cmd
}

func exportJSON(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	st := storage.New(cfg.DataDir)

	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	samples, err := st.LoadSamples(args[0])
	if err != nil {
		return err
	}

	info := storage.RunInfo{
		Preset:     meta.Preset,
		TimeFactor: meta.TimeFactor,
		Frames:     meta.Frames,
		Every:      meta.Every,
		Moons:      meta.Moons,
	}
	result := &sim.Result{
		Samples:    samples,
		Metrics:    meta.Metrics,
		Frames:     meta.Frames,
		Elapsed:    meta.Elapsed,
		TimeFactor: meta.TimeFactor,
	}
	return storage.ExportJSON(outPath, info, result)
}

func newExportSVGCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "draw the saved orbital tracks as svg",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	cmd.Flags().StringVarP(&outPath, "output", "o", "-", "output file, - for stdout")
	cmd.Flags().IntVar(&snapSize, "size", 800, "image size in pixels")
	return cmd
}

func exportSVG(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	samples, err := storage.New(cfg.DataDir).LoadSamples(args[0])
	if err != nil {
		return err
	}

	out := export.TracksToSVG(samples, snapSize, snapSize)
	if outPath == "-" {
		_, err := fmt.Print(out)
		return err
	}
	return os.WriteFile(outPath, []byte(out), 0644)
}
