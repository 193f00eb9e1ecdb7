package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/san-kum/orrery/internal/config"
	"github.com/san-kum/orrery/internal/solar"
	"github.com/san-kum/orrery/internal/viz"
)

func newCatalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "show the planets with their display and reference data",
		Args:  cobra.NoArgs,
		RunE:  showCatalog,
	}
}

func showCatalog(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := checkTheme(cfg.Theme); err != nil {
		return err
	}
	styles := viz.NewStyles(viz.GetTheme(cfg.Theme))

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styles.Subtle).
		Headers("PLANET", "DISTANCE", "RADIUS", "PERIOD", "INCL", "SIZE (EARTH)", "KNOWN MOONS", "SHOWN").
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return styles.Title.Padding(0, 1)
			case col == 0:
				return styles.Value.Padding(0, 1)
			default:
				return styles.Label.Padding(0, 1)
			}
		})

	for _, spec := range cfg.PlanetSpecs() {
		size, known := "-", "-"
		if e, ok := solar.LookupCatalog(spec.Name); ok {
			size = fmt.Sprintf("%.3f", e.Size)
			known = fmt.Sprintf("%d", e.Moons)
		}
		t.Row(
			lipgloss.NewStyle().Foreground(lipgloss.Color(viz.ColorHex(spec.Color))).Render(spec.Name),
			fmt.Sprintf("%.0f", spec.Distance),
			fmt.Sprintf("%.1f", spec.Radius),
			fmt.Sprintf("%.0f", spec.Period),
			fmt.Sprintf("%.2f°", spec.InclinationDeg),
			size,
			known,
			fmt.Sprintf("%d", cfg.Moons[spec.Name]),
		)
	}

	fmt.Println(t.Render())
	return nil
}

func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "list the built-in presets",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("available presets:")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Printf("  %-8s speed %.1fx  zoom %.1f  pitch %.0f\n",
					name, p.TimeFactor, p.Camera.Zoom, p.Camera.RotationX)
			}
		},
	}
}

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "manage configuration files",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "init [path]",
		Short: "write the default configuration",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "orrery.yaml"
			if len(args) == 1 {
				path = args[0]
			}
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("%s already exists", path)
			}
			if err := config.Save(path, config.DefaultConfig()); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", path)
			return nil
		},
	})
	return cmd
}
