package main

import (
	"fmt"
	"os"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/motorlab/internal/config"
	"github.com/san-kum/motorlab/internal/export"
	"github.com/san-kum/motorlab/internal/motor"
	"github.com/san-kum/motorlab/internal/prompt"
	"github.com/san-kum/motorlab/internal/report"
	"github.com/san-kum/motorlab/internal/tui"
)

var (
	frequency   float64
	poles       int
	voltage     float64
	current     float64
	rotorSpeed  float64
	r1          float64
	x1          float64
	r2          float64
	x2          float64
	turnsRatio  float64
	powerFactor float64

	configFile  string
	preset      string
	interactive bool
	noPlots     bool
	reportPath  string
	plotDir     string
	asCSV       bool
)

// main registers commands and flags; with no subcommand the interactive
// TUI is launched.
func main() {
	rootCmd := &cobra.Command{
		Use:   "motorlab",
		Short: "steady-state induction motor analysis",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			return tui.Run(cfg.Parameters())
		},
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze",
		Short: "analyze one operating point and write the report",
		RunE:  runAnalyze,
	}
	addMotorFlags(analyzeCmd)
	analyzeCmd.Flags().BoolVar(&interactive, "interactive", false, "prompt for parameters on stdin")
	analyzeCmd.Flags().BoolVar(&noPlots, "no-plots", false, "skip figure rendering")
	analyzeCmd.Flags().StringVar(&reportPath, "report", "", "report file path (default from config)")
	analyzeCmd.Flags().StringVar(&plotDir, "plot-dir", "", "figure output directory (default from config)")

	sweepCmd := &cobra.Command{
		Use:   "sweep [torque|slip|efficiency]",
		Short: "print one sweep profile as a terminal chart or CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  runSweep,
	}
	addMotorFlags(sweepCmd)
	sweepCmd.Flags().BoolVar(&asCSV, "csv", false, "emit CSV instead of a chart")

	plotCmd := &cobra.Command{
		Use:   "plot",
		Short: "render the three diagnostic figures as PNG",
		RunE:  runPlot,
	}
	addMotorFlags(plotCmd)
	plotCmd.Flags().StringVar(&plotDir, "plot-dir", "", "figure output directory (default from config)")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json",
		Short: "print the analysis as JSON",
		RunE:  runExportJSON,
	}
	addMotorFlags(exportJSONCmd)

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list preset machines",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
		},
	}

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "interactive parameter form",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			return tui.Run(cfg.Parameters())
		},
	}
	addMotorFlags(tuiCmd)

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset machine")

	rootCmd.AddCommand(analyzeCmd, sweepCmd, plotCmd, exportJSONCmd, presetsCmd, tuiCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func addMotorFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&frequency, "frequency", config.DefaultFrequency, "supply frequency (Hz)")
	cmd.Flags().IntVar(&poles, "poles", config.DefaultPoles, "pole count")
	cmd.Flags().Float64Var(&voltage, "voltage", config.DefaultVoltage, "line voltage (V)")
	cmd.Flags().Float64Var(&current, "current", config.DefaultCurrent, "line current (A)")
	cmd.Flags().Float64Var(&rotorSpeed, "rotor-speed", 1750, "rotor speed (RPM)")
	cmd.Flags().Float64Var(&r1, "r1", 0.5, "stator resistance (Ohm)")
	cmd.Flags().Float64Var(&x1, "x1", 1.2, "stator reactance (Ohm)")
	cmd.Flags().Float64Var(&r2, "r2", 0.3, "rotor resistance (Ohm)")
	cmd.Flags().Float64Var(&x2, "x2", 0.8, "rotor reactance (Ohm)")
	cmd.Flags().Float64Var(&turnsRatio, "turns-ratio", 1.0, "rotor/stator transformation ratio")
	cmd.Flags().Float64Var(&powerFactor, "pf", config.DefaultPowerFactor, "input power factor")
}

// resolveConfig layers preset, config file, and CLI flags, the strongest
// last.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg.Motor = p.Motor
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flagOverride := func(name string, set func(*config.MotorConfig)) {
		if cmd.Flags().Changed(name) {
			set(&cfg.Motor)
		}
	}
	flagOverride("frequency", func(m *config.MotorConfig) { m.Frequency = frequency })
	flagOverride("poles", func(m *config.MotorConfig) { m.Poles = poles })
	flagOverride("voltage", func(m *config.MotorConfig) { m.Voltage = voltage })
	flagOverride("current", func(m *config.MotorConfig) { m.Current = current })
	flagOverride("rotor-speed", func(m *config.MotorConfig) { m.RotorSpeed = rotorSpeed })
	flagOverride("r1", func(m *config.MotorConfig) { m.R1 = r1 })
	flagOverride("x1", func(m *config.MotorConfig) { m.X1 = x1 })
	flagOverride("r2", func(m *config.MotorConfig) { m.R2 = r2 })
	flagOverride("x2", func(m *config.MotorConfig) { m.X2 = x2 })
	flagOverride("turns-ratio", func(m *config.MotorConfig) { m.TurnsRatio = turnsRatio })
	flagOverride("pf", func(m *config.MotorConfig) { m.PowerFactor = powerFactor })

	if reportPath != "" {
		cfg.Output.ReportPath = reportPath
	}
	if plotDir != "" {
		cfg.Output.PlotDir = plotDir
	}
	return cfg, nil
}

// resolveParameters validates before anything is written; an invalid set
// aborts the run with no report and no figures.
func resolveParameters(cmd *cobra.Command) (motor.Parameters, *config.Config, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return motor.Parameters{}, nil, err
	}

	var p motor.Parameters
	if interactive {
		p, err = prompt.Read(os.Stdin, os.Stdout)
		if err != nil {
			return motor.Parameters{}, nil, err
		}
	} else {
		p = cfg.Parameters()
		if err := p.Validate(); err != nil {
			return motor.Parameters{}, nil, err
		}
	}
	return p, cfg, nil
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	p, cfg, err := resolveParameters(cmd)
	if err != nil {
		return err
	}

	op := motor.Evaluate(p)
	cls := motor.Classify(op)

	fmt.Println(report.Console(op, cls))

	// A report write failure is recoverable: figures still render.
	if err := report.WriteFile(cfg.Output.ReportPath, p, op, cls); err != nil {
		fmt.Fprintf(os.Stderr, "could not save %s: %v\n", cfg.Output.ReportPath, err)
	} else {
		fmt.Printf("report saved to %s\n", cfg.Output.ReportPath)
	}

	if noPlots {
		return nil
	}
	if err := export.Plots(cfg.Output.PlotDir, p); err != nil {
		return fmt.Errorf("render figures: %w", err)
	}
	fmt.Printf("figures saved to %s\n", cfg.Output.PlotDir)
	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	p, _, err := resolveParameters(cmd)
	if err != nil {
		return err
	}

	var s motor.Sweep
	var series func(motor.Sample) float64
	var caption string
	switch args[0] {
	case "torque":
		s = motor.TorqueSpeedSweep(p)
		series = func(sm motor.Sample) float64 { return sm.Point.Torque }
		caption = "torque (Nm) vs rotor speed (RPM)"
	case "slip":
		s = motor.SlipSpeedSweep(p)
		series = func(sm motor.Sample) float64 { return sm.Point.Slip * 100 }
		caption = "slip (%) vs rotor speed (RPM)"
	case "efficiency":
		s = motor.EfficiencyPowerSweep(p)
		series = func(sm motor.Sample) float64 { return sm.Point.Efficiency }
		caption = "efficiency (%) vs output power"
	default:
		return fmt.Errorf("unknown profile: %s (want torque, slip, or efficiency)", args[0])
	}

	samples := s.Collect()
	if asCSV {
		return export.WriteCSV(os.Stdout, samples)
	}

	data := make([]float64, len(samples))
	for i, sm := range samples {
		data[i] = series(sm)
	}
	graph := asciigraph.Plot(data,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption(caption),
	)
	fmt.Println(graph)
	return nil
}

func runPlot(cmd *cobra.Command, args []string) error {
	p, cfg, err := resolveParameters(cmd)
	if err != nil {
		return err
	}
	if err := export.Plots(cfg.Output.PlotDir, p); err != nil {
		return err
	}
	fmt.Printf("figures saved to %s\n", cfg.Output.PlotDir)
	return nil
}

func runExportJSON(cmd *cobra.Command, args []string) error {
	p, _, err := resolveParameters(cmd)
	if err != nil {
		return err
	}
	op := motor.Evaluate(p)
	return export.WriteJSON(os.Stdout, p, op, motor.Classify(op))
}
