// Package export renders sweep curves to PNG figures and writes CSV and
// JSON views of analysis results.
package export

import (
	"fmt"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/san-kum/motorlab/internal/motor"
)

// Figure names written by Plots.
const (
	TorqueSpeedFile     = "torque-speed.png"
	SlipSpeedFile       = "slip-speed.png"
	EfficiencyPowerFile = "efficiency-power.png"
)

func saveLinePlot(path, title, xlabel, ylabel string, xs, ys []float64) error {
	if len(xs) != len(ys) || len(xs) == 0 {
		return fmt.Errorf("plot %s: no data", path)
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i].X = xs[i]
		pts[i].Y = ys[i]
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	line.LineStyle.Width = vg.Points(2)
	p.Add(line)

	return p.Save(8*vg.Inch, 5*vg.Inch, path)
}

// TorqueSpeed renders the torque-speed characteristic.
func TorqueSpeed(dir string, samples []motor.Sample) error {
	xs := make([]float64, len(samples))
	ys := make([]float64, len(samples))
	for i, s := range samples {
		xs[i] = s.RotorSpeed
		ys[i] = s.Point.Torque
	}
	return saveLinePlot(filepath.Join(dir, TorqueSpeedFile),
		"Torque-Speed Characteristic", "Rotor Speed (RPM)", "Torque (Nm)", xs, ys)
}

// SlipSpeed renders slip percentage against rotor speed.
func SlipSpeed(dir string, samples []motor.Sample) error {
	xs := make([]float64, len(samples))
	ys := make([]float64, len(samples))
	for i, s := range samples {
		xs[i] = s.RotorSpeed
		ys[i] = s.Point.Slip * 100
	}
	return saveLinePlot(filepath.Join(dir, SlipSpeedFile),
		"Slip vs. Rotor Speed", "Rotor Speed (RPM)", "Slip (%)", xs, ys)
}

// EfficiencyPower renders efficiency against output power.
func EfficiencyPower(dir string, samples []motor.Sample) error {
	xs := make([]float64, len(samples))
	ys := make([]float64, len(samples))
	for i, s := range samples {
		xs[i] = s.Point.OutputPower
		ys[i] = s.Point.Efficiency
	}
	return saveLinePlot(filepath.Join(dir, EfficiencyPowerFile),
		"Efficiency vs. Output Power", "Output Power (W)", "Efficiency (%)", xs, ys)
}

// Plots renders all three diagnostic figures into dir, creating it if
// needed.
func Plots(dir string, p motor.Parameters) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	if err := TorqueSpeed(dir, motor.TorqueSpeedSweep(p).Collect()); err != nil {
		return err
	}
	if err := SlipSpeed(dir, motor.SlipSpeedSweep(p).Collect()); err != nil {
		return err
	}
	return EfficiencyPower(dir, motor.EfficiencyPowerSweep(p).Collect())
}
