// Package report formats analysis results for the console and for the
// flat-file report.
package report

import (
	"fmt"
	"os"
	"strings"

	"github.com/san-kum/motorlab/internal/motor"
)

// Performance renders the operating-point block.
func Performance(op motor.OperatingPoint) string {
	var sb strings.Builder
	sb.WriteString("Induction Motor Performance Report\n")
	sb.WriteString("------------------------------------\n")
	fmt.Fprintf(&sb, "Synchronous Speed: %.2f RPM\n", op.SynchronousSpeed)
	fmt.Fprintf(&sb, "Rotor Speed: %.2f RPM\n", op.RotorSpeed)
	fmt.Fprintf(&sb, "Slip: %.2f %%\n", op.Slip*100)
	fmt.Fprintf(&sb, "Torque: %.2f Nm\n", op.Torque)
	fmt.Fprintf(&sb, "Output Power: %.2f kW\n", op.OutputPower/1000)
	fmt.Fprintf(&sb, "Efficiency: %.2f %%", op.Efficiency)
	return sb.String()
}

// Classification renders the regime block.
func Classification(c motor.Classification) string {
	var sb strings.Builder
	sb.WriteString("Classification Results\n")
	sb.WriteString("------------------------\n")
	fmt.Fprintf(&sb, "Slip-based classification: %s\n", c.SlipRegime)
	fmt.Fprintf(&sb, "Speed-based classification: %s", c.SpeedRegime)
	return sb.String()
}

// InputEcho renders the parameter echo written at the top of the file
// report.
func InputEcho(p motor.Parameters) string {
	var sb strings.Builder
	sb.WriteString("--- Input Parameters ---\n")
	fmt.Fprintf(&sb, "Frequency: %g Hz\n", p.Frequency)
	fmt.Fprintf(&sb, "Poles: %d\n", p.Poles)
	fmt.Fprintf(&sb, "Voltage: %g V\n", p.LineVoltage)
	fmt.Fprintf(&sb, "Current: %g A\n", p.LineCurrent)
	fmt.Fprintf(&sb, "Rotor Speed: %g RPM\n", p.RotorSpeed)
	fmt.Fprintf(&sb, "Stator Resistance: %g Ohm\n", p.R1)
	fmt.Fprintf(&sb, "Stator Reactance: %g Ohm\n", p.X1)
	fmt.Fprintf(&sb, "Rotor Resistance: %g Ohm\n", p.R2)
	fmt.Fprintf(&sb, "Rotor Reactance: %g Ohm\n", p.X2)
	fmt.Fprintf(&sb, "Transformation Ratio: %g\n", p.TurnsRatio)
	fmt.Fprintf(&sb, "Power Factor: %g\n", p.PowerFactor)
	return sb.String()
}

// WriteFile writes the full report (echoed inputs, performance block,
// classification block) as UTF-8 text. Callers treat a failure here as
// recoverable: it is reported and the rest of the run continues.
func WriteFile(path string, p motor.Parameters, op motor.OperatingPoint, c motor.Classification) error {
	var sb strings.Builder
	sb.WriteString("--- Detailed Induction Motor Analysis Report ---\n\n")
	sb.WriteString(InputEcho(p))
	sb.WriteString("\n")
	sb.WriteString(Performance(op))
	sb.WriteString("\n\n")
	sb.WriteString(Classification(c))
	sb.WriteString("\n")

	if err := os.WriteFile(path, []byte(sb.String()), 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
