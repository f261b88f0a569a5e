package motor

import (
	"fmt"
	"math"
)

// Parameters describes one induction motor. Per-phase equivalent-circuit
// values follow the usual convention: subscript 1 is the stator side,
// subscript 2 the rotor side referred through TurnsRatio.
type Parameters struct {
	Frequency   float64 `json:"frequency"`    // supply frequency, Hz
	Poles       int     `json:"poles"`        // pole count
	LineVoltage float64 `json:"voltage"`      // line voltage, V
	LineCurrent float64 `json:"current"`      // line current, A
	RotorSpeed  float64 `json:"rotor_speed"`  // measured rotor speed, RPM
	R1          float64 `json:"r1"`           // stator resistance, ohm
	X1          float64 `json:"x1"`           // stator reactance, ohm
	R2          float64 `json:"r2"`           // rotor resistance, ohm
	X2          float64 `json:"x2"`           // rotor reactance, ohm
	TurnsRatio  float64 `json:"turns_ratio"`  // rotor/stator transformation ratio
	PowerFactor float64 `json:"power_factor"` // input power factor, (0, 1]
}

// OperatingPoint is the derived steady-state performance of a motor at a
// single rotor speed.
type OperatingPoint struct {
	SynchronousSpeed float64 `json:"synchronous_speed"` // RPM
	RotorSpeed       float64 `json:"rotor_speed"`       // RPM
	Slip             float64 `json:"slip"`              // dimensionless, negative in generator mode
	Torque           float64 `json:"torque"`            // N·m
	OutputPower      float64 `json:"output_power"`      // W
	InputPower       float64 `json:"input_power"`       // W
	Efficiency       float64 `json:"efficiency"`        // percent, in [0, 100]
}

// ValidationError reports a parameter that fails range checks.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Validate checks user-supplied parameter ranges. The model itself
// tolerates degenerate values; Validate is the gate for interactive and
// config input.
func (p Parameters) Validate() error {
	switch {
	case p.Frequency <= 0:
		return &ValidationError{Field: "frequency", Reason: "must be positive"}
	case p.Poles <= 0:
		return &ValidationError{Field: "poles", Reason: "must be positive"}
	case p.LineVoltage <= 0:
		return &ValidationError{Field: "voltage", Reason: "must be positive"}
	case p.LineCurrent <= 0:
		return &ValidationError{Field: "current", Reason: "must be positive"}
	case p.RotorSpeed < 0:
		return &ValidationError{Field: "rotor speed", Reason: "must not be negative"}
	case p.PowerFactor <= 0 || p.PowerFactor > 1:
		return &ValidationError{Field: "power factor", Reason: "must be in (0, 1]"}
	}
	return nil
}

// SynchronousSpeed returns the rotating-field speed in RPM. Zero poles
// resolves to zero, not an error.
func (p Parameters) SynchronousSpeed() float64 {
	if p.Poles == 0 {
		return 0
	}
	return 120 * p.Frequency / float64(p.Poles)
}

// InputPower returns the three-phase real input power in watts. It does
// not depend on rotor speed, so it is constant across a sweep.
func (p Parameters) InputPower() float64 {
	return math.Sqrt(3) * p.LineVoltage * p.LineCurrent * p.PowerFactor
}

// Slip returns the fractional speed deficit at the given rotor speed.
// Negative slip (rotor faster than the field) and slip above one (rotor
// driven against the field) are both valid regimes.
func (p Parameters) Slip(rotorSpeed float64) float64 {
	ns := p.SynchronousSpeed()
	if ns == 0 {
		return 0
	}
	return (ns - rotorSpeed) / ns
}

// At evaluates the equivalent-circuit model at the given rotor speed.
// The receiver is never modified; sweeps call At with each sample speed
// instead of mutating RotorSpeed.
func At(p Parameters, rotorSpeed float64) OperatingPoint {
	ns := p.SynchronousSpeed()
	slip := p.Slip(rotorSpeed)

	// T = 60·e2²·r2·s / (2π·Ns·(r2² + (x2·s)²)), e2 referred through
	// the turns ratio. A zero denominator resolves to zero torque.
	var torque float64
	e2 := p.LineVoltage * p.TurnsRatio
	denom := 2 * math.Pi * ns * (p.R2*p.R2 + p.X2*slip*p.X2*slip)
	if denom != 0 {
		torque = 60 * e2 * e2 * p.R2 * slip / denom
	}

	outputPower := 2 * math.Pi * rotorSpeed * torque / 60
	inputPower := p.InputPower()

	// The guard is deliberately asymmetric: zero input power is
	// undefined efficiency, negative output power is a braking or
	// degenerate point reported as zero.
	var efficiency float64
	if inputPower > 0 && outputPower >= 0 {
		efficiency = math.Min(100*outputPower/inputPower, 100)
	}

	return OperatingPoint{
		SynchronousSpeed: ns,
		RotorSpeed:       rotorSpeed,
		Slip:             slip,
		Torque:           torque,
		OutputPower:      outputPower,
		InputPower:       inputPower,
		Efficiency:       efficiency,
	}
}

// Evaluate computes the operating point at the rotor speed stored in p.
func Evaluate(p Parameters) OperatingPoint {
	return At(p, p.RotorSpeed)
}
