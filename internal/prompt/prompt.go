// Package prompt collects motor parameters interactively, one value per
// line.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/san-kum/motorlab/internal/motor"
)

type question struct {
	label string
	field string
	set   func(*motor.Parameters, float64)
}

var questions = []question{
	{"Enter Frequency (Hz): ", "frequency", func(p *motor.Parameters, v float64) { p.Frequency = v }},
	{"Enter No. of Poles: ", "poles", func(p *motor.Parameters, v float64) { p.Poles = int(v) }},
	{"Enter Voltage (V): ", "voltage", func(p *motor.Parameters, v float64) { p.LineVoltage = v }},
	{"Enter Current (A): ", "current", func(p *motor.Parameters, v float64) { p.LineCurrent = v }},
	{"Enter Rotor Speed (RPM): ", "rotor speed", func(p *motor.Parameters, v float64) { p.RotorSpeed = v }},
	{"Enter stator resistance (Ohm): ", "stator resistance", func(p *motor.Parameters, v float64) { p.R1 = v }},
	{"Enter stator reactance (Ohm): ", "stator reactance", func(p *motor.Parameters, v float64) { p.X1 = v }},
	{"Enter rotor resistance (Ohm): ", "rotor resistance", func(p *motor.Parameters, v float64) { p.R2 = v }},
	{"Enter rotor reactance (Ohm): ", "rotor reactance", func(p *motor.Parameters, v float64) { p.X2 = v }},
	{"Enter transformation ratio (rotor/stator): ", "turns ratio", func(p *motor.Parameters, v float64) { p.TurnsRatio = v }},
	{"Enter input power factor (e.g., 0.85): ", "power factor", func(p *motor.Parameters, v float64) { p.PowerFactor = v }},
}

// Read prompts on w and reads one numeric value per line from r. It
// validates the complete set before returning, so a failure never yields
// partial, usable parameters.
func Read(r io.Reader, w io.Writer) (motor.Parameters, error) {
	var p motor.Parameters
	scanner := bufio.NewScanner(r)

	for _, q := range questions {
		fmt.Fprint(w, q.label)
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return motor.Parameters{}, err
			}
			return motor.Parameters{}, io.ErrUnexpectedEOF
		}
		text := strings.TrimSpace(scanner.Text())
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return motor.Parameters{}, &motor.ValidationError{Field: q.field, Reason: fmt.Sprintf("%q is not a number", text)}
		}
		q.set(&p, v)
	}

	if err := p.Validate(); err != nil {
		return motor.Parameters{}, err
	}
	return p, nil
}
