package motor

import (
	"errors"
	"math"
	"testing"
)

func ratedMotor() Parameters {
	return Parameters{
		Frequency:   60,
		Poles:       4,
		LineVoltage: 460,
		LineCurrent: 20,
		RotorSpeed:  1750,
		R1:          0.5,
		X1:          1.2,
		R2:          0.3,
		X2:          0.8,
		TurnsRatio:  1.0,
		PowerFactor: 0.85,
	}
}

func TestSynchronousSpeed(t *testing.T) {
	tests := []struct {
		name      string
		frequency float64
		poles     int
		want      float64
	}{
		{"60hz 4 pole", 60, 4, 1800},
		{"50hz 4 pole", 50, 4, 1500},
		{"60hz 2 pole", 60, 2, 3600},
		{"60hz 6 pole", 60, 6, 1200},
		{"zero poles", 60, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Parameters{Frequency: tt.frequency, Poles: tt.poles}
			if got := p.SynchronousSpeed(); got != tt.want {
				t.Errorf("SynchronousSpeed() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSlip(t *testing.T) {
	p := ratedMotor()

	tests := []struct {
		name       string
		rotorSpeed float64
		want       float64
	}{
		{"standstill", 0, 1.0},
		{"synchronous", 1800, 0.0},
		{"rated", 1750, (1800.0 - 1750.0) / 1800.0},
		{"oversynchronous", 1850, (1800.0 - 1850.0) / 1800.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.Slip(tt.rotorSpeed); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Slip(%v) = %v, want %v", tt.rotorSpeed, got, tt.want)
			}
		})
	}
}

func TestSlipZeroSynchronousSpeed(t *testing.T) {
	p := ratedMotor()
	p.Poles = 0

	if got := p.Slip(1750); got != 0 {
		t.Errorf("Slip with zero poles = %v, want 0", got)
	}
}

func TestInputPower(t *testing.T) {
	p := ratedMotor()
	want := math.Sqrt(3) * 460 * 20 * 0.85
	if got := p.InputPower(); math.Abs(got-want) > 1e-9 {
		t.Errorf("InputPower() = %v, want %v", got, want)
	}
}

func TestEvaluateRatedScenario(t *testing.T) {
	op := Evaluate(ratedMotor())

	if op.SynchronousSpeed != 1800 {
		t.Errorf("SynchronousSpeed = %v, want 1800", op.SynchronousSpeed)
	}
	if math.Abs(op.Slip-0.0278) > 0.0001 {
		t.Errorf("Slip = %v, want ≈0.0278", op.Slip)
	}
	if op.Torque <= 0 {
		t.Errorf("Torque = %v, want positive at motoring slip", op.Torque)
	}
	if op.OutputPower <= 0 {
		t.Errorf("OutputPower = %v, want positive", op.OutputPower)
	}
	if op.Efficiency < 0 || op.Efficiency > 100 {
		t.Errorf("Efficiency = %v, want within [0, 100]", op.Efficiency)
	}
}

func TestEvaluateDegenerateCases(t *testing.T) {
	t.Run("zero poles", func(t *testing.T) {
		p := ratedMotor()
		p.Poles = 0
		op := Evaluate(p)

		if op.SynchronousSpeed != 0 || op.Slip != 0 || op.Torque != 0 {
			t.Errorf("zero poles: got Ns=%v slip=%v torque=%v, want all zero",
				op.SynchronousSpeed, op.Slip, op.Torque)
		}
		if op.OutputPower != 0 {
			t.Errorf("OutputPower = %v, want 0", op.OutputPower)
		}
	})

	t.Run("zero torque denominator", func(t *testing.T) {
		p := ratedMotor()
		p.R2, p.X2 = 0, 0
		p.RotorSpeed = 1800 // slip = 0 as well
		op := Evaluate(p)
		if op.Torque != 0 {
			t.Errorf("Torque = %v, want 0", op.Torque)
		}
	})

	t.Run("generator mode", func(t *testing.T) {
		p := ratedMotor()
		p.RotorSpeed = 1900
		op := Evaluate(p)
		if op.Slip >= 0 {
			t.Errorf("Slip = %v, want negative", op.Slip)
		}
		// Negative slip gives negative torque and output power, so the
		// efficiency guard forces zero.
		if op.Efficiency != 0 {
			t.Errorf("Efficiency = %v, want 0 for negative output power", op.Efficiency)
		}
	})
}

func TestEfficiencyBounds(t *testing.T) {
	// A motor with tiny input power but ordinary mechanical output would
	// exceed 100%; the cap must hold.
	p := ratedMotor()
	p.LineCurrent = 0.001
	op := Evaluate(p)
	if op.Efficiency != 100 {
		t.Errorf("Efficiency = %v, want capped at 100", op.Efficiency)
	}
}

func TestEvaluateIsPure(t *testing.T) {
	p := ratedMotor()
	before := p

	At(p, 900)
	Evaluate(p)

	if p != before {
		t.Error("Parameters mutated by evaluation")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Parameters)
		field  string
	}{
		{"valid", func(p *Parameters) {}, ""},
		{"zero frequency", func(p *Parameters) { p.Frequency = 0 }, "frequency"},
		{"negative poles", func(p *Parameters) { p.Poles = -2 }, "poles"},
		{"zero voltage", func(p *Parameters) { p.LineVoltage = 0 }, "voltage"},
		{"zero current", func(p *Parameters) { p.LineCurrent = 0 }, "current"},
		{"negative rotor speed", func(p *Parameters) { p.RotorSpeed = -1 }, "rotor speed"},
		{"zero power factor", func(p *Parameters) { p.PowerFactor = 0 }, "power factor"},
		{"power factor above one", func(p *Parameters) { p.PowerFactor = 1.5 }, "power factor"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := ratedMotor()
			tt.mutate(&p)
			err := p.Validate()

			if tt.field == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}

			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Validate() = %v, want *ValidationError", err)
			}
			if verr.Field != tt.field {
				t.Errorf("Field = %q, want %q", verr.Field, tt.field)
			}
		})
	}
}
