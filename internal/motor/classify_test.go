package motor

import "testing"

func TestClassifySlip(t *testing.T) {
	tests := []struct {
		name string
		slip float64
		want string
	}{
		{"negative", -0.02, RegimeGenerator},
		{"zero", 0.0, RegimeLowLoad},
		{"low load", 0.02, RegimeLowLoad},
		{"boundary at 0.03", 0.03, RegimeRated},
		{"rated", 0.05, RegimeRated},
		{"boundary at 0.06", 0.06, RegimeOverloaded},
		{"overloaded", 0.2, RegimeOverloaded},
		{"locked rotor", 1.0, RegimeOverloaded},
		{"plugging", 1.5, RegimeOverloaded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifySlip(tt.slip); got != tt.want {
				t.Errorf("ClassifySlip(%v) = %q, want %q", tt.slip, got, tt.want)
			}
		})
	}
}

func TestClassifySpeed(t *testing.T) {
	tests := []struct {
		name   string
		ns, nr float64
		want   string
	}{
		{"zero synchronous speed", 0, 1750, SpeedUnclassified},
		{"near synchronous", 1800, 1750, SpeedNearSync},
		{"boundary at 0.95", 1800, 1710, SpeedNearSync},
		{"normal", 1800, 1650, SpeedNormal},
		{"boundary at 0.90", 1800, 1620, SpeedNormal},
		{"low speed", 1800, 1000, SpeedLow},
		{"standstill", 1800, 0, SpeedLow},
		{"oversynchronous", 1800, 1900, SpeedNearSync},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifySpeed(tt.ns, tt.nr); got != tt.want {
				t.Errorf("ClassifySpeed(%v, %v) = %q, want %q", tt.ns, tt.nr, got, tt.want)
			}
		})
	}
}

func TestClassifyIndependentViews(t *testing.T) {
	// An oversynchronous rotor is a generator by slip yet still
	// near-synchronous by speed. The two views do not reconcile.
	p := ratedMotor()
	p.RotorSpeed = 1850
	c := Classify(Evaluate(p))

	if c.SlipRegime != RegimeGenerator {
		t.Errorf("SlipRegime = %q, want %q", c.SlipRegime, RegimeGenerator)
	}
	if c.SpeedRegime != SpeedNearSync {
		t.Errorf("SpeedRegime = %q, want %q", c.SpeedRegime, SpeedNearSync)
	}
}
