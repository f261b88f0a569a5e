package motor

import "iter"

// DefaultSamples is the sample count used by the named sweep profiles.
const DefaultSamples = 100

// Sweep re-evaluates the model across a rotor-speed range. The base
// parameters are read-only; each sample speed is passed to At directly.
type Sweep struct {
	Params Parameters
	Lo, Hi float64 // rotor-speed range, RPM, inclusive endpoints
	N      int
}

// Sample is one evaluated point of a sweep.
type Sample struct {
	RotorSpeed float64
	Point      OperatingPoint
}

// TorqueSpeedSweep covers [0, Ns], the range of the torque-speed and
// slip-speed curves.
func TorqueSpeedSweep(p Parameters) Sweep {
	return Sweep{Params: p, Lo: 0, Hi: p.SynchronousSpeed(), N: DefaultSamples}
}

// SlipSpeedSweep is the same range as TorqueSpeedSweep; kept as its own
// profile so each chart names its source.
func SlipSpeedSweep(p Parameters) Sweep {
	return TorqueSpeedSweep(p)
}

// EfficiencyPowerSweep covers [0.5·Ns, 0.999·Ns]. The upper bound stays
// short of Ns, where slip reaches zero and the torque term degenerates.
func EfficiencyPowerSweep(p Parameters) Sweep {
	ns := p.SynchronousSpeed()
	return Sweep{Params: p, Lo: 0.5 * ns, Hi: 0.999 * ns, N: DefaultSamples}
}

// All returns the sweep as a lazy, restartable sequence of
// (rotorSpeed, OperatingPoint) pairs. N points are evenly spaced over
// [Lo, Hi] with both endpoints included.
func (s Sweep) All() iter.Seq2[float64, OperatingPoint] {
	return func(yield func(float64, OperatingPoint) bool) {
		if s.N <= 0 {
			return
		}
		if s.N == 1 {
			yield(s.Lo, At(s.Params, s.Lo))
			return
		}
		step := (s.Hi - s.Lo) / float64(s.N-1)
		for i := 0; i < s.N; i++ {
			n := s.Lo + float64(i)*step
			if !yield(n, At(s.Params, n)) {
				return
			}
		}
	}
}

// Collect materializes the sweep into a slice.
func (s Sweep) Collect() []Sample {
	out := make([]Sample, 0, s.N)
	for n, op := range s.All() {
		out = append(out, Sample{RotorSpeed: n, Point: op})
	}
	return out
}
