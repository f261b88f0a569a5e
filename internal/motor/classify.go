package motor

// Regime classification thresholds. The slip bands are half-open: a slip
// of exactly 0.03 falls in the moderate band.
const (
	slipLowLoad   = 0.03
	slipRated     = 0.06
	speedNearSync = 0.95
	speedNormal   = 0.90
)

// Slip regime labels.
const (
	RegimeGenerator  = "Generator mode (negative slip)"
	RegimeLowLoad    = "High-efficiency, low-load zone"
	RegimeRated      = "Moderate efficiency, rated load zone"
	RegimeOverloaded = "Low-efficiency, overloaded zone"
)

// Speed regime labels.
const (
	SpeedUnclassified = "Cannot classify (Synchronous speed is zero)"
	SpeedNearSync     = "Near-synchronous operation"
	SpeedNormal       = "Normal operating speed"
	SpeedLow          = "Low speed, potentially overloaded"
)

// ClassifySlip maps a slip value to a load-regime label. First matching
// band wins; the function is total over all real slip values.
func ClassifySlip(slip float64) string {
	switch {
	case slip < 0:
		return RegimeGenerator
	case slip < slipLowLoad:
		return RegimeLowLoad
	case slip < slipRated:
		return RegimeRated
	default:
		return RegimeOverloaded
	}
}

// ClassifySpeed maps rotor speed relative to synchronous speed to a
// speed-regime label. The slip and speed views are independent: a
// generator-mode machine still classifies as near-synchronous here.
func ClassifySpeed(synchronousSpeed, rotorSpeed float64) string {
	if synchronousSpeed == 0 {
		return SpeedUnclassified
	}
	switch {
	case rotorSpeed >= speedNearSync*synchronousSpeed:
		return SpeedNearSync
	case rotorSpeed >= speedNormal*synchronousSpeed:
		return SpeedNormal
	default:
		return SpeedLow
	}
}

// Classification bundles both regime views of one operating point.
type Classification struct {
	SlipRegime  string
	SpeedRegime string
}

// Classify labels an operating point on both axes.
func Classify(op OperatingPoint) Classification {
	return Classification{
		SlipRegime:  ClassifySlip(op.Slip),
		SpeedRegime: ClassifySpeed(op.SynchronousSpeed, op.RotorSpeed),
	}
}
