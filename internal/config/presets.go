package config

// Presets are example machines, keyed by name. Parameter sets are
// textbook-style ratings, not measurements of particular hardware.
var Presets = map[string]*Config{
	"nema-5hp": {
		Motor: MotorConfig{
			Frequency: 60, Poles: 4, Voltage: 460, Current: 7.6, RotorSpeed: 1750,
			R1: 1.1, X1: 2.0, R2: 0.9, X2: 2.0, TurnsRatio: 1.0, PowerFactor: 0.84,
		},
	},
	"nema-25hp": {
		Motor: MotorConfig{
			Frequency: 60, Poles: 4, Voltage: 460, Current: 32, RotorSpeed: 1760,
			R1: 0.22, X1: 0.55, R2: 0.18, X2: 0.55, TurnsRatio: 1.0, PowerFactor: 0.86,
		},
	},
	"iec-2pole": {
		Motor: MotorConfig{
			Frequency: 50, Poles: 2, Voltage: 400, Current: 14, RotorSpeed: 2920,
			R1: 0.8, X1: 1.6, R2: 0.6, X2: 1.4, TurnsRatio: 1.0, PowerFactor: 0.88,
		},
	},
	"iec-6pole": {
		Motor: MotorConfig{
			Frequency: 50, Poles: 6, Voltage: 400, Current: 21, RotorSpeed: 960,
			R1: 0.45, X1: 1.1, R2: 0.35, X2: 0.95, TurnsRatio: 1.0, PowerFactor: 0.82,
		},
	},
	"overloaded": {
		Motor: MotorConfig{
			Frequency: 60, Poles: 4, Voltage: 460, Current: 40, RotorSpeed: 1500,
			R1: 0.5, X1: 1.2, R2: 0.3, X2: 0.8, TurnsRatio: 1.0, PowerFactor: 0.78,
		},
	},
	"generator": {
		Motor: MotorConfig{
			Frequency: 60, Poles: 4, Voltage: 460, Current: 18, RotorSpeed: 1850,
			R1: 0.5, X1: 1.2, R2: 0.3, X2: 0.8, TurnsRatio: 1.0, PowerFactor: 0.85,
		},
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
