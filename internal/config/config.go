package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/motorlab/internal/motor"
)

const (
	DefaultFrequency   = 60.0
	DefaultPoles       = 4
	DefaultVoltage     = 460.0
	DefaultCurrent     = 20.0
	DefaultPowerFactor = 0.85
)

type Config struct {
	Motor  MotorConfig  `yaml:"motor"`
	Output OutputConfig `yaml:"output"`
}

type MotorConfig struct {
	Frequency   float64 `yaml:"frequency"`
	Poles       int     `yaml:"poles"`
	Voltage     float64 `yaml:"voltage"`
	Current     float64 `yaml:"current"`
	RotorSpeed  float64 `yaml:"rotor_speed"`
	R1          float64 `yaml:"stator_resistance"`
	X1          float64 `yaml:"stator_reactance"`
	R2          float64 `yaml:"rotor_resistance"`
	X2          float64 `yaml:"rotor_reactance"`
	TurnsRatio  float64 `yaml:"turns_ratio"`
	PowerFactor float64 `yaml:"power_factor"`
}

type OutputConfig struct {
	ReportPath string `yaml:"report_path"`
	PlotDir    string `yaml:"plot_dir"`
}

func DefaultConfig() *Config {
	return &Config{
		Motor: MotorConfig{
			Frequency:   DefaultFrequency,
			Poles:       DefaultPoles,
			Voltage:     DefaultVoltage,
			Current:     DefaultCurrent,
			RotorSpeed:  1750,
			R1:          0.5,
			X1:          1.2,
			R2:          0.3,
			X2:          0.8,
			TurnsRatio:  1.0,
			PowerFactor: DefaultPowerFactor,
		},
		Output: OutputConfig{
			ReportPath: "report.txt",
			PlotDir:    ".",
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Parameters converts the motor section into a model parameter set.
func (c *Config) Parameters() motor.Parameters {
	m := c.Motor
	return motor.Parameters{
		Frequency:   m.Frequency,
		Poles:       m.Poles,
		LineVoltage: m.Voltage,
		LineCurrent: m.Current,
		RotorSpeed:  m.RotorSpeed,
		R1:          m.R1,
		X1:          m.X1,
		R2:          m.R2,
		X2:          m.X2,
		TurnsRatio:  m.TurnsRatio,
		PowerFactor: m.PowerFactor,
	}
}
