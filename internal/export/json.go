package export

import (
	"encoding/json"
	"io"

	"github.com/san-kum/motorlab/internal/motor"
)

// Analysis is the JSON view of one analysis run.
type Analysis struct {
	Parameters     motor.Parameters     `json:"parameters"`
	OperatingPoint motor.OperatingPoint `json:"operating_point"`
	SlipRegime     string               `json:"slip_regime"`
	SpeedRegime    string               `json:"speed_regime"`
}

// WriteJSON writes the operating point and classification as indented
// JSON.
func WriteJSON(w io.Writer, p motor.Parameters, op motor.OperatingPoint, c motor.Classification) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(Analysis{
		Parameters:     p,
		OperatingPoint: op,
		SlipRegime:     c.SlipRegime,
		SpeedRegime:    c.SpeedRegime,
	})
}
