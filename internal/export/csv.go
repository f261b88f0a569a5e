package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/san-kum/motorlab/internal/motor"
)

// WriteCSV streams sweep samples as CSV: one row per rotor speed with the
// full operating point.
func WriteCSV(w io.Writer, samples []motor.Sample) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"rotor_speed", "slip", "torque", "output_power", "input_power", "efficiency"}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, s := range samples {
		row := []string{
			strconv.FormatFloat(s.RotorSpeed, 'f', 6, 64),
			strconv.FormatFloat(s.Point.Slip, 'f', 6, 64),
			strconv.FormatFloat(s.Point.Torque, 'f', 6, 64),
			strconv.FormatFloat(s.Point.OutputPower, 'f', 6, 64),
			strconv.FormatFloat(s.Point.InputPower, 'f', 6, 64),
			strconv.FormatFloat(s.Point.Efficiency, 'f', 6, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
