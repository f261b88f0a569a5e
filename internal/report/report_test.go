package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/motorlab/internal/motor"
)

func testPoint() (motor.Parameters, motor.OperatingPoint, motor.Classification) {
	p := motor.Parameters{
		Frequency: 60, Poles: 4, LineVoltage: 460, LineCurrent: 20,
		RotorSpeed: 1750, R1: 0.5, X1: 1.2, R2: 0.3, X2: 0.8,
		TurnsRatio: 1.0, PowerFactor: 0.85,
	}
	op := motor.Evaluate(p)
	return p, op, motor.Classify(op)
}

func TestPerformanceBlock(t *testing.T) {
	_, op, _ := testPoint()
	got := Performance(op)

	for _, want := range []string{
		"Induction Motor Performance Report",
		"Synchronous Speed: 1800.00 RPM",
		"Rotor Speed: 1750.00 RPM",
		"Slip: 2.78 %",
		"Efficiency:",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("performance block missing %q:\n%s", want, got)
		}
	}
}

func TestClassificationBlock(t *testing.T) {
	_, _, c := testPoint()
	got := Classification(c)

	if !strings.Contains(got, "Slip-based classification: "+motor.RegimeLowLoad) {
		t.Errorf("missing slip classification:\n%s", got)
	}
	if !strings.Contains(got, "Speed-based classification: "+motor.SpeedNearSync) {
		t.Errorf("missing speed classification:\n%s", got)
	}
}

func TestWriteFile(t *testing.T) {
	p, op, c := testPoint()
	path := filepath.Join(t.TempDir(), "report.txt")

	if err := WriteFile(path, p, op, c); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	text := string(data)

	for _, want := range []string{
		"--- Detailed Induction Motor Analysis Report ---",
		"--- Input Parameters ---",
		"Frequency: 60 Hz",
		"Poles: 4",
		"Power Factor: 0.85",
		"Induction Motor Performance Report",
		"Classification Results",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("report file missing %q", want)
		}
	}
}

func TestWriteFileFailure(t *testing.T) {
	p, op, c := testPoint()
	// Directory path is not writable as a file.
	if err := WriteFile(t.TempDir(), p, op, c); err == nil {
		t.Error("expected error writing to a directory path")
	}
}

func TestConsoleContainsValues(t *testing.T) {
	_, op, c := testPoint()
	got := Console(op, c)

	if !strings.Contains(got, "1800.00") {
		t.Errorf("console output missing synchronous speed:\n%s", got)
	}
	if !strings.Contains(got, motor.RegimeLowLoad) {
		t.Errorf("console output missing slip regime:\n%s", got)
	}
}
