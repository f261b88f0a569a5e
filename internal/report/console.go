package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/motorlab/internal/motor"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")).
			Padding(0, 2)
)

func row(label string, format string, args ...any) string {
	return labelStyle.Render(label) + valueStyle.Render(fmt.Sprintf(format, args...))
}

// Console renders both report blocks with terminal styling.
func Console(op motor.OperatingPoint, c motor.Classification) string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("Induction Motor Performance"))
	sb.WriteString("\n")
	sb.WriteString(row("synchronous speed  ", "%.2f RPM", op.SynchronousSpeed))
	sb.WriteString("\n")
	sb.WriteString(row("rotor speed        ", "%.2f RPM", op.RotorSpeed))
	sb.WriteString("\n")
	sb.WriteString(row("slip               ", "%.2f %%", op.Slip*100))
	sb.WriteString("\n")
	sb.WriteString(row("torque             ", "%.2f Nm", op.Torque))
	sb.WriteString("\n")
	sb.WriteString(row("output power       ", "%.2f kW", op.OutputPower/1000))
	sb.WriteString("\n")
	sb.WriteString(row("input power        ", "%.2f kW", op.InputPower/1000))
	sb.WriteString("\n")
	sb.WriteString(row("efficiency         ", "%.2f %%", op.Efficiency))
	sb.WriteString("\n\n")

	sb.WriteString(titleStyle.Render("Classification"))
	sb.WriteString("\n")
	sb.WriteString(labelStyle.Render("slip regime        ") + regimeStyle(c.SlipRegime).Render(c.SlipRegime))
	sb.WriteString("\n")
	sb.WriteString(labelStyle.Render("speed regime       ") + regimeStyle(c.SpeedRegime).Render(c.SpeedRegime))

	return panelStyle.Render(sb.String())
}

func regimeStyle(label string) lipgloss.Style {
	switch label {
	case motor.RegimeLowLoad, motor.SpeedNearSync, motor.SpeedNormal:
		return okStyle
	case motor.RegimeOverloaded, motor.SpeedLow, motor.SpeedUnclassified:
		return warnStyle
	default:
		return valueStyle
	}
}
