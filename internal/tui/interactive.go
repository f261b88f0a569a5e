// Package tui is the interactive terminal front end: a parameter entry
// form and a results view with terminal charts.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/motorlab/internal/motor"
	"github.com/san-kum/motorlab/internal/report"
)

var (
	cyan   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	green  = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	red    = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

type state int

const (
	stateForm state = iota
	stateResults
)

type field struct {
	name  string
	unit  string
	value float64
}

type chart int

const (
	chartTorque chart = iota
	chartSlip
	chartEfficiency
)

type model struct {
	state   state
	fields  []field
	cursor  int
	editing bool
	editBuf string
	errMsg  string

	params motor.Parameters
	point  motor.OperatingPoint
	class  motor.Classification
	chart  chart

	width  int
	height int
}

// New builds the interactive app seeded with the given parameters.
func New(p motor.Parameters) tea.Model {
	return model{
		state: stateForm,
		fields: []field{
			{"frequency", "Hz", p.Frequency},
			{"poles", "", float64(p.Poles)},
			{"voltage", "V", p.LineVoltage},
			{"current", "A", p.LineCurrent},
			{"rotor speed", "RPM", p.RotorSpeed},
			{"stator resistance", "Ohm", p.R1},
			{"stator reactance", "Ohm", p.X1},
			{"rotor resistance", "Ohm", p.R2},
			{"rotor reactance", "Ohm", p.X2},
			{"turns ratio", "", p.TurnsRatio},
			{"power factor", "", p.PowerFactor},
		},
		width:  80,
		height: 24,
	}
}

// Run starts the interactive program and blocks until it exits.
func Run(p motor.Parameters) error {
	prog := tea.NewProgram(New(p))
	_, err := prog.Run()
	return err
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		if m.state == stateForm {
			return m.updateForm(msg)
		}
		return m.updateResults(msg)
	}
	return m, nil
}

func (m model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.editing {
		switch msg.String() {
		case "enter":
			v, err := strconv.ParseFloat(strings.TrimSpace(m.editBuf), 64)
			if err != nil {
				m.errMsg = fmt.Sprintf("not a number: %s", m.editBuf)
			} else {
				m.fields[m.cursor].value = v
				m.errMsg = ""
			}
			m.editing = false
			m.editBuf = ""
		case "esc":
			m.editing = false
			m.editBuf = ""
		case "backspace":
			if len(m.editBuf) > 0 {
				m.editBuf = m.editBuf[:len(m.editBuf)-1]
			}
		default:
			s := msg.String()
			if len(s) == 1 && (s[0] >= '0' && s[0] <= '9' || s[0] == '.' || s[0] == '-') {
				m.editBuf += s
			}
		}
		return m, nil
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.fields)-1 {
			m.cursor++
		}
	case "enter", "e":
		m.editing = true
		m.editBuf = ""
		m.errMsg = ""
	case "a":
		p := m.parameters()
		if err := p.Validate(); err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		m.params = p
		m.point = motor.Evaluate(p)
		m.class = motor.Classify(m.point)
		m.state = stateResults
		m.errMsg = ""
	}
	return m, nil
}

func (m model) updateResults(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "b", "esc":
		m.state = stateForm
	case "t":
		m.chart = chartTorque
	case "s":
		m.chart = chartSlip
	case "e":
		m.chart = chartEfficiency
	}
	return m, nil
}

func (m model) parameters() motor.Parameters {
	return motor.Parameters{
		Frequency:   m.fields[0].value,
		Poles:       int(m.fields[1].value),
		LineVoltage: m.fields[2].value,
		LineCurrent: m.fields[3].value,
		RotorSpeed:  m.fields[4].value,
		R1:          m.fields[5].value,
		X1:          m.fields[6].value,
		R2:          m.fields[7].value,
		X2:          m.fields[8].value,
		TurnsRatio:  m.fields[9].value,
		PowerFactor: m.fields[10].value,
	}
}

func (m model) View() string {
	if m.state == stateResults {
		return m.viewResults()
	}
	return m.viewForm()
}

func (m model) viewForm() string {
	var sb strings.Builder
	sb.WriteString(cyan.Render("motorlab") + dim.Render("  induction motor parameters") + "\n\n")

	for i, f := range m.fields {
		marker := "  "
		style := white
		if i == m.cursor {
			marker = green.Render("> ")
			style = cyan
		}
		val := fmt.Sprintf("%g", f.value)
		if i == m.cursor && m.editing {
			val = yellow.Render(m.editBuf + "█")
		}
		label := f.name
		if f.unit != "" {
			label += " (" + f.unit + ")"
		}
		sb.WriteString(fmt.Sprintf("%s%-26s %s\n", marker, style.Render(label), val))
	}

	sb.WriteString("\n")
	if m.errMsg != "" {
		sb.WriteString(red.Render(m.errMsg) + "\n")
	}
	sb.WriteString(dim.Render("↑/↓ move · enter edit · a analyze · q quit"))
	return sb.String()
}

func (m model) viewResults() string {
	var sb strings.Builder
	sb.WriteString(report.Console(m.point, m.class))
	sb.WriteString("\n\n")
	sb.WriteString(m.viewChart())
	sb.WriteString("\n\n")
	sb.WriteString(dim.Render("t torque · s slip · e efficiency · b back · q quit"))
	return sb.String()
}

func (m model) viewChart() string {
	width := m.width - 12
	if width < 30 {
		width = 30
	}
	if width > 100 {
		width = 100
	}

	var data []float64
	var caption string
	switch m.chart {
	case chartSlip:
		caption = "slip (%) vs rotor speed"
		for _, s := range motor.SlipSpeedSweep(m.params).Collect() {
			data = append(data, s.Point.Slip*100)
		}
	case chartEfficiency:
		caption = "efficiency (%) vs output power"
		for _, s := range motor.EfficiencyPowerSweep(m.params).Collect() {
			data = append(data, s.Point.Efficiency)
		}
	default:
		caption = "torque (Nm) vs rotor speed"
		for _, s := range motor.TorqueSpeedSweep(m.params).Collect() {
			data = append(data, s.Point.Torque)
		}
	}

	return asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	)
}
