package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/calc/internal/ui"
)

const buttonWidth = 7

type styles struct {
	title    lipgloss.Style
	display  lipgloss.Style
	pending  lipgloss.Style
	digit    lipgloss.Style
	operator lipgloss.Style
	function lipgloss.Style
	focused  lipgloss.Style
	gap      lipgloss.Style
	err      lipgloss.Style
	muted    lipgloss.Style
	panel    lipgloss.Style
}

// newStyles builds the lipgloss palette from a ui.Theme. The mono theme has
// no colors and falls back to bold/reverse.
func newStyles(t ui.Theme) styles {
	color := func(c string) lipgloss.TerminalColor {
		if c == "" {
			return lipgloss.NoColor{}
		}
		return lipgloss.Color(c)
	}
	button := lipgloss.NewStyle().Width(buttonWidth).Align(lipgloss.Center)
	border := lipgloss.RoundedBorder()
	if t.Name == "mono" {
		border = lipgloss.NormalBorder()
	}
	return styles{
		title: lipgloss.NewStyle().Bold(true),
		display: lipgloss.NewStyle().
			Border(border).
			BorderForeground(color(t.LipBorder)).
			Width(buttonWidth*5 - 2).
			Align(lipgloss.Right).
			Padding(0, 1),
		pending:  lipgloss.NewStyle().Faint(true),
		digit:    button.Foreground(color(t.LipDigit)),
		operator: button.Foreground(color(t.LipOperator)).Bold(true),
		function: button.Foreground(color(t.LipFunction)),
		focused:  button.Bold(true).Reverse(true).Foreground(color(t.LipFocus)),
		gap:      button,
		err:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		muted:    lipgloss.NewStyle().Faint(true),
		panel: lipgloss.NewStyle().
			Border(border).
			BorderForeground(color(t.LipBorder)).
			Padding(0, 1),
	}
}

func (s styles) button(label string) lipgloss.Style {
	switch label {
	case "":
		return s.gap
	case "+", "-", "*", "/", "=":
		return s.operator
	case "√", "log", "Cls", "Bck", "Close":
		return s.function
	}
	return s.digit
}
