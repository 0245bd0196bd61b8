package ui

import "strings"

// Theme bundles palette + symbols + box borders.
// The ANSI fields feed the plain CLI output; the Lip* fields are
// lipgloss colors for the interactive views.
type Theme struct {
	Name                                   string
	Title, Muted, Accent, Success, Error   string
	CornerTL, CornerTR, CornerBL, CornerBR string
	H, V                                   string
	SymEquals                              string

	LipDigit, LipOperator, LipFunction, LipFocus, LipBorder string
}

var current Theme

func init() { SetTheme("") }

// SetTheme selects classic (default), neon or mono.
func SetTheme(name string) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "neon":
		current = Theme{
			Name:  "neon",
			Title: "\033[95m", // bright magenta
			Muted: fgGray, Accent: "\033[96m",
			Success: fgGreen, Error: fgRed,
			CornerTL: "╭", CornerTR: "╮", CornerBL: "╰", CornerBR: "╯",
			H: "─", V: "│",
			SymEquals: "⇒",
			LipDigit: "15", LipOperator: "213", LipFunction: "51", LipFocus: "201", LipBorder: "93",
		}
	case "mono":
		disableColor = true
		current = Theme{
			Name:     "mono",
			CornerTL: "+", CornerTR: "+", CornerBL: "+", CornerBR: "+",
			H: "-", V: "|",
			SymEquals: "=",
		}
	default: // classic
		current = Theme{
			Name:  "classic",
			Title: bold, Muted: fgGray, Accent: fgBlue,
			Success: fgGreen, Error: fgRed,
			CornerTL: "┌", CornerTR: "┐", CornerBL: "└", CornerBR: "┘",
			H: "─", V: "│",
			SymEquals: "=",
			LipDigit: "252", LipOperator: "214", LipFunction: "12", LipFocus: "42", LipBorder: "8",
		}
	}
}

// Expose what renderers need
func Current() Theme { return current }
