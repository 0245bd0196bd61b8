package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/calc/internal/calc"
	"github.com/idilsaglam/calc/internal/model"
	"github.com/idilsaglam/calc/internal/ui"
)

type modelTUI struct {
	calc   *calc.Calculator
	cursor calc.Cell
	st     styles
	help   help.Model

	tape     list.Model
	showTape bool
	recorded int // session entries already copied into tape

	err           string
	width, height int
}

func newModel(history []model.Entry, theme ui.Theme) modelTUI {
	st := newStyles(theme)
	h := help.New()
	h.Styles.ShortKey = st.muted
	h.Styles.ShortDesc = st.muted
	return modelTUI{
		calc:   calc.New(),
		cursor: calc.Cell{Row: 1, Col: 0},
		st:     st,
		help:   h,
		tape:   newTapeList(history, st),
		width:  80,
		height: 24,
	}
}

// Update and View implement Bubble Tea's Model on modelTUI
func (m modelTUI) Init() tea.Cmd { return nil }

func (m modelTUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.tape.SetSize(tapeWidth, max(msg.Height-4, 5))
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, keys.Tape):
			m.showTape = !m.showTape
			return m, nil
		case m.showTape && key.Matches(msg, keys.Up, keys.Down):
			var cmd tea.Cmd
			m.tape, cmd = m.tape.Update(msg)
			return m, cmd
		case key.Matches(msg, keys.Up):
			m.cursor = calc.Step(m.cursor, -1, 0)
		case key.Matches(msg, keys.Down):
			m.cursor = calc.Step(m.cursor, 1, 0)
		case key.Matches(msg, keys.Left):
			m.cursor = calc.Step(m.cursor, 0, -1)
		case key.Matches(msg, keys.Right):
			m.cursor = calc.Step(m.cursor, 0, 1)
		case key.Matches(msg, keys.Press):
			return m.press(calc.LabelAt(m.cursor))
		case key.Matches(msg, keys.Equals):
			return m.press("=")
		case key.Matches(msg, keys.Clear):
			return m.press("Cls")
		case key.Matches(msg, keys.Back):
			return m.press("Bck")
		case key.Matches(msg, keys.Sqrt):
			return m.press("√")
		case key.Matches(msg, keys.Log):
			return m.press("log")
		default:
			if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 {
				if _, err := calc.ParseLabel(string(msg.Runes)); err == nil {
					return m.press(string(msg.Runes))
				}
			}
		}
	}
	return m, nil
}

// press runs the button with label and moves focus onto it.
func (m modelTUI) press(label string) (tea.Model, tea.Cmd) {
	cmd, err := calc.ParseLabel(label)
	if err != nil {
		return m, nil
	}
	if c, ok := calc.Find(label); ok {
		m.cursor = c
	}
	if cmd.IsClose() {
		return m, tea.Quit
	}
	if err := m.calc.Do(cmd); err != nil {
		m.err = err.Error()
		return m, nil
	}
	m.err = ""
	m.syncTape()
	return m, nil
}

func (m *modelTUI) syncTape() {
	session := m.calc.Tape()
	for _, e := range session[m.recorded:] {
		m.tape.InsertItem(len(m.tape.Items()), tapeItem{e})
	}
	if len(session) > m.recorded {
		m.tape.Select(len(m.tape.Items()) - 1)
	}
	m.recorded = len(session)
}

const tapeWidth = 32

func (m modelTUI) View() string {
	var b strings.Builder

	b.WriteString(m.st.title.Render("Calculator"))
	b.WriteString("  ")
	if op, v, ok := m.calc.State().Pending(); ok {
		b.WriteString(m.st.pending.Render(calc.FormatResult(v) + " " + op.String()))
	}
	b.WriteString("\n")
	b.WriteString(m.st.display.Render(m.calc.Display()))
	b.WriteString("\n")
	b.WriteString(m.gridView())
	b.WriteString("\n")
	if m.err != "" {
		b.WriteString(m.st.err.Render("✖ " + m.err))
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(keys))

	content := b.String()
	if m.showTape {
		content = lipgloss.JoinHorizontal(lipgloss.Top, content, "  ", m.tapeView())
	}
	return m.st.panel.Render(content)
}

func (m modelTUI) gridView() string {
	rows := make([]string, 0, len(calc.Grid))
	for r, row := range calc.Grid {
		cells := make([]string, 0, len(row))
		for c, label := range row {
			style := m.st.button(label)
			if (calc.Cell{Row: r, Col: c}) == m.cursor && label != "" {
				style = m.st.focused
			}
			cells = append(cells, style.Render(label))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m modelTUI) tapeView() string {
	if len(m.tape.Items()) == 0 {
		return m.st.muted.Width(tapeWidth).Render("Tape is empty")
	}
	return m.tape.View()
}
