package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/calc/internal/model"
	"github.com/idilsaglam/calc/internal/ui"
)

// Run starts the interactive calculator. history is shown in the tape pane;
// the entries recorded during this session are returned on quit.
func Run(history []model.Entry, theme ui.Theme) ([]model.Entry, error) {
	p := tea.NewProgram(newModel(history, theme), tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}
	fm, ok := finalModel.(modelTUI)
	if !ok {
		return nil, nil
	}
	return fm.calc.Tape(), nil
}
