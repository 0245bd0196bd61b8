package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/calc/internal/model"
)

// tapeItem adapts model.Entry to bubbles/list.Item
type tapeItem struct{ model.Entry }

func (i tapeItem) Title() string       { return i.Expr + " = " + i.Result }
func (i tapeItem) Description() string { return i.At.Format("15:04:05") }
func (i tapeItem) FilterValue() string { return i.Expr }

// Custom delegate: one line per entry
type tapeDelegate struct{ st styles }

func (d tapeDelegate) Height() int                               { return 1 }
func (d tapeDelegate) Spacing() int                              { return 0 }
func (d tapeDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d tapeDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, _ := item.(tapeItem)
	line := d.st.muted.Render(it.Expr+" =") + " " + d.st.title.Render(it.Result)
	prefix := "  "
	if index == m.Index() {
		prefix = d.st.focused.UnsetWidth().Render(">") + " "
	}
	fmt.Fprint(w, prefix+line)
}

func newTapeList(entries []model.Entry, st styles) list.Model {
	items := make([]list.Item, 0, len(entries))
	for _, e := range entries {
		items = append(items, tapeItem{e})
	}
	l := list.New(items, tapeDelegate{st: st}, 0, 0)
	l.Title = "Tape"
	l.Styles.Title = st.title
	l.SetShowHelp(false)
	l.SetShowStatusBar(true)
	l.SetShowPagination(true)
	l.SetFilteringEnabled(false)
	l.SetStatusBarItemName("entry", "entries")
	if n := len(items); n > 0 {
		l.Select(n - 1)
	}
	return l
}
