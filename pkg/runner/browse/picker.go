package browse

import (
	"sort"

	"github.com/charmbracelet/bubbles/v2/list"
	tea "github.com/charmbracelet/bubbletea/v2"
)

type paletteItem string

func (p paletteItem) Title() string       { return string(p) }
func (p paletteItem) Description() string { return "" }
func (p paletteItem) FilterValue() string { return string(p) }

type palettesListedMsg struct{ items []list.Item }

func newPicker(width, height int) list.Model {
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	l := list.New([]list.Item{}, d, max(width, 20), max(height, 5))
	l.Title = "Palettes"
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	return l
}

func (m Model) listPalettes() tea.Cmd {
	svc, ctx := m.svc, m.ctx
	return func() tea.Msg {
		names, err := svc.Palettes(ctx)
		if err != nil {
			return errMsg{err}
		}
		sort.Strings(names)
		items := make([]list.Item, 0, len(names))
		for _, n := range names {
			items = append(items, paletteItem(n))
		}
		return palettesListedMsg{items}
	}
}
