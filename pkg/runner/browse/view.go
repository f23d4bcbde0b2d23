package browse

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/truncate"

	"tableflip.dev/rampeditor/pkg/address"
	"tableflip.dev/rampeditor/pkg/color"
	"tableflip.dev/rampeditor/pkg/glyph"
	"tableflip.dev/rampeditor/pkg/palette"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	faintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	panelStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1)
)

// View renders the page grid, the selected slot and the history.
func (m Model) View() string {
	switch m.mode {
	case modeHelp:
		return m.help.view()
	case modePicker:
		return m.picker.View()
	}
	if m.pal == nil {
		return m.statusLine()
	}
	b := m.pal.Bounds()
	header := titleStyle.Render(m.pal.Name()) + faintStyle.Render(fmt.Sprintf("  page %d/%d  %d colors", int(m.cursor.Page)+1, b.Pages, m.pal.Len()))

	body := lipgloss.JoinHorizontal(lipgloss.Top, m.grid(), "  ", panelStyle.Render(m.detail()))
	hist := faintStyle.Render("history") + "\n" + m.history.View()

	return lipgloss.JoinVertical(lipgloss.Left, header, "", body, "", hist, "", m.statusLine())
}

func (m Model) grid() string {
	lines, columns := m.visible()
	rows := make([]string, 0, lines)
	for l := 0; l < lines; l++ {
		var row strings.Builder
		for c := 0; c < columns; c++ {
			a := address.New(m.cursor.Page, uint8(l), uint8(c))
			row.WriteString(m.cell(a))
		}
		rows = append(rows, row.String())
	}
	return strings.Join(rows, "\n")
}

func (m Model) cell(a address.Address) string {
	selected := a == m.cursor
	if _, ok := m.pal.Expression(a); !ok {
		if selected {
			return "[" + glyph.Empty + "]"
		}
		return " " + faintStyle.Render(glyph.Empty) + " "
	}
	c, err := m.pal.Color(a)
	if err != nil {
		mark := " " + glyph.Broken + " "
		if selected {
			mark = "[" + glyph.Broken + "]"
		}
		return errorStyle.Render(mark)
	}
	style := lipgloss.NewStyle().Background(lipgloss.Color(c.Hex()))
	if selected {
		return style.Foreground(lipgloss.Color(contrast(c))).Render("[ ]")
	}
	return style.Render(strings.Repeat(" ", cellWidth))
}

func (m Model) detail() string {
	a := m.cursor
	lines := []string{titleStyle.Render(a.Hex())}
	x, ok := m.pal.Expression(a)
	if !ok {
		lines = append(lines, faintStyle.Render("empty"))
		return strings.Join(lines, "\n")
	}
	g := glyph.ForKind(x.Kind)
	lines = append(lines, fmt.Sprintf("%s %s", g.Symbol, g.Meaning), x.String())
	if c, err := m.pal.Color(a); err != nil {
		lines = append(lines, errorStyle.Render(err.Error()))
	} else {
		swatch := lipgloss.NewStyle().Background(lipgloss.Color(c.Hex())).Render("      ")
		lines = append(lines, swatch+" "+c.Hex())
	}
	return strings.Join(lines, "\n")
}

func (m Model) statusLine() string {
	if m.mode == modeInput {
		return m.input.View()
	}
	s := m.status
	if m.termWidth > 0 {
		s = truncate.StringWithTail(s, uint(m.termWidth), "…")
	}
	return statusStyle.Render(s)
}

func historyContent(p *palette.Palette) string {
	h := p.History()
	if len(h) == 0 {
		return "no history"
	}
	lines := make([]string, 0, len(h))
	for i := len(h) - 1; i >= 0; i-- {
		lines = append(lines, fmt.Sprintf("%3d  %s", i+1, h[i]))
	}
	if n := p.RedoDepth(); n > 0 {
		lines = append([]string{fmt.Sprintf("     %d undone", n)}, lines...)
	}
	return strings.Join(lines, "\n")
}

// contrast picks black or white text for legibility on c.
func contrast(c color.Color) string {
	if 299*int(c.R)+587*int(c.G)+114*int(c.B) > 128000 {
		return "#000000"
	}
	return "#ffffff"
}
