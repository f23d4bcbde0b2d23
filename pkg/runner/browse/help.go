package browse

import (
	_ "embed"
	"regexp"
	"strings"

	"github.com/charmbracelet/bubbles/v2/viewport"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss/v2"
)

//go:embed help.md
var helpMarkdown string

// helpModel renders the key reference inside a bordered viewport.
type helpModel struct {
	viewport viewport.Model
	width    int
	height   int

	frame lipgloss.Style
	err   error
}

func newHelp(width, height int) helpModel {
	vp := viewport.New(
		viewport.WithWidth(max(width, 1)),
		viewport.WithHeight(max(height, 1)),
	)
	h := helpModel{
		viewport: vp,
		frame:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()),
	}
	h.setSize(width, height)
	return h
}

func (h helpModel) update(msg tea.Msg) (helpModel, tea.Cmd) {
	vp, cmd := h.viewport.Update(msg)
	h.viewport = vp
	return h, cmd
}

func (h helpModel) view() string {
	body := h.viewport.View()
	if body == "" && h.err != nil {
		body = "help unavailable: " + h.err.Error()
	}
	return h.frame.Width(h.width).Height(h.height).Render(body)
}

// setSize fits the overlay to width and height and re-renders the markdown.
func (h *helpModel) setSize(width, height int) {
	width = max(width, 32)
	height = max(height, 8)
	if h.width == width && h.height == height {
		return
	}
	h.width = width
	h.height = height

	innerWidth := max(width-h.frame.GetHorizontalFrameSize(), 1)
	innerHeight := max(height-h.frame.GetVerticalFrameSize(), 1)
	h.viewport.SetWidth(innerWidth)
	h.viewport.SetHeight(innerHeight)
	h.render(innerWidth)
}

func (h *helpModel) render(wrap int) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(max(wrap, 10)),
	)
	if err != nil {
		h.err = err
		h.viewport.SetContent("help unavailable: " + err.Error())
		return
	}
	content, err := renderer.Render(strings.TrimSpace(helpMarkdown))
	if err != nil {
		h.err = err
		h.viewport.SetContent("help unavailable: " + err.Error())
		return
	}
	h.err = nil
	h.viewport.SetContent(stripANSI(content))
	h.viewport.SetYOffset(0)
}

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;:]*[A-Za-z~]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}
