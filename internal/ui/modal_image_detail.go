package ui

import (
	"fmt"
	"strings"

	"photoboard/internal/board"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ImageDetailModal shows every tag of an image with scrollback.
// Esc dismisses.
type ImageDetailModal struct {
	image    board.Image
	viewport viewport.Model
}

// Ensure ImageDetailModal implements View.
var _ View = (*ImageDetailModal)(nil)

const (
	defaultDetailWidth  = 60
	defaultDetailHeight = 12
)

// NewImageDetailModal creates a detail view for img.
func NewImageDetailModal(img board.Image) *ImageDetailModal {
	vp := viewport.New(defaultDetailWidth, defaultDetailHeight)
	vp.Style = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(0, 1)
	m := &ImageDetailModal{image: img, viewport: vp}
	m.refreshContent()
	return m
}

// Init implements View.
func (m *ImageDetailModal) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (m *ImageDetailModal) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "esc" {
			return m, func() tea.Msg { return DismissModalMsg{} }
		}
	case tea.WindowSizeMsg:
		w := msg.Width - 8
		h := msg.Height/2 + 2
		if w < 40 {
			w = 40
		}
		if h < 8 {
			h = 8
		}
		m.viewport.Width = w
		m.viewport.Height = h
		m.refreshContent()
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View implements View.
func (m *ImageDetailModal) View() string {
	header := Styles.Title.Render("Image tags") + Styles.Muted.Render("  Esc: close")
	return header + "\n" + m.viewport.View()
}

// refreshContent rebuilds the viewport content from the image tags.
func (m *ImageDetailModal) refreshContent() {
	lines := []string{
		Styles.Normal.Render(m.image.URL),
		"",
	}
	for _, tag := range m.image.Tags {
		lines = append(lines, fmt.Sprintf("%-24s %.2f", tag.Label, tag.Confidence))
	}
	if len(m.image.Tags) == 0 {
		lines = append(lines, Styles.Empty.Render("No tags. Press SPC t to load them."))
	}
	m.viewport.SetContent(strings.Join(lines, "\n"))
	m.viewport.GotoTop()
}
