package ui

import (
	"strings"

	"photoboard/internal/board"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// CreateBoardModal asks for the title of a new board.
type CreateBoardModal struct {
	input textinput.Model
	err   string
}

// Ensure CreateBoardModal implements View.
var _ View = (*CreateBoardModal)(nil)

// NewCreateBoardModal creates a create-board modal.
func NewCreateBoardModal() *CreateBoardModal {
	ti := textinput.New()
	ti.Placeholder = "Board title"
	ti.CharLimit = 120
	ti.Width = 40
	ti.Focus()
	return &CreateBoardModal{input: ti}
}

// Init implements View.
func (m *CreateBoardModal) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements View.
func (m *CreateBoardModal) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return DismissModalMsg{} }
		case "enter":
			title := strings.TrimSpace(m.input.Value())
			if title == "" {
				m.err = board.ErrEmptyTitle.Message
				return m, nil
			}
			return m, func() tea.Msg { return CreateBoardMsg{Title: title} }
		}
	}
	m.err = ""
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements View.
func (m *CreateBoardModal) View() string {
	content := ModalStyles.Title.Render("Create board") + "\n\n"
	content += m.input.View() + "\n"
	if m.err != "" {
		content += ModalStyles.Error.Render(m.err)
	}
	content += "\n" + ModalStyles.Help.Render("Enter: create  Esc: cancel")
	return ModalStyles.BoxDefault.Render(content)
}
