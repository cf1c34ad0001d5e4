package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ConfirmModal is a generic confirmation modal.
// Enter or y confirms; Esc or n cancels.
type ConfirmModal struct {
	Title       string
	Label       string
	Details     string // Optional warning details (e.g., "2 image(s) not saved")
	OnConfirm   func() tea.Msg
	boxStyle    lipgloss.Style
	titleStyle  lipgloss.Style
	detailStyle lipgloss.Style
}

// Ensure ConfirmModal implements View.
var _ View = (*ConfirmModal)(nil)

// NewConfirmModal creates a generic confirmation modal.
func NewConfirmModal(title, label string, onConfirm func() tea.Msg) *ConfirmModal {
	return &ConfirmModal{
		Title:       title,
		Label:       label,
		OnConfirm:   onConfirm,
		boxStyle:    ModalStyles.BoxWarning,
		titleStyle:  ModalStyles.TitleWarning,
		detailStyle: ModalStyles.Details,
	}
}

// WithDetails adds warning details to the modal.
func (m *ConfirmModal) WithDetails(details string) *ConfirmModal {
	m.Details = details
	return m
}

// NewDiscardConfirmModal asks before dropping unsaved boards and images.
func NewDiscardConfirmModal(p pendingCounts) *ConfirmModal {
	return NewConfirmModal(
		"Discard changes?",
		"Unsaved boards and images will be reloaded from the server.",
		func() tea.Msg { return DiscardMsg{} },
	).WithDetails(p.String())
}

// NewQuitConfirmModal asks before quitting with unsaved changes.
func NewQuitConfirmModal(p pendingCounts) *ConfirmModal {
	return NewConfirmModal(
		"Quit without saving?",
		"Unsaved boards and images will be lost.",
		func() tea.Msg { return ConfirmQuitMsg{} },
	).WithDetails(p.String())
}

// pendingCounts summarizes unsaved work for confirmation dialogs.
type pendingCounts struct {
	Boards int
	Images int
}

func (p pendingCounts) String() string {
	return fmt.Sprintf("%d board(s), %d image(s) not saved", p.Boards, p.Images)
}

// Init implements View.
func (m *ConfirmModal) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (m *ConfirmModal) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "n":
			return m, func() tea.Msg { return DismissModalMsg{} }
		case "enter", "y":
			if m.OnConfirm != nil {
				return m, m.OnConfirm
			}
		}
	}
	return m, nil
}

// View implements View.
func (m *ConfirmModal) View() string {
	content := m.titleStyle.Render(m.Title) + "\n\n"
	content += ModalStyles.Label.Render(m.Label)
	if m.Details != "" {
		content += "\n" + m.detailStyle.Render(m.Details)
	}
	content += "\n\n" + ModalStyles.Help.Render("y/Enter: confirm  Esc: cancel")
	return m.boxStyle.Render(content)
}
