package ui

import (
	"photoboard/internal/board"
	"photoboard/internal/ui/textutil"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// boardItem implements list.Item for a board.
type boardItem struct {
	board.Board
	Status   board.Status
	Selected bool
	width    int
}

func (b boardItem) FilterValue() string { return b.Board.Title }

func (b boardItem) Title() string {
	marker := "  "
	if b.Selected {
		marker = "● "
	}
	title := truncate(b.Board.Title, b.width-4)
	if b.Status.Dirty() {
		return marker + title + " " + Styles.Pending.Render("*")
	}
	return marker + title
}

func (b boardItem) Description() string { return "" }

// BoardListView lists boards; Enter selects the highlighted one.
type BoardListView struct {
	list  list.Model
	width int
}

// Ensure BoardListView implements View.
var _ View = (*BoardListView)(nil)

// NewBoardListView creates an empty board list.
func NewBoardListView() *BoardListView {
	l := list.New(nil, NewCompactListDelegate(), 0, 0)
	l.Title = "Boards"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()
	l.Styles.Title = Styles.Title
	l.Styles.NoItems = Styles.Empty
	return &BoardListView{list: l}
}

// SetSize sets the list dimensions.
func (v *BoardListView) SetSize(width, height int) {
	v.width = width
	v.list.SetSize(width, height)
}

// Refresh rebuilds the items from view, keeping the cursor on the selected board.
func (v *BoardListView) Refresh(view *board.View) {
	selected := view.SelectedBoard().ID
	boards := view.Boards()
	items := make([]list.Item, len(boards))
	cursor := v.list.Index()
	for i, b := range boards {
		items[i] = boardItem{
			Board:    b,
			Status:   view.BoardStatus(b.ID),
			Selected: b.ID == selected,
			width:    v.width,
		}
		if b.ID == selected {
			cursor = i
		}
	}
	v.list.SetItems(items)
	if cursor >= 0 && cursor < len(items) {
		v.list.Select(cursor)
	}
}

// Highlighted returns the board under the cursor.
func (v *BoardListView) Highlighted() (board.Board, bool) {
	item, ok := v.list.SelectedItem().(boardItem)
	if !ok {
		return board.Board{}, false
	}
	return item.Board, true
}

// Init implements View.
func (v *BoardListView) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (v *BoardListView) Update(msg tea.Msg) (View, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && k.String() == "enter" {
		if b, ok := v.Highlighted(); ok {
			return v, func() tea.Msg { return SelectBoardMsg{ID: b.ID} }
		}
		return v, nil
	}
	var cmd tea.Cmd
	v.list, cmd = v.list.Update(msg)
	return v, cmd
}

// View implements View.
func (v *BoardListView) View() string {
	return v.list.View()
}

// renderPanel wraps content in the panel border, highlighted when focused.
func renderPanel(content string, width int, focused bool) string {
	style := Styles.Panel
	if focused {
		style = Styles.PanelFocused
	}
	return style.Width(width).Render(lipgloss.NewStyle().MaxWidth(width).Render(content))
}

// truncate shortens s to width columns. Unknown sizes (before the first
// WindowSizeMsg) leave s untouched.
func truncate(s string, width int) string {
	if width <= 0 {
		return s
	}
	return textutil.Truncate(s, width)
}
