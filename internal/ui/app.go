package ui

import (
	"fmt"
	"strings"

	"photoboard/internal/board"
	"photoboard/internal/logger"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Focus targets for the FocusManager.
const (
	FocusBoards = "boards"
	FocusImages = "images"
)

// AppModel is the root model. It owns the board state and routes messages
// between the lists, the URL input, overlays and the backend.
type AppModel struct {
	Mode       AppMode
	Board      *board.View
	API        BoardAPI
	Log        *logger.Logger
	KeyHandler *KeyHandler
	Overlays   OverlayStack
	Focus      *FocusManager
	Loader     *Loader
	Toasts     *Toasts
	Boards     *BoardListView
	Images     *ImageListView
	URLInput   textinput.Model
	urlHint    string
	width      int
	height     int
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return a.reload()
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.resize(msg.Width, msg.Height)
		cmd, _ := a.Overlays.UpdateTop(msg)
		return a, cmd
	case spinner.TickMsg:
		return a, a.Loader.Update(msg)
	case toastExpiredMsg:
		a.Toasts.Expire(msg.ID)
		return a, nil
	case tea.KeyMsg:
		return a, a.handleKey(msg)
	}
	if cmd, handled := a.handleMsg(msg); handled {
		return a, cmd
	}
	// Everything else (cursor blink and the like) goes to whatever has input.
	if cmd, ok := a.Overlays.UpdateTop(msg); ok {
		return a, cmd
	}
	var cmd tea.Cmd
	a.URLInput, cmd = a.URLInput.Update(msg)
	return a, cmd
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	if top, ok := a.Overlays.Peek(); ok {
		return a.place(top.View.View())
	}

	header := Styles.Title.Render("Photo board")
	if !a.Board.DetectUpdates() {
		p := a.pendingCounts()
		header += "  " + Styles.Pending.Render(fmt.Sprintf("unsaved: %s", p))
	}

	bw, iw := a.panelWidths()
	panels := lipgloss.JoinHorizontal(lipgloss.Top,
		renderPanel(a.Boards.View(), bw, a.Focus.Is(FocusBoards) && a.Mode == ModeBrowse),
		renderPanel(a.Images.View(), iw, a.Focus.Is(FocusImages) && a.Mode == ModeBrowse),
	)

	input := a.URLInput.View()
	if a.urlHint != "" {
		input += "\n" + Styles.Error.Render(a.urlHint)
	}

	sections := []string{header, panels, input}
	if v := a.Loader.View(); v != "" {
		sections = append(sections, v)
	}
	if v := a.Toasts.View(); v != "" {
		sections = append(sections, v)
	}
	if a.KeyHandler != nil && a.KeyHandler.LeaderWaiting {
		sections = append(sections, RenderKeybindHelp(a.KeyHandler, a.Mode))
	} else {
		sections = append(sections, Styles.Hint.Render(a.footerHint()))
	}
	return strings.Join(sections, "\n")
}

func (a *AppModel) footerHint() string {
	if a.Mode == ModeInput {
		return "Enter: add image  Esc: back"
	}
	return "SPC: commands  a: add image  Tab: switch panel  Enter: select  q: quit"
}

// place centers content in the window once its size is known.
func (a *AppModel) place(content string) string {
	if a.width == 0 || a.height == 0 {
		return content
	}
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, content)
}

// panelWidths splits the window between the board and image panels.
func (a *AppModel) panelWidths() (boards, images int) {
	if a.width == 0 {
		return 30, 60
	}
	boards = a.width / 3
	if boards < 20 {
		boards = 20
	}
	images = a.width - boards - 4
	if images < 20 {
		images = 20
	}
	return boards, images
}

// resize lays out the lists for a new window size.
func (a *AppModel) resize(width, height int) {
	a.width = width
	a.height = height
	bw, iw := a.panelWidths()
	// header, input with hint, loader, toasts and footer
	h := height - 12
	if h < 5 {
		h = 5
	}
	a.Boards.SetSize(bw-2, h)
	a.Images.SetSize(iw-2, h)
	a.URLInput.Width = width - 4
	a.refreshLists()
}

// refreshLists rebuilds both lists from the board state.
func (a *AppModel) refreshLists() {
	a.Boards.Refresh(a.Board)
	a.Images.Refresh(a.Board)
}

func (a *AppModel) pendingCounts() pendingCounts {
	return pendingCounts{
		Boards: len(a.Board.DirtyBoards()),
		Images: len(a.Board.DirtyImages()),
	}
}

// NewAppModel creates the root application model.
func NewAppModel(api BoardAPI, view *board.View, log *logger.Logger) *AppModel {
	if log == nil {
		log = logger.Discard()
	}
	reg := NewKeybindRegistry()
	reg.Bind("q", func() tea.Msg { return QuitMsg{} }, "Quit")
	reg.Bind("a", func() tea.Msg { return FocusInputMsg{} }, "Add image", ModeBrowse)
	reg.Bind("SPC q", func() tea.Msg { return QuitMsg{} }, "Quit")
	reg.Bind("SPC b c", func() tea.Msg { return ShowCreateBoardMsg{} }, "Create board")
	reg.Bind("SPC s", func() tea.Msg { return SaveMsg{} }, "Save")
	reg.Bind("SPC d", func() tea.Msg { return ShowDiscardMsg{} }, "Discard changes")
	reg.Bind("SPC t", func() tea.Msg { return LoadTagsMsg{} }, "Load tags")
	reg.Bind("SPC r", func() tea.Msg { return RefreshMsg{} }, "Reload")
	reg.Bind("SPC a", func() tea.Msg { return FocusInputMsg{} }, "Add image")

	ti := textinput.New()
	ti.Prompt = "Image URL: "
	ti.Placeholder = "https://example.com/photo.jpg"
	ti.Width = 60

	return &AppModel{
		Mode:       ModeBrowse,
		Board:      view,
		API:        api,
		Log:        log,
		KeyHandler: NewKeyHandler(reg),
		Focus:      &FocusManager{Current: FocusBoards, Order: []string{FocusBoards, FocusImages}},
		Loader:     NewLoader(),
		Toasts:     NewToasts(),
		Boards:     NewBoardListView(),
		Images:     NewImageListView(),
		URLInput:   ti,
	}
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}
