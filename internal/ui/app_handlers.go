package ui

import (
	"strings"

	"photoboard/internal/apperr"
	"photoboard/internal/board"

	tea "github.com/charmbracelet/bubbletea"
)

// waitForSave is shown for edits attempted while a save is in flight.
const waitForSave = "Wait until saving finishes"

// saving reports whether a save is in flight. The reload that follows a
// save replaces everything outside the saved snapshot, so edits wait.
func (a *AppModel) saving() bool {
	return a.Loader.Shown(string(OpSave))
}

// begin shows the loader handle for op.
func (a *AppModel) begin(op Op) tea.Cmd {
	return a.Loader.Show(string(op), op.statusMessage())
}

// reload fetches boards and images. Both loads drop unsaved changes.
func (a *AppModel) reload() tea.Cmd {
	return tea.Batch(
		a.begin(OpLoadBoards),
		a.begin(OpLoadImages),
		loadBoardsCmd(a.API),
		loadImagesCmd(a.API),
	)
}

// handleMsg handles application messages. It reports false for messages it
// does not know.
func (a *AppModel) handleMsg(msg tea.Msg) (tea.Cmd, bool) {
	switch msg := msg.(type) {
	case BoardsLoadedMsg:
		a.Loader.Hide(string(OpLoadBoards))
		applied := a.Board.ApplyBoards(msg.Boards)
		a.Log.Debug("boards loaded", "count", len(msg.Boards), "applied", applied)
		a.refreshLists()
		return nil, true

	case ImagesLoadedMsg:
		a.Loader.Hide(string(OpLoadImages))
		a.Board.ApplyImages(msg.Images)
		a.Log.Debug("images loaded", "count", len(msg.Images))
		a.refreshLists()
		return nil, true

	case TagsLoadedMsg:
		a.Loader.Hide(string(OpLoadTags))
		merged := a.Board.ApplyTags(msg.Images)
		a.Log.Debug("tags loaded", "count", len(msg.Images), "merged", merged)
		a.refreshLists()
		return nil, true

	case ImageProbedMsg:
		a.Loader.Hide(string(OpAddImage))
		if a.saving() {
			return a.Toasts.Info(waitForSave), true
		}
		if !msg.Exists {
			return a.Toasts.Error(board.ErrInvalidImage.Message), true
		}
		img, err := a.Board.AddImage(msg.URL)
		if err != nil {
			if isDuplicate(err) {
				a.clearInput()
			}
			return a.Toasts.Error(userMessage(err)), true
		}
		a.Log.Debug("image added", "id", img.ID, "board", img.Board, "url", img.URL)
		a.clearInput()
		a.refreshLists()
		return nil, true

	case SavedMsg:
		a.Loader.Hide(string(OpSave))
		a.Board.Reconcile(msg.Result.BoardIDs)
		a.Log.Info("saved", "boards", len(msg.Result.Boards), "images", len(msg.Result.Images))
		return tea.Batch(a.Toasts.Success("Saving was successfully."), a.reload()), true

	case RequestFailedMsg:
		a.Loader.Hide(string(msg.Op))
		if len(msg.BoardIDs) > 0 {
			a.Board.Reconcile(msg.BoardIDs)
			a.refreshLists()
		}
		a.Log.WithError(msg.Err).Error("request failed", "op", string(msg.Op), "code", string(apperr.CodeOf(msg.Err)))
		return a.Toasts.Error(failureMessage(msg)), true

	case SelectBoardMsg:
		if a.Board.SelectBoard(msg.ID) {
			a.refreshLists()
			a.Focus.SetFocus(FocusImages)
		}
		return nil, true

	case ShowCreateBoardMsg:
		if a.saving() {
			return a.Toasts.Info(waitForSave), true
		}
		modal := NewCreateBoardModal()
		a.Overlays.Push(Overlay{View: modal})
		return modal.Init(), true

	case CreateBoardMsg:
		a.Overlays.Pop()
		if a.saving() {
			return a.Toasts.Info(waitForSave), true
		}
		b, err := a.Board.CreateBoard(msg.Title)
		if err != nil {
			return a.Toasts.Error(userMessage(err)), true
		}
		a.Log.Debug("board created", "id", b.ID, "title", b.Title)
		a.refreshLists()
		return nil, true

	case DismissModalMsg:
		a.Overlays.Pop()
		return nil, true

	case FocusInputMsg:
		a.Mode = ModeInput
		return a.URLInput.Focus(), true

	case ShowImageDetailMsg:
		img, ok := a.Images.Highlighted()
		if !ok || !board.HasMoreTags(img) {
			return nil, true
		}
		modal := NewImageDetailModal(img)
		if a.width > 0 {
			modal.Update(tea.WindowSizeMsg{Width: a.width, Height: a.height})
		}
		a.Overlays.Push(Overlay{View: modal})
		return modal.Init(), true

	case LoadTagsMsg:
		images := a.Board.Images()
		if len(images) == 0 {
			return a.Toasts.Info("No images to tag"), true
		}
		return tea.Batch(a.begin(OpLoadTags), loadTagsCmd(a.API, images)), true

	case SaveMsg:
		if a.Loader.Shown(string(OpSave)) {
			return nil, true
		}
		if a.Board.DetectUpdates() {
			return a.Toasts.Info("Nothing to save"), true
		}
		return tea.Batch(a.begin(OpSave), saveCmd(a.API, a.Board.Pending())), true

	case ShowDiscardMsg:
		if a.Board.DetectUpdates() {
			return a.Toasts.Info("Nothing to discard"), true
		}
		a.Overlays.Push(Overlay{View: NewDiscardConfirmModal(a.pendingCounts())})
		return nil, true

	case DiscardMsg:
		a.Overlays.Pop()
		a.Log.Info("discarding changes", "boards", len(a.Board.DirtyBoards()), "images", len(a.Board.DirtyImages()))
		return a.reload(), true

	case RefreshMsg:
		if !a.Board.DetectUpdates() {
			a.Overlays.Push(Overlay{View: NewDiscardConfirmModal(a.pendingCounts())})
			return nil, true
		}
		return a.reload(), true

	case QuitMsg:
		if a.Board.DetectUpdates() {
			return tea.Quit, true
		}
		a.Overlays.Push(Overlay{View: NewQuitConfirmModal(a.pendingCounts())})
		return nil, true

	case ConfirmQuitMsg:
		a.Overlays.Pop()
		return tea.Quit, true
	}
	return nil, false
}

// handleKey routes a key press: ctrl+c always quits, then the top overlay,
// the URL input, the keybind system and finally the focused list.
func (a *AppModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		return tea.Quit
	}
	if a.Overlays.Len() > 0 {
		cmd, _ := a.Overlays.UpdateTop(msg)
		return cmd
	}
	if a.Mode == ModeInput {
		return a.handleInputKey(msg)
	}
	if a.KeyHandler != nil {
		if consumed, cmd := a.KeyHandler.Handle(msg); consumed {
			return cmd
		}
	}
	switch msg.String() {
	case "tab":
		a.Focus.Next()
		return nil
	case "shift+tab":
		a.Focus.Prev()
		return nil
	}
	var cmd tea.Cmd
	if a.Focus.Is(FocusImages) {
		_, cmd = a.Images.Update(msg)
	} else {
		_, cmd = a.Boards.Update(msg)
	}
	return cmd
}

func (a *AppModel) handleInputKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		a.Mode = ModeBrowse
		a.URLInput.Blur()
		return nil
	case "enter":
		return a.submitURL()
	}
	var cmd tea.Cmd
	a.URLInput, cmd = a.URLInput.Update(msg)
	a.urlHint = ""
	if v := a.URLInput.Value(); strings.TrimSpace(v) != "" && board.CheckURL(v) {
		a.urlHint = board.ErrMissingScheme.Message
	}
	return cmd
}

// submitURL validates the input locally and starts the existence probe.
func (a *AppModel) submitURL() tea.Cmd {
	url := strings.TrimSpace(a.URLInput.Value())
	if url == "" || a.Loader.Shown(string(OpAddImage)) {
		return nil
	}
	if a.saving() {
		return a.Toasts.Info(waitForSave)
	}
	if err := a.Board.PrepareImage(url); err != nil {
		if isDuplicate(err) {
			a.clearInput()
		}
		return a.Toasts.Error(userMessage(err))
	}
	return tea.Batch(a.begin(OpAddImage), probeImageCmd(a.API, url))
}

func (a *AppModel) clearInput() {
	a.URLInput.SetValue("")
	a.urlHint = ""
}

// isDuplicate compares by identity: apperr.Is matches every validation error.
func isDuplicate(err error) bool {
	return err == board.ErrDuplicateImage
}

// userMessage returns err without the phase and operation prefixes added on
// the way up.
func userMessage(err error) string {
	var ae *apperr.Error
	if apperr.As(err, &ae) {
		return ae.Error()
	}
	return err.Error()
}

// failureMessage is the toast text for a failed request.
func failureMessage(msg RequestFailedMsg) string {
	var what string
	switch msg.Op {
	case OpLoadBoards:
		what = "Loading boards failed"
	case OpLoadImages:
		what = "Loading images failed"
	case OpLoadTags:
		what = "Loading tags failed"
	case OpAddImage:
		what = "Adding image failed"
	case OpSave:
		what = "Saving failed"
	default:
		what = "Request failed"
	}
	return what + ": " + userMessage(msg.Err)
}
