package ui

import (
	"photoboard/internal/board"
)

// Op names a backend request. It doubles as the loader handle for that request.
type Op string

const (
	OpLoadBoards Op = "load-boards"
	OpLoadImages Op = "load-images"
	OpLoadTags   Op = "load-tags"
	OpAddImage   Op = "add-image"
	OpSave       Op = "save"
)

// statusMessage is the loader text shown while op is in flight.
func (o Op) statusMessage() string {
	switch o {
	case OpLoadBoards:
		return "Loading boards..."
	case OpLoadImages:
		return "Loading images..."
	case OpLoadTags:
		return "Loading tags..."
	case OpAddImage:
		return "Adding image..."
	case OpSave:
		return "Saving data..."
	default:
		return "Working..."
	}
}

// BoardsLoadedMsg carries the result of GET /boards.
type BoardsLoadedMsg struct {
	Boards []board.Board
}

// ImagesLoadedMsg carries the result of GET /images.
type ImagesLoadedMsg struct {
	Images []board.Image
}

// TagsLoadedMsg carries images enriched with tags.
type TagsLoadedMsg struct {
	Images []board.Image
}

// ImageProbedMsg reports whether URL resolves to a real image.
type ImageProbedMsg struct {
	URL    string
	Exists bool
}

// SavedMsg is sent when both phases of a save were acknowledged.
type SavedMsg struct {
	Result board.CommitResult
}

// RequestFailedMsg is sent when a backend request fails.
type RequestFailedMsg struct {
	Op  Op
	Err error
	// BoardIDs holds boards a failed save did persist, keyed by temporary id.
	BoardIDs map[int]int
}

// SelectBoardMsg makes a board active (Enter on the board list).
type SelectBoardMsg struct {
	ID int
}

// ShowCreateBoardMsg opens the create-board dialog (SPC b c).
type ShowCreateBoardMsg struct{}

// CreateBoardMsg is sent when the create-board dialog is confirmed.
type CreateBoardMsg struct {
	Title string
}

// FocusInputMsg moves focus to the image URL input (a).
type FocusInputMsg struct{}

// ShowImageDetailMsg opens the tag view for the highlighted image.
type ShowImageDetailMsg struct{}

// LoadTagsMsg requests tags for all images (SPC t).
type LoadTagsMsg struct{}

// SaveMsg persists pending boards and images (SPC s).
type SaveMsg struct{}

// ShowDiscardMsg asks before dropping unsaved changes (SPC d).
type ShowDiscardMsg struct{}

// DiscardMsg reloads everything from the backend, dropping unsaved changes.
type DiscardMsg struct{}

// RefreshMsg reloads boards and images (SPC r).
type RefreshMsg struct{}

// QuitMsg quits, asking first when there are unsaved changes.
type QuitMsg struct{}

// ConfirmQuitMsg quits without asking.
type ConfirmQuitMsg struct{}

// DismissModalMsg is sent when user cancels a modal (Esc).
type DismissModalMsg struct{}

// toastExpiredMsg removes a toast once its lifetime is over.
type toastExpiredMsg struct {
	ID int
}
