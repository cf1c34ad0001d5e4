package ui

import (
	"context"

	"photoboard/internal/board"

	tea "github.com/charmbracelet/bubbletea"
)

// BoardAPI is the backend as seen by the application.
type BoardAPI interface {
	GetBoards(ctx context.Context) ([]board.Board, error)
	GetImages(ctx context.Context) ([]board.Image, error)
	GetTags(ctx context.Context, images []board.Image) ([]board.Image, error)
	HasImage(ctx context.Context, url string) (bool, error)
	board.Persister
}

// loadBoardsCmd fetches all boards.
func loadBoardsCmd(api BoardAPI) tea.Cmd {
	return func() tea.Msg {
		boards, err := api.GetBoards(context.Background())
		if err != nil {
			return RequestFailedMsg{Op: OpLoadBoards, Err: err}
		}
		return BoardsLoadedMsg{Boards: boards}
	}
}

// loadImagesCmd fetches all images.
func loadImagesCmd(api BoardAPI) tea.Cmd {
	return func() tea.Msg {
		images, err := api.GetImages(context.Background())
		if err != nil {
			return RequestFailedMsg{Op: OpLoadImages, Err: err}
		}
		return ImagesLoadedMsg{Images: images}
	}
}

// loadTagsCmd fetches tags for images. The slice is a snapshot taken when
// the command was created.
func loadTagsCmd(api BoardAPI, images []board.Image) tea.Cmd {
	return func() tea.Msg {
		tagged, err := api.GetTags(context.Background(), images)
		if err != nil {
			return RequestFailedMsg{Op: OpLoadTags, Err: err}
		}
		return TagsLoadedMsg{Images: tagged}
	}
}

// probeImageCmd asks the backend whether url points at a real image.
func probeImageCmd(api BoardAPI, url string) tea.Cmd {
	return func() tea.Msg {
		ok, err := api.HasImage(context.Background(), url)
		if err != nil {
			return RequestFailedMsg{Op: OpAddImage, Err: err}
		}
		return ImageProbedMsg{URL: url, Exists: ok}
	}
}

// saveCmd runs the two-phase commit for pending.
func saveCmd(api BoardAPI, pending board.Pending) tea.Cmd {
	return func() tea.Msg {
		res, err := board.Commit(context.Background(), api, pending)
		if err != nil {
			return RequestFailedMsg{Op: OpSave, Err: err, BoardIDs: res.BoardIDs}
		}
		return SavedMsg{Result: res}
	}
}
