package board

import (
	"context"
	"fmt"

	"photoboard/internal/apperr"
)

// Persister is the write side of the backend.
type Persister interface {
	AddBoards(ctx context.Context, boards []Board) ([]Board, error)
	AddImages(ctx context.Context, images []Image) ([]Image, error)
}

// Pending is the set of entries a save has to persist.
type Pending struct {
	Boards []Board
	Images []Image
}

// Empty reports whether there is nothing to persist.
func (p Pending) Empty() bool {
	return len(p.Boards) == 0 && len(p.Images) == 0
}

// Phase names a step of Commit.
type Phase string

const (
	PhaseBoards Phase = "boards"
	PhaseImages Phase = "images"
)

// CommitError reports which phase of a save failed.
type CommitError struct {
	Phase Phase
	Err   error
}

func (e *CommitError) Error() string {
	return fmt.Sprintf("save %s: %v", e.Phase, e.Err)
}

func (e *CommitError) Unwrap() error { return e.Err }

// CommitResult is what the backend acknowledged.
type CommitResult struct {
	Boards []Board
	Images []Image
	// BoardIDs maps temporary board ids to the ids the backend assigned.
	BoardIDs map[int]int
}

// Commit persists pending boards and then pending images.
//
// Phase 1 sends the boards and waits for the acknowledgment. If it fails,
// Commit returns a *CommitError for PhaseBoards and images are never sent.
// Phase 2 rewrites image board references from temporary to assigned ids
// and sends the images. The backend must return saved boards in request
// order. Temporary ids are stripped from the request so the backend assigns
// its own. Phases with nothing to send make no call.
func Commit(ctx context.Context, p Persister, pending Pending) (CommitResult, error) {
	result := CommitResult{BoardIDs: make(map[int]int)}

	if len(pending.Boards) > 0 {
		req := make([]Board, len(pending.Boards))
		for i, b := range pending.Boards {
			if IsTemp(b.ID) {
				b.ID = 0
			}
			req[i] = b
		}
		saved, err := p.AddBoards(ctx, req)
		if err != nil {
			return result, &CommitError{Phase: PhaseBoards, Err: err}
		}
		if len(saved) != len(req) {
			return result, &CommitError{
				Phase: PhaseBoards,
				Err:   apperr.Internal(fmt.Sprintf("backend acknowledged %d of %d boards", len(saved), len(req))),
			}
		}
		for i, b := range pending.Boards {
			if IsTemp(b.ID) && saved[i].ID > 0 {
				result.BoardIDs[b.ID] = saved[i].ID
			}
		}
		result.Boards = saved
	}

	if len(pending.Images) > 0 {
		req := make([]Image, len(pending.Images))
		for i, img := range pending.Images {
			if real, ok := result.BoardIDs[img.Board]; ok {
				img.Board = real
			}
			if IsTemp(img.Board) {
				return result, &CommitError{
					Phase: PhaseImages,
					Err:   apperr.Validationf("image %s references unsaved board %d", img.URL, img.Board),
				}
			}
			if IsTemp(img.ID) {
				img.ID = 0
			}
			req[i] = img
		}
		saved, err := p.AddImages(ctx, req)
		if err != nil {
			return result, &CommitError{Phase: PhaseImages, Err: err}
		}
		result.Images = saved
	}

	return result, nil
}
