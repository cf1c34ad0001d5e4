package board

import (
	"regexp"
	"slices"
	"strings"

	"photoboard/internal/apperr"
	"photoboard/internal/validation"
)

// Validation errors surfaced to the user.
var (
	ErrDuplicateImage = apperr.Validation("This file was already existed in this board!")
	ErrMissingScheme  = apperr.Validation("URL must start with http:// or https://")
	ErrNoBoard        = apperr.Validation("Select or create a board first")
	ErrInvalidImage   = apperr.Validation("Invalid url")
	ErrEmptyTitle     = apperr.Validation("Board title cannot be empty")
)

var schemePrefix = regexp.MustCompile(`(?i)^https?://`)

// CheckURL reports whether s is missing an http:// or https:// prefix.
// True means the input must not be submitted.
func CheckURL(s string) bool {
	return !schemePrefix.MatchString(strings.TrimSpace(s))
}

// View is the board state holder.
type View struct {
	boards    *store[Board]
	images    *store[Image]
	selected  Board
	ids       *TempIDs
	validator *validation.Validator
}

// NewView returns an empty view with the placeholder board selected.
func NewView() *View {
	return &View{
		boards:    newStore(boardID),
		images:    newStore(imageID),
		selected:  Board{ID: NoBoardID},
		ids:       NewTempIDs(),
		validator: validation.New(),
	}
}

// SelectedBoard returns the active board, or {ID: NoBoardID} before any load.
func (v *View) SelectedBoard() Board {
	return v.selected
}

// SelectBoard makes the board with the given id active.
// It returns false if no such board is known.
func (v *View) SelectBoard(id int) bool {
	b, _, ok := v.boards.get(id)
	if !ok {
		return false
	}
	v.selected = b
	return true
}

// ApplyBoards installs a fresh board list from the server. An empty list is
// ignored and the previous state retained. Otherwise pending boards are
// dropped. The first board is selected when nothing was selected yet or the
// selected board was a pending one the list no longer holds. A selected
// server board keeps its selection even when missing from the list. It
// reports whether the list was applied.
func (v *View) ApplyBoards(boards []Board) bool {
	if len(boards) == 0 {
		return false
	}
	v.boards.replace(boards)
	b, _, ok := v.boards.get(v.selected.ID)
	switch {
	case ok:
		v.selected = b
	case v.selected.ID == NoBoardID || IsTemp(v.selected.ID):
		v.selected = boards[0]
	}
	return true
}

// ApplyImages installs a fresh image list from the server, dropping pending
// images. An empty list clears the view.
func (v *View) ApplyImages(images []Image) {
	v.images.replace(images)
}

// ApplyTags merges tag-bearing images into the store by id. Stored images
// without an update are kept as they are, and updates for unknown ids are
// ignored. A clean image whose tags changed becomes StatusPendingUpdate;
// pending images keep their status. It returns the number of merged images.
func (v *View) ApplyTags(updated []Image) int {
	merged := 0
	for _, u := range updated {
		cur, status, ok := v.images.get(u.ID)
		if !ok {
			continue
		}
		if status == StatusClean && !slices.Equal(cur.Tags, u.Tags) {
			status = StatusPendingUpdate
		}
		v.images.put(u, status)
		merged++
	}
	return merged
}

// PrepareImage validates url as a new image for the selected board. It does
// not mutate state. Callers probe the URL remotely and then call AddImage.
func (v *View) PrepareImage(url string) error {
	url = strings.TrimSpace(url)
	if _, _, ok := v.boards.get(v.selected.ID); !ok {
		return ErrNoBoard
	}
	if CheckURL(url) {
		return ErrMissingScheme
	}
	if err := v.validator.Validate(imageDraft{URL: url, Board: v.selected.ID}); err != nil {
		return err
	}
	if v.hasImage(url, v.selected.ID) {
		return ErrDuplicateImage
	}
	return nil
}

// AddImage appends a pending image for url to the selected board. It
// repeats PrepareImage's checks, since state may have changed while the
// URL was being probed.
func (v *View) AddImage(url string) (Image, error) {
	if err := v.PrepareImage(url); err != nil {
		return Image{}, err
	}
	img := Image{
		ID:    v.ids.Next(),
		URL:   strings.TrimSpace(url),
		Board: v.selected.ID,
	}
	v.images.put(img, StatusPendingCreate)
	return img, nil
}

func (v *View) hasImage(url string, board int) bool {
	for _, img := range v.images.all() {
		if img.URL == url && img.Board == board {
			return true
		}
	}
	return false
}

// CreateBoard appends a pending board with the given title.
func (v *View) CreateBoard(title string) (Board, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return Board{}, ErrEmptyTitle
	}
	if err := v.validator.Validate(boardDraft{Title: title}); err != nil {
		return Board{}, err
	}
	b := Board{ID: v.ids.Next(), Title: title}
	v.boards.put(b, StatusPendingCreate)
	return b, nil
}

// Reconcile rewrites temporary board ids after the backend assigned real
// ones. Saved boards become clean under their new id, and the selection and
// pending images follow them. Used after a save, including one that failed
// while sending images, so a retry does not create the boards twice.
func (v *View) Reconcile(boardIDs map[int]int) {
	for temp, real := range boardIDs {
		if b, _, ok := v.boards.get(temp); ok {
			b.ID = real
			v.boards.rekey(temp, b, StatusClean)
		}
	}
	if real, ok := boardIDs[v.selected.ID]; ok {
		v.selected.ID = real
	}
	for _, img := range v.images.dirty() {
		if real, ok := boardIDs[img.Board]; ok {
			_, status, _ := v.images.get(img.ID)
			img.Board = real
			v.images.put(img, status)
		}
	}
}

// DetectUpdates reports whether there is nothing left to save.
func (v *View) DetectUpdates() bool {
	return !v.boards.hasDirty() && !v.images.hasDirty()
}

// Boards returns all boards in load/creation order.
func (v *View) Boards() []Board { return v.boards.all() }

// Images returns all images in load/creation order.
func (v *View) Images() []Image { return v.images.all() }

// DirtyBoards returns boards not yet acknowledged by the backend.
func (v *View) DirtyBoards() []Board { return v.boards.dirty() }

// DirtyImages returns images not yet acknowledged by the backend.
func (v *View) DirtyImages() []Image { return v.images.dirty() }

// BoardStatus returns the status of the board with the given id.
func (v *View) BoardStatus(id int) Status {
	_, st, _ := v.boards.get(id)
	return st
}

// ImageStatus returns the status of the image with the given id.
func (v *View) ImageStatus(id int) Status {
	_, st, _ := v.images.get(id)
	return st
}

// BoardImages returns the images of the selected board. It is recomputed on
// every call.
func (v *View) BoardImages() []Image {
	sel := v.selected.ID
	return v.images.filter(func(img Image, _ Status) bool {
		return img.Board == sel
	})
}

// Pending returns everything that Commit has to persist.
func (v *View) Pending() Pending {
	return Pending{Boards: v.DirtyBoards(), Images: v.DirtyImages()}
}

// ThumbnailTags returns the tags shown next to an image in a list: at most
// the first one.
func ThumbnailTags(img Image) []Tag {
	if len(img.Tags) == 0 {
		return nil
	}
	return img.Tags[:1]
}

// HasMoreTags reports whether an image has tags worth a detail view.
func HasMoreTags(img Image) bool {
	return len(img.Tags) > 0
}
