package board

import "fmt"

// NoBoardID is the id of the placeholder board selected before any board loads.
const NoBoardID = -1

// Tag is a metadata label attached to an image.
type Tag struct {
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence,omitempty"`
}

// Board is a named collection of images.
type Board struct {
	ID    int    `json:"_id,omitempty"`
	Title string `json:"title"`
}

// Image is a URL-referenced picture belonging to exactly one board.
type Image struct {
	ID    int    `json:"_id,omitempty"`
	URL   string `json:"url"`
	Board int    `json:"board"`
	Tags  []Tag  `json:"tags,omitempty"`
}

func boardID(b Board) int { return b.ID }
func imageID(i Image) int { return i.ID }

// Status tracks whether an entry has been acknowledged by the backend.
type Status int

const (
	StatusClean Status = iota
	StatusPendingCreate
	StatusPendingUpdate
)

func (s Status) String() string {
	switch s {
	case StatusClean:
		return "clean"
	case StatusPendingCreate:
		return "pending-create"
	case StatusPendingUpdate:
		return "pending-update"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Dirty reports whether the entry still has to be saved.
func (s Status) Dirty() bool {
	return s == StatusPendingCreate || s == StatusPendingUpdate
}

// boardDraft and imageDraft are validated before a local entity is created.
type boardDraft struct {
	Title string `json:"title" validate:"required,max=120"`
}

type imageDraft struct {
	URL   string `json:"url" validate:"required,http_url"`
	Board int    `json:"board" validate:"ne=-1"`
}
