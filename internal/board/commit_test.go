package board

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"photoboard/internal/apperr"
)

type fakePersister struct {
	calls      []string
	boardsReq  []Board
	imagesReq  []Image
	boardsErr  error
	imagesErr  error
	nextID     int
	dropBoards bool
}

func (f *fakePersister) AddBoards(_ context.Context, boards []Board) ([]Board, error) {
	f.calls = append(f.calls, "boards")
	f.boardsReq = boards
	if f.boardsErr != nil {
		return nil, f.boardsErr
	}
	out := make([]Board, 0, len(boards))
	for _, b := range boards {
		f.nextID++
		b.ID = f.nextID
		out = append(out, b)
	}
	if f.dropBoards {
		out = out[:len(out)-1]
	}
	return out, nil
}

func (f *fakePersister) AddImages(_ context.Context, images []Image) ([]Image, error) {
	f.calls = append(f.calls, "images")
	f.imagesReq = images
	if f.imagesErr != nil {
		return nil, f.imagesErr
	}
	return images, nil
}

func TestCommit_BoardsBeforeImagesWithRemap(t *testing.T) {
	v := loadedView(t)
	b, err := v.CreateBoard("birds")
	require.NoError(t, err)
	require.True(t, v.SelectBoard(b.ID))
	_, err = v.AddImage("https://x/bird.png")
	require.NoError(t, err)
	require.True(t, v.SelectBoard(1))
	_, err = v.AddImage("https://x/cat.png")
	require.NoError(t, err)

	p := &fakePersister{nextID: 100}
	res, err := Commit(context.Background(), p, v.Pending())
	require.NoError(t, err)

	assert.Equal(t, []string{"boards", "images"}, p.calls)
	assert.Equal(t, []Board{{Title: "birds"}}, p.boardsReq)
	assert.Equal(t, map[int]int{b.ID: 101}, res.BoardIDs)
	require.Len(t, p.imagesReq, 2)
	assert.Equal(t, Image{URL: "https://x/bird.png", Board: 101}, p.imagesReq[0])
	assert.Equal(t, Image{URL: "https://x/cat.png", Board: 1}, p.imagesReq[1])
	assert.Equal(t, []Board{{ID: 101, Title: "birds"}}, res.Boards)
}

func TestCommit_PhaseOneFailureSkipsImages(t *testing.T) {
	v := loadedView(t)
	_, err := v.CreateBoard("birds")
	require.NoError(t, err)
	_, err = v.AddImage("https://x/new.png")
	require.NoError(t, err)

	boom := apperr.Network("add boards", 500, nil)
	p := &fakePersister{boardsErr: boom}
	_, err = Commit(context.Background(), p, v.Pending())

	var ce *CommitError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, PhaseBoards, ce.Phase)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"boards"}, p.calls)
	assert.Equal(t, "save boards: add boards", err.Error())

	// Nothing was lost locally.
	assert.Len(t, v.DirtyBoards(), 1)
	assert.Len(t, v.DirtyImages(), 1)
}

func TestCommit_ShortAcknowledgmentAborts(t *testing.T) {
	p := &fakePersister{dropBoards: true}
	pending := Pending{
		Boards: []Board{{ID: -2, Title: "a"}, {ID: -3, Title: "b"}},
		Images: []Image{{ID: -4, URL: "https://x", Board: -3}},
	}
	_, err := Commit(context.Background(), p, pending)

	var ce *CommitError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, PhaseBoards, ce.Phase)
	assert.ErrorIs(t, err, apperr.ErrInternal)
	assert.Equal(t, []string{"boards"}, p.calls)
}

func TestCommit_PhaseTwoFailure(t *testing.T) {
	p := &fakePersister{imagesErr: errors.New("timeout")}
	pending := Pending{Images: []Image{{ID: 5, URL: "https://x", Board: 1, Tags: []Tag{{Label: "t"}}}}}
	_, err := Commit(context.Background(), p, pending)

	var ce *CommitError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, PhaseImages, ce.Phase)
	assert.Equal(t, []string{"images"}, p.calls)
	// Pending updates keep their server id.
	assert.Equal(t, 5, p.imagesReq[0].ID)
}

func TestCommit_ImageOnUnsavedBoard(t *testing.T) {
	p := &fakePersister{}
	pending := Pending{Images: []Image{{ID: -3, URL: "https://x", Board: -2}}}
	_, err := Commit(context.Background(), p, pending)

	var ce *CommitError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, PhaseImages, ce.Phase)
	assert.ErrorIs(t, err, apperr.ErrValidation)
	assert.Empty(t, p.calls)
}

func TestCommit_EmptyMakesNoCalls(t *testing.T) {
	p := &fakePersister{}
	res, err := Commit(context.Background(), p, Pending{})
	require.NoError(t, err)
	assert.Empty(t, p.calls)
	assert.Empty(t, res.BoardIDs)
	assert.True(t, Pending{}.Empty())
}
