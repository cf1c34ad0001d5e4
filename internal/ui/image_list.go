package ui

import (
	"photoboard/internal/board"
	"photoboard/internal/ui/textutil"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// imageItem implements list.Item for an image on the selected board.
type imageItem struct {
	board.Image
	Status board.Status
	width  int
}

func (i imageItem) FilterValue() string { return i.URL }

func (i imageItem) Title() string {
	suffix := ""
	if tags := board.ThumbnailTags(i.Image); len(tags) > 0 {
		suffix = "  [" + tags[0].Label + "]"
	}
	if i.Status.Dirty() {
		suffix += " *"
	}
	url := i.URL
	if i.width > 0 {
		url = textutil.Truncate(i.URL, max(i.width-2-textutil.VisualWidth(suffix), 1))
	}
	if i.Status.Dirty() {
		return url + Styles.Pending.Render(suffix)
	}
	return url + Styles.Muted.Render(suffix)
}

func (i imageItem) Description() string { return "" }

// ImageListView lists the images of the selected board. Enter opens the tag
// detail of the highlighted image when it has tags.
type ImageListView struct {
	list  list.Model
	width int
}

// Ensure ImageListView implements View.
var _ View = (*ImageListView)(nil)

// NewImageListView creates an empty image list.
func NewImageListView() *ImageListView {
	l := list.New(nil, NewCompactListDelegate(), 0, 0)
	l.Title = "Images"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()
	l.Styles.Title = Styles.Title
	l.Styles.NoItems = Styles.Empty
	return &ImageListView{list: l}
}

// SetSize sets the list dimensions.
func (v *ImageListView) SetSize(width, height int) {
	v.width = width
	v.list.SetSize(width, height)
}

// Refresh rebuilds the items from the images of the selected board.
func (v *ImageListView) Refresh(view *board.View) {
	images := view.BoardImages()
	items := make([]list.Item, len(images))
	for i, img := range images {
		items[i] = imageItem{Image: img, Status: view.ImageStatus(img.ID), width: v.width}
	}
	v.list.Title = "Images · " + view.SelectedBoard().Title
	v.list.SetItems(items)
	if v.list.Index() >= len(items) && len(items) > 0 {
		v.list.Select(len(items) - 1)
	}
}

// Highlighted returns the image under the cursor.
func (v *ImageListView) Highlighted() (board.Image, bool) {
	item, ok := v.list.SelectedItem().(imageItem)
	if !ok {
		return board.Image{}, false
	}
	return item.Image, true
}

// Init implements View.
func (v *ImageListView) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (v *ImageListView) Update(msg tea.Msg) (View, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && k.String() == "enter" {
		return v, func() tea.Msg { return ShowImageDetailMsg{} }
	}
	var cmd tea.Cmd
	v.list, cmd = v.list.Update(msg)
	return v, cmd
}

// View implements View.
func (v *ImageListView) View() string {
	return v.list.View()
}
