package ui

// FocusManager tracks which panel receives list keys. Tab and shift+tab walk
// Order; selecting a board jumps straight to the images panel.
type FocusManager struct {
	Current string
	Order   []string
}

// Is reports whether id holds focus.
func (f *FocusManager) Is(id string) bool {
	return f.Current == id
}

// Next moves focus forward, wrapping at the end, and returns the new panel.
func (f *FocusManager) Next() string { return f.step(1) }

// Prev moves focus backward, wrapping at the start.
func (f *FocusManager) Prev() string { return f.step(-1) }

// SetFocus focuses id. Unknown ids leave focus unchanged and report false.
func (f *FocusManager) SetFocus(id string) bool {
	if f.index(id) < 0 {
		return false
	}
	f.Current = id
	return true
}

// step moves delta positions through Order. An unknown Current counts as
// position -1, so Next lands on the first panel.
func (f *FocusManager) step(delta int) string {
	n := len(f.Order)
	if n == 0 {
		return ""
	}
	i := f.index(f.Current)
	if i < 0 && delta < 0 {
		i = 0
	}
	f.Current = f.Order[((i+delta)%n+n)%n]
	return f.Current
}

func (f *FocusManager) index(id string) int {
	for i, o := range f.Order {
		if o == id {
			return i
		}
	}
	return -1
}
