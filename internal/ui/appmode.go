package ui

// AppMode decides where key presses go.
type AppMode int

const (
	// ModeBrowse routes keys to the keybind system and the focused list.
	ModeBrowse AppMode = iota
	// ModeInput routes keys to the image URL input.
	ModeInput
)

func (m AppMode) String() string {
	switch m {
	case ModeBrowse:
		return "Browse"
	case ModeInput:
		return "Input"
	default:
		return "Unknown"
	}
}
