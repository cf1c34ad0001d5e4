package ui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// ToastLevel selects how a toast is styled.
type ToastLevel int

const (
	ToastInfo ToastLevel = iota
	ToastSuccess
	ToastError
)

// DefaultToastTTL is how long a toast stays on screen.
const DefaultToastTTL = 4 * time.Second

// maxToasts caps the number of toasts on screen; older ones are dropped.
const maxToasts = 3

// Toast is a transient notification.
type Toast struct {
	ID      int
	Level   ToastLevel
	Message string
}

// Toasts holds the visible notifications.
type Toasts struct {
	TTL    time.Duration
	items  []Toast
	nextID int
}

// NewToasts creates an empty notification area.
func NewToasts() *Toasts {
	return &Toasts{TTL: DefaultToastTTL}
}

// Success shows a success toast.
func (t *Toasts) Success(message string) tea.Cmd {
	return t.push(ToastSuccess, message)
}

// Error shows an error toast.
func (t *Toasts) Error(message string) tea.Cmd {
	return t.push(ToastError, message)
}

// Info shows a neutral toast.
func (t *Toasts) Info(message string) tea.Cmd {
	return t.push(ToastInfo, message)
}

func (t *Toasts) push(level ToastLevel, message string) tea.Cmd {
	t.nextID++
	id := t.nextID
	t.items = append(t.items, Toast{ID: id, Level: level, Message: message})
	if len(t.items) > maxToasts {
		t.items = t.items[len(t.items)-maxToasts:]
	}
	return tea.Tick(t.TTL, func(time.Time) tea.Msg {
		return toastExpiredMsg{ID: id}
	})
}

// Expire removes the toast with id, if still present.
func (t *Toasts) Expire(id int) {
	for i, item := range t.items {
		if item.ID == id {
			t.items = append(t.items[:i], t.items[i+1:]...)
			return
		}
	}
}

// Items returns the visible toasts, oldest first.
func (t *Toasts) Items() []Toast {
	return t.items
}

// View renders the toasts stacked vertically.
func (t *Toasts) View() string {
	if len(t.items) == 0 {
		return ""
	}
	lines := make([]string, 0, len(t.items))
	for _, item := range t.items {
		lines = append(lines, ToastStyles[item.Level].Render(item.Message))
	}
	return strings.Join(lines, "\n")
}
