package ui

import (
	"slices"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Loader is a spinner with a status message, visible while at least one
// named handle is shown. Handles let overlapping requests show and hide the
// loader independently.
type Loader struct {
	spinner  spinner.Model
	messages map[string]string
	order    []string // shown handles, oldest first
	ticking  bool
}

// NewLoader creates a hidden loader.
func NewLoader() *Loader {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = Styles.Status
	return &Loader{
		spinner:  s,
		messages: make(map[string]string),
	}
}

// Show registers handle name with a status message. Showing an already shown
// handle updates its message. The returned command starts the spinner when
// the loader was hidden.
func (l *Loader) Show(name, message string) tea.Cmd {
	if _, ok := l.messages[name]; !ok {
		l.order = append(l.order, name)
	}
	l.messages[name] = message
	if l.ticking {
		return nil
	}
	l.ticking = true
	return l.spinner.Tick
}

// Hide removes handle name. Hiding an unknown handle is a no-op.
func (l *Loader) Hide(name string) {
	if _, ok := l.messages[name]; !ok {
		return
	}
	delete(l.messages, name)
	l.order = slices.DeleteFunc(l.order, func(n string) bool { return n == name })
}

// Shown reports whether handle name is currently shown.
func (l *Loader) Shown(name string) bool {
	_, ok := l.messages[name]
	return ok
}

// Visible reports whether any handle is shown.
func (l *Loader) Visible() bool {
	return len(l.order) > 0
}

// Message returns the status message of the most recently shown handle.
func (l *Loader) Message() string {
	if len(l.order) == 0 {
		return ""
	}
	return l.messages[l.order[len(l.order)-1]]
}

// Update advances the spinner. Ticking stops once the loader is hidden.
func (l *Loader) Update(msg spinner.TickMsg) tea.Cmd {
	if !l.Visible() {
		l.ticking = false
		return nil
	}
	var cmd tea.Cmd
	l.spinner, cmd = l.spinner.Update(msg)
	return cmd
}

// View renders the spinner and status message, or nothing when hidden.
func (l *Loader) View() string {
	if !l.Visible() {
		return ""
	}
	return l.spinner.View() + " " + Styles.Status.Render(l.Message())
}
