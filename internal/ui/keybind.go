package ui

import (
	"maps"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// leaderSeq is the canonical name of the leader key in sequences.
const leaderSeq = "SPC"

// submenuLabels names leader keys that open a submenu.
var submenuLabels = map[string]string{
	"b": "Board",
}

type binding struct {
	cmd   tea.Cmd
	desc  string
	modes []AppMode // empty: every mode
}

func (b binding) shownIn(mode AppMode) bool {
	return len(b.modes) == 0 || slices.Contains(b.modes, mode)
}

// KeybindRegistry maps key sequences to commands. A sequence is a list of
// keys separated by spaces with the leader written as SPC: "SPC b c" is
// space, b, c. Plain keys stand alone: "q".
type KeybindRegistry struct {
	bindings map[string]binding
}

// NewKeybindRegistry creates an empty registry.
func NewKeybindRegistry() *KeybindRegistry {
	return &KeybindRegistry{bindings: make(map[string]binding)}
}

// Bind registers seq, replacing any previous binding. desc labels the
// sequence in the leader help, and modes limits the help to those modes.
func (r *KeybindRegistry) Bind(seq string, cmd tea.Cmd, desc string, modes ...AppMode) {
	r.bindings[normalizeSeq(seq)] = binding{cmd: cmd, desc: desc, modes: modes}
}

// Lookup returns the command bound to seq, or nil.
func (r *KeybindRegistry) Lookup(seq string) tea.Cmd {
	return r.bindings[normalizeSeq(seq)].cmd
}

// HasPrefix reports whether a longer sequence starts with seq.
func (r *KeybindRegistry) HasPrefix(seq string) bool {
	prefix := normalizeSeq(seq) + " "
	for s := range r.bindings {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}
	return false
}

// LeaderHints returns the keys that may follow seq, labelled for help. An
// empty seq means the bare leader. A key leading to longer sequences gets
// its submenu label; otherwise the binding's description, or the sequence
// itself when it has none.
func (r *KeybindRegistry) LeaderHints(seq string, mode AppMode) map[string]string {
	if seq == "" {
		seq = leaderSeq
	}
	prefix := normalizeSeq(seq) + " "
	out := make(map[string]string)
	for s, b := range r.bindings {
		rest, ok := strings.CutPrefix(s, prefix)
		if !ok || b.cmd == nil || !b.shownIn(mode) {
			continue
		}
		next, _, deeper := strings.Cut(rest, " ")
		if deeper {
			out[next] = submenuLabel(next)
			continue
		}
		if _, taken := out[next]; taken {
			continue
		}
		if b.desc != "" {
			out[next] = b.desc
		} else {
			out[next] = s
		}
	}
	return out
}

func submenuLabel(k string) string {
	if label, ok := submenuLabels[k]; ok {
		return label
	}
	return k + "…"
}

// normalizeSeq rewrites tea key names into sequence notation.
func normalizeSeq(seq string) string {
	parts := strings.Fields(seq)
	for i, p := range parts {
		parts[i] = seqPart(p)
	}
	return strings.Join(parts, " ")
}

// seqPart names one key press. Bubble Tea reports space as " ".
func seqPart(k string) string {
	if k == " " || k == "space" {
		return leaderSeq
	}
	return k
}

// KeyHandler tracks the leader sequence being typed and dispatches
// completed sequences to the registry.
type KeyHandler struct {
	Registry      *KeybindRegistry
	LeaderWaiting bool
	Buffer        []string // keys typed since the leader, leader included
}

// NewKeyHandler creates a handler with space as leader.
func NewKeyHandler(reg *KeybindRegistry) *KeyHandler {
	return &KeyHandler{Registry: reg}
}

// Sequence returns the leader sequence typed so far, or "".
func (h *KeyHandler) Sequence() string {
	return strings.Join(h.Buffer, " ")
}

// Handle processes a KeyMsg. consumed means the key belongs to the keybind
// system and must not reach views; cmd is the bound command, if any.
// An unknown key in leader mode ends the sequence silently.
func (h *KeyHandler) Handle(msg tea.KeyMsg) (consumed bool, cmd tea.Cmd) {
	k := seqPart(msg.String())
	switch {
	case k == "esc":
		if !h.LeaderWaiting {
			return false, nil
		}
		h.reset()
		return true, nil
	case k == leaderSeq:
		h.LeaderWaiting = true
		h.Buffer = []string{leaderSeq}
		return true, nil
	case h.LeaderWaiting:
		h.Buffer = append(h.Buffer, k)
		seq := h.Sequence()
		if c := h.Registry.Lookup(seq); c != nil {
			h.reset()
			return true, c
		}
		if !h.Registry.HasPrefix(seq) {
			h.reset()
		}
		return true, nil
	}
	if c := h.Registry.Lookup(k); c != nil {
		return true, c
	}
	return false, nil
}

func (h *KeyHandler) reset() {
	h.LeaderWaiting = false
	h.Buffer = nil
}

// KeyMap implements help.KeyMap over the hints that may follow Seq.
type KeyMap struct {
	Registry *KeybindRegistry
	Seq      string
	Mode     AppMode
}

var _ help.KeyMap = KeyMap{}

// ShortHelp returns one binding per next key, sorted by key, then esc.
func (km KeyMap) ShortHelp() []key.Binding {
	if km.Registry == nil {
		return nil
	}
	hints := km.Registry.LeaderHints(km.Seq, km.Mode)
	if len(hints) == 0 {
		return nil
	}
	out := make([]key.Binding, 0, len(hints)+1)
	for _, k := range slices.Sorted(maps.Keys(hints)) {
		out = append(out, key.NewBinding(key.WithKeys(k), key.WithHelp(k, hints[k])))
	}
	return append(out, key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")))
}

// FullHelp returns ShortHelp as a single column.
func (km KeyMap) FullHelp() [][]key.Binding {
	if short := km.ShortHelp(); len(short) > 0 {
		return [][]key.Binding{short}
	}
	return nil
}
