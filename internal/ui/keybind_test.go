package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestKeybindRegistry_BindLookup(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("q", tea.Quit, "")
	reg.Bind("SPC q", tea.Quit, "")
	reg.Bind("j", nil, "")

	if reg.Lookup("q") == nil {
		t.Error("expected q to be bound")
	}
	if reg.Lookup("SPC q") == nil {
		t.Error("expected SPC q to be bound")
	}
	if reg.Lookup("unknown") != nil {
		t.Error("expected unknown to be unbound")
	}
}

func TestKeyHandler_LeaderKey(t *testing.T) {
	reg := NewKeybindRegistry()
	var executed bool
	reg.Bind("SPC x", func() tea.Msg {
		executed = true
		return nil
	}, "")
	h := NewKeyHandler(reg)

	// Press space -> leader waiting (Bubble Tea reports space as " ")
	consumed, cmd := h.Handle(keyMsg(" "))
	if !consumed || cmd != nil {
		t.Errorf("space: consumed=%v cmd=%v", consumed, cmd)
	}
	if !h.LeaderWaiting {
		t.Error("expected leader waiting after space")
	}

	// Press x -> execute SPC x
	consumed, cmd = h.Handle(keyMsg("x"))
	if !consumed {
		t.Errorf("x: expected consumed")
	}
	if h.LeaderWaiting {
		t.Error("leader should not be waiting after completing sequence")
	}
	if cmd != nil {
		cmd()
		if !executed {
			t.Error("expected command to execute")
		}
	}
}

func TestKeyHandler_EscCancelsLeader(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("SPC x", tea.Quit, "")
	h := NewKeyHandler(reg)

	h.Handle(keyMsg(" "))
	if !h.LeaderWaiting {
		t.Fatal("expected leader waiting")
	}

	consumed, cmd := h.Handle(keyMsg("esc"))
	if !consumed || cmd != nil {
		t.Errorf("esc: consumed=%v cmd=%v", consumed, cmd)
	}
	if h.LeaderWaiting {
		t.Error("esc should cancel leader mode")
	}
}

func TestKeyHandler_SingleKey(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("q", tea.Quit, "")
	h := NewKeyHandler(reg)

	consumed, cmd := h.Handle(keyMsg("q"))
	if !consumed || cmd == nil {
		t.Errorf("q: consumed=%v cmd=%v", consumed, cmd)
	}
}

func TestKeyHandler_NestedSequence(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("SPC b c", func() tea.Msg { return ShowCreateBoardMsg{} }, "")
	h := NewKeyHandler(reg)

	h.Handle(keyMsg(" "))
	consumed, cmd := h.Handle(keyMsg("b"))
	if !consumed || cmd != nil {
		t.Fatalf("b: consumed=%v cmd=%v", consumed, cmd)
	}
	if !h.LeaderWaiting {
		t.Fatal("expected leader to wait for the rest of SPC b c")
	}
	_, cmd = h.Handle(keyMsg("c"))
	if cmd == nil {
		t.Fatal("expected SPC b c to resolve")
	}
	if _, ok := cmd().(ShowCreateBoardMsg); !ok {
		t.Error("expected ShowCreateBoardMsg")
	}
}

func TestKeybindRegistry_LeaderHintsUseSubmenuLabel(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("SPC b c", tea.Quit, "Create board")
	reg.Bind("SPC s", tea.Quit, "Save")
	reg.Bind("SPC x", tea.Quit, "Input only", ModeInput)

	hints := reg.LeaderHints("", ModeBrowse)
	if hints["b"] != "Board" {
		t.Errorf("b hint = %q, want Board", hints["b"])
	}
	if hints["s"] != "Save" {
		t.Errorf("s hint = %q, want Save", hints["s"])
	}
	if _, ok := hints["x"]; ok {
		t.Error("mode-filtered binding should be hidden in browse mode")
	}

	next := reg.LeaderHints("SPC b", ModeBrowse)
	if next["c"] != "Create board" {
		t.Errorf("SPC b c hint = %q", next["c"])
	}
}

func TestKeyMap_SortedHintsThenEsc(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("SPC s", tea.Quit, "Save")
	reg.Bind("SPC d", tea.Quit, "Discard changes")
	reg.Bind("SPC b c", tea.Quit, "Create board")

	var got []string
	for _, b := range (KeyMap{Registry: reg, Seq: "SPC"}).ShortHelp() {
		got = append(got, b.Help().Key+"="+b.Help().Desc)
	}
	want := []string{"b=Board", "d=Discard changes", "s=Save", "esc=cancel"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("ShortHelp = %v, want %v", got, want)
	}
	if (KeyMap{}).FullHelp() != nil {
		t.Error("empty KeyMap should have no help")
	}
}

func TestKeyHandler_Sequence(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("SPC b c", tea.Quit, "")
	h := NewKeyHandler(reg)

	h.Handle(keyMsg(" "))
	h.Handle(keyMsg("b"))
	if got := h.Sequence(); got != "SPC b" {
		t.Errorf("Sequence = %q, want SPC b", got)
	}
	h.Handle(keyMsg("z"))
	if h.LeaderWaiting || h.Sequence() != "" {
		t.Error("unknown key should end the sequence")
	}
}

func TestRenderKeybindHelp(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("SPC s", tea.Quit, "Save")
	h := NewKeyHandler(reg)
	h.Handle(keyMsg(" "))

	out := RenderKeybindHelp(h, ModeBrowse)
	if !strings.Contains(out, "Save") || !strings.Contains(out, "SPC") {
		t.Errorf("help missing hints: %q", out)
	}
	if RenderKeybindHelp(nil, ModeBrowse) != "" {
		t.Error("nil handler should render nothing")
	}
}

func TestKeyHandler_UnboundFallsThrough(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("q", tea.Quit, "")
	h := NewKeyHandler(reg)

	consumed, _ := h.Handle(keyMsg("j"))
	if consumed {
		t.Error("unbound j should not be consumed")
	}
}

// keyMsg creates a tea.KeyMsg for testing. Bubble Tea uses KeyType and Runes.
// KeySpace.String() returns " ", KeyEsc returns "esc", etc.
func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "space", " ":
		return tea.KeyMsg{Type: tea.KeySpace}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "q":
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}
	case "x":
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}
	case "j":
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}
