package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func run(t *testing.T, cmd tea.Cmd) {
	t.Helper()
	if cmd == nil {
		t.Fatal("cmd = nil, want an action")
	}
	cmd()
}

func openState(left string) StateMsg {
	return StateMsg{Player: "Steve", Title: "Repair & Name", Open: true, Slots: [3]string{left, "", left}}
}

func TestStateResetsRenameBox(t *testing.T) {
	actions := make(chan Action, 4)
	ui := New(actions)

	_, cmd := ui.Update(openState("Enter a name"))
	run(t, cmd)

	if got := ui.textInput.Value(); got != "Enter a name" {
		t.Errorf("rename box = %q, want %q", got, "Enter a name")
	}
	a := <-actions
	if a.Kind != ActionRename || a.Text != "Enter a name" {
		t.Errorf("action = %+v, want rename to the left input name", a)
	}

	// same left input: the box keeps what the player typed
	ui.textInput.SetValue("typed")
	ui.lastSent = "typed"
	if _, cmd := ui.Update(openState("Enter a name")); cmd != nil {
		t.Error("unchanged left input produced an action")
	}
	if got := ui.textInput.Value(); got != "typed" {
		t.Errorf("rename box = %q, want typed", got)
	}
}

func TestKeysPostActions(t *testing.T) {
	tests := []struct {
		key  tea.KeyType
		want Action
	}{
		{tea.KeyEnter, Action{Kind: ActionClick, Slot: 2}},
		{tea.KeyCtrlL, Action{Kind: ActionClick, Slot: 0}},
		{tea.KeyEsc, Action{Kind: ActionClose}},
	}

	for _, tt := range tests {
		actions := make(chan Action, 4)
		ui := New(actions)
		ui.Update(openState("x"))

		_, cmd := ui.Update(tea.KeyMsg{Type: tt.key})
		run(t, cmd)
		if got := <-actions; got != tt.want {
			t.Errorf("key %v posted %+v, want %+v", tt.key, got, tt.want)
		}
	}
}

func TestClosedWindowIgnoresKeys(t *testing.T) {
	actions := make(chan Action, 4)
	ui := New(actions)
	ui.Update(openState("x"))
	ui.Update(StateMsg{Player: "Steve"})

	if ui.textInput.Value() != "" || ui.textInput.Focused() {
		t.Error("rename box not reset after close")
	}
	for _, key := range []tea.KeyType{tea.KeyEnter, tea.KeyEsc, tea.KeyCtrlL} {
		if _, cmd := ui.Update(tea.KeyMsg{Type: key}); cmd != nil {
			t.Errorf("key %v on a closed window returned a command", key)
		}
	}

	_, cmd := ui.Update(tea.KeyMsg{Type: tea.KeyCtrlO})
	run(t, cmd)
	if got := <-actions; got.Kind != ActionReopen {
		t.Errorf("Ctrl+O posted %+v, want reopen", got)
	}
}

func TestTypingPostsRename(t *testing.T) {
	actions := make(chan Action, 4)
	ui := New(actions)
	ui.Update(openState(""))

	_, cmd := ui.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")})
	if cmd == nil {
		t.Fatal("typing returned no command")
	}
	// the batch may also carry the cursor blink
	if batch, ok := cmd().(tea.BatchMsg); ok {
		for _, c := range batch {
			if c != nil {
				c()
			}
		}
	}

	select {
	case a := <-actions:
		if a.Kind != ActionRename || a.Text != "a" {
			t.Errorf("action = %+v, want rename to a", a)
		}
	default:
		t.Error("no rename posted after typing")
	}
}
