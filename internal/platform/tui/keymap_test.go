package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Arlandrian/HexicClone/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"x", runeKey("x"), core.ActionRotateCW, false},
		{"e", runeKey("e"), core.ActionRotateCW, false},
		{"z", runeKey("z"), core.ActionRotateCCW, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionRotateCCW, false},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{"a", runeKey("a"), core.ActionLeft, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause, false},
		{"r", runeKey("r"), core.ActionRestart, false},
		{"q", runeKey("q"), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey("m"), core.ActionNone, false},
	}

	for _, tt := range tests {
		action, quit := keys.MapKey(tt.msg)
		if action != tt.action || quit != tt.quit {
			t.Errorf("MapKey(%s) = (%v, %v), expected (%v, %v)", tt.name, action, quit, tt.action, tt.quit)
		}
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{runeKey("k"), MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{runeKey("q"), MenuActionQuit},
		{runeKey("x"), MenuActionNone},
	}
	for _, tt := range tests {
		if got := MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tt.msg.String(), got, tt.want)
		}
	}
}

func TestBackBindingDisabledByDefault(t *testing.T) {
	m := NewModel(nil, nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30, Seed: 1})
	if m.keys.Back.Enabled() {
		t.Error("back should be disabled outside the menu flow")
	}
	if !m.WithBackToMenu().keys.Back.Enabled() {
		t.Error("WithBackToMenu should enable back")
	}
	if m.config.ScreenH != 23 {
		t.Errorf("game height = %d, expected 23 with one help line", m.config.ScreenH)
	}
}
