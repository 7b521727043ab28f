package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-grow/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"a", runeKey('a'), core.ActionMoveLeft, false},
		{"left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionMoveLeft, false},
		{"d", runeKey('d'), core.ActionMoveRight, false},
		{"right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionMoveRight, false},
		{"space", runeKey(' '), core.ActionFlipGravity, false},
		{"r", runeKey('r'), core.ActionRestart, false},
		{"p", runeKey('p'), core.ActionPause, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause, false},
		{"q", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('x'), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action {
				t.Errorf("MapKey() action = %v, want %v", action, tt.action)
			}
			if quit != tt.quit {
				t.Errorf("MapKey() quit = %v, want %v", quit, tt.quit)
			}
		})
	}
}

func TestMapKeyToFrameKeepsOrder(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	km.MapKeyToFrame(runeKey('a'), &frame)
	km.MapKeyToFrame(runeKey('x'), &frame)
	km.MapKeyToFrame(runeKey('d'), &frame)

	dirs := frame.Directions()
	if len(dirs) != 2 || dirs[0] != -1 || dirs[1] != 1 {
		t.Errorf("Directions() = %v, want [-1 1]", dirs)
	}
	if frame.Has(core.ActionNone) {
		t.Error("unbound keys should not be recorded")
	}
}

func TestHelpListsBindings(t *testing.T) {
	keys := DefaultGameKeyMap()
	if len(keys.ShortHelp()) != 6 {
		t.Errorf("ShortHelp() has %d bindings, want 6", len(keys.ShortHelp()))
	}
	for _, b := range keys.ShortHelp() {
		if b.Help().Key == "" || b.Help().Desc == "" {
			t.Errorf("binding %v has no help text", b.Keys())
		}
	}
}
