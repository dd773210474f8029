package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/sarangola/internal/core"
)

func TestGameAction(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionFlap},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionFlap},
		{"w", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'w'}}, core.ActionFlap},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionClick},
		{"p", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}}, core.ActionPause},
		{"q", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, core.ActionNone},
		{"x", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}, core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keys.GameAction(tt.msg); got != tt.want {
				t.Errorf("GameAction(%q) = %v, expected %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestMouseAction(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.MouseMsg
		want core.Action
	}{
		{"left press", tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, core.ActionClick},
		{"left release", tea.MouseMsg{Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}, core.ActionNone},
		{"right press", tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonRight}, core.ActionNone},
		{"motion", tea.MouseMsg{Action: tea.MouseActionMotion}, core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MouseAction(tt.msg); got != tt.want {
				t.Errorf("MouseAction() = %v, expected %v", got, tt.want)
			}
		})
	}
}

func TestHelpListsBindings(t *testing.T) {
	keys := DefaultKeyMap()
	if len(keys.ShortHelp()) == 0 || len(keys.FullHelp()) == 0 {
		t.Error("game help is empty")
	}

	menu := screenKeys{KeyMap: keys}
	over := screenKeys{KeyMap: keys, restart: true}
	if len(over.ShortHelp()) <= len(menu.ShortHelp()) {
		t.Error("game-over help should include restart and back")
	}
}
