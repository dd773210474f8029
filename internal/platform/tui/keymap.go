package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/sarangola/internal/core"
)

// KeyMap defines the key bindings for every screen.
type KeyMap struct {
	// In game
	Flap    key.Binding
	Click   key.Binding
	Pause   key.Binding
	Restart key.Binding

	// Screens
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Flap: key.NewBinding(
			key.WithKeys(" ", "up", "w"),
			key.WithHelp("space", "flap"),
		),
		Click: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter/click", "start"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "play again"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k", "shift+tab"),
			key.WithHelp("up/k", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "tab"),
			key.WithHelp("down/j", "move down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns the in-game bindings.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Flap, k.Click, k.Pause, k.Back, k.Quit}
}

// FullHelp returns the in-game bindings grouped by column.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Flap, k.Click, k.Pause},
		{k.Back, k.Quit},
	}
}

// screenKeys is the help view for the landing and game-over screens.
type screenKeys struct {
	KeyMap
	restart bool
}

func (k screenKeys) ShortHelp() []key.Binding {
	if k.restart {
		return []key.Binding{k.Up, k.Down, k.Select, k.Restart, k.Back, k.Quit}
	}
	return []key.Binding{k.Up, k.Down, k.Select, k.Quit}
}

func (k screenKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// GameAction translates an in-game key press to a game action.
// Quit and back are handled by the screens, not the game.
func (k KeyMap) GameAction(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Flap):
		return core.ActionFlap
	case key.Matches(msg, k.Click):
		return core.ActionClick
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	}
	return core.ActionNone
}

// MouseAction translates a mouse event to a game action.
// Only a left button press counts as a click.
func MouseAction(msg tea.MouseMsg) core.Action {
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		return core.ActionClick
	}
	return core.ActionNone
}
