package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/sarangola/internal/core"
	"github.com/vovakirdan/sarangola/internal/games/flappy"
)

// Button is a labelled action. Pressing it emits Msg.
type Button struct {
	Label string
	Msg   tea.Msg
}

// Press returns the command that delivers the button's message.
func (b Button) Press() tea.Cmd {
	msg := b.Msg
	return func() tea.Msg { return msg }
}

// Messages emitted by the screen buttons.
type (
	playMsg      struct{} // Start a run, keep session stats
	newGameMsg   struct{} // Clear session stats, then start a run
	playAgainMsg struct{} // Restart from the game-over screen
	backMsg      struct{} // Back to the landing page
)

// Theme holds the styles for the screens around the game.
type Theme struct {
	Title   lipgloss.Style
	Text    lipgloss.Style
	Muted   lipgloss.Style
	Button  lipgloss.Style
	Focused lipgloss.Style
}

// NewTheme builds the screen styles with r.
func NewTheme(r *lipgloss.Renderer) Theme {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return Theme{
		Title: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(core.Hex(core.ColorKite))),
		Text: r.NewStyle(),
		Muted: r.NewStyle().
			Foreground(lipgloss.Color("241")),
		Button: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 2),
		Focused: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(core.Hex(core.ColorSky))).
			Bold(true).
			Padding(0, 2),
	}
}

// LandingProps is everything the landing page shows.
type LandingProps struct {
	Title   string
	Stats   flappy.SessionStats
	Buttons []Button
	Focus   int
	Width   int
	Height  int
	Help    string
}

// LandingButtons returns the landing page actions in display order.
func LandingButtons() []Button {
	return []Button{
		{Label: "Play", Msg: playMsg{}},
		{Label: "New Game", Msg: newGameMsg{}},
	}
}

// RenderLanding draws the landing page.
func RenderLanding(th Theme, p LandingProps) string {
	var b strings.Builder

	b.WriteString(th.Title.Render(p.Title))
	b.WriteString("\n\n")
	b.WriteString(renderButtons(th, p.Buttons, p.Focus))

	if p.Stats.GamesPlayed > 0 {
		b.WriteString("\n\n")
		b.WriteString(th.Muted.Render(fmt.Sprintf("High Score: %d  Games: %d",
			p.Stats.HighScore, p.Stats.GamesPlayed)))
	}

	return placeScreen(p.Width, p.Height, b.String(), p.Help, th)
}

// renderButtons stacks buttons vertically, highlighting the focused one.
func renderButtons(th Theme, buttons []Button, focus int) string {
	rendered := make([]string, len(buttons))
	for i, btn := range buttons {
		style := th.Button
		if i == focus {
			style = th.Focused
		}
		rendered[i] = style.Render(btn.Label)
	}
	return lipgloss.JoinVertical(lipgloss.Center, rendered...)
}

// placeScreen centers body in the available space with help at the bottom.
func placeScreen(width, height int, body, help string, th Theme) string {
	if width <= 0 || height <= 0 {
		return body
	}
	body = lipgloss.JoinVertical(lipgloss.Center, body)
	bodyHeight := height
	if help != "" {
		bodyHeight--
	}
	out := lipgloss.Place(width, bodyHeight, lipgloss.Center, lipgloss.Center, body)
	if help != "" {
		out += "\n" + th.Muted.Render(help)
	}
	return out
}
