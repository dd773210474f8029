package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/sarangola/internal/games/flappy"
	"github.com/vovakirdan/sarangola/internal/storage"
)

// recentRuns is how many runs the game-over screen lists.
const recentRuns = 5

// GameOverProps is everything the game-over screen shows.
type GameOverProps struct {
	FinalScore int
	Stats      flappy.SessionStats
	Runs       []storage.Run
	Buttons    []Button
	Focus      int
	Width      int
	Height     int
	Help       string
}

// GameOverButtons returns the game-over actions in display order.
func GameOverButtons() []Button {
	return []Button{
		{Label: "Play Again", Msg: playAgainMsg{}},
		{Label: "Quit", Msg: backMsg{}},
	}
}

// RenderGameOver draws the game-over screen.
func RenderGameOver(th Theme, p GameOverProps) string {
	var b strings.Builder

	b.WriteString(th.Title.Render("Game Over"))
	b.WriteString("\n\n")
	b.WriteString(th.Text.Render(fmt.Sprintf("Final Score: %d", p.FinalScore)))
	b.WriteString("\n")
	b.WriteString(th.Text.Render(fmt.Sprintf("High Score: %d", p.Stats.HighScore)))
	b.WriteString("\n")
	b.WriteString(th.Text.Render("Average Score: " + flappy.FormatAverage(p.Stats.Average())))
	b.WriteString("\n\n")

	if len(p.Runs) > 0 {
		b.WriteString(th.Muted.Render("Recent runs"))
		b.WriteString("\n")
		b.WriteString(runTable(p.Runs).View())
		b.WriteString("\n\n")
	}

	b.WriteString(renderButtons(th, p.Buttons, p.Focus))

	return placeScreen(p.Width, p.Height, b.String(), p.Help, th)
}

// runTable lists runs newest first.
func runTable(runs []storage.Run) table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Score", Width: 6},
		{Title: "Frames", Width: 7},
		{Title: "Cause", Width: 9},
		{Title: "Ended", Width: 9},
	}

	rows := make([]table.Row, len(runs))
	for i, r := range runs {
		rows[i] = table.Row{
			strconv.FormatInt(r.ID, 10),
			strconv.Itoa(r.Score),
			strconv.Itoa(r.Frames),
			r.Cause,
			r.EndedAt.Format("15:04:05"),
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)+1),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	// No cursor: the table is read-only
	s.Selected = s.Cell
	t.SetStyles(s)

	return t
}
