package tui

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/sarangola/internal/config"
	"github.com/vovakirdan/sarangola/internal/core"
	"github.com/vovakirdan/sarangola/internal/games/flappy"
	"github.com/vovakirdan/sarangola/internal/storage"
)

// gameOverDelay is how long the in-canvas overlay stays before the
// game-over screen replaces it.
const gameOverDelay = 1500 * time.Millisecond

// chromeRows are the terminal rows below the canvas: status and help.
const chromeRows = 2

type view int

const (
	viewLanding view = iota
	viewPlaying
	viewGameOver
)

// showGameOverMsg fires once the overlay has been visible long enough.
type showGameOverMsg struct {
	gen uint64
}

// Options configures a Model.
type Options struct {
	Game     *flappy.Game    // Defaults to the built-in configuration
	Runs     *storage.RunLog // Optional
	Runtime  core.RuntimeConfig
	Logger   *log.Logger        // Optional, discards by default
	Renderer *lipgloss.Renderer // Optional, per SSH session
	Context  context.Context    // Optional, bounds run log calls
	Width    int                // Initial terminal size, if known
	Height   int
}

// Model is the Bubble Tea model for a whole session:
// landing page, game loop and game-over screen.
type Model struct {
	game    *flappy.Game
	runs    *storage.RunLog
	runtime core.RuntimeConfig
	logger  *log.Logger
	ctx     context.Context

	keys    KeyMap
	help    help.Model
	theme   Theme
	painter *Painter

	loop    frameLoop
	screen  *core.Screen
	surface *core.CellSurface
	input   core.InputFrame

	view         view
	focus        int
	width        int
	height       int
	pendingStart bool // Play pressed while the canvas was empty
	held         bool // Run paused because the canvas shrank to nothing
	runsStarted  int
	recent       []storage.Run
	quitting     bool
}

// NewModel creates the session model.
func NewModel(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	if opts.Game == nil {
		opts.Game = flappy.New(config.Default())
	}
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = core.DefaultConfig().TickRate
	}

	h := help.New()
	h.ShowAll = false

	m := Model{
		game:    opts.Game,
		runs:    opts.Runs,
		runtime: opts.Runtime,
		logger:  logger,
		ctx:     ctx,
		keys:    DefaultKeyMap(),
		help:    h,
		theme:   NewTheme(opts.Renderer),
		painter: NewPainter(opts.Renderer),
		loop:    newFrameLoop(opts.Runtime.TickRate),
		screen:  core.NewScreen(0, 0),
		input:   core.NewInputFrame(),
	}
	m.resize(opts.Width, opts.Height)
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		cmd := m.afterResize()
		return m, cmd

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.loop.Cancel()
			m.quitting = true
			return m, tea.Quit
		}
		switch m.view {
		case viewPlaying:
			return m.playingKey(msg)
		case viewGameOver:
			return m.gameOverKey(msg)
		default:
			return m.landingKey(msg)
		}

	case tea.MouseMsg:
		if m.view == viewPlaying && m.onCanvas(msg.X, msg.Y) {
			if a := MouseAction(msg); a != core.ActionNone {
				m.input.Set(a)
			}
		}
		return m, nil

	case TickMsg:
		if !m.loop.Accept(msg) {
			return m, nil
		}
		return m.tick()

	case showGameOverMsg:
		if m.view == viewPlaying && msg.gen == m.loop.Gen() {
			m.enterGameOver()
		}
		return m, nil

	case playMsg, playAgainMsg:
		cmd := m.startRun()
		return m, cmd

	case newGameMsg:
		m.game.ResetStats()
		m.logger.Debug("session stats cleared")
		cmd := m.startRun()
		return m, cmd

	case backMsg:
		m.loop.Cancel()
		m.view = viewLanding
		m.focus = 0
		return m, nil
	}

	return m, nil
}

func (m Model) landingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	buttons := LandingButtons()
	switch {
	case key.Matches(msg, m.keys.Up):
		m.focus = (m.focus + len(buttons) - 1) % len(buttons)
	case key.Matches(msg, m.keys.Down):
		m.focus = (m.focus + 1) % len(buttons)
	case key.Matches(msg, m.keys.Select):
		return m, buttons[m.focus].Press()
	}
	return m, nil
}

func (m Model) gameOverKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	buttons := GameOverButtons()
	switch {
	case key.Matches(msg, m.keys.Up):
		m.focus = (m.focus + len(buttons) - 1) % len(buttons)
	case key.Matches(msg, m.keys.Down):
		m.focus = (m.focus + 1) % len(buttons)
	case key.Matches(msg, m.keys.Select):
		return m, buttons[m.focus].Press()
	case key.Matches(msg, m.keys.Restart):
		cmd := m.startRun()
		return m, cmd
	case key.Matches(msg, m.keys.Back):
		return m, Button{Msg: backMsg{}}.Press()
	}
	return m, nil
}

func (m Model) playingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Any key skips the game-over overlay
	if m.game.State().GameOver {
		m.enterGameOver()
		return m, nil
	}
	if key.Matches(msg, m.keys.Back) {
		m.loop.Cancel()
		m.logger.Debug("run abandoned", "score", m.game.State().Score)
		m.view = viewLanding
		m.focus = 0
		return m, nil
	}
	if a := m.keys.GameAction(msg); a != core.ActionNone {
		m.input.Set(a)
	}
	return m, nil
}

// startRun resets the game and starts a fresh frame loop.
func (m *Model) startRun() tea.Cmd {
	if !m.hasCanvas() {
		m.pendingStart = true
		return nil
	}
	m.held = false

	rc := m.runtime
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	} else {
		rc.Seed += int64(m.runsStarted)
	}
	m.runsStarted++

	m.game.Reset(rc)
	m.input.Clear()
	m.view = viewPlaying
	m.focus = 0
	m.logger.Debug("run started", "run", m.runsStarted, "seed", rc.Seed)
	return m.loop.Start()
}

// tick simulates one frame and schedules the next one while the run lives.
func (m Model) tick() (tea.Model, tea.Cmd) {
	res := m.game.Step(m.input)
	m.input.Clear()

	if !res.Ended {
		return m, m.loop.Next()
	}

	m.loop.Cancel()
	m.recordRun(res.State.Score)

	gen := m.loop.Gen()
	return m, tea.Tick(gameOverDelay, func(time.Time) tea.Msg {
		return showGameOverMsg{gen: gen}
	})
}

// recordRun stores the finished run. Failures are logged and ignored.
func (m *Model) recordRun(score int) {
	stats := m.game.Stats()
	m.logger.Info("run finished",
		"score", score,
		"cause", m.game.Cause(),
		"frames", m.game.Frames(),
		"high", stats.HighScore,
		"average", flappy.FormatAverage(stats.Average()),
	)

	if m.runs == nil {
		return
	}
	_, err := m.runs.Record(m.ctx, storage.Run{
		Score:  score,
		Frames: m.game.Frames(),
		Cause:  m.game.Cause().String(),
	})
	if err != nil {
		m.logger.Warn("could not record run", "error", err)
		return
	}
	recent, err := m.runs.Recent(m.ctx, recentRuns)
	if err != nil {
		m.logger.Warn("could not load recent runs", "error", err)
		return
	}
	m.recent = recent
}

func (m *Model) enterGameOver() {
	m.loop.Cancel()
	m.view = viewGameOver
	m.focus = 0
}

// resize fits the canvas into the terminal, leaving room for the chrome.
func (m *Model) resize(width, height int) {
	m.width = max(width, 0)
	m.height = max(height, 0)
	m.help.Width = m.width

	cw, ch := m.game.Canvas()
	cols, rows := core.FitCanvas(m.width, m.height-chromeRows, cw, ch)
	m.screen.Resize(cols, rows)
	m.surface = core.NewCellSurface(m.screen, cw, ch)
}

// hasCanvas reports whether the terminal leaves room to draw the canvas.
func (m Model) hasCanvas() bool {
	return m.screen.Width() > 0 && m.screen.Height() > 0
}

// afterResize starts a pending run once the canvas fits, and holds the
// frame loop while the canvas is empty.
func (m *Model) afterResize() tea.Cmd {
	if !m.hasCanvas() {
		if m.loop.Running() {
			m.loop.Cancel()
			m.held = true
			m.logger.Debug("canvas hidden, run held", "score", m.game.State().Score)
		}
		return nil
	}
	if m.pendingStart {
		m.pendingStart = false
		return m.startRun()
	}
	if m.held {
		m.held = false
		if m.view == viewPlaying && !m.game.State().GameOver {
			return m.loop.Start()
		}
	}
	return nil
}

// canvasOffset returns the column where the centered canvas starts.
func (m Model) canvasOffset() int {
	return max((m.width-m.screen.Width())/2, 0)
}

// onCanvas reports whether terminal cell (x, y) lies on the canvas.
func (m Model) onCanvas(x, y int) bool {
	off := m.canvasOffset()
	return x >= off && x < off+m.screen.Width() && y >= 0 && y < m.screen.Height()
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.view {
	case viewPlaying:
		return m.playingView()
	case viewGameOver:
		return RenderGameOver(m.theme, GameOverProps{
			FinalScore: m.game.State().Score,
			Stats:      m.game.Stats(),
			Runs:       m.recent,
			Buttons:    GameOverButtons(),
			Focus:      m.focus,
			Width:      m.width,
			Height:     m.height,
			Help:       m.help.View(screenKeys{KeyMap: m.keys, restart: true}),
		})
	default:
		return RenderLanding(m.theme, LandingProps{
			Title:   m.game.Title(),
			Stats:   m.game.Stats(),
			Buttons: LandingButtons(),
			Focus:   m.focus,
			Width:   m.width,
			Height:  m.height,
			Help:    m.help.View(screenKeys{KeyMap: m.keys}),
		})
	}
}

func (m Model) playingView() string {
	if m.screen.Width() == 0 || m.screen.Height() == 0 {
		return "Terminal too small"
	}

	m.game.Render(m.surface)
	canvas := m.painter.RenderScreen(m.screen)

	stats := m.game.Stats()
	status := fmt.Sprintf("Score: %d  High Score: %d  Average: %s",
		m.game.State().Score, stats.HighScore, flappy.FormatAverage(stats.Average()))

	return lipgloss.JoinVertical(lipgloss.Center,
		lipgloss.PlaceHorizontal(m.width, lipgloss.Center, canvas),
		lipgloss.PlaceHorizontal(m.width, lipgloss.Center, m.theme.Text.Render(status)),
		lipgloss.PlaceHorizontal(m.width, lipgloss.Center, m.theme.Muted.Render(m.help.View(m.keys))),
	)
}

// Run starts the Bubble Tea program in the current terminal.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
