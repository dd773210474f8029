// Package tui runs Sarangola Flappy in a terminal with Bubble Tea.
// It owns the screens around the game (landing page, game-over screen),
// the frame loop, input mapping and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg asks the model to simulate one frame. Gen identifies the loop
// that scheduled it.
type TickMsg struct {
	Gen  uint64
	Time time.Time
}

// frameLoop schedules ticks at a fixed rate. Every Start or Cancel bumps
// the generation, so ticks still in flight from an older loop are dropped.
type frameLoop struct {
	gen      uint64
	interval time.Duration
	running  bool
}

func newFrameLoop(tickRate int) frameLoop {
	if tickRate <= 0 {
		tickRate = 60
	}
	return frameLoop{interval: time.Second / time.Duration(tickRate)}
}

// Start begins a new loop and schedules its first tick.
func (l *frameLoop) Start() tea.Cmd {
	l.gen++
	l.running = true
	return l.Next()
}

// Cancel stops the loop. Ticks already scheduled are ignored.
func (l *frameLoop) Cancel() {
	l.gen++
	l.running = false
}

// Accept reports whether msg belongs to the live loop.
func (l frameLoop) Accept(msg TickMsg) bool {
	return l.running && msg.Gen == l.gen
}

// Next schedules the following tick of the current generation.
func (l frameLoop) Next() tea.Cmd {
	gen := l.gen
	return tea.Tick(l.interval, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, Time: t}
	})
}

// Running reports whether ticks are being accepted.
func (l frameLoop) Running() bool {
	return l.running
}

// Gen returns the current generation.
func (l frameLoop) Gen() uint64 {
	return l.gen
}
