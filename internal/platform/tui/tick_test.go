package tui

import (
	"testing"
	"time"
)

func TestFrameLoopInterval(t *testing.T) {
	tests := []struct {
		rate int
		want time.Duration
	}{
		{60, time.Second / 60},
		{30, time.Second / 30},
		{0, time.Second / 60},
		{-5, time.Second / 60},
	}

	for _, tt := range tests {
		if got := newFrameLoop(tt.rate).interval; got != tt.want {
			t.Errorf("newFrameLoop(%d).interval = %v, expected %v", tt.rate, got, tt.want)
		}
	}
}

func TestFrameLoopAcceptsOwnTicks(t *testing.T) {
	l := newFrameLoop(1000)

	cmd := l.Start()
	if cmd == nil {
		t.Fatal("Start() returned no command")
	}
	msg, ok := cmd().(TickMsg)
	if !ok {
		t.Fatal("tick command did not produce a TickMsg")
	}
	if !l.Accept(msg) {
		t.Error("tick from the live loop was rejected")
	}
	if msg.Time.IsZero() {
		t.Error("tick carries no time")
	}
}

func TestFrameLoopDropsStaleTicks(t *testing.T) {
	l := newFrameLoop(1000)
	l.Start()
	first := TickMsg{Gen: l.Gen()}

	l.Cancel()
	if l.Accept(first) {
		t.Error("tick accepted after Cancel()")
	}
	if l.Running() {
		t.Error("loop still running after Cancel()")
	}

	l.Start()
	if l.Accept(first) {
		t.Error("tick from a cancelled loop accepted by the restarted loop")
	}
	if !l.Accept(TickMsg{Gen: l.Gen()}) {
		t.Error("tick from the restarted loop rejected")
	}
}

func TestFrameLoopIdleRejectsAll(t *testing.T) {
	l := newFrameLoop(60)
	if l.Accept(TickMsg{Gen: 0}) {
		t.Error("loop that never started accepted a tick")
	}
}
