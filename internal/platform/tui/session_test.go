package tui

import (
	"bytes"
	"context"
	"net"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"

	"github.com/vovakirdan/sarangola/internal/config"
	"github.com/vovakirdan/sarangola/internal/games/flappy"
	"github.com/vovakirdan/sarangola/internal/storage"
)

type testSession struct {
	ssh.Session
}

func (*testSession) User() string { return "kite" }

func (*testSession) RemoteAddr() net.Addr {
	return &net.TCPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 40000}
}

func TestSessionEndsAfterProgram(t *testing.T) {
	var buf bytes.Buffer
	srv := &SSHServer{logger: log.New(&buf)}
	sess := &testSession{}

	var ss *session
	handler := srv.sessionMiddleware(func(s ssh.Session) {
		v, ok := srv.sessions.Load(s)
		if !ok {
			t.Fatal("no session state inside the handler")
		}
		ss = v.(*session)
		ss.start(config.Default())

		if _, err := ss.runs.Record(context.Background(), storage.Run{Score: 3}); err != nil {
			t.Fatalf("Record() failed: %v", err)
		}
		if strings.Contains(buf.String(), "session summary") {
			t.Error("summary logged while the program was running")
		}
	})
	handler(sess)

	out := buf.String()
	for _, want := range []string{"session summary", "games=1", "high=3", "user=kite"} {
		if !strings.Contains(out, want) {
			t.Errorf("log missing %q:\n%s", want, out)
		}
	}
	if _, err := ss.runs.Summary(context.Background()); err == nil {
		t.Error("run log still open after the session ended")
	}
	if _, ok := srv.sessions.Load(sess); ok {
		t.Error("session state kept after the session ended")
	}
}

func TestSessionWithoutGame(t *testing.T) {
	var buf bytes.Buffer
	srv := &SSHServer{logger: log.New(&buf)}

	// No PTY: the program never starts
	srv.sessionMiddleware(func(ssh.Session) {})(&testSession{})

	if strings.Contains(buf.String(), "session summary") {
		t.Errorf("summary logged for a session that never played:\n%s", buf.String())
	}
}

func TestLogSummary(t *testing.T) {
	ctx := context.Background()

	// Stats cleared by New Game; the run log still has both runs
	runs, err := storage.OpenRunLog()
	if err != nil {
		t.Fatalf("OpenRunLog() failed: %v", err)
	}
	defer runs.Close()
	for _, score := range []int{2, 5} {
		if _, err := runs.Record(ctx, storage.Run{Score: score}); err != nil {
			t.Fatalf("Record() failed: %v", err)
		}
	}

	tests := []struct {
		name string
		runs *storage.RunLog
		want []string
	}{
		{"run log", runs, []string{"games=2", "high=5", "average=3.50"}},
		{"stats only", nil, []string{"games=0", "high=0", "average=0.00"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			LogSummary(ctx, log.New(&buf), flappy.New(config.Default()), tc.runs)

			out := buf.String()
			for _, want := range tc.want {
				if !strings.Contains(out, want) {
					t.Errorf("log missing %q:\n%s", want, out)
				}
			}
		})
	}
}
