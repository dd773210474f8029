package tui

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
)

func TestResolveHostKeyPath(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "keys", "nested")
	want := filepath.Join(dir, "host_key")

	got, err := resolveHostKeyPath(want)
	if err != nil {
		t.Fatalf("resolveHostKeyPath() failed: %v", err)
	}
	if got != want {
		t.Errorf("path = %q, expected %q", got, want)
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		t.Errorf("key directory not created: %v", err)
	}
}

func TestNewSSHServer(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.HostKeyPath = filepath.Join(t.TempDir(), "host_key")

	srv, err := NewSSHServer(cfg, log.New(io.Discard))
	if err != nil {
		t.Fatalf("NewSSHServer() failed: %v", err)
	}
	if srv.Addr() != "127.0.0.1:0" {
		t.Errorf("Addr() = %q", srv.Addr())
	}
	if err := srv.Shutdown(); err != nil {
		t.Errorf("Shutdown() failed: %v", err)
	}
}

func TestDefaultSSHServerConfig(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	if cfg.Address != ":23234" {
		t.Errorf("Address = %q", cfg.Address)
	}
	if cfg.Runtime.TickRate != 60 {
		t.Errorf("TickRate = %d", cfg.Runtime.TickRate)
	}
	if err := cfg.Game.Validate(); err != nil {
		t.Errorf("default game config invalid: %v", err)
	}
}
