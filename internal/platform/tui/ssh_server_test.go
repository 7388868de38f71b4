package tui

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
)

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func TestNewSSHServerUnknownAgent(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	cfg.AgentName = "nobody"
	cfg.DBPath = filepath.Join(t.TempDir(), "scores.db")

	if _, err := NewSSHServer(cfg, quietLogger()); err == nil {
		t.Error("NewSSHServer() with unknown agent should fail")
	}
}

func TestNewSSHServerHostKeyFailureLeavesNoStore(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, []byte("not a directory"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg := DefaultSSHServerConfig()
	cfg.HostKeyPath = filepath.Join(blocker, "keys", "host_key")
	cfg.DBPath = filepath.Join(dir, "data", "scores.db")

	if _, err := NewSSHServer(cfg, quietLogger()); err == nil {
		t.Fatal("NewSSHServer() should fail when the host key directory cannot be created")
	}
	if _, err := os.Stat(cfg.DBPath); !os.IsNotExist(err) {
		t.Errorf("results database opened before the failure: stat err = %v", err)
	}
}

func TestNewSSHServerAndShutdown(t *testing.T) {
	dir := t.TempDir()

	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.HostKeyPath = filepath.Join(dir, "host_key")
	cfg.DBPath = filepath.Join(dir, "scores.db")
	cfg.AgentName = "greedy"

	srv, err := NewSSHServer(cfg, quietLogger())
	if err != nil {
		t.Fatalf("NewSSHServer() failed: %v", err)
	}
	if srv.store == nil {
		t.Error("store should be open")
	}
	if srv.Addr() != "127.0.0.1:0" {
		t.Errorf("Addr() = %q", srv.Addr())
	}

	if err := srv.Shutdown(); err != nil {
		t.Errorf("Shutdown() failed: %v", err)
	}
	if srv.store != nil {
		t.Error("Shutdown() should close the store")
	}
}
