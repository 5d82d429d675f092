package tui

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/vovakirdan/tui-sketch/internal/config"
	"github.com/vovakirdan/tui-sketch/internal/core"
)

func newTestSSHServer(t *testing.T) *SSHServer {
	t.Helper()
	dir := t.TempDir()

	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.HostKeyPath = filepath.Join(dir, "host_key")
	cfg.Config.Storage.Path = filepath.Join(dir, "sketches.db")

	srv, err := NewSSHServer(cfg)
	if err != nil {
		t.Fatalf("NewSSHServer: %v", err)
	}
	t.Cleanup(srv.closeStore)
	return srv
}

func TestNewSSHServer(t *testing.T) {
	dir := t.TempDir()

	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.HostKeyPath = filepath.Join(dir, "keys", "host_key")
	cfg.Config.Storage.Path = filepath.Join(dir, "sketches.db")

	srv, err := NewSSHServer(cfg)
	if err != nil {
		t.Fatalf("NewSSHServer: %v", err)
	}
	if srv.Addr() != "127.0.0.1:0" {
		t.Errorf("Addr = %q", srv.Addr())
	}
	if srv.store == nil {
		t.Error("expected the sketch database to be open")
	}
	if _, err := os.Stat(filepath.Join(dir, "keys")); err != nil {
		t.Errorf("host key directory not created: %v", err)
	}

	if err := srv.Shutdown(); err != nil {
		t.Errorf("Shutdown: %v", err)
	}
	if srv.store != nil {
		t.Error("store should be closed after shutdown")
	}
}

func TestDefaultSSHServerConfig(t *testing.T) {
	cfg := DefaultSSHServerConfig()

	if cfg.Address != ":23234" {
		t.Errorf("Address = %q", cfg.Address)
	}
	if cfg.IdleTimeout <= 0 {
		t.Error("expected an idle timeout")
	}
	if cfg.Config.Storage.Path != config.Default().Storage.Path {
		t.Error("expected the default storage path")
	}
}

func TestShutdownTimeoutKeepsStoreOpen(t *testing.T) {
	srv := newTestSSHServer(t)

	srv.afterShutdown(context.DeadlineExceeded)

	store := srv.sketchStore()
	if store == nil {
		t.Fatal("store closed while sessions may still be running")
	}
	if err := store.SaveSketch("late", core.NewCanvas(2, 2)); err != nil {
		t.Errorf("save after timed out shutdown: %v", err)
	}

	srv.afterShutdown(nil)
	if srv.sketchStore() != nil {
		t.Error("store should be closed once sessions have ended")
	}
}

func TestSketchStoreConcurrentWithClose(t *testing.T) {
	srv := newTestSSHServer(t)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = srv.sketchStore()
		}()
	}
	srv.closeStore()
	wg.Wait()

	if srv.sketchStore() != nil {
		t.Error("expected no store after close")
	}
}
