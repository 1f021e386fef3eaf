package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func startWatcher(t *testing.T, path string) (*Watcher, <-chan error) {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	w := NewWatcher(path, nil)
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	select {
	case <-w.Ready():
	case err := <-done:
		t.Fatalf("watcher exited early: %v", err)
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not become ready")
	}
	return w, done
}

func TestWatcherDeliversReloadedConfig(t *testing.T) {
	path := writeTempConfig(t, "sidebar:\n  placement: left\n")
	w, _ := startWatcher(t, path)

	require.NoError(t, os.WriteFile(path, []byte("sidebar:\n  placement: right\n"), 0o600))

	select {
	case cfg := <-w.Updates():
		require.Equal(t, "right", cfg.Sidebar.Placement)
	case <-time.After(3 * time.Second):
		t.Fatal("no reload delivered")
	}
}

func TestWatcherSkipsInvalidConfig(t *testing.T) {
	path := writeTempConfig(t, "sidebar:\n  placement: left\n")
	w, _ := startWatcher(t, path)

	require.NoError(t, os.WriteFile(path, []byte("sidebar:\n  placement: diagonal\n"), 0o600))
	select {
	case cfg := <-w.Updates():
		t.Fatalf("invalid config delivered: %+v", cfg.Sidebar)
	case <-time.After(300 * time.Millisecond):
	}

	require.NoError(t, os.WriteFile(path, []byte("sidebar:\n  placement: end\n"), 0o600))
	select {
	case cfg := <-w.Updates():
		require.Equal(t, "end", cfg.Sidebar.Placement)
	case <-time.After(3 * time.Second):
		t.Fatal("no reload delivered after fixing config")
	}
}

func TestWatcherIgnoresSiblingFiles(t *testing.T) {
	path := writeTempConfig(t, "sidebar:\n  placement: left\n")
	w, _ := startWatcher(t, path)

	sibling := filepath.Join(filepath.Dir(path), "other.yaml")
	require.NoError(t, os.WriteFile(sibling, []byte("sidebar:\n  placement: right\n"), 0o600))

	select {
	case <-w.Updates():
		t.Fatal("sibling change triggered reload")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcherStopsOnCancel(t *testing.T) {
	path := writeTempConfig(t, "")

	ctx, cancel := context.WithCancel(context.Background())
	w := NewWatcher(path, nil)
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()
	<-w.Ready()

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestWatcherCanRunAgainAfterCancel(t *testing.T) {
	path := writeTempConfig(t, "sidebar:\n  placement: left\n")
	w := NewWatcher(path, nil)

	for i := 0; i < 2; i++ {
		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() { done <- w.Run(ctx) }()
		<-w.Ready()

		cancel()
		select {
		case err := <-done:
			require.NoError(t, err)
		case <-time.After(2 * time.Second):
			t.Fatal("watcher did not stop")
		}
	}
}

func TestWatcherMissingDirectory(t *testing.T) {
	t.Parallel()

	w := NewWatcher(filepath.Join(t.TempDir(), "missing", "layoutkit.yaml"), nil)
	err := w.Run(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "[add]")
}
