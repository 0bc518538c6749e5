package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWatcher(t *testing.T, files []string) *Watcher {
	t.Helper()

	cfg := DefaultConfig()
	cfg.DebounceDelay = 50 * time.Millisecond

	w, err := New(cfg, files, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Stop() })
	return w
}

func waitForEvent(t *testing.T, w *Watcher) Event {
	t.Helper()
	select {
	case event, ok := <-w.Events():
		require.True(t, ok, "events channel closed")
		return event
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for watch event")
		return Event{}
	}
}

func TestWatcher_ModifyEmitsEvent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "guidelines.md")
	require.NoError(t, os.WriteFile(path, []byte("## Code Quality\n"), 0644))

	w := newTestWatcher(t, []string{path})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w.Start(ctx)

	require.NoError(t, os.WriteFile(path, []byte("## Code Quality\n\n### New\n\nText.\n"), 0644))

	event := waitForEvent(t, w)
	assert.Equal(t, path, event.Path)
	assert.NotEmpty(t, event.EventID)
	// Some platforms report the rewrite as create+write; both mean reload
	assert.Contains(t, []Operation{OpModify, OpCreate}, event.Operation)
}

func TestWatcher_IgnoresUnrelatedFiles(t *testing.T) {
	dir := t.TempDir()
	watched := filepath.Join(dir, "guidelines.md")
	other := filepath.Join(dir, "scratch.md")
	require.NoError(t, os.WriteFile(watched, []byte("x"), 0644))

	w := newTestWatcher(t, []string{watched})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w.Start(ctx)

	require.NoError(t, os.WriteFile(other, []byte("y"), 0644))

	select {
	case event := <-w.Events():
		t.Fatalf("unexpected event for unrelated file: %+v", event)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcher_DeleteEmitsDelete(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "guidelines.md")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))

	w := newTestWatcher(t, []string{path})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w.Start(ctx)

	require.NoError(t, os.Remove(path))

	event := waitForEvent(t, w)
	assert.Equal(t, OpDelete, event.Operation)
}

func TestWatcher_StopClosesEvents(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "guidelines.md")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))

	w := newTestWatcher(t, []string{path})

	ctx, cancel := context.WithCancel(context.Background())
	w.Start(ctx)
	cancel()

	select {
	case _, ok := <-w.Events():
		assert.False(t, ok, "events channel should close after cancel")
	case <-time.After(2 * time.Second):
		t.Fatal("events channel did not close")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 500*time.Millisecond, cfg.DebounceDelay)
	assert.Contains(t, cfg.Extensions, ".md")
	assert.Contains(t, cfg.Extensions, ".html")
}
