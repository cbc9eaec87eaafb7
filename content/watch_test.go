package content

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWatcherDebouncesChanges(t *testing.T) {
	dir := t.TempDir()
	changes := make(chan struct{}, 10)
	w, err := NewWatcher(dir, 50*time.Millisecond, func() { changes <- struct{}{} }, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	for i := 0; i < 3; i++ {
		path := filepath.Join(dir, "post.md")
		require.NoError(t, os.WriteFile(path, []byte("---\nslug: a\ndate: 2023-01-01\n---\n"), 0o644))
	}

	select {
	case <-changes:
	case <-time.After(5 * time.Second):
		t.Fatal("expected a change notification")
	}

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop after cancel")
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	changes := make(chan struct{}, 10)
	w, err := NewWatcher(dir, 20*time.Millisecond, func() { changes <- struct{}{} }, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))

	select {
	case <-changes:
		t.Fatal("unexpected change notification for a non-content file")
	case <-time.After(200 * time.Millisecond):
	}
}
