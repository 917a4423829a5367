package ingest

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func waitForEvent(t *testing.T, evCh <-chan string, timeout time.Duration) string {
	t.Helper()
	select {
	case p := <-evCh:
		return p
	case <-time.After(timeout):
		t.Fatal("timed out waiting for watcher event")
		return ""
	}
}

func TestWatcherRequiresRoots(t *testing.T) {
	_, _, err := StartWatcher(context.Background(), WatchConfig{})
	if err == nil {
		t.Fatal("expected error for empty roots")
	}
}

func TestWatcherInitialScan(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "PO-100.pdf")
	if err := os.WriteFile(existing, []byte("%PDF-1.4"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	evCh, _, err := StartWatcher(ctx, WatchConfig{Roots: []string{dir}, InitialScan: true})
	if err != nil {
		t.Fatal(err)
	}
	if got := waitForEvent(t, evCh, 2*time.Second); got != existing {
		t.Errorf("event = %q, want %q", got, existing)
	}
}

func TestWatcherDebouncesRepeatedWrites(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	evCh, _, err := StartWatcher(ctx, WatchConfig{Roots: []string{dir}, Debounce: 50 * time.Millisecond})
	if err != nil {
		t.Fatal(err)
	}

	target := filepath.Join(dir, "PO-200.pdf")
	for i := 0; i < 5; i++ {
		if err := os.WriteFile(target, []byte("%PDF-1.4"), 0o644); err != nil {
			t.Fatal(err)
		}
		time.Sleep(5 * time.Millisecond)
	}

	if got := waitForEvent(t, evCh, 2*time.Second); got != target {
		t.Errorf("event = %q, want %q", got, target)
	}

	// the burst of writes collapses into a single emission
	select {
	case extra := <-evCh:
		t.Errorf("unexpected second event %q", extra)
	case <-time.After(200 * time.Millisecond):
	}
}
