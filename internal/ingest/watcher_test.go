package ingest

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartWatcherNoRoots(t *testing.T) {
	_, _, err := StartWatcher(context.Background(), WatchConfig{})
	require.Error(t, err)
}

func TestStartWatcherInitialScan(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	dir := t.TempDir()
	existing := filepath.Join(dir, "00002500.tif")
	require.NoError(t, os.WriteFile(existing, []byte("II*"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))

	evCh, _, err := StartWatcher(ctx, WatchConfig{Roots: []string{dir}, InitialScan: true})
	require.NoError(t, err)

	select {
	case got := <-evCh:
		assert.Equal(t, existing, got)
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for initial scan emission")
	}
}

// A burst of scanner writes must come out debounced, every file exactly
// covered, with no writes to shared state outside the event loop.
func TestStartWatcherDebouncedBurst(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	dir := t.TempDir()
	evCh, _, err := StartWatcher(ctx, WatchConfig{
		Roots:    []string{dir},
		Debounce: 50 * time.Millisecond,
	})
	require.NoError(t, err)

	want := map[string]struct{}{}
	for _, name := range []string{"00002500.tif", "00002501.tif", "00002502.tif"} {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, []byte("II*"), 0o644))
		want[p] = struct{}{}
	}

	got := map[string]struct{}{}
	deadline := time.After(5 * time.Second)
	for len(got) < len(want) {
		select {
		case p := <-evCh:
			got[p] = struct{}{}
		case <-deadline:
			t.Fatalf("timed out, received %d of %d paths", len(got), len(want))
		}
	}
	assert.Equal(t, want, got)
}

func TestStartWatcherClosesOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	dir := t.TempDir()
	evCh, _, err := StartWatcher(ctx, WatchConfig{Roots: []string{dir}})
	require.NoError(t, err)

	cancel()

	select {
	case _, open := <-evCh:
		assert.False(t, open)
	case <-time.After(3 * time.Second):
		t.Fatal("event channel did not close after cancel")
	}
}
