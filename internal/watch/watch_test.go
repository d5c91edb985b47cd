package watch_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/markview/internal/watch"
	"github.com/yaklabco/markview/pkg/fsutil"
)

const waitFor = 5 * time.Second

func start(t *testing.T, path string) (<-chan string, context.CancelFunc, <-chan error) {
	t.Helper()

	calls := make(chan string, 16)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)

	go func() {
		done <- watch.Run(ctx, path, 20*time.Millisecond, func(_ context.Context, content []byte) error {
			calls <- string(content)
			return nil
		})
	}()
	t.Cleanup(cancel)

	return calls, cancel, done
}

func receive(t *testing.T, calls <-chan string) string {
	t.Helper()
	select {
	case got := <-calls:
		return got
	case <-time.After(waitFor):
		t.Fatal("callback not called")
		return ""
	}
}

func TestRun_CallsOnStartAndChange(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "doc.md")
	require.NoError(t, os.WriteFile(path, []byte("one"), 0o644))

	calls, cancel, done := start(t, path)
	assert.Equal(t, "one", receive(t, calls))

	require.NoError(t, fsutil.WriteAtomic(context.Background(), path, []byte("two"), 0))
	assert.Equal(t, "two", receive(t, calls))

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(waitFor):
		t.Fatal("Run did not return after cancel")
	}
}

func TestRun_IgnoresSiblingFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "doc.md")
	require.NoError(t, os.WriteFile(path, []byte("one"), 0o644))

	calls, _, _ := start(t, path)
	assert.Equal(t, "one", receive(t, calls))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.md"), []byte("x"), 0o644))

	select {
	case got := <-calls:
		t.Fatalf("unexpected callback with %q", got)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestRun_MissingFile(t *testing.T) {
	t.Parallel()

	err := watch.Run(context.Background(), filepath.Join(t.TempDir(), "missing.md"), 0,
		func(context.Context, []byte) error { return nil })
	require.Error(t, err)
}
