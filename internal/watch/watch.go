// Package watch re-runs a callback when a file settles after changes.
package watch

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/yaklabco/markview/internal/logging"
	"github.com/yaklabco/markview/pkg/fsutil"
)

// DefaultDelay is the idle period after the last change before fn runs.
const DefaultDelay = 500 * time.Millisecond

// Func receives the current file content.
type Func func(ctx context.Context, content []byte) error

// Run calls fn with the content of path once, then again each time the
// content changes and no further event arrives for delay. Bursts of events
// collapse into one call. Errors from fn are logged and watching continues.
// Run returns nil when ctx is cancelled.
func Run(ctx context.Context, path string, delay time.Duration, fn Func) error {
	logger := logging.FromContext(ctx)

	if delay <= 0 {
		delay = DefaultDelay
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", path, err)
	}
	path = abs

	content, info, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	// Editors often replace files by rename, so watch the directory.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(path), err)
	}

	call(ctx, fn, path, content)

	timer := time.NewTimer(delay)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != path {
				continue
			}
			logger.Debug("file event", logging.FieldPath, path, logging.FieldEvent, ev.Op.String())
			timer.Reset(delay)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", logging.FieldError, err)

		case <-timer.C:
			changed, err := fsutil.CheckModified(ctx, info)
			if err != nil {
				if errors.Is(err, context.Canceled) {
					return nil
				}
				logger.Warn("check modified", logging.FieldPath, path, logging.FieldError, err)
				continue
			}
			if !changed {
				continue
			}

			next, nextInfo, err := fsutil.ReadFile(ctx, path)
			if err != nil {
				// Deleted or mid-replace; a later event will retry.
				logger.Warn("read changed file", logging.FieldPath, path, logging.FieldError, err)
				continue
			}
			info = nextInfo
			call(ctx, fn, path, next)
		}
	}
}

func call(ctx context.Context, fn Func, path string, content []byte) {
	logger := logging.FromContext(ctx)
	start := time.Now()

	if err := fn(ctx, content); err != nil {
		logger.Error("render failed", logging.FieldPath, path, logging.FieldError, err)
		return
	}
	logger.Debug("rendered", logging.FieldPath, path, logging.FieldDuration, time.Since(start))
}
