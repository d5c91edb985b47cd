package cli

import (
	"errors"

	"github.com/yaklabco/markview/pkg/export"
	"github.com/yaklabco/markview/pkg/fsutil"
	"github.com/yaklabco/markview/pkg/runner"
)

// Exit codes for markview.
const (
	// ExitSuccess indicates every requested artifact was written.
	ExitSuccess = 0

	// ExitExportFailed indicates at least one artifact could not be written.
	ExitExportFailed = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitIOError indicates a source could not be read.
	ExitIOError = 74
)

// Sentinel errors that select an exit code.
var (
	// ErrExportFailed signals that a batch finished with failures already
	// reported to the user.
	ErrExportFailed = errors.New("export failed")

	// ErrConfig wraps configuration load and validation failures.
	ErrConfig = errors.New("invalid configuration")

	// ErrUsage wraps invalid flag combinations.
	ErrUsage = errors.New("invalid usage")
)

// ExitCodeFromResult determines the exit code of a batch export.
func ExitCodeFromResult(result *runner.Result) int {
	if result.HasFailures() {
		return ExitExportFailed
	}
	return ExitSuccess
}

// ExitCode maps a command error to a process exit code.
func ExitCode(err error) int {
	var exportErr *export.Error
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrConfig):
		return ExitConfigError
	case errors.Is(err, ErrUsage), errors.Is(err, export.ErrUnknownTarget):
		return ExitInvalidUsage
	case errors.As(err, &exportErr), errors.Is(err, ErrExportFailed):
		return ExitExportFailed
	case errors.Is(err, fsutil.ErrNotFound),
		errors.Is(err, fsutil.ErrPermissionDenied),
		errors.Is(err, fsutil.ErrIsDirectory):
		return ExitIOError
	default:
		return ExitExportFailed
	}
}
