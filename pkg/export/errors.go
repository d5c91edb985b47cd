package export

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is.
var (
	ErrUnknownTarget = errors.New("unknown export target")
	ErrEmptyPath     = errors.New("empty destination path")
)

// Error is the single failure signal for an artifact that could not be
// produced. The destination is left untouched.
type Error struct {
	Target Target
	Path   string
	Err    error
}

func (e *Error) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("export %s: %v", e.Target, e.Err)
	}
	return fmt.Sprintf("export %s to %s: %v", e.Target, e.Path, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
