package domain

import (
	"errors"
	"fmt"
)

// ErrMissingPath indicates a required file or directory argument is
// absent or does not exist. Raised before any side effect.
var ErrMissingPath = errors.New("required path missing")

// ErrParseFailure indicates a structured result file could not be parsed.
var ErrParseFailure = errors.New("result file malformed")

// ChildProcessError indicates an external tool returned a non-zero exit
// code or could not be started.
type ChildProcessError struct {
	Tool     string
	ExitCode int
	Err      error
}

func (e *ChildProcessError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s failed: %v", e.Tool, e.Err)
	}
	return fmt.Sprintf("%s exited with code %d", e.Tool, e.ExitCode)
}

func (e *ChildProcessError) Unwrap() error {
	return e.Err
}

// MissingPath wraps ErrMissingPath with the offending path.
func MissingPath(path string) error {
	return fmt.Errorf("%w: %s", ErrMissingPath, path)
}
