package execution

import (
	"context"
	"errors"
	"os"
	"os/exec"
)

// ProcessRunner executes an external command and reports its exit code.
// Abstracting the child-process call keeps the pipeline deterministic
// under test.
type ProcessRunner interface {
	Run(ctx context.Context, dir, name string, args ...string) (int, error)
}

// ExecRunner runs commands with inherited standard streams
type ExecRunner struct{}

// NewExecRunner creates a new ExecRunner
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

// Run executes the command synchronously, wiring the child's output to
// the console. Returns the exit code; a non-zero exit is reported via
// both the code and the error.
func (r *ExecRunner) Run(ctx context.Context, dir, name string, args ...string) (int, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Env = os.Environ()
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), err
	}
	return -1, err
}
