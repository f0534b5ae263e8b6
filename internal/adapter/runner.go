package adapter

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
)

// TestRunner abstracts execution of the project's test command for one
// mutant trial.
type TestRunner interface {
	// Run executes command (via the shell) in workDir and returns the
	// combined output. Failed reports whether the command exited non-zero,
	// which in mutation testing means the mutant was killed.
	Run(ctx context.Context, workDir string, command string) (output string, failed bool, err error)
}

// LocalTestRunner runs the test command with os/exec.
type LocalTestRunner struct{}

// NewLocalTestRunner constructs a LocalTestRunner.
func NewLocalTestRunner() *LocalTestRunner {
	return &LocalTestRunner{}
}

// Run executes the test command in workDir under the caller's context.
func (r *LocalTestRunner) Run(ctx context.Context, workDir string, command string) (string, bool, error) {
	cmd := exec.CommandContext(ctx, "sh", "-c", command)
	cmd.Dir = workDir

	var out bytes.Buffer

	cmd.Stdout = &out
	cmd.Stderr = &out

	err := cmd.Run()
	if err == nil {
		return out.String(), false, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return out.String(), true, nil
	}

	// The command could not be started or was interrupted; let the caller
	// decide whether the context deadline caused it.
	return out.String(), false, err
}
