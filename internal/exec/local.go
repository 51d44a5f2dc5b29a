// Package exec exposes various task runners that can execute arbitrary commands. This is mostly a thin wrapper around
// `os/exec` plus a mocked implementation. Commands are run through the shell since the helpers in `internal/cli` chain
// multiple steps with `&&`.
package exec

import (
	"context"
	"os/exec"

	"github.com/SalesforceBrainz/sfmc-devtools-copado/internal/errors"
)

// Local is a local executioner. It wraps `os/exec`
type Local struct{}

// NewCommand returns a new command that can then be executed.
func (l Local) NewCommand(ctx context.Context, cfg CommandConfig) (Command, error) {
	//nolint:gosec // Spawning a user-configurable sub-process is expected here.
	cmd := exec.CommandContext(ctx, "sh", "-c", cfg.Script)

	cmd.Stdin = cfg.Stdin
	cmd.Stderr = cfg.Stderr
	cmd.Stdout = cfg.Stdout

	for _, override := range cfg.Env {
		cmd.Env = append(cmd.Environ(), override)
	}

	return cmd, nil
}

// GetExitStatusFromError extracts the exit status from an error returned by `Wait`. Errors that don't carry an
// observed exit code (i.e. anything other than `exec.ExitError`, or a process that was killed before reporting one)
// map to the UnknownStatus sentinel.
func (l Local) GetExitStatusFromError(err error) (ExitStatus, error) {
	var exitError *exec.ExitError
	if !errors.As(err, &exitError) {
		return UnknownStatus, errors.NewInternalError("expected error to be of type exec.ExitError, received %T", err)
	}

	if code := exitError.ExitCode(); code >= 0 {
		return Exited(code), nil
	}

	return UnknownStatus, nil
}
