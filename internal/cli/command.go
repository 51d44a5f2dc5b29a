package cli

import (
	"context"
	"os"
	"strings"

	"github.com/SalesforceBrainz/sfmc-devtools-copado/internal/errors"
	"github.com/SalesforceBrainz/sfmc-devtools-copado/internal/exec"
	"github.com/SalesforceBrainz/sfmc-devtools-copado/internal/logging"
)

// Command is one or more shell lines that execute as a single step. Multiple lines are joined with ` && ` so that the
// first failing line aborts the remainder; the overall step only succeeds when every line does.
type Command []string

// Line returns the full shell line that will be handed to the task runner.
func (c Command) Line() string {
	return strings.Join(c, " && ")
}

// ExecCommand runs a command synchronously with inherited standard streams and fails fast: any failure is returned as
// an error for the caller to decide about. Command failures are logged through the non-escalating failure channel on
// purpose; raising is how the decision to fail propagates, not the log level.
func (s Service) ExecCommand(ctx context.Context, preMsg string, cmd Command, postMsg string) error {
	if preMsg != "" {
		s.Log.Progressf("%s", preMsg)
	}

	line := cmd.Line()
	s.Log.Debugf("⚡ %s", line)

	run, err := s.newCommand(ctx, line)
	if err != nil {
		s.Log.Failuref(logging.KeepRunning, "Unable to set up %q: %s", line, err)
		return errors.NewSystemError("unable to set up sub-process: %s", err)
	}

	if err := run.Start(); err != nil {
		s.Log.Failuref(logging.KeepRunning, "Unable to spawn %q: %s", line, err)
		return errors.NewSystemError("unable to spawn sub-process: %s", err)
	}

	if err := run.Wait(); err != nil {
		status := s.exitStatus(err)
		if status.Unknown {
			s.Log.Failuref(logging.KeepRunning, "Command %q did not report an exit status: %s", line, err)
			return errors.NewSystemError("command %q did not report an exit status: %s", line, err)
		}

		s.Log.Failuref(logging.KeepRunning, "Command %q failed with exit status %d: %s", line, status.Code, err)
		return errors.NewExecutionError(status.Code, "command %q failed with exit status %d", line, status.Code)
	}

	if postMsg != "" {
		s.Log.Debugf("%s", postMsg)
	}

	return nil
}

// ExecCommandReturnStatus is the status-capturing counterpart of ExecCommand. Instead of returning an error it
// reports the exit status of the command, so that callers can branch on specific exit codes without unwrapping
// errors. A process that never produced an exit code reports the UnknownStatus sentinel, never 0.
func (s Service) ExecCommandReturnStatus(ctx context.Context, preMsg string, cmd Command, postMsg string) exec.ExitStatus {
	if preMsg != "" {
		s.Log.Progressf("%s", preMsg)
	}

	line := cmd.Line()
	s.Log.Debugf("⚡ %s", line)

	run, err := s.newCommand(ctx, line)
	if err != nil {
		s.Log.Warnf("Unable to set up %q: %s", line, err)
		return exec.UnknownStatus
	}

	if err := run.Start(); err != nil {
		s.Log.Warnf("Unable to spawn %q: %s", line, err)
		return exec.UnknownStatus
	}

	if err := run.Wait(); err != nil {
		status := s.exitStatus(err)
		if status.Unknown {
			s.Log.Warnf("Command %q did not report an exit status: %s", line, err)
			return status
		}

		s.Log.Warnf("Command %q failed with exit status %d: %s", line, status.Code, err)
		return status
	}

	if postMsg != "" {
		s.Log.Progressf("%s", postMsg)
	}

	return exec.Exited(0)
}

// newCommand sets up a sub-process with inherited standard streams. The external process's own output is not captured
// or transformed.
func (s Service) newCommand(ctx context.Context, line string) (exec.Command, error) {
	return s.TaskRunner.NewCommand(ctx, exec.CommandConfig{
		Script: line,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	})
}

func (s Service) exitStatus(waitErr error) exec.ExitStatus {
	status, err := s.TaskRunner.GetExitStatusFromError(waitErr)
	if err != nil {
		s.Log.Debugf("unable to determine exit status: %s", err)
	}

	return status
}
