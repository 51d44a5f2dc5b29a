package cli

import (
	"context"
	"os"

	"github.com/SalesforceBrainz/sfmc-devtools-copado/internal/exec"
	"github.com/SalesforceBrainz/sfmc-devtools-copado/internal/fs"
)

// FileSystem is an abstraction over file-systems. This is implemented by the default `os` package and can also be used
// for mocking.
type FileSystem interface {
	Create(filePath string) (fs.File, error)
	Open(name string) (fs.File, error)
	Glob(pattern string) ([]string, error)
	GlobMany(patterns []string) ([]string, error)
	MkdirAll(path string, perm os.FileMode) error
	ReadFile(name string) ([]byte, error)
	Stat(name string) (os.FileInfo, error)
	WriteFile(name string, data []byte, perm os.FileMode) error
}

// TaskRunner is an abstraction over various task-runners / execution environments.
// They are expected to return the `exec.Command` interface in turn, which is mapped to the Command type from
// `os/exec`.
type TaskRunner interface {
	NewCommand(ctx context.Context, cfg exec.CommandConfig) (exec.Command, error)
	GetExitStatusFromError(error) (exec.ExitStatus, error)
}
