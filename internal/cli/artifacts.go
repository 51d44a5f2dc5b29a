package cli

import (
	"io"
	"path/filepath"

	"github.com/SalesforceBrainz/sfmc-devtools-copado/internal/errors"
)

// CopyArtifacts collects the files matching the given glob patterns and copies them into destDir, where the host
// platform picks them up and attaches them to the job record. It returns the paths of the copied files.
func (s Service) CopyArtifacts(patterns []string, destDir string) ([]string, error) {
	paths, err := s.FileSystem.GlobMany(patterns)
	if err != nil {
		return nil, errors.NewSystemError("unable to expand artifact patterns %v: %s", patterns, err)
	}

	if len(paths) == 0 {
		s.Log.Debugf("no artifacts matched %v", patterns)
		return nil, nil
	}

	if err := s.FileSystem.MkdirAll(destDir, 0o750); err != nil {
		return nil, errors.NewSystemError("unable to create artifact directory %q: %s", destDir, err)
	}

	copied := make([]string, 0, len(paths))
	for _, path := range paths {
		target := filepath.Join(destDir, filepath.Base(path))

		if err := s.copyFile(path, target); err != nil {
			return nil, errors.WithStack(err)
		}

		copied = append(copied, target)
	}

	s.Log.Debugf("attached %d artifacts to %q", len(copied), destDir)

	return copied, nil
}

func (s Service) copyFile(source string, target string) error {
	src, err := s.FileSystem.Open(source)
	if err != nil {
		return errors.NewSystemError("unable to open artifact %q: %s", source, err)
	}
	defer src.Close()

	dst, err := s.FileSystem.Create(target)
	if err != nil {
		return errors.NewSystemError("unable to create artifact copy %q: %s", target, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return errors.NewSystemError("unable to copy artifact %q to %q: %s", source, target, err)
	}

	return nil
}
