// Package fs is a thin wrapper around potential file-systems. By default, it is an abstraction over the `os` package
// from the standard library.
package fs

import (
	"os"
	"sort"

	"github.com/yargevad/filepathx"

	"github.com/SalesforceBrainz/sfmc-devtools-copado/internal/errors"
)

// Local is a local file-system. It wraps the default `os` package
type Local struct{}

// Create creates a new file, truncating any previous file under the same name
func (l Local) Create(filePath string) (File, error) {
	f, err := os.Create(filePath)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return f, nil
}

// Open opens a file for further processing
func (l Local) Open(name string) (File, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return f, nil
}

// Glob expands a single glob pattern. Patterns support `**` for recursive matching.
func (l Local) Glob(pattern string) ([]string, error) {
	matches, err := filepathx.Glob(pattern)
	return matches, errors.WithStack(err)
}

// GlobMany expands a list of glob patterns, returning the union of their sorted, unique matches.
func (l Local) GlobMany(patterns []string) ([]string, error) {
	seen := make(map[string]struct{})
	paths := make([]string, 0)

	for _, pattern := range patterns {
		matches, err := l.Glob(pattern)
		if err != nil {
			return nil, errors.WithStack(err)
		}

		for _, match := range matches {
			if _, ok := seen[match]; ok {
				continue
			}

			seen[match] = struct{}{}
			paths = append(paths, match)
		}
	}

	sort.Strings(paths)
	return paths, nil
}

// MkdirAll creates a directory path, including any missing parents
func (l Local) MkdirAll(path string, perm os.FileMode) error {
	return errors.WithStack(os.MkdirAll(path, perm))
}

// ReadFile reads an entire file into memory
func (l Local) ReadFile(name string) ([]byte, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return data, nil
}

// Stat returns file info for the named file
func (l Local) Stat(name string) (os.FileInfo, error) {
	info, err := os.Stat(name)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return info, nil
}

// WriteFile writes data to the named file, creating it if necessary and truncating it otherwise
func (l Local) WriteFile(name string, data []byte, perm os.FileMode) error {
	return errors.WithStack(os.WriteFile(name, data, perm))
}
