package mocks

import (
	"os"

	"github.com/SalesforceBrainz/sfmc-devtools-copado/internal/errors"
	"github.com/SalesforceBrainz/sfmc-devtools-copado/internal/fs"
)

// FileSystem is a mocked implementation of 'fs.FileSystem'.
type FileSystem struct {
	MockCreate    func(filePath string) (fs.File, error)
	MockOpen      func(name string) (fs.File, error)
	MockGlob      func(pattern string) ([]string, error)
	MockGlobMany  func(patterns []string) ([]string, error)
	MockMkdirAll  func(path string, perm os.FileMode) error
	MockReadFile  func(name string) ([]byte, error)
	MockStat      func(name string) (os.FileInfo, error)
	MockWriteFile func(name string, data []byte, perm os.FileMode) error
}

// Create either calls the configured mock of itself or returns an error if that doesn't exist.
func (f *FileSystem) Create(filePath string) (fs.File, error) {
	if f.MockCreate != nil {
		return f.MockCreate(filePath)
	}

	return nil, errors.NewConfigurationError("MockCreate was not configured")
}

// Open either calls the configured mock of itself or returns an error if that doesn't exist.
func (f *FileSystem) Open(name string) (fs.File, error) {
	if f.MockOpen != nil {
		return f.MockOpen(name)
	}

	return nil, errors.NewConfigurationError("MockOpen was not configured")
}

// Glob either calls the configured mock of itself or returns an error if that doesn't exist.
func (f *FileSystem) Glob(pattern string) ([]string, error) {
	if f.MockGlob != nil {
		return f.MockGlob(pattern)
	}

	return nil, errors.NewConfigurationError("MockGlob was not configured")
}

// GlobMany either calls the configured mock of itself or returns an error if that doesn't exist.
func (f *FileSystem) GlobMany(patterns []string) ([]string, error) {
	if f.MockGlobMany != nil {
		return f.MockGlobMany(patterns)
	}

	return nil, errors.NewConfigurationError("MockGlobMany was not configured")
}

// MkdirAll either calls the configured mock of itself or returns an error if that doesn't exist.
func (f *FileSystem) MkdirAll(path string, perm os.FileMode) error {
	if f.MockMkdirAll != nil {
		return f.MockMkdirAll(path, perm)
	}

	return errors.NewConfigurationError("MockMkdirAll was not configured")
}

// ReadFile either calls the configured mock of itself or returns an error if that doesn't exist.
func (f *FileSystem) ReadFile(name string) ([]byte, error) {
	if f.MockReadFile != nil {
		return f.MockReadFile(name)
	}

	return nil, errors.NewConfigurationError("MockReadFile was not configured")
}

// Stat either calls the configured mock of itself or returns an error if that doesn't exist.
func (f *FileSystem) Stat(name string) (os.FileInfo, error) {
	if f.MockStat != nil {
		return f.MockStat(name)
	}

	return nil, errors.NewConfigurationError("MockStat was not configured")
}

// WriteFile either calls the configured mock of itself or returns an error if that doesn't exist.
func (f *FileSystem) WriteFile(name string, data []byte, perm os.FileMode) error {
	if f.MockWriteFile != nil {
		return f.MockWriteFile(name, data, perm)
	}

	return errors.NewConfigurationError("MockWriteFile was not configured")
}
