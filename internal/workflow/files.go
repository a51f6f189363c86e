package workflow

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
)

// Exists reports whether path exists on fs.
func Exists(fs afero.Fs, path string) (bool, error) {
	ok, err := afero.Exists(fs, path)
	if err != nil {
		return false, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	return ok, nil
}

// ReadSchedules returns the schedules of an existing workflow file.
func ReadSchedules(fs afero.Fs, path string) ([]string, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read workflow: %w", err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, err
	}
	return doc.Schedules()
}

// Write creates the parent directories of path and writes data.
func Write(fs afero.Fs, path string, data []byte) error {
	if err := fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create workflow directory: %w", err)
	}
	if err := afero.WriteFile(fs, path, data, 0644); err != nil {
		return fmt.Errorf("failed to write workflow: %w", err)
	}
	return nil
}

// EnvExample renders the single-line example environment file.
func EnvExample(uriEnv, placeholder string) []byte {
	return []byte(fmt.Sprintf("%s=%s\n", uriEnv, placeholder))
}

// WriteIfAbsent writes data unless path already exists.
// created is false when the file was left untouched.
func WriteIfAbsent(fs afero.Fs, path string, data []byte) (created bool, err error) {
	exists, err := Exists(fs, path)
	if err != nil || exists {
		return false, err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := fs.MkdirAll(dir, 0755); err != nil {
			return false, fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	if err := afero.WriteFile(fs, path, data, 0644); err != nil {
		return false, fmt.Errorf("failed to write %s: %w", path, err)
	}
	return true, nil
}
