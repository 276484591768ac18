package fs

import (
	"fmt"
	"path/filepath"
)

// Canonicalize resolves symlinks and returns the absolute form of a path.
func (f *realFS) Canonicalize(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("%w: path cannot be empty", ErrPathResolution)
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("%w: failed to get absolute path for %s: %w", ErrPathResolution, path, err)
	}

	resolved, err := filepath.EvalSymlinks(absPath)
	if err != nil {
		return "", fmt.Errorf("%w: failed to resolve symlinks for %s: %w", ErrPathResolution, absPath, err)
	}

	return resolved, nil
}
