package repository

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/barewt/bwt/pkg/layout"
)

// FindRoot ascends from startDir until it finds a .bare directory entry.
// The starting path is canonicalized once so the ascent is bounded by its
// component count even when symlinks form cycles.
func (l *realLocator) FindRoot(startDir string) (string, error) {
	dir, err := l.fs.Canonicalize(startDir)
	if err != nil {
		return "", fmt.Errorf("failed to canonicalize starting directory: %w", err)
	}

	maxLevels := strings.Count(dir, string(filepath.Separator)) + 1
	for i := 0; i < maxLevels; i++ {
		barePath := filepath.Join(dir, layout.BareDirName)
		isDir, err := l.fs.IsDir(barePath)
		if err == nil && isDir {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", ErrRepositoryRootNotFound
}
