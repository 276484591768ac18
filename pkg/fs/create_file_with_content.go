package fs

import (
	"os"
	"path/filepath"
)

// CreateFileWithContent creates a file with content, creating parent directories as needed.
func (f *realFS) CreateFileWithContent(path string, content []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := f.MkdirAll(dir, 0755); err != nil {
		return err
	}

	return os.WriteFile(path, content, perm)
}
