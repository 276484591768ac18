package fs

import "os"

// GetCurrentDir returns the current working directory.
func (f *realFS) GetCurrentDir() (string, error) {
	return os.Getwd()
}
