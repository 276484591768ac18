package fs

import "os"

//go:generate go run go.uber.org/mock/mockgen@latest -source=fs.go -destination=mocks/fs.gen.go -package=mocks

// FS interface provides file system operations for repository detection and layout.
type FS interface {
	// Exists checks if a file or directory exists at the given path.
	Exists(path string) (bool, error)

	// IsDir checks if the path is a directory.
	IsDir(path string) (bool, error)

	// ReadFile reads the contents of a file.
	ReadFile(path string) ([]byte, error)

	// MkdirAll creates a directory and all parent directories.
	MkdirAll(path string, perm os.FileMode) error

	// CreateFileWithContent creates a file with content, creating parent directories as needed.
	CreateFileWithContent(path string, content []byte, perm os.FileMode) error

	// Canonicalize resolves symlinks and returns the absolute form of a path.
	Canonicalize(path string) (string, error)

	// ExpandPath expands ~ to the user's home directory.
	ExpandPath(path string) (string, error)

	// GetHomeDir returns the user's home directory path.
	GetHomeDir() (string, error)

	// GetCurrentDir returns the current working directory.
	GetCurrentDir() (string, error)
}

type realFS struct {
	// No fields needed for basic file system operations
}

// NewFS creates a new FS instance.
func NewFS() FS {
	return &realFS{}
}
