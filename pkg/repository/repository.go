// Package repository locates the repository root from an arbitrary directory.
package repository

import "github.com/barewt/bwt/pkg/fs"

//go:generate go run go.uber.org/mock/mockgen@latest -source=repository.go -destination=mocks/repository.gen.go -package=mocks

// Locator finds the directory that directly contains the bare store.
type Locator interface {
	// FindRoot ascends from startDir until it finds a .bare directory entry.
	FindRoot(startDir string) (string, error)
}

type realLocator struct {
	fs fs.FS
}

// NewLocator creates a new Locator instance.
func NewLocator(fs fs.FS) Locator {
	return &realLocator{fs: fs}
}
