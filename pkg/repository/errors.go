package repository

import "errors"

// Error definitions for repository package.
var (
	// ErrRepositoryRootNotFound is returned when no .bare directory is found ascending to the filesystem root.
	ErrRepositoryRootNotFound = errors.New("repository root not found (no .bare directory)")
)
