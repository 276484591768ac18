package worktree

import "errors"

// Error definitions for worktree package.
var (
	// ErrRepositoryExists is returned when the clone target directory already exists.
	ErrRepositoryExists = errors.New("repository already exists")

	// ErrWorktreeExists is returned when the target worktree path or registration is already occupied.
	ErrWorktreeExists = errors.New("worktree already exists")

	// ErrWorktreeNotFound is returned when a removal selector matches no worktree.
	ErrWorktreeNotFound = errors.New("worktree not found")

	// ErrAmbiguousSelector is returned when a removal selector matches more than one worktree.
	ErrAmbiguousSelector = errors.New("selector matches multiple worktrees")

	// ErrConflictingCloneMethods is returned when both ssh and https are requested.
	ErrConflictingCloneMethods = errors.New("cannot specify both ssh and https")
)
