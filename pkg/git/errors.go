// Package git provides Git operations and error definitions.
package git

import "errors"

// Git-specific error types.
var (
	ErrBranchNotFound   = errors.New("branch not found")
	ErrWorktreeExists   = errors.New("worktree already exists")
	ErrWorktreeNotFound = errors.New("worktree not found")
	ErrDefaultBranch    = errors.New("could not determine default branch")
)
