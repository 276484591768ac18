package git

// WorktreeEntry represents a single worktree as reported by `git worktree list --porcelain`.
type WorktreeEntry struct {
	// Path is the worktree directory as registered by Git. It may no longer exist on disk.
	Path string

	// Branch is the checked-out branch name, empty for a detached HEAD or the bare entry.
	Branch string

	// HEAD is the commit the worktree points at.
	HEAD string

	// Bare reports whether the entry is the bare store itself.
	Bare bool

	// Detached reports whether the worktree is on a detached HEAD.
	Detached bool
}

// AddWorktreeParams contains parameters for AddWorktree.
type AddWorktreeParams struct {
	RepoPath     string
	WorktreePath string
	Branch       string
	CreateBranch bool
	BaseBranch   string
}
