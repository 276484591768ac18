package git

//go:generate go run go.uber.org/mock/mockgen@latest -source=git.go -destination=mocks/git.gen.go -package=mocks

// Git interface provides Git command execution capabilities.
type Git interface {
	// CloneBare clones a repository as a bare store into the destination directory.
	CloneBare(url, dest string) error

	// BranchExists checks if a local branch exists.
	BranchExists(repoPath, branch string) (bool, error)

	// ListBranches lists local branch names.
	ListBranches(repoPath string) ([]string, error)

	// ListWorktrees lists worktrees registered for the repository.
	ListWorktrees(repoPath string) ([]WorktreeEntry, error)

	// AddWorktree adds a worktree, optionally creating a new branch from a base.
	AddWorktree(params AddWorktreeParams) error

	// RemoveWorktree removes a worktree from Git's tracking and deletes its directory.
	RemoveWorktree(repoPath, worktreePath string, force bool) error

	// PruneWorktrees removes registrations whose backing directory is gone.
	PruneWorktrees(repoPath string) error

	// FetchRemote fetches from a specific remote.
	FetchRemote(repoPath, remoteName string) error

	// ConfigSetFile sets a key in a specific Git config file.
	ConfigSetFile(configFile, key, value string) error

	// GetDefaultBranch gets the default branch name from a remote repository.
	GetDefaultBranch(remoteURL string) (string, error)

	// GetRemoteURL gets the URL of a remote.
	GetRemoteURL(repoPath, remoteName string) (string, error)
}

type realGit struct {
	// No fields needed for basic Git operations
}

// NewGit creates a new Git instance.
func NewGit() Git {
	return &realGit{}
}
