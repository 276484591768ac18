package worktree

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/barewt/bwt/pkg/branch"
	"github.com/barewt/bwt/pkg/git"
)

// Add creates a worktree for a branch, creating the branch when needed.
func (m *realManager) Add(params AddParams) (string, error) {
	repoRoot, err := m.deps.Locator.FindRoot(params.StartDir)
	if err != nil {
		return "", err
	}
	m.deps.Logger.Logf("Repository root: %s", repoRoot)

	result, err := m.Reconcile(repoRoot)
	if err != nil {
		return "", err
	}

	repoCfg, err := m.deps.Config.LoadRepoConfig(repoRoot)
	if err != nil {
		return "", err
	}

	branchName := params.Branch
	if branchName == "" {
		branchName = generateWipBranchName(time.Now())
		m.deps.Logger.Logf("Auto-generated branch name: %s", branchName)
	}

	dirName := branch.ToDirName(branchName)
	worktreePath := filepath.Join(repoRoot, dirName)

	// The branch-to-dirname mapping is lossy, so an occupied path may belong
	// to a different branch. Reject instead of overwriting.
	if err := m.checkAddCollision(worktreePath, result); err != nil {
		return "", err
	}

	exists, err := m.deps.Git.BranchExists(repoRoot, branchName)
	if err != nil {
		return "", err
	}

	addParams := git.AddWorktreeParams{
		RepoPath:     repoRoot,
		WorktreePath: worktreePath,
		Branch:       branchName,
	}
	if exists {
		m.deps.Logger.Logf("Creating worktree: %s (branch: %s)", dirName, branchName)
	} else {
		addParams.CreateBranch = true
		addParams.BaseBranch = m.resolveBaseBranch(params.BaseBranch, repoCfg, repoRoot)
		m.deps.Logger.Logf("Creating worktree: %s (branch: %s, base: %s)", dirName, branchName, addParams.BaseBranch)
	}
	if err := m.deps.Git.AddWorktree(addParams); err != nil {
		return "", err
	}

	m.runHook("post-add", repoCfg.PostAddCommands, worktreePath)

	m.deps.Logger.Logf("Done! Worktree created at: %s", worktreePath)
	return worktreePath, nil
}

// checkAddCollision rejects creation when the target path exists on disk or
// is already registered.
func (m *realManager) checkAddCollision(worktreePath string, result ReconcileResult) error {
	exists, err := m.deps.FS.Exists(worktreePath)
	if err != nil {
		return fmt.Errorf("failed to check worktree path: %w", err)
	}
	if exists {
		return fmt.Errorf("%w: %s", ErrWorktreeExists, worktreePath)
	}

	for _, entry := range result.Live {
		if entry.Path == worktreePath {
			return fmt.Errorf("%w: %s (registered for branch %s)", ErrWorktreeExists, worktreePath, entry.Branch)
		}
	}
	return nil
}

// generateWipBranchName builds the wip/MMDD-HHmmss fallback branch name.
func generateWipBranchName(now time.Time) string {
	return "wip/" + now.Format("0102-150405")
}
