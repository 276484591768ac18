package worktree

import "github.com/barewt/bwt/pkg/git"

// List reconciles the registry and returns live worktrees in backend order.
// The result is computed fresh on every call, never cached.
func (m *realManager) List(startDir string) ([]git.WorktreeEntry, error) {
	repoRoot, err := m.deps.Locator.FindRoot(startDir)
	if err != nil {
		return nil, err
	}

	result, err := m.Reconcile(repoRoot)
	if err != nil {
		return nil, err
	}

	worktrees := make([]git.WorktreeEntry, 0, len(result.Live))
	for _, entry := range result.Live {
		if entry.Bare {
			continue
		}
		worktrees = append(worktrees, entry)
	}
	return worktrees, nil
}
