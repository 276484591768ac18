package worktree

import "fmt"

// Reconcile prunes registry entries whose backing directory is gone.
// Running it twice with no filesystem changes in between is a no-op the
// second time. The bare store entry is never treated as stale.
func (m *realManager) Reconcile(repoRoot string) (ReconcileResult, error) {
	entries, err := m.deps.Git.ListWorktrees(repoRoot)
	if err != nil {
		return ReconcileResult{}, fmt.Errorf("failed to list worktrees: %w", err)
	}

	var result ReconcileResult
	for _, entry := range entries {
		if entry.Bare {
			result.Live = append(result.Live, entry)
			continue
		}

		exists, err := m.deps.FS.Exists(entry.Path)
		if err != nil {
			return ReconcileResult{}, fmt.Errorf("failed to check worktree path %s: %w", entry.Path, err)
		}
		if exists {
			result.Live = append(result.Live, entry)
		} else {
			result.Pruned = append(result.Pruned, entry)
		}
	}

	if len(result.Pruned) > 0 {
		m.deps.Logger.Logf("Pruning %d stale worktree registration(s)...", len(result.Pruned))
		if err := m.deps.Git.PruneWorktrees(repoRoot); err != nil {
			return ReconcileResult{}, fmt.Errorf("failed to prune worktrees: %w", err)
		}
	}

	return result, nil
}
