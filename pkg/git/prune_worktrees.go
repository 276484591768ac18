package git

import (
	"fmt"
	"os/exec"
)

// PruneWorktrees removes registrations whose backing directory is gone.
func (g *realGit) PruneWorktrees(repoPath string) error {
	cmd := exec.Command("git", "worktree", "prune")
	cmd.Dir = repoPath
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("git worktree prune failed: %w (command: git worktree prune, output: %s)",
			err, string(output))
	}
	return nil
}
