package git

import (
	"fmt"
	"os/exec"
)

// BranchExists checks if a local branch exists.
func (g *realGit) BranchExists(repoPath, branch string) (bool, error) {
	cmd := exec.Command("git", "show-ref", "--verify", "--quiet", "refs/heads/"+branch)
	cmd.Dir = repoPath
	if err := cmd.Run(); err != nil {
		if _, ok := err.(*exec.ExitError); ok {
			return false, nil
		}
		return false, fmt.Errorf("git show-ref failed: %w (command: git show-ref --verify --quiet refs/heads/%s)",
			err, branch)
	}
	return true, nil
}
