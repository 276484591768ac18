package git

import (
	"fmt"
	"os/exec"
	"strings"
)

// AddWorktree adds a worktree, optionally creating a new branch from a base.
func (g *realGit) AddWorktree(params AddWorktreeParams) error {
	args := []string{"worktree", "add"}
	if params.CreateBranch {
		args = append(args, "-b", params.Branch, params.WorktreePath, params.BaseBranch)
	} else {
		args = append(args, params.WorktreePath, params.Branch)
	}

	cmd := exec.Command("git", args...)
	cmd.Dir = params.RepoPath
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("git worktree add failed: %w (command: git %s, output: %s)",
			err, strings.Join(args, " "), string(output))
	}
	return nil
}
