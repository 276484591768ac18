package git

import (
	"fmt"
	"os/exec"
	"strings"
)

// ListWorktrees lists worktrees registered for the repository.
func (g *realGit) ListWorktrees(repoPath string) ([]WorktreeEntry, error) {
	cmd := exec.Command("git", "worktree", "list", "--porcelain")
	cmd.Dir = repoPath
	output, err := cmd.CombinedOutput()
	if err != nil {
		return nil, fmt.Errorf("git worktree list failed: %w (command: git worktree list --porcelain, output: %s)",
			err, string(output))
	}

	return parseWorktreeList(string(output)), nil
}

// parseWorktreeList parses `git worktree list --porcelain` output.
// Entries are separated by blank lines; each starts with a "worktree <path>" line.
func parseWorktreeList(output string) []WorktreeEntry {
	var entries []WorktreeEntry
	var current *WorktreeEntry

	flush := func() {
		if current != nil {
			entries = append(entries, *current)
			current = nil
		}
	}

	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimRight(line, "\r")
		switch {
		case strings.HasPrefix(line, "worktree "):
			flush()
			current = &WorktreeEntry{Path: strings.TrimPrefix(line, "worktree ")}
		case current == nil:
			continue
		case line == "bare":
			current.Bare = true
		case line == "detached":
			current.Detached = true
		case strings.HasPrefix(line, "HEAD "):
			current.HEAD = strings.TrimPrefix(line, "HEAD ")
		case strings.HasPrefix(line, "branch "):
			ref := strings.TrimPrefix(line, "branch ")
			current.Branch = strings.TrimPrefix(ref, "refs/heads/")
		case line == "":
			flush()
		}
	}
	flush()

	return entries
}
