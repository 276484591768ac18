package worktree

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/barewt/bwt/pkg/branch"
	"github.com/barewt/bwt/pkg/git"
)

// Remove resolves a selector to a unique worktree and removes it, which also
// deletes the worktree directory. No mutation happens unless exactly one
// worktree matches.
func (m *realManager) Remove(params RemoveParams) error {
	repoRoot, err := m.deps.Locator.FindRoot(params.StartDir)
	if err != nil {
		return err
	}

	entries, err := m.deps.Git.ListWorktrees(repoRoot)
	if err != nil {
		return fmt.Errorf("failed to list worktrees: %w", err)
	}

	matches := matchSelector(entries, params.Selector)
	switch len(matches) {
	case 0:
		return fmt.Errorf("%w: %s", ErrWorktreeNotFound, params.Selector)
	case 1:
		// fall through
	default:
		var candidates []string
		for _, entry := range matches {
			candidates = append(candidates, filepath.Base(entry.Path))
		}
		return fmt.Errorf("%w: %s (candidates: %s)",
			ErrAmbiguousSelector, params.Selector, strings.Join(candidates, ", "))
	}

	target := matches[0]
	m.deps.Logger.Logf("Removing worktree: %s", target.Path)
	if err := m.deps.Git.RemoveWorktree(repoRoot, target.Path, params.Force); err != nil {
		return err
	}

	m.deps.Logger.Logf("Done! Worktree removed: %s", params.Selector)
	return nil
}

// matchSelector matches a selector against worktree entries, first as a
// literal directory name, then best-effort against branch names through the
// lossy dirname mapping.
func matchSelector(entries []git.WorktreeEntry, selector string) []git.WorktreeEntry {
	var literal, fuzzy []git.WorktreeEntry
	for _, entry := range entries {
		if entry.Bare {
			continue
		}
		if filepath.Base(entry.Path) == selector {
			literal = append(literal, entry)
			continue
		}
		if entry.Branch != "" && (entry.Branch == selector || branch.ToDirName(entry.Branch) == selector) {
			fuzzy = append(fuzzy, entry)
		}
	}

	if len(literal) > 0 {
		return literal
	}
	return fuzzy
}
