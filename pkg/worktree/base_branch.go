package worktree

import (
	"github.com/barewt/bwt/pkg/config"
	"github.com/barewt/bwt/pkg/repourl"
)

// resolveBaseBranch picks the base for a new branch: explicit flag, then the
// repository config, then the global config, then the remote's default branch,
// then the built-in default.
func (m *realManager) resolveBaseBranch(explicit string, repoCfg *config.RepoConfig, repoRoot string) string {
	if explicit != "" {
		return explicit
	}
	if repoCfg.BaseBranch != "" {
		return repoCfg.BaseBranch
	}
	if m.config.BaseBranch != "" {
		return m.config.BaseBranch
	}
	if detected, err := m.detectDefaultBranch(repoRoot); err == nil {
		return detected
	}
	return config.DefaultBaseBranch
}

// detectDefaultBranch asks the forge API for the remote's default branch,
// falling back to the git backend when the host is not a known forge.
func (m *realManager) detectDefaultBranch(repoRoot string) (string, error) {
	remoteURL, err := m.deps.Git.GetRemoteURL(repoRoot, "origin")
	if err != nil {
		return "", err
	}

	if repo, err := repourl.Parse(remoteURL); err == nil {
		if f, err := m.deps.Forge.ForgeForHost(repo.Host); err == nil {
			if branch, err := f.DefaultBranch(repo.Owner, repo.Name); err == nil {
				return branch, nil
			}
		}
	}

	return m.deps.Git.GetDefaultBranch(remoteURL)
}
