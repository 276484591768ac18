package worktree

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/barewt/bwt/pkg/hooks"
	"github.com/barewt/bwt/pkg/layout"
	"github.com/barewt/bwt/pkg/repourl"
)

// envrcName is the stub environment file created next to the bare store.
const envrcName = ".envrc"

// Get clones a repository as a bare store in the canonical layout.
func (m *realManager) Get(params GetParams) (layout.Layout, error) {
	repo, err := repourl.Parse(params.Input)
	if err != nil {
		return layout.Layout{}, err
	}
	m.deps.Logger.Logf("Repository: %s", repo)

	method := m.config.CloneMethod
	if params.CloneMethod != "" {
		method = repourl.CloneMethod(params.CloneMethod)
	}
	cloneURL := repo.CloneURL(method)
	m.deps.Logger.Logf("Clone URL: %s", cloneURL)

	suffix := m.config.Suffix
	if params.Suffix != nil {
		suffix = *params.Suffix
	}

	lay := layout.Build(repo, m.config.Root, suffix)

	exists, err := m.deps.FS.Exists(lay.ProjectDir)
	if err != nil {
		return layout.Layout{}, fmt.Errorf("failed to check project directory: %w", err)
	}
	if exists {
		return layout.Layout{}, fmt.Errorf("%w: %s", ErrRepositoryExists, lay.ProjectDir)
	}

	if err := m.deps.FS.MkdirAll(lay.ProjectDir, 0755); err != nil {
		return layout.Layout{}, fmt.Errorf("failed to create project directory: %w", err)
	}

	m.deps.Logger.Logf("Cloning into %s...", lay.BareDir)
	if err := m.deps.Git.CloneBare(cloneURL, lay.BareDir); err != nil {
		return layout.Layout{}, err
	}

	if err := m.deps.FS.CreateFileWithContent(lay.GitLinkPath, []byte(lay.GitLinkContent), 0644); err != nil {
		return layout.Layout{}, fmt.Errorf("failed to write %s link file: %w", layout.GitLinkName, err)
	}

	// A bare clone records a HEAD-only refspec; restore the full one so
	// remote-tracking refs exist for worktree checkouts.
	bareConfig := filepath.Join(lay.BareDir, "config")
	if err := m.deps.Git.ConfigSetFile(bareConfig, "remote.origin.fetch", "+refs/heads/*:refs/remotes/origin/*"); err != nil {
		return layout.Layout{}, err
	}

	m.deps.Logger.Logf("Fetching origin...")
	if err := m.deps.Git.FetchRemote(lay.ProjectDir, "origin"); err != nil {
		return layout.Layout{}, err
	}

	m.runHook("post-clone", m.config.PostCloneCommands, lay.ProjectDir)

	if err := m.deps.FS.CreateFileWithContent(filepath.Join(lay.ProjectDir, envrcName), nil, 0644); err != nil {
		return layout.Layout{}, fmt.Errorf("failed to create %s: %w", envrcName, err)
	}

	m.deps.Logger.Logf("Done! Repository cloned to: %s", lay.ProjectDir)
	return lay, nil
}

// runHook runs a hook script and reports failure as a warning. The clone or
// worktree it follows has already succeeded and is not rolled back.
func (m *realManager) runHook(name, script, workDir string) {
	if script == "" {
		return
	}

	m.deps.Logger.Logf("Running %s commands...", name)
	if err := m.deps.Hooks.Run(script, workDir); err != nil {
		var exitErr *hooks.ExitError
		if errors.As(err, &exitErr) {
			m.deps.Logger.Warnf("%s commands exited with status %d", name, exitErr.Code)
			return
		}
		m.deps.Logger.Warnf("%s commands failed: %v", name, err)
	}
}
