// Package layout maps a parsed repository identifier to its canonical on-disk layout.
package layout

import (
	"path/filepath"

	"github.com/barewt/bwt/pkg/repourl"
)

// BareDirName is the directory holding the bare object store inside a project directory.
const BareDirName = ".bare"

// GitLinkName is the indirection file pointing worktree tooling at the bare store.
const GitLinkName = ".git"

// GitLinkContent is the content of the indirection file.
const GitLinkContent = "gitdir: .bare\n"

// Layout is the canonical on-disk layout for a repository. Derived, never stored.
type Layout struct {
	// ProjectDir is root/host/owner/name[suffix]. Worktrees live directly under it.
	ProjectDir string

	// BareDir is the bare store, ProjectDir/.bare.
	BareDir string

	// GitLinkPath is the indirection file, ProjectDir/.git.
	GitLinkPath string

	// GitLinkContent designates .bare as the object store.
	GitLinkContent string
}

// Build computes the canonical layout for a repository under the given root.
// When suffix is non-empty it is appended to the last path component, keeping
// alternate checkouts of the same repository distinct. Pure: creates nothing.
func Build(repo repourl.RepoURL, root, suffix string) Layout {
	projectDir := filepath.Join(root, repo.Host, repo.Owner, repo.Name+suffix)
	return Layout{
		ProjectDir:     projectDir,
		BareDir:        filepath.Join(projectDir, BareDirName),
		GitLinkPath:    filepath.Join(projectDir, GitLinkName),
		GitLinkContent: GitLinkContent,
	}
}
