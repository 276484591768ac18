// Package worktree implements the worktree lifecycle: get, add, list, remove.
package worktree

import (
	"github.com/barewt/bwt/pkg/config"
	"github.com/barewt/bwt/pkg/dependencies"
	"github.com/barewt/bwt/pkg/git"
	"github.com/barewt/bwt/pkg/layout"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=worktree.go -destination=mocks/worktree.gen.go -package=mocks

// Manager composes address resolution, layout, the repository locator and the
// registry reconciler into the user-facing operations.
type Manager interface {
	// Get clones a repository as a bare store in the canonical layout.
	Get(params GetParams) (layout.Layout, error)

	// Add creates a worktree for a branch, creating the branch when needed.
	// Returns the new worktree path.
	Add(params AddParams) (string, error)

	// List reconciles the registry and returns live worktrees in backend order.
	// The bare store entry is excluded.
	List(startDir string) ([]git.WorktreeEntry, error)

	// Remove resolves a selector to a unique worktree and removes it.
	Remove(params RemoveParams) error

	// Reconcile prunes registry entries whose backing directory is gone.
	Reconcile(repoRoot string) (ReconcileResult, error)
}

// GetParams contains parameters for Get.
type GetParams struct {
	// Input is the repository identifier as typed by the user.
	Input string

	// CloneMethod overrides the configured clone method when non-empty.
	CloneMethod string

	// Suffix overrides the configured directory suffix when non-nil.
	Suffix *string
}

// AddParams contains parameters for Add.
type AddParams struct {
	// StartDir is the directory the repository root is located from.
	StartDir string

	// Branch is the branch to check out or create. Empty generates a wip branch name.
	Branch string

	// BaseBranch overrides the configured base branch when non-empty.
	BaseBranch string
}

// RemoveParams contains parameters for Remove.
type RemoveParams struct {
	// StartDir is the directory the repository root is located from.
	StartDir string

	// Selector is a worktree directory name, or a branch name matched best-effort.
	Selector string

	// Force forwards --force to the backend removal.
	Force bool
}

// ReconcileResult reports the outcome of a registry reconciliation.
type ReconcileResult struct {
	// Live are entries whose path exists on disk, in backend order.
	Live []git.WorktreeEntry

	// Pruned are entries whose path was missing and whose registration was removed.
	Pruned []git.WorktreeEntry
}

type realManager struct {
	config config.Config
	deps   *dependencies.Dependencies
}

// NewManager creates a new Manager instance. The configuration is passed by
// value and never mutated.
func NewManager(cfg config.Config, deps *dependencies.Dependencies) Manager {
	if deps == nil {
		deps = dependencies.New()
	}
	return &realManager{
		config: cfg,
		deps:   deps,
	}
}
