//go:build unit

package worktree

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/barewt/bwt/pkg/config"
	"github.com/barewt/bwt/pkg/git"
)

const testRepoRoot = "/repos/github.com/acme/widgets"

func testEntries() []git.WorktreeEntry {
	return []git.WorktreeEntry{
		{Path: testRepoRoot + "/.bare", Bare: true},
		{Path: testRepoRoot + "/main", Branch: "main"},
		{Path: testRepoRoot + "/feature-login", Branch: "feature/login"},
	}
}

func TestReconcile_AllLive(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	manager, m := newTestManager(ctrl, config.Config{})

	m.git.EXPECT().ListWorktrees(testRepoRoot).Return(testEntries(), nil)
	m.fs.EXPECT().Exists(testRepoRoot + "/main").Return(true, nil)
	m.fs.EXPECT().Exists(testRepoRoot + "/feature-login").Return(true, nil)
	// No prune when nothing is stale.

	result, err := manager.Reconcile(testRepoRoot)
	assert.NoError(t, err)
	assert.Len(t, result.Live, 3)
	assert.Empty(t, result.Pruned)
}

func TestReconcile_PrunesMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	manager, m := newTestManager(ctrl, config.Config{})

	m.git.EXPECT().ListWorktrees(testRepoRoot).Return(testEntries(), nil)
	m.fs.EXPECT().Exists(testRepoRoot + "/main").Return(true, nil)
	m.fs.EXPECT().Exists(testRepoRoot + "/feature-login").Return(false, nil)
	m.git.EXPECT().PruneWorktrees(testRepoRoot).Return(nil)

	result, err := manager.Reconcile(testRepoRoot)
	assert.NoError(t, err)

	assert.Len(t, result.Pruned, 1)
	assert.Equal(t, "feature/login", result.Pruned[0].Branch)

	// Live entries whose path exists are never removed.
	assert.Len(t, result.Live, 2)
	assert.Equal(t, "main", result.Live[1].Branch)
}

func TestReconcile_BareNeverPruned(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	manager, m := newTestManager(ctrl, config.Config{})

	// Only the bare entry is registered; its path is not stat'ed.
	m.git.EXPECT().ListWorktrees(testRepoRoot).Return([]git.WorktreeEntry{
		{Path: testRepoRoot + "/.bare", Bare: true},
	}, nil)

	result, err := manager.Reconcile(testRepoRoot)
	assert.NoError(t, err)
	assert.Len(t, result.Live, 1)
	assert.Empty(t, result.Pruned)
}

func TestReconcile_Idempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	manager, m := newTestManager(ctrl, config.Config{})

	// First pass prunes the stale entry.
	m.git.EXPECT().ListWorktrees(testRepoRoot).Return(testEntries(), nil)
	m.fs.EXPECT().Exists(testRepoRoot + "/main").Return(true, nil)
	m.fs.EXPECT().Exists(testRepoRoot + "/feature-login").Return(false, nil)
	m.git.EXPECT().PruneWorktrees(testRepoRoot).Return(nil)

	_, err := manager.Reconcile(testRepoRoot)
	assert.NoError(t, err)

	// Second pass sees the pruned registry and does nothing.
	m.git.EXPECT().ListWorktrees(testRepoRoot).Return(testEntries()[:2], nil)
	m.fs.EXPECT().Exists(testRepoRoot + "/main").Return(true, nil)

	result, err := manager.Reconcile(testRepoRoot)
	assert.NoError(t, err)
	assert.Empty(t, result.Pruned)
}

func TestReconcile_ListError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	manager, m := newTestManager(ctrl, config.Config{})

	m.git.EXPECT().ListWorktrees(testRepoRoot).Return(nil, errors.New("not a repository"))

	_, err := manager.Reconcile(testRepoRoot)
	assert.Error(t, err)
}
