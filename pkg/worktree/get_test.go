//go:build unit

package worktree

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/barewt/bwt/pkg/config"
	"github.com/barewt/bwt/pkg/hooks"
	"github.com/barewt/bwt/pkg/layout"
	"github.com/barewt/bwt/pkg/repourl"
)

func testGetConfig() config.Config {
	return config.Config{
		Root:              "/repos",
		CloneMethod:       repourl.CloneMethodSSH,
		PostCloneCommands: "make setup",
	}
}

// expectStorePrep covers the steps between a successful clone and the
// post-clone hook: gitlink, fetch refspec, initial fetch.
func expectStorePrep(m testMocks, projectDir string) {
	m.fs.EXPECT().CreateFileWithContent(projectDir+"/.git", []byte(layout.GitLinkContent), os.FileMode(0644)).Return(nil)
	m.git.EXPECT().ConfigSetFile(projectDir+"/.bare/config", "remote.origin.fetch", "+refs/heads/*:refs/remotes/origin/*").Return(nil)
	m.git.EXPECT().FetchRemote(projectDir, "origin").Return(nil)
}

func TestGet_ClonesBareLayout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	manager, m := newTestManager(ctrl, testGetConfig())

	projectDir := testRepoRoot
	m.fs.EXPECT().Exists(projectDir).Return(false, nil)
	m.fs.EXPECT().MkdirAll(projectDir, os.FileMode(0755)).Return(nil)
	m.git.EXPECT().CloneBare("git@github.com:acme/widgets.git", projectDir+"/.bare").Return(nil)
	expectStorePrep(m, projectDir)
	m.hooks.EXPECT().Run("make setup", projectDir).Return(nil)
	m.fs.EXPECT().CreateFileWithContent(projectDir+"/.envrc", gomock.Nil(), os.FileMode(0644)).Return(nil)

	lay, err := manager.Get(GetParams{Input: "github.com/acme/widgets"})
	assert.NoError(t, err)

	assert.Equal(t, projectDir, lay.ProjectDir)
	assert.Equal(t, projectDir+"/.bare", lay.BareDir)
	assert.Equal(t, projectDir+"/.git", lay.GitLinkPath)
}

func TestGet_SameLayoutForEveryInputForm(t *testing.T) {
	inputs := []string{
		"github.com/acme/widgets",
		"git@github.com:acme/widgets.git",
		"https://github.com/acme/widgets",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			manager, m := newTestManager(ctrl, testGetConfig())

			m.fs.EXPECT().Exists(testRepoRoot).Return(false, nil)
			m.fs.EXPECT().MkdirAll(testRepoRoot, os.FileMode(0755)).Return(nil)
			m.git.EXPECT().CloneBare("git@github.com:acme/widgets.git", testRepoRoot+"/.bare").Return(nil)
			expectStorePrep(m, testRepoRoot)
			m.hooks.EXPECT().Run("make setup", testRepoRoot).Return(nil)
			m.fs.EXPECT().CreateFileWithContent(testRepoRoot+"/.envrc", gomock.Nil(), os.FileMode(0644)).Return(nil)

			lay, err := manager.Get(GetParams{Input: input})
			assert.NoError(t, err)
			assert.Equal(t, testRepoRoot, lay.ProjectDir)
		})
	}
}

func TestGet_RepositoryAlreadyExists(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	manager, m := newTestManager(ctrl, testGetConfig())

	m.fs.EXPECT().Exists(testRepoRoot).Return(true, nil)
	// No MkdirAll or CloneBare: the layout must not be touched.

	_, err := manager.Get(GetParams{Input: "github.com/acme/widgets"})
	assert.ErrorIs(t, err, ErrRepositoryExists)
	assert.ErrorContains(t, err, testRepoRoot)
}

func TestGet_HTTPSOverride(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	manager, m := newTestManager(ctrl, testGetConfig())

	m.fs.EXPECT().Exists(testRepoRoot).Return(false, nil)
	m.fs.EXPECT().MkdirAll(testRepoRoot, os.FileMode(0755)).Return(nil)
	m.git.EXPECT().CloneBare("https://github.com/acme/widgets.git", testRepoRoot+"/.bare").Return(nil)
	expectStorePrep(m, testRepoRoot)
	m.hooks.EXPECT().Run("make setup", testRepoRoot).Return(nil)
	m.fs.EXPECT().CreateFileWithContent(testRepoRoot+"/.envrc", gomock.Nil(), os.FileMode(0644)).Return(nil)

	_, err := manager.Get(GetParams{Input: "github.com/acme/widgets", CloneMethod: "https"})
	assert.NoError(t, err)
}

func TestGet_SuffixOverride(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	manager, m := newTestManager(ctrl, testGetConfig())

	suffix := "-dev"
	projectDir := testRepoRoot + suffix
	m.fs.EXPECT().Exists(projectDir).Return(false, nil)
	m.fs.EXPECT().MkdirAll(projectDir, os.FileMode(0755)).Return(nil)
	m.git.EXPECT().CloneBare("git@github.com:acme/widgets.git", projectDir+"/.bare").Return(nil)
	expectStorePrep(m, projectDir)
	m.hooks.EXPECT().Run("make setup", projectDir).Return(nil)
	m.fs.EXPECT().CreateFileWithContent(projectDir+"/.envrc", gomock.Nil(), os.FileMode(0644)).Return(nil)

	lay, err := manager.Get(GetParams{Input: "github.com/acme/widgets", Suffix: &suffix})
	assert.NoError(t, err)
	assert.Equal(t, projectDir, lay.ProjectDir)
}

func TestGet_HookFailureDoesNotFailTheClone(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	manager, m := newTestManager(ctrl, testGetConfig())

	m.fs.EXPECT().Exists(testRepoRoot).Return(false, nil)
	m.fs.EXPECT().MkdirAll(testRepoRoot, os.FileMode(0755)).Return(nil)
	m.git.EXPECT().CloneBare("git@github.com:acme/widgets.git", testRepoRoot+"/.bare").Return(nil)
	expectStorePrep(m, testRepoRoot)
	m.hooks.EXPECT().Run("make setup", testRepoRoot).Return(&hooks.ExitError{Code: 2})
	// The environment stub is still written after the hook fails.
	m.fs.EXPECT().CreateFileWithContent(testRepoRoot+"/.envrc", gomock.Nil(), os.FileMode(0644)).Return(nil)

	_, err := manager.Get(GetParams{Input: "github.com/acme/widgets"})
	assert.NoError(t, err)
}

func TestGet_NoHookWhenUnconfigured(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := testGetConfig()
	cfg.PostCloneCommands = ""
	manager, m := newTestManager(ctrl, cfg)

	m.fs.EXPECT().Exists(testRepoRoot).Return(false, nil)
	m.fs.EXPECT().MkdirAll(testRepoRoot, os.FileMode(0755)).Return(nil)
	m.git.EXPECT().CloneBare("git@github.com:acme/widgets.git", testRepoRoot+"/.bare").Return(nil)
	expectStorePrep(m, testRepoRoot)
	m.fs.EXPECT().CreateFileWithContent(testRepoRoot+"/.envrc", gomock.Nil(), os.FileMode(0644)).Return(nil)
	// No hooks.Run expectation.

	_, err := manager.Get(GetParams{Input: "github.com/acme/widgets"})
	assert.NoError(t, err)
}

func TestGet_UnparsableInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	manager, _ := newTestManager(ctrl, testGetConfig())

	_, err := manager.Get(GetParams{Input: "not a repository"})
	assert.ErrorIs(t, err, repourl.ErrUnrecognizedForm)
}

func TestGet_CloneErrorPropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	manager, m := newTestManager(ctrl, testGetConfig())

	m.fs.EXPECT().Exists(testRepoRoot).Return(false, nil)
	m.fs.EXPECT().MkdirAll(testRepoRoot, os.FileMode(0755)).Return(nil)
	m.git.EXPECT().CloneBare("git@github.com:acme/widgets.git", testRepoRoot+"/.bare").
		Return(errors.New("fatal: repository not found"))

	_, err := manager.Get(GetParams{Input: "github.com/acme/widgets"})
	assert.ErrorContains(t, err, "repository not found")
}
