//go:build unit

package worktree

import (
	"go.uber.org/mock/gomock"

	"github.com/barewt/bwt/pkg/config"
	configmocks "github.com/barewt/bwt/pkg/config/mocks"
	"github.com/barewt/bwt/pkg/dependencies"
	forgemocks "github.com/barewt/bwt/pkg/forge/mocks"
	fsmocks "github.com/barewt/bwt/pkg/fs/mocks"
	gitmocks "github.com/barewt/bwt/pkg/git/mocks"
	hooksmocks "github.com/barewt/bwt/pkg/hooks/mocks"
	"github.com/barewt/bwt/pkg/logger"
	promptmocks "github.com/barewt/bwt/pkg/prompt/mocks"
	repomocks "github.com/barewt/bwt/pkg/repository/mocks"
)

// testMocks bundles every collaborator mock used by the manager tests.
type testMocks struct {
	fs      *fsmocks.MockFS
	git     *gitmocks.MockGit
	config  *configmocks.MockManager
	prompt  *promptmocks.MockPrompter
	hooks   *hooksmocks.MockRunner
	locator *repomocks.MockLocator
	forge   *forgemocks.MockManager
}

// newTestManager builds a Manager wired entirely to mocks.
func newTestManager(ctrl *gomock.Controller, cfg config.Config) (Manager, testMocks) {
	m := testMocks{
		fs:      fsmocks.NewMockFS(ctrl),
		git:     gitmocks.NewMockGit(ctrl),
		config:  configmocks.NewMockManager(ctrl),
		prompt:  promptmocks.NewMockPrompter(ctrl),
		hooks:   hooksmocks.NewMockRunner(ctrl),
		locator: repomocks.NewMockLocator(ctrl),
		forge:   forgemocks.NewMockManager(ctrl),
	}

	deps := dependencies.New().
		WithFS(m.fs).
		WithGit(m.git).
		WithConfig(m.config).
		WithLogger(logger.NewNoopLogger()).
		WithPrompt(m.prompt).
		WithHooks(m.hooks).
		WithLocator(m.locator).
		WithForge(m.forge)

	return NewManager(cfg, deps), m
}
