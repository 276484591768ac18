// Package dependencies provides a centralized dependency container for the bwt application.
package dependencies

import (
	"github.com/barewt/bwt/pkg/config"
	"github.com/barewt/bwt/pkg/forge"
	"github.com/barewt/bwt/pkg/fs"
	"github.com/barewt/bwt/pkg/git"
	"github.com/barewt/bwt/pkg/hooks"
	"github.com/barewt/bwt/pkg/logger"
	"github.com/barewt/bwt/pkg/prompt"
	"github.com/barewt/bwt/pkg/repository"
)

// Dependencies holds shared dependencies across the application.
type Dependencies struct {
	FS      fs.FS
	Git     git.Git
	Config  config.Manager
	Logger  logger.Logger
	Prompt  prompt.Prompter
	Hooks   hooks.Runner
	Locator repository.Locator
	Forge   forge.Manager
}

// New creates a new Dependencies instance with real implementations.
func New() *Dependencies {
	filesystem := fs.NewFS()
	return &Dependencies{
		FS:      filesystem,
		Git:     git.NewGit(),
		Config:  config.NewManager(filesystem),
		Logger:  logger.NewNoopLogger(),
		Prompt:  prompt.NewPrompt(),
		Hooks:   hooks.NewRunner(),
		Locator: repository.NewLocator(filesystem),
		Forge:   forge.NewManager(),
	}
}

// WithFS sets the filesystem and returns the instance for chaining.
func (d *Dependencies) WithFS(fs fs.FS) *Dependencies {
	d.FS = fs
	return d
}

// WithGit sets the git instance and returns the instance for chaining.
func (d *Dependencies) WithGit(git git.Git) *Dependencies {
	d.Git = git
	return d
}

// WithConfig sets the config manager and returns the instance for chaining.
func (d *Dependencies) WithConfig(cfg config.Manager) *Dependencies {
	d.Config = cfg
	return d
}

// WithLogger sets the logger and returns the instance for chaining.
func (d *Dependencies) WithLogger(logger logger.Logger) *Dependencies {
	d.Logger = logger
	return d
}

// WithPrompt sets the prompt and returns the instance for chaining.
func (d *Dependencies) WithPrompt(prompt prompt.Prompter) *Dependencies {
	d.Prompt = prompt
	return d
}

// WithHooks sets the hook runner and returns the instance for chaining.
func (d *Dependencies) WithHooks(runner hooks.Runner) *Dependencies {
	d.Hooks = runner
	return d
}

// WithLocator sets the repository locator and returns the instance for chaining.
func (d *Dependencies) WithLocator(locator repository.Locator) *Dependencies {
	d.Locator = locator
	return d
}

// WithForge sets the forge manager and returns the instance for chaining.
func (d *Dependencies) WithForge(forge forge.Manager) *Dependencies {
	d.Forge = forge
	return d
}
