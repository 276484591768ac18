// Package hooks runs user-configured shell hooks after clone and worktree creation.
package hooks

//go:generate go run go.uber.org/mock/mockgen@latest -source=hooks.go -destination=mocks/hooks.gen.go -package=mocks

// Runner executes hook scripts.
type Runner interface {
	// Run executes the script through the shell with workDir as working directory.
	// Standard streams are inherited so hooks can interact with the terminal.
	Run(script, workDir string) error
}

type realRunner struct {
	// No fields needed for basic script execution
}

// NewRunner creates a new Runner instance.
func NewRunner() Runner {
	return &realRunner{}
}
