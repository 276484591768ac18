package hooks

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Run executes the script through the shell with workDir as working directory.
// The script is passed verbatim as a single sh -c argument, never interpolated
// into another command line.
func (r *realRunner) Run(script, workDir string) error {
	if strings.TrimSpace(script) == "" {
		return nil
	}

	cmd := exec.Command("sh", "-c", script)
	cmd.Dir = workDir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &ExitError{Code: exitErr.ExitCode()}
		}
		return fmt.Errorf("failed to execute hook: %w", err)
	}
	return nil
}
