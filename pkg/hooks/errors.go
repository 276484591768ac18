package hooks

import "fmt"

// ExitError reports a hook script that exited with a non-zero status.
type ExitError struct {
	Code int
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return fmt.Sprintf("hook exited with status %d", e.Code)
}
