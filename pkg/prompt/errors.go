package prompt

import "errors"

// Error definitions for prompt package.
var (
	// ErrNoSelection is returned when the user quits the selector without choosing.
	ErrNoSelection = errors.New("no selection made")

	// ErrInvalidConfirmationInput is returned for confirmation answers other than yes/no.
	ErrInvalidConfirmationInput = errors.New("invalid confirmation input")
)
