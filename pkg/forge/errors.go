package forge

import "errors"

// Error definitions for forge package.
var (
	// ErrUnsupportedForge is returned when no registered forge handles the repository host.
	ErrUnsupportedForge = errors.New("unsupported forge")
)
