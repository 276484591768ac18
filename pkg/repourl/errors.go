package repourl

import "errors"

// Error definitions for repourl package.
var (
	// ErrUnrecognizedForm is returned when an identifier matches none of the accepted forms.
	ErrUnrecognizedForm = errors.New("unrecognized repository identifier")
)
