package config

import "errors"

// Error definitions for config package.
var (
	// Configuration file errors.
	ErrConfigNotFound  = errors.New("config file not found, run 'bwt config' to create it")
	ErrConfigFileParse = errors.New("failed to parse config file")

	// Configuration validation errors.
	ErrRootEmpty          = errors.New("root cannot be empty")
	ErrInvalidCloneMethod = errors.New("clone_method must be either ssh or https")
)
