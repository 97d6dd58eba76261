package config

import "github.com/cockroachdb/errors"

// Error definitions for config package.
var (
	// Configuration file errors.
	ErrConfigFileParse      = errors.New("failed to parse config file")
	ErrConfigNotInitialized = errors.New("jiractl configuration not found")

	// Configuration validation errors.
	ErrInvalidServer = errors.New("server must be an absolute http or https URL")
	ErrInvalidFormat = errors.New("invalid display format in configuration")
)
