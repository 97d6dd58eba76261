// Package prompt provides interactive prompt functionality for jiractl.
package prompt

import "github.com/cockroachdb/errors"

// Error definitions for prompt package.
var (
	ErrNotATerminal = errors.New("input is not a terminal")
	ErrEmptyValue   = errors.New("a value is required")
)
