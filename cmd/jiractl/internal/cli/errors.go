package cli

import "github.com/cockroachdb/errors"

// Error definitions for the jiractl CLI.
var (
	ErrPasswordRequired = errors.New("a password is required for the user")
)
