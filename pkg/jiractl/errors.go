package jiractl

import "github.com/cockroachdb/errors"

// Error definitions for jiractl package.
var (
	ErrLinkNotFound       = errors.New("link is not found")
	ErrInvalidVisibility  = errors.New("visibility must be of the form type:value")
	ErrInvalidCustomField = errors.New("custom field must be of the form key:value")
)
