package tracker

import "github.com/cockroachdb/errors"

// Tracker-specific errors.
var (
	ErrServerRequired     = errors.New("tracker server URL is required")
	ErrNotFound           = errors.New("not found")
	ErrUnauthorized       = errors.New("unauthorized access to tracker API")
	ErrForbidden          = errors.New("access to tracker resource forbidden")
	ErrTransitionNotFound = errors.New("no transition leads to the requested status")
	ErrLinkIDUnknown      = errors.New("cannot determine the id of the created link")
)
