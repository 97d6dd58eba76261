package output

import "github.com/cockroachdb/errors"

// Error definitions for output package.
var (
	ErrUnknownFormat = errors.New("unknown display format")
	ErrUnknownColumn = errors.New("unknown column")
)
