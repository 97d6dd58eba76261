// Package dependencies provides a centralized dependency container for jiractl.
package dependencies

import (
	"github.com/cockroachdb/errors"
	"github.com/lerenn/jiractl/pkg/logger"
	"github.com/lerenn/jiractl/pkg/tracker"
)

// Validation errors for missing dependencies.
var (
	ErrTrackerMissing = errors.New("tracker dependency is required but not set")
	ErrLoggerMissing  = errors.New("logger dependency is required but not set")
)

// Dependencies holds shared dependencies across the application.
type Dependencies struct {
	Tracker tracker.Tracker
	Logger  logger.Logger
}

// New creates a new Dependencies instance with defaults for everything but the tracker.
func New() *Dependencies {
	return &Dependencies{
		Logger: logger.NewNoopLogger(),
	}
}

// WithTracker sets the tracker client and returns the instance for chaining.
func (d *Dependencies) WithTracker(t tracker.Tracker) *Dependencies {
	d.Tracker = t
	return d
}

// WithLogger sets the logger and returns the instance for chaining.
func (d *Dependencies) WithLogger(l logger.Logger) *Dependencies {
	d.Logger = l
	return d
}

// dependencyCheck represents a dependency validation check.
type dependencyCheck struct {
	dep interface{}
	err error
}

// Validate checks that all required dependencies are set and returns an error if any are missing.
func (d *Dependencies) Validate() error {
	checks := []dependencyCheck{
		{d.Tracker, ErrTrackerMissing},
		{d.Logger, ErrLoggerMissing},
	}

	for _, check := range checks {
		if check.dep == nil {
			return check.err
		}
	}
	return nil
}
