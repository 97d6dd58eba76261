//go:build unit

package dependencies

import (
	"testing"

	"github.com/lerenn/jiractl/pkg/logger"
	"github.com/lerenn/jiractl/pkg/tracker"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

// TestDependencies_New_Defaults tests that New() sets every default but the tracker.
func TestDependencies_New_Defaults(t *testing.T) {
	deps := New()

	assert.NotNil(t, deps.Logger)
	assert.Nil(t, deps.Tracker)

	assert.ErrorIs(t, deps.Validate(), ErrTrackerMissing)
}

func TestDependencies_Validate(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockTracker := tracker.NewMockTracker(ctrl)

	tests := []struct {
		name    string
		deps    *Dependencies
		wantErr error
	}{
		{
			name: "all set",
			deps: New().WithTracker(mockTracker),
		},
		{
			name:    "all missing reports the tracker first",
			deps:    &Dependencies{},
			wantErr: ErrTrackerMissing,
		},
		{
			name:    "missing logger",
			deps:    &Dependencies{Tracker: mockTracker},
			wantErr: ErrLoggerMissing,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.deps.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// TestDependencies_With tests that the With* methods chain on the same instance.
func TestDependencies_With(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockTracker := tracker.NewMockTracker(ctrl)
	log := logger.NewNoopLogger()

	deps := New()
	result := deps.WithTracker(mockTracker).WithLogger(log)

	assert.Same(t, deps, result)
	assert.Equal(t, mockTracker, deps.Tracker)
	assert.Equal(t, log, deps.Logger)
}
