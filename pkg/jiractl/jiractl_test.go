//go:build unit

package jiractl

import (
	"testing"

	"github.com/lerenn/jiractl/pkg/dependencies"
	"github.com/lerenn/jiractl/pkg/tracker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestJiraCtl returns a JiraCtl backed by a mock tracker. Any call not
// expected by the test fails it.
func newTestJiraCtl(t *testing.T) (JiraCtl, *tracker.MockTracker) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockTracker := tracker.NewMockTracker(ctrl)

	j, err := NewJiraCtl(NewJiraCtlParams{
		Dependencies: dependencies.New().WithTracker(mockTracker),
	})
	require.NoError(t, err)
	return j, mockTracker
}

func TestNewJiraCtl_MissingTracker(t *testing.T) {
	_, err := NewJiraCtl(NewJiraCtlParams{})
	assert.ErrorIs(t, err, dependencies.ErrTrackerMissing)
}
