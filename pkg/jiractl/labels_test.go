//go:build unit

package jiractl

import (
	"context"
	"testing"

	"github.com/lerenn/jiractl/pkg/output"
	"github.com/lerenn/jiractl/pkg/tracker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func issueWithLabels(labels ...string) *tracker.Issue {
	return &tracker.Issue{ID: "10001", Key: "PRJ-1", Labels: labels}
}

func TestListLabels(t *testing.T) {
	j, mockTracker := newTestJiraCtl(t)
	ctx := context.Background()

	mockTracker.EXPECT().Issue(ctx, "PRJ-1").Return(issueWithLabels("zeta", "alpha"), nil)

	result, err := j.ListLabels(ctx, ListLabelsParams{Issue: "PRJ-1"})
	require.NoError(t, err)
	assert.Equal(t, output.List(LabelColumns, [][]string{{"zeta"}, {"alpha"}}), result)
}

func TestAddLabels(t *testing.T) {
	tests := []struct {
		name     string
		existing []string
		add      []string
		expected []string // nil when no update is expected
	}{
		{
			name:     "already present",
			existing: []string{"b", "a"},
			add:      []string{"a", "b"},
		},
		{
			name:     "sorted union",
			existing: []string{"zeta", "alpha"},
			add:      []string{"beta", "alpha"},
			expected: []string{"alpha", "beta", "zeta"},
		},
		{
			name:     "no existing label",
			add:      []string{"y", "x", "y"},
			expected: []string{"x", "y"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			j, mockTracker := newTestJiraCtl(t)
			ctx := context.Background()

			mockTracker.EXPECT().Issue(ctx, "PRJ-1").Return(issueWithLabels(tt.existing...), nil)
			if tt.expected != nil {
				mockTracker.EXPECT().UpdateIssue(ctx, "PRJ-1", tracker.Fields{"labels": tt.expected}).Return(nil)
			}

			assert.NoError(t, j.AddLabels(ctx, LabelsParams{Issue: "PRJ-1", Labels: tt.add}))
		})
	}
}

func TestDropLabels(t *testing.T) {
	tests := []struct {
		name     string
		existing []string
		drop     []string
		expected []string // nil when no update is expected
	}{
		{
			name:     "none present",
			existing: []string{"a", "b"},
			drop:     []string{"c"},
		},
		{
			name:     "sorted difference",
			existing: []string{"zeta", "beta", "alpha"},
			drop:     []string{"beta", "omega"},
			expected: []string{"alpha", "zeta"},
		},
		{
			name:     "drop everything",
			existing: []string{"a"},
			drop:     []string{"a"},
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			j, mockTracker := newTestJiraCtl(t)
			ctx := context.Background()

			mockTracker.EXPECT().Issue(ctx, "PRJ-1").Return(issueWithLabels(tt.existing...), nil)
			if tt.expected != nil {
				mockTracker.EXPECT().UpdateIssue(ctx, "PRJ-1", tracker.Fields{"labels": tt.expected}).Return(nil)
			}

			assert.NoError(t, j.DropLabels(ctx, LabelsParams{Issue: "PRJ-1", Labels: tt.drop}))
		})
	}
}

func TestAddLabels_DoesNotMutateIssue(t *testing.T) {
	j, mockTracker := newTestJiraCtl(t)
	ctx := context.Background()
	issue := issueWithLabels("b")

	mockTracker.EXPECT().Issue(ctx, "PRJ-1").Return(issue, nil)
	mockTracker.EXPECT().UpdateIssue(ctx, "PRJ-1", tracker.Fields{"labels": []string{"a", "b"}}).Return(nil)

	require.NoError(t, j.AddLabels(ctx, LabelsParams{Issue: "PRJ-1", Labels: []string{"a"}}))
	assert.Equal(t, []string{"b"}, issue.Labels)
}
