//go:build unit

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFoldListArgs(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected []string
	}{
		{
			name:     "separate value",
			args:     []string{"list-issues", "--status", "NEW", "WORK"},
			expected: []string{"list-issues", "--status", "NEW", "--status", "WORK"},
		},
		{
			name:     "inline value",
			args:     []string{"list-issues", "--status=NEW", "WORK"},
			expected: []string{"list-issues", "--status=NEW", "--status", "WORK"},
		},
		{
			name:     "shorthand",
			args:     []string{"show-issue", "--id", "PRJ-1", "-c", "key", "summary"},
			expected: []string{"show-issue", "--id", "PRJ-1", "-c", "key", "--column", "summary"},
		},
		{
			name:     "inherited flags before the command",
			args:     []string{"-v", "--config", "c.yaml", "add-label", "--issue", "PRJ-1", "--labels", "a", "b"},
			expected: []string{"-v", "--config", "c.yaml", "add-label", "--issue", "PRJ-1", "--labels", "a", "--labels", "b"},
		},
		{
			name:     "list ends at the next flag",
			args:     []string{"add-label", "--labels", "a", "b", "--issue", "PRJ-1"},
			expected: []string{"add-label", "--labels", "a", "--labels", "b", "--issue", "PRJ-1"},
		},
		{
			name:     "single-valued flag",
			args:     []string{"show-issue", "--id", "PRJ-1", "extra"},
			expected: []string{"show-issue", "--id", "PRJ-1", "extra"},
		},
		{
			name:     "terminator",
			args:     []string{"add-label", "--labels", "a", "--", "b"},
			expected: []string{"add-label", "--labels", "a", "--", "b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rootCmd := newRootCmd(nil, nil)
			assert.Equal(t, tt.expected, foldListArgs(rootCmd, tt.args))
		})
	}
}
