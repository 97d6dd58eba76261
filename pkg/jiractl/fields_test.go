//go:build unit

package jiractl

import (
	"testing"

	"github.com/lerenn/jiractl/pkg/tracker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateIssueFields(t *testing.T) {
	required := CreateIssueParams{
		Project:     "PRJ",
		Type:        "Bug",
		Summary:     "Fix login",
		Description: "Details",
	}

	tests := []struct {
		name     string
		params   func(p CreateIssueParams) CreateIssueParams
		expected tracker.Fields
	}{
		{
			name:   "required fields only",
			params: func(p CreateIssueParams) CreateIssueParams { return p },
			expected: tracker.Fields{
				"project":     "PRJ",
				"issuetype":   "Bug",
				"summary":     "Fix login",
				"description": "Details",
			},
		},
		{
			name: "references and lists",
			params: func(p CreateIssueParams) CreateIssueParams {
				p.Assignee = "alice"
				p.Parent = "10000"
				p.Components = []string{"C1", "C2"}
				p.Labels = []string{"b", "a"}
				return p
			},
			expected: tracker.Fields{
				"project":     "PRJ",
				"issuetype":   "Bug",
				"summary":     "Fix login",
				"description": "Details",
				"assignee":    map[string]string{"name": "alice"},
				"parent":      map[string]string{"id": "10000"},
				"components":  []map[string]string{{"name": "C1"}, {"name": "C2"}},
				"labels":      []string{"b", "a"},
			},
		},
		{
			name: "components only",
			params: func(p CreateIssueParams) CreateIssueParams {
				p.Components = []string{"C1"}
				return p
			},
			expected: tracker.Fields{
				"project":     "PRJ",
				"issuetype":   "Bug",
				"summary":     "Fix login",
				"description": "Details",
				"components":  []map[string]string{{"name": "C1"}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CreateIssueFields(tt.params(required)))
		})
	}
}

func TestEditIssueFields(t *testing.T) {
	summary := "New summary"
	empty := ""

	assert.Empty(t, EditIssueFields(EditIssueParams{ID: "PRJ-1", Assignee: "alice", Status: "Done"}))

	assert.Equal(t, tracker.Fields{"summary": "New summary"},
		EditIssueFields(EditIssueParams{ID: "PRJ-1", Summary: &summary}))

	assert.Equal(t, tracker.Fields{"description": "", "customfield_1": "x"},
		EditIssueFields(EditIssueParams{
			ID:           "PRJ-1",
			Description:  &empty,
			CustomFields: tracker.Fields{"customfield_1": "x"},
		}))
}

func TestParseVisibility(t *testing.T) {
	tests := []struct {
		input    string
		expected *tracker.Visibility
		wantErr  bool
	}{
		{input: "", expected: nil},
		{input: "role:Developers", expected: &tracker.Visibility{Type: "role", Value: "Developers"}},
		{input: "group:a:b", expected: &tracker.Visibility{Type: "group", Value: "a:b"}},
		{input: "role", wantErr: true},
		{input: ":Developers", wantErr: true},
		{input: "role:", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			v, err := ParseVisibility(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidVisibility)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, v)
		})
	}
}

func TestParseCustomFields(t *testing.T) {
	fields, err := ParseCustomFields([]string{"customfield_1:High", "customfield_2:a:b"})
	require.NoError(t, err)
	assert.Equal(t, tracker.Fields{"customfield_1": "High", "customfield_2": "a:b"}, fields)

	_, err = ParseCustomFields([]string{"customfield_1"})
	assert.ErrorIs(t, err, ErrInvalidCustomField)
}

func TestFormatText(t *testing.T) {
	assert.Equal(t, "A\nB", FormatText("A<br>B"))
	assert.Equal(t, "\n\n", FormatText("<br><br>"))
	assert.Equal(t, "plain", FormatText("plain"))
}

func TestVisibilityFlag(t *testing.T) {
	var f VisibilityFlag
	assert.Nil(t, f.Visibility)

	require.NoError(t, f.Set("role:Administrators"))
	assert.Equal(t, &tracker.Visibility{Type: "role", Value: "Administrators"}, f.Visibility)
	assert.Equal(t, "role:Administrators", f.String())

	assert.ErrorIs(t, f.Set("Administrators"), ErrInvalidVisibility)
	assert.Equal(t, "role:Administrators", f.String())
}

func TestCustomFieldsFlag(t *testing.T) {
	var f CustomFieldsFlag
	require.NoError(t, f.Set("customfield_1:a,customfield_2:b"))
	require.NoError(t, f.Set("customfield_3:c"))

	assert.Equal(t, tracker.Fields{
		"customfield_1": "a",
		"customfield_2": "b",
		"customfield_3": "c",
	}, f.Fields)
	assert.Equal(t, "customfield_1:a,customfield_2:b,customfield_3:c", f.String())

	assert.ErrorIs(t, f.Set("broken"), ErrInvalidCustomField)
}

func TestCustomFieldsFlag_ValueWithComma(t *testing.T) {
	var f CustomFieldsFlag
	require.NoError(t, f.Set("customfield_1:a,b"))
	require.NoError(t, f.Set("customfield_2:x, y,customfield_3:c"))

	assert.Equal(t, tracker.Fields{
		"customfield_1": "a,b",
		"customfield_2": "x, y",
		"customfield_3": "c",
	}, f.Fields)
	assert.Equal(t, []string{"customfield_1:a,b", "customfield_2:x, y", "customfield_3:c"}, f.GetSlice())
}

func TestCustomFieldsFlag_SliceValue(t *testing.T) {
	var f CustomFieldsFlag
	require.NoError(t, f.Append("customfield_1:a,b"))
	assert.Equal(t, tracker.Fields{"customfield_1": "a,b"}, f.Fields)

	require.NoError(t, f.Replace([]string{"customfield_2:c"}))
	assert.Equal(t, tracker.Fields{"customfield_2": "c"}, f.Fields)
	assert.Equal(t, []string{"customfield_2:c"}, f.GetSlice())

	assert.ErrorIs(t, f.Replace([]string{"broken"}), ErrInvalidCustomField)
	assert.Equal(t, tracker.Fields{"customfield_2": "c"}, f.Fields)
}
