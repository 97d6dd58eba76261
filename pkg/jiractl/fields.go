package jiractl

import (
	"fmt"
	"strings"

	"github.com/lerenn/jiractl/pkg/tracker"
)

const lineBreakMarker = "<br>"

// CreateIssueFields builds the field document of a new issue. Optional
// inputs only produce a key when supplied.
func CreateIssueFields(params CreateIssueParams) tracker.Fields {
	fields := tracker.Fields{
		"project":     params.Project,
		"issuetype":   params.Type,
		"summary":     params.Summary,
		"description": params.Description,
	}

	if params.Assignee != "" {
		fields["assignee"] = map[string]string{"name": params.Assignee}
	}
	if params.Parent != "" {
		fields["parent"] = map[string]string{"id": params.Parent}
	}
	if len(params.Components) > 0 {
		components := make([]map[string]string, 0, len(params.Components))
		for _, c := range params.Components {
			components = append(components, map[string]string{"name": c})
		}
		fields["components"] = components
	}
	if len(params.Labels) > 0 {
		fields["labels"] = append([]string(nil), params.Labels...)
	}

	return fields
}

// EditIssueFields builds the sparse update document of an issue edit.
func EditIssueFields(params EditIssueParams) tracker.Fields {
	fields := tracker.Fields{}
	if params.Summary != nil {
		fields["summary"] = *params.Summary
	}
	if params.Description != nil {
		fields["description"] = *params.Description
	}
	for k, v := range params.CustomFields {
		fields[k] = v
	}
	return fields
}

// ParseVisibility parses a type:value comment visibility. An empty input means
// no visibility restriction.
func ParseVisibility(s string) (*tracker.Visibility, error) {
	if s == "" {
		return nil, nil
	}

	kind, value, ok := splitPair(s)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidVisibility, s)
	}

	return &tracker.Visibility{Type: kind, Value: value}, nil
}

// ParseCustomFields parses key:value custom field assignments.
func ParseCustomFields(entries []string) (tracker.Fields, error) {
	fields := tracker.Fields{}
	for _, e := range entries {
		key, value, ok := splitPair(e)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrInvalidCustomField, e)
		}
		fields[key] = value
	}
	return fields, nil
}

// FormatText replaces every <br> marker with a line break.
func FormatText(s string) string {
	return strings.ReplaceAll(s, lineBreakMarker, "\n")
}

// splitPair splits on the first colon; both sides must be non-empty.
func splitPair(s string) (string, string, bool) {
	left, right, found := strings.Cut(s, ":")
	if !found || left == "" || right == "" {
		return "", "", false
	}
	return left, right, true
}
