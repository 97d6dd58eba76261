package jiractl

import (
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/lerenn/jiractl/pkg/tracker"
)

// Display columns per entity.
var (
	IssueColumns   = []string{"project", "id", "key", "summary", "type", "assignee", "status"}
	CommentColumns = []string{"id", "updated", "author", "text"}
	LabelColumns   = []string{"label"}
	LinkColumns    = []string{"id", "type", "text", "details", "icon"}
)

const remoteLinkType = "link"

// issueColumns returns the issue columns followed by the requested columns
// that are not issue columns, in request order.
func issueColumns(requested []string) ([]string, []string) {
	columns := append([]string(nil), IssueColumns...)
	var extra []string
	for _, c := range requested {
		if slices.Contains(columns, c) {
			continue
		}
		columns = append(columns, c)
		extra = append(extra, c)
	}
	return columns, extra
}

// FormatIssue returns the issue row, followed by one cell per extra custom field.
func FormatIssue(issue tracker.Issue, extra []string) []string {
	row := []string{
		issue.Project,
		issue.ID,
		issue.Key,
		issue.Summary,
		issue.Type,
		issue.Assignee,
		issue.Status,
	}
	for _, field := range extra {
		row = append(row, renderField(issue.Fields[field]))
	}
	return row
}

// FormatComment returns the comment row, body as stored.
func FormatComment(comment tracker.Comment) []string {
	return []string{comment.ID, comment.Updated, comment.Author, comment.Body}
}

// FormatLabel returns the label row.
func FormatLabel(label string) []string {
	return []string{label}
}

// FormatIssueLink returns the issue link row as seen from the issue issueRef.
// The outward side is shown unless it is missing or is issueRef itself.
func FormatIssueLink(link tracker.IssueLink, issueRef string) []string {
	other, phrase := link.Outward, link.Type.Outward
	if other == nil || other.Is(issueRef) {
		other, phrase = link.Inward, link.Type.Inward
	}

	summary, status := "", ""
	if other != nil {
		summary, status = other.Summary, other.Status
	}

	return []string{
		LinkID{Kind: KindIssue, ID: link.ID}.String(),
		phrase,
		summary,
		status,
		"",
	}
}

// FormatRemoteLink returns the remote link row.
func FormatRemoteLink(link tracker.RemoteLink) []string {
	return []string{
		LinkID{Kind: KindRemote, ID: link.ID}.String(),
		remoteLinkType,
		link.Title,
		link.URL,
		link.Icon,
	}
}

// renderField renders a custom field value in one cell.
func renderField(v any) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(value)
	case map[string]interface{}:
		for _, key := range []string{"value", "name", "key"} {
			if s, ok := value[key].(string); ok {
				return s
			}
		}
		data, err := json.Marshal(value)
		if err != nil {
			return fmt.Sprint(value)
		}
		return string(data)
	case []interface{}:
		cells := make([]string, 0, len(value))
		for _, item := range value {
			cells = append(cells, renderField(item))
		}
		return strings.Join(cells, ",")
	default:
		return fmt.Sprint(value)
	}
}
