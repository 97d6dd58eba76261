// Package tracker provides the issue tracker client used by jiractl.
package tracker

import (
	"context"
	"strings"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=tracker.go -destination=mocktracker.gen.go -package=tracker

// Fields is a sparse issue field document, keyed by field id.
type Fields map[string]any

// Visibility restricts who can see a comment.
type Visibility struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// Issue represents a tracker issue.
type Issue struct {
	ID       string
	Key      string
	Project  string
	Summary  string
	Type     string
	Assignee string // empty when unassigned
	Status   string
	Labels   []string
	Links    []IssueLink
	Fields   map[string]any // custom fields, by id
}

// Comment represents a comment attached to an issue.
type Comment struct {
	ID         string
	Updated    string
	Author     string
	Body       string
	Visibility *Visibility
}

// LinkType describes a relation between two issues.
type LinkType struct {
	Name    string
	Inward  string
	Outward string
}

// LinkedIssue is the issue at one end of an issue link.
type LinkedIssue struct {
	ID      string
	Key     string
	Summary string
	Status  string
}

// Is reports whether ref designates this issue, by id or key.
func (l *LinkedIssue) Is(ref string) bool {
	if l == nil || ref == "" {
		return false
	}
	return l.ID == ref || strings.EqualFold(l.Key, ref)
}

// IssueLink relates two issues. Links read from an issue carry only the
// other end, links fetched by id carry both.
type IssueLink struct {
	ID      string
	Type    LinkType
	Inward  *LinkedIssue
	Outward *LinkedIssue
}

// RemoteLink relates an issue to an external resource.
type RemoteLink struct {
	ID    string
	URL   string
	Title string
	Icon  string // 16x16 icon URL, empty when absent
}

// RemoteLinkObject is the payload of a new remote link.
type RemoteLinkObject struct {
	URL   string
	Title string
	Icon  string
}

// IssueLinkRequest is the payload of a new issue link.
type IssueLinkRequest struct {
	Type    string
	Inward  string
	Outward string
	Comment string
}

// Tracker interface defines the remote operations jiractl depends on.
type Tracker interface {
	// Comments returns all comments of an issue.
	Comments(ctx context.Context, issueID string) ([]Comment, error)
	// AddComment adds a comment to an issue.
	AddComment(ctx context.Context, issueID, body string, visibility *Visibility) (*Comment, error)
	// Comment returns one comment of an issue.
	Comment(ctx context.Context, issueID, commentID string) (*Comment, error)
	// UpdateComment replaces the body and visibility of a comment.
	UpdateComment(ctx context.Context, issueID, commentID, body string, visibility *Visibility) error

	// Issue returns an issue with all its fields.
	Issue(ctx context.Context, issueID string) (*Issue, error)
	// UpdateIssue sets the given fields on an issue.
	UpdateIssue(ctx context.Context, issueID string, fields Fields) error
	// CreateIssue creates an issue and returns it as stored by the tracker.
	CreateIssue(ctx context.Context, fields Fields) (*Issue, error)
	// AssignIssue assigns an issue to a user.
	AssignIssue(ctx context.Context, issueID, user string) error
	// TransitionIssue moves an issue to the given status.
	TransitionIssue(ctx context.Context, issueID, status string) error
	// SearchIssues returns the issues matching a JQL query.
	SearchIssues(ctx context.Context, jql string, maxResults int) ([]Issue, error)

	// AddRemoteLink adds a remote link to an issue and returns its id.
	AddRemoteLink(ctx context.Context, issueID string, object RemoteLinkObject) (string, error)
	// RemoteLink returns one remote link of an issue.
	RemoteLink(ctx context.Context, issueID, linkID string) (*RemoteLink, error)
	// RemoteLinks returns all remote links of an issue.
	RemoteLinks(ctx context.Context, issueID string) ([]RemoteLink, error)
	// DeleteRemoteLink deletes a remote link of an issue.
	DeleteRemoteLink(ctx context.Context, issueID, linkID string) error

	// CreateIssueLink links two issues and returns the link id.
	CreateIssueLink(ctx context.Context, request IssueLinkRequest) (string, error)
	// IssueLink returns an issue link by id.
	IssueLink(ctx context.Context, linkID string) (*IssueLink, error)
	// DeleteIssueLink deletes an issue link by id.
	DeleteIssueLink(ctx context.Context, linkID string) error
}
