// Package jiractl implements the jiractl commands on top of a tracker client.
package jiractl

import (
	"context"

	"github.com/lerenn/jiractl/pkg/dependencies"
	"github.com/lerenn/jiractl/pkg/output"
)

// JiraCtl interface provides the jiractl operations. Display operations
// return the result to render, mutating operations only report failures.
type JiraCtl interface {
	// ListComments lists the comments of an issue.
	ListComments(ctx context.Context, params ListCommentsParams) (output.Result, error)
	// AddComment adds a comment to an issue.
	AddComment(ctx context.Context, params AddCommentParams) (output.Result, error)
	// EditComment replaces the text of a comment.
	EditComment(ctx context.Context, params EditCommentParams) error
	// ShowComment shows one comment of an issue.
	ShowComment(ctx context.Context, params ShowCommentParams) (output.Result, error)

	// CreateIssue creates an issue.
	CreateIssue(ctx context.Context, params CreateIssueParams) (output.Result, error)
	// EditIssue updates the fields, assignee and status of an issue.
	EditIssue(ctx context.Context, params EditIssueParams) error
	// ShowIssue shows an issue.
	ShowIssue(ctx context.Context, params ShowIssueParams) (output.Result, error)
	// ListIssues lists the issues of a project assigned to a user in the given statuses.
	ListIssues(ctx context.Context, params ListIssuesParams) (output.Result, error)
	// SearchIssues lists the issues matching a JQL query.
	SearchIssues(ctx context.Context, params SearchIssuesParams) (output.Result, error)

	// ListLabels lists the labels of an issue.
	ListLabels(ctx context.Context, params ListLabelsParams) (output.Result, error)
	// AddLabels adds labels to an issue.
	AddLabels(ctx context.Context, params LabelsParams) error
	// DropLabels removes labels from an issue.
	DropLabels(ctx context.Context, params LabelsParams) error

	// ListLinks lists the issue links then the remote links of an issue.
	ListLinks(ctx context.Context, params ListLinksParams) (output.Result, error)
	// AddLink links an issue to another issue or to a URL.
	AddLink(ctx context.Context, params AddLinkParams) (output.Result, error)
	// ShowLink shows one link of an issue.
	ShowLink(ctx context.Context, params LinkParams) (output.Result, error)
	// DropLink deletes one link of an issue.
	DropLink(ctx context.Context, params LinkParams) error
}

// NewJiraCtlParams contains parameters for creating a new JiraCtl instance.
type NewJiraCtlParams struct {
	Dependencies *dependencies.Dependencies
}

type realJiraCtl struct {
	deps *dependencies.Dependencies
}

// NewJiraCtl creates a new JiraCtl instance.
func NewJiraCtl(params NewJiraCtlParams) (JiraCtl, error) {
	deps := params.Dependencies
	if deps == nil {
		deps = dependencies.New()
	}

	if err := deps.Validate(); err != nil {
		return nil, err
	}

	return &realJiraCtl{
		deps: deps,
	}, nil
}

// logf logs a formatted message using the current logger.
func (j *realJiraCtl) logf(format string, args ...interface{}) {
	j.deps.Logger.Logf(format, args...)
}
