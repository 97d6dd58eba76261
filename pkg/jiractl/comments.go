package jiractl

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/lerenn/jiractl/pkg/jiractl/consts"
	"github.com/lerenn/jiractl/pkg/output"
	"github.com/lerenn/jiractl/pkg/tracker"
)

// ListCommentsParams contains parameters for ListComments.
type ListCommentsParams struct {
	Issue string
}

// AddCommentParams contains parameters for AddComment. Text may use <br>
// as a line break.
type AddCommentParams struct {
	Issue      string
	Text       string
	Visibility *tracker.Visibility
}

// EditCommentParams contains parameters for EditComment.
type EditCommentParams struct {
	Issue      string
	ID         string
	Text       string
	Visibility *tracker.Visibility
}

// ShowCommentParams contains parameters for ShowComment.
type ShowCommentParams struct {
	Issue string
	ID    string
}

// ListComments lists the comments of an issue.
func (j *realJiraCtl) ListComments(ctx context.Context, params ListCommentsParams) (output.Result, error) {
	comments, err := j.deps.Tracker.Comments(ctx, params.Issue)
	if err != nil {
		return output.Result{}, errors.Wrap(err, consts.ListComments)
	}

	rows := make([][]string, 0, len(comments))
	for _, c := range comments {
		rows = append(rows, FormatComment(c))
	}
	return output.List(CommentColumns, rows), nil
}

// AddComment adds a comment to an issue.
func (j *realJiraCtl) AddComment(ctx context.Context, params AddCommentParams) (output.Result, error) {
	comment, err := j.deps.Tracker.AddComment(ctx, params.Issue, FormatText(params.Text), params.Visibility)
	if err != nil {
		return output.Result{}, errors.Wrap(err, consts.AddComment)
	}
	return output.One(CommentColumns, FormatComment(*comment)), nil
}

// EditComment replaces the text and visibility of a comment.
func (j *realJiraCtl) EditComment(ctx context.Context, params EditCommentParams) error {
	if _, err := j.deps.Tracker.Comment(ctx, params.Issue, params.ID); err != nil {
		return errors.Wrap(err, consts.EditComment)
	}

	err := j.deps.Tracker.UpdateComment(ctx, params.Issue, params.ID, FormatText(params.Text), params.Visibility)
	if err != nil {
		return errors.Wrap(err, consts.EditComment)
	}
	return nil
}

// ShowComment shows one comment of an issue.
func (j *realJiraCtl) ShowComment(ctx context.Context, params ShowCommentParams) (output.Result, error) {
	comment, err := j.deps.Tracker.Comment(ctx, params.Issue, params.ID)
	if err != nil {
		return output.Result{}, errors.Wrap(err, consts.ShowComment)
	}
	return output.One(CommentColumns, FormatComment(*comment)), nil
}
