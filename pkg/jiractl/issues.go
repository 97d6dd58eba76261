package jiractl

import (
	"context"
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/lerenn/jiractl/pkg/jiractl/consts"
	"github.com/lerenn/jiractl/pkg/output"
	"github.com/lerenn/jiractl/pkg/tracker"
)

// CreateIssueParams contains parameters for CreateIssue.
type CreateIssueParams struct {
	Project     string
	Type        string
	Summary     string
	Description string
	Assignee    string
	Parent      string
	Components  []string
	Labels      []string
	Columns     []string
}

// EditIssueParams contains parameters for EditIssue. Nil fields are left unchanged.
type EditIssueParams struct {
	ID           string
	Summary      *string
	Description  *string
	Assignee     string
	Status       string
	CustomFields tracker.Fields
}

// ShowIssueParams contains parameters for ShowIssue. Columns that are not
// issue columns are shown from the custom fields.
type ShowIssueParams struct {
	ID      string
	Columns []string
}

// ListIssuesParams contains parameters for ListIssues.
type ListIssuesParams struct {
	Project    string
	Assignee   string
	Statuses   []string
	MaxResults int
	Columns    []string
}

// SearchIssuesParams contains parameters for SearchIssues.
type SearchIssuesParams struct {
	Query      string
	MaxResults int
	Columns    []string
}

// CreateIssue creates an issue and shows it as stored by the tracker.
func (j *realJiraCtl) CreateIssue(ctx context.Context, params CreateIssueParams) (output.Result, error) {
	issue, err := j.deps.Tracker.CreateIssue(ctx, CreateIssueFields(params))
	if err != nil {
		return output.Result{}, errors.Wrap(err, consts.CreateIssue)
	}

	j.logf("Created issue %s", issue.Key)
	columns, extra := issueColumns(params.Columns)
	return output.One(columns, FormatIssue(*issue, extra)), nil
}

// EditIssue updates the fields, then the assignee, then the status of an
// issue. Earlier changes are kept when a later one fails.
func (j *realJiraCtl) EditIssue(ctx context.Context, params EditIssueParams) error {
	if fields := EditIssueFields(params); len(fields) > 0 {
		issue, err := j.deps.Tracker.Issue(ctx, params.ID)
		if err != nil {
			return errors.Wrap(err, consts.EditIssue)
		}

		j.logf("Updating %d field(s) of %s", len(fields), issue.Key)
		if err := j.deps.Tracker.UpdateIssue(ctx, issue.Key, fields); err != nil {
			return errors.Wrap(err, consts.EditIssue)
		}
	}

	if params.Assignee != "" {
		if err := j.deps.Tracker.AssignIssue(ctx, params.ID, params.Assignee); err != nil {
			return errors.Wrap(err, consts.EditIssue)
		}
	}

	if params.Status != "" {
		if err := j.deps.Tracker.TransitionIssue(ctx, params.ID, params.Status); err != nil {
			return errors.Wrap(err, consts.EditIssue)
		}
	}

	return nil
}

// ShowIssue shows an issue.
func (j *realJiraCtl) ShowIssue(ctx context.Context, params ShowIssueParams) (output.Result, error) {
	issue, err := j.deps.Tracker.Issue(ctx, params.ID)
	if err != nil {
		return output.Result{}, errors.Wrap(err, consts.ShowIssue)
	}

	columns, extra := issueColumns(params.Columns)
	return output.One(columns, FormatIssue(*issue, extra)), nil
}

// ListIssues lists the issues of a project assigned to a user in the given statuses.
func (j *realJiraCtl) ListIssues(ctx context.Context, params ListIssuesParams) (output.Result, error) {
	jql := ListIssuesJQL(params.Project, params.Assignee, params.Statuses)
	result, err := j.searchIssues(ctx, jql, params.MaxResults, params.Columns)
	if err != nil {
		return output.Result{}, errors.Wrap(err, consts.ListIssues)
	}
	return result, nil
}

// SearchIssues lists the issues matching a JQL query.
func (j *realJiraCtl) SearchIssues(ctx context.Context, params SearchIssuesParams) (output.Result, error) {
	result, err := j.searchIssues(ctx, params.Query, params.MaxResults, params.Columns)
	if err != nil {
		return output.Result{}, errors.Wrap(err, consts.SearchIssues)
	}
	return result, nil
}

func (j *realJiraCtl) searchIssues(
	ctx context.Context, jql string, maxResults int, requested []string,
) (output.Result, error) {
	if maxResults <= 0 {
		maxResults = tracker.DefaultMaxResults
	}

	j.logf("Searching issues: %s", jql)
	issues, err := j.deps.Tracker.SearchIssues(ctx, jql, maxResults)
	if err != nil {
		return output.Result{}, err
	}

	columns, extra := issueColumns(requested)
	rows := make([][]string, 0, len(issues))
	for _, issue := range issues {
		rows = append(rows, FormatIssue(issue, extra))
	}
	return output.List(columns, rows), nil
}

// ListIssuesJQL builds the list-issues query. Values are not escaped.
func ListIssuesJQL(project, assignee string, statuses []string) string {
	quoted := make([]string, 0, len(statuses))
	for _, s := range statuses {
		quoted = append(quoted, `"`+s+`"`)
	}
	return fmt.Sprintf(`project="%s" AND assignee="%s" AND status IN (%s)`,
		project, assignee, strings.Join(quoted, ","))
}
