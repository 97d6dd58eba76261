package tracker

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"strings"

	"github.com/andygrunwald/go-jira"
	"github.com/cockroachdb/errors"
	"github.com/lerenn/jiractl/pkg/logger"
)

const (
	// DefaultMaxResults is the number of issues returned by a search when no limit is given.
	DefaultMaxResults = 50

	apiPrefix = "rest/api/2/"
)

// NewJiraParams contains parameters for creating a Jira tracker.
type NewJiraParams struct {
	Server   string
	User     string
	Password string
	Logger   logger.Logger
}

// Jira is the Tracker implementation backed by the Jira REST API.
type Jira struct {
	client *jira.Client
	logger logger.Logger
}

// NewJira creates a Jira tracker. Requests are anonymous when no user is given.
func NewJira(params NewJiraParams) (*Jira, error) {
	if params.Server == "" {
		return nil, errors.WithHint(ErrServerRequired,
			"pass --server, set JIRA_SERVER or run 'jiractl init'")
	}

	httpClient := &http.Client{}
	if params.User != "" {
		tp := jira.BasicAuthTransport{
			Username: params.User,
			Password: params.Password,
		}
		httpClient = tp.Client()
	}

	client, err := jira.NewClient(httpClient, params.Server)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot create Jira client for %s", params.Server)
	}

	log := params.Logger
	if log == nil {
		log = logger.NewNoopLogger()
	}

	return &Jira{
		client: client,
		logger: log,
	}, nil
}

// Comments returns all comments of an issue.
func (j *Jira) Comments(ctx context.Context, issueID string) ([]Comment, error) {
	var page jira.Comments
	if _, err := j.do(ctx, http.MethodGet, endpoint("issue", issueID, "comment"), nil, &page); err != nil {
		return nil, err
	}

	comments := make([]Comment, 0, len(page.Comments))
	for _, c := range page.Comments {
		if c != nil {
			comments = append(comments, convertComment(c))
		}
	}
	return comments, nil
}

// AddComment adds a comment to an issue.
func (j *Jira) AddComment(ctx context.Context, issueID, body string, visibility *Visibility) (*Comment, error) {
	var created jira.Comment
	payload := commentPayload{Body: body, Visibility: visibility}
	if _, err := j.do(ctx, http.MethodPost, endpoint("issue", issueID, "comment"), payload, &created); err != nil {
		return nil, err
	}

	comment := convertComment(&created)
	return &comment, nil
}

// Comment returns one comment of an issue.
func (j *Jira) Comment(ctx context.Context, issueID, commentID string) (*Comment, error) {
	var wire jira.Comment
	if _, err := j.do(ctx, http.MethodGet, endpoint("issue", issueID, "comment", commentID), nil, &wire); err != nil {
		return nil, err
	}

	comment := convertComment(&wire)
	return &comment, nil
}

// UpdateComment replaces the body and visibility of a comment.
func (j *Jira) UpdateComment(ctx context.Context, issueID, commentID, body string, visibility *Visibility) error {
	payload := commentPayload{Body: body, Visibility: visibility}
	_, err := j.do(ctx, http.MethodPut, endpoint("issue", issueID, "comment", commentID), payload, nil)
	return err
}

// Issue returns an issue with all its fields.
func (j *Jira) Issue(ctx context.Context, issueID string) (*Issue, error) {
	j.logger.Logf("GET %s", endpoint("issue", issueID))
	issue, resp, err := j.client.Issue.GetWithContext(ctx, issueID, nil)
	if err != nil {
		return nil, handleJiraError(err, resp)
	}

	converted := convertIssue(issue)
	return &converted, nil
}

// UpdateIssue sets the given fields on an issue.
func (j *Jira) UpdateIssue(ctx context.Context, issueID string, fields Fields) error {
	j.logger.Logf("PUT %s", endpoint("issue", issueID))
	data := map[string]interface{}{
		"fields": map[string]interface{}(fields),
	}
	resp, err := j.client.Issue.UpdateIssueWithContext(ctx, issueID, data)
	if err != nil {
		return handleJiraError(err, resp)
	}
	return nil
}

// CreateIssue creates an issue and fetches it back as stored by the tracker.
func (j *Jira) CreateIssue(ctx context.Context, fields Fields) (*Issue, error) {
	var created struct {
		ID  string `json:"id"`
		Key string `json:"key"`
	}
	payload := map[string]interface{}{
		"fields": normalizeCreateFields(fields),
	}
	if _, err := j.do(ctx, http.MethodPost, endpoint("issue"), payload, &created); err != nil {
		return nil, err
	}

	ref := created.Key
	if ref == "" {
		ref = created.ID
	}
	return j.Issue(ctx, ref)
}

// AssignIssue assigns an issue to a user.
func (j *Jira) AssignIssue(ctx context.Context, issueID, user string) error {
	j.logger.Logf("PUT %s", endpoint("issue", issueID, "assignee"))
	resp, err := j.client.Issue.UpdateAssigneeWithContext(ctx, issueID, &jira.User{Name: user})
	if err != nil {
		return handleJiraError(err, resp)
	}
	return nil
}

// TransitionIssue moves an issue to the given status, matching transitions by
// name, target status name or id.
func (j *Jira) TransitionIssue(ctx context.Context, issueID, status string) error {
	j.logger.Logf("GET %s", endpoint("issue", issueID, "transitions"))
	transitions, resp, err := j.client.Issue.GetTransitionsWithContext(ctx, issueID)
	if err != nil {
		return handleJiraError(err, resp)
	}

	transitionID := ""
	for _, t := range transitions {
		if t.ID == status || strings.EqualFold(t.Name, status) || strings.EqualFold(t.To.Name, status) {
			transitionID = t.ID
			break
		}
	}
	if transitionID == "" {
		return errors.WithHint(fmt.Errorf("%w: %s on %s", ErrTransitionNotFound, status, issueID),
			"only statuses reachable from the current status are accepted")
	}

	j.logger.Logf("POST %s (transition %s)", endpoint("issue", issueID, "transitions"), transitionID)
	resp, err = j.client.Issue.DoTransitionWithContext(ctx, issueID, transitionID)
	if err != nil {
		return handleJiraError(err, resp)
	}
	return nil
}

// SearchIssues returns the issues matching a JQL query.
func (j *Jira) SearchIssues(ctx context.Context, jql string, maxResults int) ([]Issue, error) {
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}

	j.logger.Logf("GET %s jql=%s", endpoint("search"), jql)
	found, resp, err := j.client.Issue.SearchWithContext(ctx, jql, &jira.SearchOptions{MaxResults: maxResults})
	if err != nil {
		return nil, handleJiraError(err, resp)
	}

	issues := make([]Issue, 0, len(found))
	for i := range found {
		issues = append(issues, convertIssue(&found[i]))
	}
	return issues, nil
}

// AddRemoteLink adds a remote link to an issue and returns its id.
func (j *Jira) AddRemoteLink(ctx context.Context, issueID string, object RemoteLinkObject) (string, error) {
	j.logger.Logf("POST %s", endpoint("issue", issueID, "remotelink"))
	created, resp, err := j.client.Issue.AddRemoteLinkWithContext(ctx, issueID, remoteLinkRequest(object))
	if err != nil {
		return "", handleJiraError(err, resp)
	}
	return strconv.Itoa(created.ID), nil
}

// RemoteLink returns one remote link of an issue.
func (j *Jira) RemoteLink(ctx context.Context, issueID, linkID string) (*RemoteLink, error) {
	var wire jira.RemoteLink
	if _, err := j.do(ctx, http.MethodGet, endpoint("issue", issueID, "remotelink", linkID), nil, &wire); err != nil {
		return nil, err
	}

	link := convertRemoteLink(&wire)
	return &link, nil
}

// RemoteLinks returns all remote links of an issue.
func (j *Jira) RemoteLinks(ctx context.Context, issueID string) ([]RemoteLink, error) {
	j.logger.Logf("GET %s", endpoint("issue", issueID, "remotelink"))
	found, resp, err := j.client.Issue.GetRemoteLinksWithContext(ctx, issueID)
	if err != nil {
		return nil, handleJiraError(err, resp)
	}

	links := make([]RemoteLink, 0, len(*found))
	for i := range *found {
		links = append(links, convertRemoteLink(&(*found)[i]))
	}
	return links, nil
}

// DeleteRemoteLink deletes a remote link of an issue.
func (j *Jira) DeleteRemoteLink(ctx context.Context, issueID, linkID string) error {
	_, err := j.do(ctx, http.MethodDelete, endpoint("issue", issueID, "remotelink", linkID), nil, nil)
	return err
}

// CreateIssueLink links two issues and returns the link id. The type may be
// a link type name or one of its phrases; an inward phrase swaps the issues.
func (j *Jira) CreateIssueLink(ctx context.Context, request IssueLinkRequest) (string, error) {
	request, err := j.resolveLinkType(ctx, request)
	if err != nil {
		return "", err
	}

	j.logger.Logf("POST %s", endpoint("issueLink"))
	resp, err := j.client.Issue.AddLinkWithContext(ctx, issueLinkRequest(request))
	if err != nil {
		return "", handleJiraError(err, resp)
	}

	if id := linkIDFromLocation(resp); id != "" {
		return id, nil
	}
	return j.findIssueLink(ctx, request)
}

// IssueLink returns an issue link by id.
func (j *Jira) IssueLink(ctx context.Context, linkID string) (*IssueLink, error) {
	var wire jira.IssueLink
	if _, err := j.do(ctx, http.MethodGet, endpoint("issueLink", linkID), nil, &wire); err != nil {
		return nil, err
	}

	link := convertIssueLink(&wire)
	return &link, nil
}

// DeleteIssueLink deletes an issue link by id.
func (j *Jira) DeleteIssueLink(ctx context.Context, linkID string) error {
	j.logger.Logf("DELETE %s", endpoint("issueLink", linkID))
	resp, err := j.client.Issue.DeleteLinkWithContext(ctx, url.PathEscape(linkID))
	if err != nil {
		return handleJiraError(err, resp)
	}
	return nil
}

// resolveLinkType maps a link type phrase onto its type name.
func (j *Jira) resolveLinkType(ctx context.Context, request IssueLinkRequest) (IssueLinkRequest, error) {
	var list linkTypeList
	if _, err := j.do(ctx, http.MethodGet, endpoint("issueLinkType"), nil, &list); err != nil {
		return request, err
	}

	for _, lt := range list.IssueLinkTypes {
		if strings.EqualFold(lt.Name, request.Type) {
			request.Type = lt.Name
			return request, nil
		}
	}
	for _, lt := range list.IssueLinkTypes {
		switch {
		case strings.EqualFold(lt.Outward, request.Type):
			request.Type = lt.Name
			return request, nil
		case strings.EqualFold(lt.Inward, request.Type):
			request.Type = lt.Name
			request.Inward, request.Outward = request.Outward, request.Inward
			return request, nil
		}
	}

	// Unknown types are left for the server to reject.
	return request, nil
}

// findIssueLink looks up the id of a freshly created link on its outward issue.
func (j *Jira) findIssueLink(ctx context.Context, request IssueLinkRequest) (string, error) {
	issue, err := j.Issue(ctx, request.Outward)
	if err != nil {
		return "", err
	}

	id := ""
	for _, l := range issue.Links {
		if l.Type.Name != request.Type {
			continue
		}
		if l.Inward.Is(request.Inward) || l.Outward.Is(request.Inward) {
			id = l.ID
		}
	}
	if id == "" {
		return "", fmt.Errorf("%w: %s -> %s", ErrLinkIDUnknown, request.Outward, request.Inward)
	}
	return id, nil
}

// do sends a request on the raw REST API and decodes the response into v when not nil.
func (j *Jira) do(ctx context.Context, method, apiEndpoint string, body, v interface{}) (*jira.Response, error) {
	j.logger.Logf("%s %s", method, apiEndpoint)

	req, err := j.client.NewRequestWithContext(ctx, method, apiEndpoint, body)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot build request %s %s", method, apiEndpoint)
	}

	resp, err := j.client.Do(req, v)
	if err != nil {
		if resp != nil {
			err = jira.NewJiraError(resp, err)
		}
		return resp, handleJiraError(err, resp)
	}
	return resp, nil
}

// handleJiraError maps Jira HTTP failures onto tracker errors.
func handleJiraError(err error, resp *jira.Response) error {
	if resp != nil && resp.Response != nil {
		switch resp.StatusCode {
		case http.StatusNotFound:
			return errors.WithHint(fmt.Errorf("%w: %w", ErrNotFound, err),
				"check the issue, comment or link id")
		case http.StatusUnauthorized:
			return errors.WithHint(fmt.Errorf("%w: %w", ErrUnauthorized, err),
				"check --user and --password, or JIRA_USER and JIRA_PASSWORD")
		case http.StatusForbidden:
			return errors.WithHint(fmt.Errorf("%w: %w", ErrForbidden, err),
				"the user lacks the permission for this operation")
		}
	}
	return errors.Wrap(err, "tracker request failed")
}

// endpoint builds a REST API v2 path from escaped segments.
func endpoint(segments ...string) string {
	escaped := make([]string, 0, len(segments))
	for _, s := range segments {
		escaped = append(escaped, url.PathEscape(s))
	}
	return apiPrefix + strings.Join(escaped, "/")
}

// linkIDFromLocation extracts the link id from the Location header of a created link.
func linkIDFromLocation(resp *jira.Response) string {
	if resp == nil || resp.Response == nil {
		return ""
	}
	location := resp.Header.Get("Location")
	if location == "" {
		return ""
	}
	u, err := url.Parse(location)
	if err != nil {
		return ""
	}
	id := path.Base(u.Path)
	if _, err := strconv.Atoi(id); err != nil {
		return ""
	}
	return id
}

// normalizeCreateFields expands bare project and issue type values into the
// references the create endpoint expects.
func normalizeCreateFields(fields Fields) map[string]interface{} {
	normalized := make(map[string]interface{}, len(fields))
	for k, v := range fields {
		normalized[k] = v
	}
	if project, ok := fields["project"].(string); ok {
		normalized["project"] = map[string]string{"key": project}
	}
	if issueType, ok := fields["issuetype"].(string); ok {
		normalized["issuetype"] = map[string]string{"name": issueType}
	}
	return normalized
}

func convertIssue(issue *jira.Issue) Issue {
	converted := Issue{
		ID:  issue.ID,
		Key: issue.Key,
	}

	f := issue.Fields
	if f == nil {
		return converted
	}

	converted.Project = f.Project.Name
	converted.Summary = f.Summary
	converted.Type = f.Type.Name
	if f.Assignee != nil {
		converted.Assignee = userName(f.Assignee.Name, f.Assignee.DisplayName)
	}
	if f.Status != nil {
		converted.Status = f.Status.Name
	}
	converted.Labels = append([]string(nil), f.Labels...)
	for _, l := range f.IssueLinks {
		if l != nil {
			converted.Links = append(converted.Links, convertIssueLink(l))
		}
	}
	if len(f.Unknowns) > 0 {
		converted.Fields = make(map[string]any, len(f.Unknowns))
		for k, v := range f.Unknowns {
			converted.Fields[k] = v
		}
	}
	return converted
}

func convertIssueLink(link *jira.IssueLink) IssueLink {
	return IssueLink{
		ID: link.ID,
		Type: LinkType{
			Name:    link.Type.Name,
			Inward:  link.Type.Inward,
			Outward: link.Type.Outward,
		},
		Inward:  convertLinkedIssue(link.InwardIssue),
		Outward: convertLinkedIssue(link.OutwardIssue),
	}
}

func convertLinkedIssue(issue *jira.Issue) *LinkedIssue {
	if issue == nil {
		return nil
	}

	linked := &LinkedIssue{
		ID:  issue.ID,
		Key: issue.Key,
	}
	if issue.Fields != nil {
		linked.Summary = issue.Fields.Summary
		if issue.Fields.Status != nil {
			linked.Status = issue.Fields.Status.Name
		}
	}
	return linked
}

// userName prefers the login name, which Jira Cloud no longer exposes.
func userName(name, displayName string) string {
	if name != "" {
		return name
	}
	return displayName
}
