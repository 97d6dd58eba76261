package tracker

import (
	"strconv"

	"github.com/andygrunwald/go-jira"
)

// commentPayload is the body of a comment create or update. The go-jira
// comment type always sends a visibility object, and its update drops it.
type commentPayload struct {
	Body       string      `json:"body"`
	Visibility *Visibility `json:"visibility,omitempty"`
}

// linkTypeList is the issueLinkType listing, wrapped in an object by the server.
type linkTypeList struct {
	IssueLinkTypes []jira.IssueLinkType `json:"issueLinkTypes"`
}

func convertComment(c *jira.Comment) Comment {
	comment := Comment{
		ID:      c.ID,
		Updated: c.Updated,
		Author:  userName(c.Author.Name, c.Author.DisplayName),
		Body:    c.Body,
	}
	if c.Visibility.Type != "" {
		comment.Visibility = &Visibility{Type: c.Visibility.Type, Value: c.Visibility.Value}
	}
	return comment
}

func convertRemoteLink(r *jira.RemoteLink) RemoteLink {
	link := RemoteLink{ID: strconv.Itoa(r.ID)}
	if r.Object == nil {
		return link
	}
	link.URL = r.Object.URL
	link.Title = r.Object.Title
	if r.Object.Icon != nil {
		link.Icon = r.Object.Icon.Url16x16
	}
	return link
}

func remoteLinkRequest(object RemoteLinkObject) *jira.RemoteLink {
	link := &jira.RemoteLink{
		Object: &jira.RemoteLinkObject{
			URL:   object.URL,
			Title: object.Title,
		},
	}
	if object.Icon != "" {
		link.Object.Icon = &jira.RemoteLinkIcon{Url16x16: object.Icon}
	}
	return link
}

func issueLinkRequest(request IssueLinkRequest) *jira.IssueLink {
	link := &jira.IssueLink{
		Type:         jira.IssueLinkType{Name: request.Type},
		InwardIssue:  &jira.Issue{Key: request.Inward},
		OutwardIssue: &jira.Issue{Key: request.Outward},
	}
	if request.Comment != "" {
		link.Comment = &jira.Comment{Body: request.Comment}
	}
	return link
}
