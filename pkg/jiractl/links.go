package jiractl

import (
	"context"
	"net/url"

	"github.com/cockroachdb/errors"
	"github.com/lerenn/jiractl/pkg/jiractl/consts"
	"github.com/lerenn/jiractl/pkg/output"
	"github.com/lerenn/jiractl/pkg/tracker"
)

// ListLinksParams contains parameters for ListLinks.
type ListLinksParams struct {
	Issue string
}

// AddLinkParams contains parameters for AddLink. A "link" type adds a remote
// link to the Target URL, any other type links the issue to the Target issue.
type AddLinkParams struct {
	Issue  string
	Type   string
	Target string
	Text   string
	Icon   string
}

// LinkParams contains parameters for ShowLink and DropLink. ID is a displayed
// link id, prefixed by its kind.
type LinkParams struct {
	Issue string
	ID    string
}

// ListLinks lists the issue links then the remote links of an issue, each in
// the order returned by the tracker.
func (j *realJiraCtl) ListLinks(ctx context.Context, params ListLinksParams) (output.Result, error) {
	issue, err := j.deps.Tracker.Issue(ctx, params.Issue)
	if err != nil {
		return output.Result{}, errors.Wrap(err, consts.ListLinks)
	}

	remoteLinks, err := j.deps.Tracker.RemoteLinks(ctx, params.Issue)
	if err != nil {
		return output.Result{}, errors.Wrap(err, consts.ListLinks)
	}

	rows := make([][]string, 0, len(issue.Links)+len(remoteLinks))
	for _, l := range issue.Links {
		rows = append(rows, FormatIssueLink(l, params.Issue))
	}
	for _, l := range remoteLinks {
		rows = append(rows, FormatRemoteLink(l))
	}
	return output.List(LinkColumns, rows), nil
}

// AddLink links an issue to a URL or to another issue and shows the new link.
func (j *realJiraCtl) AddLink(ctx context.Context, params AddLinkParams) (output.Result, error) {
	if params.Type == remoteLinkType {
		return j.addRemoteLink(ctx, params)
	}

	id, err := j.deps.Tracker.CreateIssueLink(ctx, tracker.IssueLinkRequest{
		Type:    params.Type,
		Inward:  params.Target,
		Outward: params.Issue,
		Comment: params.Text,
	})
	if err != nil {
		return output.Result{}, errors.Wrap(err, consts.AddLink)
	}

	link, err := j.deps.Tracker.IssueLink(ctx, id)
	if err != nil {
		return output.Result{}, errors.Wrap(err, consts.AddLink)
	}
	return output.One(LinkColumns, FormatIssueLink(*link, params.Issue)), nil
}

func (j *realJiraCtl) addRemoteLink(ctx context.Context, params AddLinkParams) (output.Result, error) {
	object := RemoteLinkObject(params.Target, params.Text, params.Icon)
	j.logf("Adding remote link %q to %s", object.URL, params.Issue)

	id, err := j.deps.Tracker.AddRemoteLink(ctx, params.Issue, object)
	if err != nil {
		return output.Result{}, errors.Wrap(err, consts.AddLink)
	}

	link, err := j.deps.Tracker.RemoteLink(ctx, params.Issue, id)
	if err != nil {
		return output.Result{}, errors.Wrap(err, consts.AddLink)
	}
	return output.One(LinkColumns, FormatRemoteLink(*link)), nil
}

// ShowLink shows one link of an issue.
func (j *realJiraCtl) ShowLink(ctx context.Context, params LinkParams) (output.Result, error) {
	id, err := ParseLinkID(params.ID)
	if err != nil {
		return output.Result{}, err
	}
	j.logf("Resolved link %s as %s link %s", params.ID, kindName(id.Kind), id.ID)

	if id.Kind == KindRemote {
		link, err := j.deps.Tracker.RemoteLink(ctx, params.Issue, id.ID)
		if err != nil {
			return output.Result{}, errors.Wrap(err, consts.ShowLink)
		}
		return output.One(LinkColumns, FormatRemoteLink(*link)), nil
	}

	link, err := j.deps.Tracker.IssueLink(ctx, id.ID)
	if err != nil {
		return output.Result{}, errors.Wrap(err, consts.ShowLink)
	}
	return output.One(LinkColumns, FormatIssueLink(*link, params.Issue)), nil
}

// DropLink deletes one link of an issue. A remote link must belong to the issue.
func (j *realJiraCtl) DropLink(ctx context.Context, params LinkParams) error {
	id, err := ParseLinkID(params.ID)
	if err != nil {
		return err
	}
	j.logf("Resolved link %s as %s link %s", params.ID, kindName(id.Kind), id.ID)

	if id.Kind == KindRemote {
		if _, err := j.deps.Tracker.RemoteLink(ctx, params.Issue, id.ID); err != nil {
			return errors.Wrap(err, consts.DropLink)
		}
		return errors.Wrap(j.deps.Tracker.DeleteRemoteLink(ctx, params.Issue, id.ID), consts.DropLink)
	}

	return errors.Wrap(j.deps.Tracker.DeleteIssueLink(ctx, id.ID), consts.DropLink)
}

// RemoteLinkObject builds a remote link to target. The title defaults to the
// target without query and fragment, the icon to the favicon of the target host.
func RemoteLinkObject(target, title, icon string) tracker.RemoteLinkObject {
	object := tracker.RemoteLinkObject{
		URL:   target,
		Title: title,
		Icon:  icon,
	}

	u, err := url.Parse(target)
	if err != nil {
		if object.Title == "" {
			object.Title = target
		}
		return object
	}

	if object.Title == "" {
		stripped := *u
		stripped.RawQuery = ""
		stripped.ForceQuery = false
		stripped.Fragment = ""
		stripped.RawFragment = ""
		object.Title = stripped.String()
	}

	if object.Icon == "" && u.IsAbs() && u.Host != "" {
		object.Icon = (&url.URL{Scheme: u.Scheme, Host: u.Host, Path: "/favicon.ico"}).String()
	}

	return object
}

func kindName(k LinkKind) string {
	if k == KindRemote {
		return "remote"
	}
	return "issue"
}
