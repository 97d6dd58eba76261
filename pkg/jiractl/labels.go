package jiractl

import (
	"context"
	"slices"

	"github.com/cockroachdb/errors"
	"github.com/lerenn/jiractl/pkg/jiractl/consts"
	"github.com/lerenn/jiractl/pkg/output"
	"github.com/lerenn/jiractl/pkg/tracker"
)

// ListLabelsParams contains parameters for ListLabels.
type ListLabelsParams struct {
	Issue string
}

// LabelsParams contains parameters for AddLabels and DropLabels.
type LabelsParams struct {
	Issue  string
	Labels []string
}

// ListLabels lists the labels of an issue in stored order.
func (j *realJiraCtl) ListLabels(ctx context.Context, params ListLabelsParams) (output.Result, error) {
	issue, err := j.deps.Tracker.Issue(ctx, params.Issue)
	if err != nil {
		return output.Result{}, errors.Wrap(err, consts.ListLabels)
	}

	rows := make([][]string, 0, len(issue.Labels))
	for _, l := range issue.Labels {
		rows = append(rows, FormatLabel(l))
	}
	return output.List(LabelColumns, rows), nil
}

// AddLabels adds the missing labels to an issue and stores the sorted union.
// No update is sent when every label is already present.
func (j *realJiraCtl) AddLabels(ctx context.Context, params LabelsParams) error {
	issue, err := j.deps.Tracker.Issue(ctx, params.Issue)
	if err != nil {
		return errors.Wrap(err, consts.AddLabel)
	}

	labels := slices.Clone(issue.Labels)
	var added []string
	for _, l := range params.Labels {
		if !slices.Contains(labels, l) {
			labels = append(labels, l)
			added = append(added, l)
		}
	}

	if len(added) == 0 {
		j.logf("Labels %v already present on %s", params.Labels, issue.Key)
		return nil
	}

	j.logf("Adding labels %v to %s", added, issue.Key)
	return errors.Wrap(j.updateLabels(ctx, issue, labels), consts.AddLabel)
}

// DropLabels removes labels from an issue and stores the sorted difference.
// No update is sent when none of the labels is present.
func (j *realJiraCtl) DropLabels(ctx context.Context, params LabelsParams) error {
	issue, err := j.deps.Tracker.Issue(ctx, params.Issue)
	if err != nil {
		return errors.Wrap(err, consts.DropLabel)
	}

	labels := make([]string, 0, len(issue.Labels))
	var removed []string
	for _, l := range issue.Labels {
		if slices.Contains(params.Labels, l) {
			removed = append(removed, l)
			continue
		}
		labels = append(labels, l)
	}

	if len(removed) == 0 {
		j.logf("Labels %v not present on %s", params.Labels, issue.Key)
		return nil
	}

	j.logf("Dropping labels %v from %s", removed, issue.Key)
	return errors.Wrap(j.updateLabels(ctx, issue, labels), consts.DropLabel)
}

func (j *realJiraCtl) updateLabels(ctx context.Context, issue *tracker.Issue, labels []string) error {
	slices.Sort(labels)
	return j.deps.Tracker.UpdateIssue(ctx, issue.Key, tracker.Fields{"labels": labels})
}
