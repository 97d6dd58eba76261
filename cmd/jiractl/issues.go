package main

import (
	"github.com/lerenn/jiractl/pkg/jiractl"
	"github.com/lerenn/jiractl/pkg/tracker"
	"github.com/spf13/cobra"
)

func (a *app) createIssueCmd() *cobra.Command {
	var (
		params jiractl.CreateIssueParams
		d      display
	)

	cmd := &cobra.Command{
		Use:   "create-issue --project <key> --type <type> --summary <text> --description <text>",
		Short: "Create an issue",
		Long: `Create an issue and show it as stored by Jira.

Examples:
  jiractl create-issue --project PRJ --type Bug --summary "Login fails" --description "Steps..."
  jiractl create-issue --project PRJ --type Sub-task --parent PRJ-1 --summary "Part" --description "" --labels a b`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			j, err := a.factory(a.opts, a.prompter)
			if err != nil {
				return err
			}
			params.Columns = d.columns
			result, err := j.CreateIssue(cmd.Context(), params)
			if err != nil {
				return err
			}
			return a.render(cmd, &d, result)
		},
	}

	cmd.Flags().StringVar(&params.Project, "project", "", "Project key")
	cmd.Flags().StringVar(&params.Type, "type", "", "Issue type name")
	cmd.Flags().StringVar(&params.Summary, "summary", "", "Issue summary")
	cmd.Flags().StringVar(&params.Description, "description", "", "Issue description")
	cmd.Flags().StringVar(&params.Assignee, "assignee", "", "Assignee user name")
	cmd.Flags().StringVar(&params.Parent, "parent", "", "Parent issue key")
	cmd.Flags().StringSliceVar(&params.Components, "components", nil, "Component names, space or comma separated")
	cmd.Flags().StringSliceVar(&params.Labels, "labels", nil, "Labels, space or comma separated")
	addDisplayFlags(cmd, &d)
	markRequired(cmd, "project", "type", "summary", "description")
	return cmd
}

func (a *app) editIssueCmd() *cobra.Command {
	var (
		params      jiractl.EditIssueParams
		summary     string
		description string
		fields      jiractl.CustomFieldsFlag
	)

	cmd := &cobra.Command{
		Use:   "edit-issue --id <issue> [--summary <text>] [--description <text>] [--assignee <user>] [--status <status>]",
		Short: "Update an issue",
		Long: `Update the fields of an issue, then its assignee, then its status.

Examples:
  jiractl edit-issue --id PRJ-1 --summary "New summary"
  jiractl edit-issue --id PRJ-1 --status Done --fields customfield_10001:3 customfield_10002:low`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			j, err := a.factory(a.opts, a.prompter)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("summary") {
				params.Summary = &summary
			}
			if cmd.Flags().Changed("description") {
				params.Description = &description
			}
			params.CustomFields = fields.Fields
			if err := j.EditIssue(cmd.Context(), params); err != nil {
				return err
			}
			done(cmd)
			return nil
		},
	}

	cmd.Flags().StringVar(&params.ID, "id", "", "Issue id or key")
	cmd.Flags().StringVar(&summary, "summary", "", "New summary")
	cmd.Flags().StringVar(&description, "description", "", "New description")
	cmd.Flags().StringVar(&params.Assignee, "assignee", "", "New assignee user name")
	cmd.Flags().StringVar(&params.Status, "status", "", "Target status or transition")
	cmd.Flags().Var(&fields, "fields", "Custom field key:value assignments, space separated")
	markRequired(cmd, "id")
	return cmd
}

func (a *app) showIssueCmd() *cobra.Command {
	var (
		params jiractl.ShowIssueParams
		d      display
	)

	cmd := &cobra.Command{
		Use:   "show-issue --id <issue>",
		Short: "Show an issue",
		Long: `Show an issue. Columns that are not issue columns are read from the
custom fields of the issue.

Examples:
  jiractl show-issue --id PRJ-1
  jiractl show-issue --id PRJ-1 -c key -c customfield_10001`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			j, err := a.factory(a.opts, a.prompter)
			if err != nil {
				return err
			}
			params.Columns = d.columns
			result, err := j.ShowIssue(cmd.Context(), params)
			if err != nil {
				return err
			}
			return a.render(cmd, &d, result)
		},
	}

	cmd.Flags().StringVar(&params.ID, "id", "", "Issue id or key")
	addDisplayFlags(cmd, &d)
	markRequired(cmd, "id")
	return cmd
}

func (a *app) listIssuesCmd() *cobra.Command {
	var (
		params jiractl.ListIssuesParams
		d      display
	)

	cmd := &cobra.Command{
		Use:   "list-issues --project <key> --assignee <user> --status <status>...",
		Short: "List the issues of a project assigned to a user",
		Long: `List the issues of a project assigned to a user in any of the given statuses.

Examples:
  jiractl list-issues --project PRJ --assignee alice --status NEW WORK
  jiractl list-issues --project PRJ --assignee alice --status NEW,WORK`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			j, err := a.factory(a.opts, a.prompter)
			if err != nil {
				return err
			}
			params.Columns = d.columns
			result, err := j.ListIssues(cmd.Context(), params)
			if err != nil {
				return err
			}
			return a.render(cmd, &d, result)
		},
	}

	cmd.Flags().StringVar(&params.Project, "project", "", "Project key")
	cmd.Flags().StringVar(&params.Assignee, "assignee", "", "Assignee user name")
	cmd.Flags().StringSliceVar(&params.Statuses, "status", nil, "Statuses, space or comma separated")
	cmd.Flags().IntVar(&params.MaxResults, "max-results", tracker.DefaultMaxResults, "Maximum number of issues")
	addDisplayFlags(cmd, &d)
	markRequired(cmd, "project", "assignee", "status")
	return cmd
}

func (a *app) searchIssuesCmd() *cobra.Command {
	var (
		params jiractl.SearchIssuesParams
		d      display
	)

	cmd := &cobra.Command{
		Use:   "search-issues --query <jql>",
		Short: "List the issues matching a JQL query",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			j, err := a.factory(a.opts, a.prompter)
			if err != nil {
				return err
			}
			params.Columns = d.columns
			result, err := j.SearchIssues(cmd.Context(), params)
			if err != nil {
				return err
			}
			return a.render(cmd, &d, result)
		},
	}

	cmd.Flags().StringVar(&params.Query, "query", "", "JQL query")
	cmd.Flags().IntVar(&params.MaxResults, "max-results", tracker.DefaultMaxResults, "Maximum number of issues")
	addDisplayFlags(cmd, &d)
	markRequired(cmd, "query")
	return cmd
}
