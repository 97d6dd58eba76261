package main

import (
	"github.com/lerenn/jiractl/pkg/jiractl"
	"github.com/spf13/cobra"
)

func (a *app) listCommentsCmd() *cobra.Command {
	var (
		params jiractl.ListCommentsParams
		d      display
	)

	cmd := &cobra.Command{
		Use:   "list-comments --issue <issue>",
		Short: "List the comments of an issue",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			j, err := a.factory(a.opts, a.prompter)
			if err != nil {
				return err
			}
			result, err := j.ListComments(cmd.Context(), params)
			if err != nil {
				return err
			}
			return a.render(cmd, &d, result)
		},
	}

	cmd.Flags().StringVar(&params.Issue, "issue", "", "Issue id or key")
	addDisplayFlags(cmd, &d)
	markRequired(cmd, "issue")
	return cmd
}

func (a *app) addCommentCmd() *cobra.Command {
	var (
		params     jiractl.AddCommentParams
		visibility jiractl.VisibilityFlag
		d          display
	)

	cmd := &cobra.Command{
		Use:   "add-comment --issue <issue> --text <text> [--visibility <type:value>]",
		Short: "Add a comment to an issue",
		Long: `Add a comment to an issue. The text may use <br> as a line break.

Examples:
  jiractl add-comment --issue PRJ-1 --text "First line<br>Second line"
  jiractl add-comment --issue PRJ-1 --text "Internal" --visibility role:Developers`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			j, err := a.factory(a.opts, a.prompter)
			if err != nil {
				return err
			}
			params.Visibility = visibility.Visibility
			result, err := j.AddComment(cmd.Context(), params)
			if err != nil {
				return err
			}
			return a.render(cmd, &d, result)
		},
	}

	cmd.Flags().StringVar(&params.Issue, "issue", "", "Issue id or key")
	cmd.Flags().StringVar(&params.Text, "text", "", "Comment text")
	cmd.Flags().Var(&visibility, "visibility", "Restrict the comment, e.g. role:Developers or group:jira-users")
	addDisplayFlags(cmd, &d)
	markRequired(cmd, "issue", "text")
	return cmd
}

func (a *app) editCommentCmd() *cobra.Command {
	var (
		params     jiractl.EditCommentParams
		visibility jiractl.VisibilityFlag
	)

	cmd := &cobra.Command{
		Use:   "edit-comment --issue <issue> --id <id> --text <text> [--visibility <type:value>]",
		Short: "Replace the text of a comment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			j, err := a.factory(a.opts, a.prompter)
			if err != nil {
				return err
			}
			params.Visibility = visibility.Visibility
			if err := j.EditComment(cmd.Context(), params); err != nil {
				return err
			}
			done(cmd)
			return nil
		},
	}

	cmd.Flags().StringVar(&params.Issue, "issue", "", "Issue id or key")
	cmd.Flags().StringVar(&params.ID, "id", "", "Comment id")
	cmd.Flags().StringVar(&params.Text, "text", "", "New comment text")
	cmd.Flags().Var(&visibility, "visibility", "Restrict the comment, e.g. role:Developers or group:jira-users")
	markRequired(cmd, "issue", "id", "text")
	return cmd
}

func (a *app) showCommentCmd() *cobra.Command {
	var (
		params jiractl.ShowCommentParams
		d      display
	)

	cmd := &cobra.Command{
		Use:   "show-comment --issue <issue> --id <id>",
		Short: "Show a comment of an issue",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			j, err := a.factory(a.opts, a.prompter)
			if err != nil {
				return err
			}
			result, err := j.ShowComment(cmd.Context(), params)
			if err != nil {
				return err
			}
			return a.render(cmd, &d, result)
		},
	}

	cmd.Flags().StringVar(&params.Issue, "issue", "", "Issue id or key")
	cmd.Flags().StringVar(&params.ID, "id", "", "Comment id")
	addDisplayFlags(cmd, &d)
	markRequired(cmd, "issue", "id")
	return cmd
}
