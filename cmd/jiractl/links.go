package main

import (
	"github.com/lerenn/jiractl/pkg/jiractl"
	"github.com/spf13/cobra"
)

func (a *app) listLinksCmd() *cobra.Command {
	var (
		params jiractl.ListLinksParams
		d      display
	)

	cmd := &cobra.Command{
		Use:   "list-links --issue <issue>",
		Short: "List the issue links then the remote links of an issue",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			j, err := a.factory(a.opts, a.prompter)
			if err != nil {
				return err
			}
			result, err := j.ListLinks(cmd.Context(), params)
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

func (a *app) addLinkCmd() *cobra.Command {
	var (
		params jiractl.AddLinkParams
		d      display
	)

	cmd := &cobra.Command{
		Use:   "add-link --issue <issue> --type <type> --target <issue-or-url>",
		Short: "Link an issue to another issue or to a URL",
		Long: `Link an issue to another issue, or to a URL when the type is "link".

Examples:
  jiractl add-link --issue PRJ-1 --type Blocks --target PRJ-2 --text "see PRJ-2"
  jiractl add-link --issue PRJ-1 --type link --target https://example.com/docs`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			j, err := a.factory(a.opts, a.prompter)
			if err != nil {
				return err
			}
			result, err := j.AddLink(cmd.Context(), params)
			if err != nil {
				return err
			}
			return a.render(cmd, &d, result)
		},
	}

	cmd.Flags().StringVar(&params.Issue, "issue", "", "Issue id or key")
	cmd.Flags().StringVar(&params.Type, "type", "", `Link type name or phrase, or "link" for a URL`)
	cmd.Flags().StringVar(&params.Target, "target", "", "Target issue key or URL")
	cmd.Flags().StringVar(&params.Text, "text", "", "Comment of an issue link, title of a remote link")
	cmd.Flags().StringVar(&params.Icon, "icon", "", "Icon URL of a remote link")
	addDisplayFlags(cmd, &d)
	markRequired(cmd, "issue", "type", "target")
	return cmd
}

func (a *app) showLinkCmd() *cobra.Command {
	var (
		params jiractl.LinkParams
		d      display
	)

	cmd := &cobra.Command{
		Use:   "show-link --issue <issue> --id <link-id>",
		Short: "Show a link of an issue",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			j, err := a.factory(a.opts, a.prompter)
			if err != nil {
				return err
			}
			result, err := j.ShowLink(cmd.Context(), params)
			if err != nil {
				return err
			}
			return a.render(cmd, &d, result)
		},
	}

	cmd.Flags().StringVar(&params.Issue, "issue", "", "Issue id or key")
	cmd.Flags().StringVar(&params.ID, "id", "", "Link id as listed, e.g. I20 or L100")
	addDisplayFlags(cmd, &d)
	markRequired(cmd, "issue", "id")
	return cmd
}

func (a *app) dropLinkCmd() *cobra.Command {
	var params jiractl.LinkParams

	cmd := &cobra.Command{
		Use:   "drop-link --issue <issue> --id <link-id>",
		Short: "Delete a link of an issue",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			j, err := a.factory(a.opts, a.prompter)
			if err != nil {
				return err
			}
			if err := j.DropLink(cmd.Context(), params); err != nil {
				return err
			}
			done(cmd)
			return nil
		},
	}

	cmd.Flags().StringVar(&params.Issue, "issue", "", "Issue id or key")
	cmd.Flags().StringVar(&params.ID, "id", "", "Link id as listed, e.g. I20 or L100")
	markRequired(cmd, "issue", "id")
	return cmd
}
