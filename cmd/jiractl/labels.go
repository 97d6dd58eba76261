package main

import (
	"github.com/lerenn/jiractl/pkg/jiractl"
	"github.com/spf13/cobra"
)

func (a *app) listLabelsCmd() *cobra.Command {
	var (
		params jiractl.ListLabelsParams
		d      display
	)

	cmd := &cobra.Command{
		Use:   "list-labels --issue <issue>",
		Short: "List the labels of an issue",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			j, err := a.factory(a.opts, a.prompter)
			if err != nil {
				return err
			}
			result, err := j.ListLabels(cmd.Context(), params)
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

func (a *app) addLabelCmd() *cobra.Command {
	var params jiractl.LabelsParams

	cmd := &cobra.Command{
		Use:   "add-label --issue <issue> --labels <label>...",
		Short: "Add labels to an issue",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			j, err := a.factory(a.opts, a.prompter)
			if err != nil {
				return err
			}
			if err := j.AddLabels(cmd.Context(), params); err != nil {
				return err
			}
			done(cmd)
			return nil
		},
	}

	cmd.Flags().StringVar(&params.Issue, "issue", "", "Issue id or key")
	cmd.Flags().StringSliceVar(&params.Labels, "labels", nil, "Labels to add, space or comma separated")
	markRequired(cmd, "issue", "labels")
	return cmd
}

func (a *app) dropLabelCmd() *cobra.Command {
	var params jiractl.LabelsParams

	cmd := &cobra.Command{
		Use:   "drop-label --issue <issue> --labels <label>...",
		Short: "Remove labels from an issue",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			j, err := a.factory(a.opts, a.prompter)
			if err != nil {
				return err
			}
			if err := j.DropLabels(cmd.Context(), params); err != nil {
				return err
			}
			done(cmd)
			return nil
		},
	}

	cmd.Flags().StringVar(&params.Issue, "issue", "", "Issue id or key")
	cmd.Flags().StringSliceVar(&params.Labels, "labels", nil, "Labels to remove, space or comma separated")
	markRequired(cmd, "issue", "labels")
	return cmd
}
