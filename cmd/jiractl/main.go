// Package main provides the command-line interface for jiractl.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
	"github.com/lerenn/jiractl/cmd/jiractl/internal/cli"
	"github.com/lerenn/jiractl/pkg/output"
	"github.com/lerenn/jiractl/pkg/prompt"
	"github.com/spf13/cobra"
)

// app carries the global options and the collaborators of every command.
type app struct {
	opts     cli.Options
	factory  cli.Factory
	prompter prompt.Prompter
}

// display holds the display flags of a command.
type display struct {
	format  output.Format
	columns []string
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, cli.NewJiraCtl, prompt.NewPrompt()))
}

func run(args []string, stdout, stderr io.Writer, factory cli.Factory, prompter prompt.Prompter) int {
	rootCmd := newRootCmd(factory, prompter)
	rootCmd.SetArgs(foldListArgs(rootCmd, args))
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		printError(stderr, err)
		return 1
	}
	return 0
}

func newRootCmd(factory cli.Factory, prompter prompt.Prompter) *cobra.Command {
	a := &app{factory: factory, prompter: prompter}

	rootCmd := &cobra.Command{
		Use:   "jiractl",
		Short: "Jira from the command line",
		Long: `A command-line client for Jira: comments, issues, labels and links.

Credentials are read from the flags, then from JIRA_SERVER, JIRA_USER and
JIRA_PASSWORD, then from the configuration file written by 'jiractl init'.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&a.opts.Server, "server", "s", "", "Jira server URL")
	flags.StringVarP(&a.opts.User, "user", "u", "", "Jira user name")
	flags.StringVarP(&a.opts.Password, "password", "p", "", "Jira password or API token")
	flags.StringVar(&a.opts.ConfigPath, "config", "", "Configuration file (default ~/.jiractl/config.yaml)")
	flags.BoolVarP(&a.opts.Verbose, "verbose", "v", false, "Log every REST call to stderr")

	rootCmd.AddCommand(
		a.listCommentsCmd(), a.addCommentCmd(), a.editCommentCmd(), a.showCommentCmd(),
		a.createIssueCmd(), a.editIssueCmd(), a.showIssueCmd(), a.listIssuesCmd(), a.searchIssuesCmd(),
		a.listLabelsCmd(), a.addLabelCmd(), a.dropLabelCmd(),
		a.listLinksCmd(), a.addLinkCmd(), a.showLinkCmd(), a.dropLinkCmd(),
		a.initCmd(),
	)

	return rootCmd
}

// addDisplayFlags registers --format and --column on a display command.
func addDisplayFlags(cmd *cobra.Command, d *display) {
	cmd.Flags().VarP(&d.format, "format", "f", "Output format: "+strings.Join(output.Formats(), ", "))
	cmd.Flags().StringSliceVarP(&d.columns, "column", "c", nil, "Column to show, repeatable")
}

// render writes the result in the flag format, else the configured one.
func (a *app) render(cmd *cobra.Command, d *display, result output.Result) error {
	format := d.format
	if format == "" {
		configured, err := cli.DisplayFormat(a.opts)
		if err != nil {
			return err
		}
		format = configured
	}
	return output.Render(cmd.OutOrStdout(), result, format, d.columns)
}

func done(cmd *cobra.Command) {
	fmt.Fprintln(cmd.OutOrStdout(), "Done.")
}

func markRequired(cmd *cobra.Command, names ...string) {
	for _, name := range names {
		if err := cmd.MarkFlagRequired(name); err != nil {
			panic(err)
		}
	}
}

func printError(w io.Writer, err error) {
	red := color.New(color.FgRed, color.Bold)
	fmt.Fprintf(w, "%s %s\n", red.Sprint("Error:"), err)
	for _, hint := range errors.GetAllHints(err) {
		fmt.Fprintf(w, "Hint: %s\n", hint)
	}
}
