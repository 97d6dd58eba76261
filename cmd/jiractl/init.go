package main

import (
	"github.com/cockroachdb/errors"
	"github.com/lerenn/jiractl/cmd/jiractl/internal/cli"
	"github.com/lerenn/jiractl/pkg/jiractl/consts"
	"github.com/lerenn/jiractl/pkg/logger"
	"github.com/spf13/cobra"
)

func (a *app) initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init [--server <url>] [--user <name>]",
		Short: "Initialize the jiractl configuration",
		Long: `Write the configuration file with interactive prompts. The server and
user are not prompted for when given as flags, and the current values are
offered as defaults. An unreadable configuration is replaced.

Examples:
  jiractl init
  jiractl init --server https://jira.example.com --user alice`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			manager := cli.NewConfigManager(a.opts)
			cfg, err := manager.GetConfigWithFallback()
			if err != nil {
				cfg = manager.DefaultConfig()
			}

			if cfg.Server, err = a.valueOrPrompt(a.opts.Server, "Jira server URL", cfg.Server); err != nil {
				return errors.Wrap(err, consts.Init)
			}
			if cfg.User, err = a.valueOrPrompt(a.opts.User, "Jira user", cfg.User); err != nil {
				return errors.Wrap(err, consts.Init)
			}
			if a.opts.Password != "" {
				cfg.Password = a.opts.Password
			}

			if err := manager.SaveConfig(cfg); err != nil {
				return errors.Wrap(err, consts.Init)
			}
			logger.NewDefaultLogger(cmd.ErrOrStderr()).Logf("Configuration written to %s", manager.GetConfigPath())
			done(cmd)
			return nil
		},
	}
}

func (a *app) valueOrPrompt(value, label, current string) (string, error) {
	if value != "" {
		return value, nil
	}
	return a.prompter.PromptForValue(label, current)
}
