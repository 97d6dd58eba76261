// Package cli provides the configuration and the JiraCtl factory of the jiractl CLI.
package cli

import (
	"io"
	"os"

	"github.com/lerenn/jiractl/pkg/config"
	"github.com/lerenn/jiractl/pkg/dependencies"
	"github.com/lerenn/jiractl/pkg/jiractl"
	"github.com/lerenn/jiractl/pkg/logger"
	"github.com/lerenn/jiractl/pkg/output"
	"github.com/lerenn/jiractl/pkg/prompt"
	"github.com/lerenn/jiractl/pkg/tracker"
)

// Options are the global flags of the CLI.
type Options struct {
	Server     string
	User       string
	Password   string
	ConfigPath string
	Verbose    bool
}

// Factory builds the JiraCtl instance used by a command. The prompter asks
// for the password when none is configured.
type Factory func(opts Options, prompter prompt.Prompter) (jiractl.JiraCtl, error)

// NewConfigManager creates the config manager for the configured path.
func NewConfigManager(opts Options) config.Manager {
	return config.NewManager(opts.ConfigPath)
}

// NewLogger creates the verbose logger writing to w when requested, a noop one otherwise.
func NewLogger(opts Options, w io.Writer) logger.Logger {
	if opts.Verbose {
		return logger.NewVerboseLogger(w)
	}
	return logger.NewNoopLogger()
}

// DisplayFormat returns the display format configured for commands that do
// not pass one.
func DisplayFormat(opts Options) (output.Format, error) {
	cfg, err := NewConfigManager(opts).GetConfigWithFallback()
	if err != nil {
		return "", err
	}
	return cfg.DisplayFormat(), nil
}

// NewJiraCtl is the default Factory: it resolves the credentials and
// connects to the Jira server.
func NewJiraCtl(opts Options, prompter prompt.Prompter) (jiractl.JiraCtl, error) {
	cfg, err := NewConfigManager(opts).GetConfigWithFallback()
	if err != nil {
		return nil, err
	}

	log := NewLogger(opts, os.Stderr)

	creds, err := ResolveCredentials(opts, os.Getenv, cfg, prompter)
	if err != nil {
		return nil, err
	}

	log.Logf("Connecting to %s as %q", creds.Server, creds.User)
	client, err := tracker.NewJira(tracker.NewJiraParams{
		Server:   creds.Server,
		User:     creds.User,
		Password: creds.Password,
		Logger:   log,
	})
	if err != nil {
		return nil, err
	}

	return jiractl.NewJiraCtl(jiractl.NewJiraCtlParams{
		Dependencies: dependencies.New().
			WithTracker(client).
			WithLogger(log),
	})
}
