package cli

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/lerenn/jiractl/pkg/config"
	"github.com/lerenn/jiractl/pkg/prompt"
)

// Environment variables holding the credentials.
const (
	EnvServer   = "JIRA_SERVER"
	EnvUser     = "JIRA_USER"
	EnvPassword = "JIRA_PASSWORD"
)

// Credentials are the resolved connection settings of a command.
type Credentials struct {
	Server   string
	User     string
	Password string
}

// ResolveCredentials picks each setting from the flags, then the environment,
// then the configuration. The password is prompted for when a user is known
// without one.
func ResolveCredentials(
	opts Options, getenv func(string) string, cfg config.Config, prompter prompt.Prompter,
) (Credentials, error) {
	creds := Credentials{
		Server:   firstNonEmpty(opts.Server, getenv(EnvServer), cfg.Server),
		User:     firstNonEmpty(opts.User, getenv(EnvUser), cfg.User),
		Password: firstNonEmpty(opts.Password, getenv(EnvPassword), cfg.Password),
	}

	if creds.User == "" || creds.Password != "" {
		return creds, nil
	}

	password, err := prompter.PromptForPassword("Password for " + creds.User)
	if errors.Is(err, prompt.ErrNotATerminal) {
		return Credentials{}, errors.WithHint(fmt.Errorf("%w: %s", ErrPasswordRequired, creds.User),
			"pass --password or set "+EnvPassword)
	}
	if err != nil {
		return Credentials{}, err
	}

	creds.Password = password
	return creds, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
