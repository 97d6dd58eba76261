//go:build unit

package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/lerenn/jiractl/pkg/config"
	"github.com/lerenn/jiractl/pkg/output"
	"github.com/lerenn/jiractl/pkg/prompt"
	"github.com/lerenn/jiractl/pkg/tracker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func envOf(values map[string]string) func(string) string {
	return func(key string) string {
		return values[key]
	}
}

func TestResolveCredentials_Precedence(t *testing.T) {
	cfg := config.Config{Server: "https://config", User: "config-user", Password: "config-pass"}
	env := envOf(map[string]string{EnvServer: "https://env", EnvUser: "env-user"})

	tests := []struct {
		name     string
		opts     Options
		getenv   func(string) string
		expected Credentials
	}{
		{
			name:     "flags win",
			opts:     Options{Server: "https://flag", User: "flag-user", Password: "flag-pass"},
			getenv:   env,
			expected: Credentials{Server: "https://flag", User: "flag-user", Password: "flag-pass"},
		},
		{
			name:     "environment before configuration",
			getenv:   env,
			expected: Credentials{Server: "https://env", User: "env-user", Password: "config-pass"},
		},
		{
			name:     "configuration last",
			getenv:   envOf(nil),
			expected: Credentials{Server: "https://config", User: "config-user", Password: "config-pass"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			creds, err := ResolveCredentials(tt.opts, tt.getenv, cfg, prompt.NewMockPrompter(ctrl))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, creds)
		})
	}
}

func TestResolveCredentials_Anonymous(t *testing.T) {
	ctrl := gomock.NewController(t)

	creds, err := ResolveCredentials(Options{Server: "https://jira"}, envOf(nil), config.Config{},
		prompt.NewMockPrompter(ctrl))
	require.NoError(t, err)
	assert.Equal(t, Credentials{Server: "https://jira"}, creds)
}

func TestResolveCredentials_PromptsForPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockPrompt := prompt.NewMockPrompter(ctrl)
	mockPrompt.EXPECT().PromptForPassword("Password for alice").Return("typed", nil)

	creds, err := ResolveCredentials(Options{Server: "https://jira", User: "alice"}, envOf(nil),
		config.Config{}, mockPrompt)
	require.NoError(t, err)
	assert.Equal(t, "typed", creds.Password)
}

func TestResolveCredentials_NoTerminal(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockPrompt := prompt.NewMockPrompter(ctrl)
	mockPrompt.EXPECT().PromptForPassword(gomock.Any()).Return("", prompt.ErrNotATerminal)

	_, err := ResolveCredentials(Options{User: "alice"}, envOf(nil), config.Config{}, mockPrompt)
	assert.ErrorIs(t, err, ErrPasswordRequired)
}

func TestResolveCredentials_PromptError(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockPrompt := prompt.NewMockPrompter(ctrl)
	boom := errors.New("boom")
	mockPrompt.EXPECT().PromptForPassword(gomock.Any()).Return("", boom)

	_, err := ResolveCredentials(Options{User: "alice"}, envOf(nil), config.Config{}, mockPrompt)
	assert.ErrorIs(t, err, boom)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer

	NewLogger(Options{}, &buf).Logf("hidden")
	assert.Empty(t, buf.String())

	NewLogger(Options{Verbose: true}, &buf).Logf("GET %s", "issue")
	assert.Equal(t, "[verbose] GET issue\n", buf.String())
}

func TestDisplayFormat(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")

	format, err := DisplayFormat(Options{ConfigPath: configPath})
	require.NoError(t, err)
	assert.Equal(t, output.DefaultFormat(), format)

	require.NoError(t, os.WriteFile(configPath, []byte("format: json\n"), 0o600))
	format, err = DisplayFormat(Options{ConfigPath: configPath})
	require.NoError(t, err)
	assert.Equal(t, output.FormatJSON, format)
}

func TestNewJiraCtl_ServerRequired(t *testing.T) {
	t.Setenv(EnvServer, "")
	t.Setenv(EnvUser, "")
	t.Setenv(EnvPassword, "")

	ctrl := gomock.NewController(t)

	_, err := NewJiraCtl(Options{ConfigPath: filepath.Join(t.TempDir(), "config.yaml")}, prompt.NewMockPrompter(ctrl))
	assert.ErrorIs(t, err, tracker.ErrServerRequired)
}

func TestNewJiraCtl_CreatesAnonymousClient(t *testing.T) {
	t.Setenv(EnvServer, "")
	t.Setenv(EnvUser, "")
	t.Setenv(EnvPassword, "")

	ctrl := gomock.NewController(t)

	j, err := NewJiraCtl(Options{
		Server:     "https://jira.example.com",
		ConfigPath: filepath.Join(t.TempDir(), "config.yaml"),
	}, prompt.NewMockPrompter(ctrl))
	require.NoError(t, err)
	assert.NotNil(t, j)
}

func TestNewJiraCtl_PromptsWithGivenPrompter(t *testing.T) {
	t.Setenv(EnvServer, "")
	t.Setenv(EnvUser, "")
	t.Setenv(EnvPassword, "")

	ctrl := gomock.NewController(t)
	mockPrompt := prompt.NewMockPrompter(ctrl)
	mockPrompt.EXPECT().PromptForPassword("Password for alice").Return("", prompt.ErrNotATerminal)

	_, err := NewJiraCtl(Options{
		Server:     "https://jira.example.com",
		User:       "alice",
		ConfigPath: filepath.Join(t.TempDir(), "config.yaml"),
	}, mockPrompt)
	assert.ErrorIs(t, err, ErrPasswordRequired)
}
