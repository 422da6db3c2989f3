package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "dimipash", cfg.Feed.Account)
	assert.Equal(t, 5, cfg.Feed.DefaultLimit)
	assert.Equal(t, 10*time.Second, cfg.Feed.Timeout)
	assert.Empty(t, cfg.Feed.Token, "token absence is valid")
	assert.Equal(t, "resume.pdf", cfg.Content.ResumePath)
	assert.Equal(t, 5, cfg.Contact.HourlyLimit)
	assert.False(t, cfg.Contact.SMTPEnabled)
	assert.Equal(t, "gpt-4o-mini", cfg.Chat.OpenAIModel)
	assert.Equal(t, "dev", cfg.Version)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("GITHUB_USERNAME", "octocat")
	t.Setenv("FEED_DEFAULT_LIMIT", "8")
	t.Setenv("FEED_TIMEOUT", "3s")
	t.Setenv("GITHUB_TOKEN", "ghp_abc")
	t.Setenv("PORT", "9000")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "octocat", cfg.Feed.Account)
	assert.Equal(t, 8, cfg.Feed.DefaultLimit)
	assert.Equal(t, 3*time.Second, cfg.Feed.Timeout)
	assert.Equal(t, "ghp_abc", cfg.Feed.Token)
	assert.Equal(t, 9000, cfg.Server.Port)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg, err := Load()
		require.NoError(t, err)
		return cfg
	}

	t.Run("empty account", func(t *testing.T) {
		cfg := valid()
		cfg.Feed.Account = ""
		assert.ErrorContains(t, cfg.Validate(), "GITHUB_USERNAME")
	})

	t.Run("non-positive feed limit", func(t *testing.T) {
		cfg := valid()
		cfg.Feed.DefaultLimit = 0
		assert.ErrorContains(t, cfg.Validate(), "FEED_DEFAULT_LIMIT")
	})

	t.Run("non-positive feed timeout", func(t *testing.T) {
		cfg := valid()
		cfg.Feed.Timeout = 0
		assert.ErrorContains(t, cfg.Validate(), "FEED_TIMEOUT")
	})

	t.Run("smtp enabled without credentials", func(t *testing.T) {
		cfg := valid()
		cfg.Contact.SMTPEnabled = true
		cfg.Contact.SMTPUsername = ""
		assert.ErrorContains(t, cfg.Validate(), "EMAIL_ENABLED")
	})

	t.Run("bad port", func(t *testing.T) {
		cfg := valid()
		cfg.Server.Port = 70000
		assert.ErrorContains(t, cfg.Validate(), "PORT")
	})
}
