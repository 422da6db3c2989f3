// Package config loads the application configuration from environment
// variables. A .env file in the working directory is loaded first when
// present, matching local development workflows.
package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"

	"github.com/dimipash/portfolio-api/internal/usecase/contact"
	"github.com/dimipash/portfolio-api/internal/usecase/feed"
	pkgconfig "github.com/dimipash/portfolio-api/pkg/config"
)

// Config holds the full application configuration.
type Config struct {
	Server  ServerConfig
	Feed    FeedConfig
	Content ContentConfig
	Contact ContactConfig
	Chat    ChatConfig

	// Version is reported by the health endpoint. Default: "dev"
	Version string
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	// Port the API listens on. Default: 8080
	Port int

	// ShutdownTimeout bounds graceful shutdown. Default: 10s
	ShutdownTimeout time.Duration

	// MaxBodyBytes limits request body size. Default: 1 MiB
	MaxBodyBytes int64
}

// FeedConfig holds GitHub activity feed settings.
type FeedConfig struct {
	// Account is the GitHub account whose public repositories are listed.
	// Default: "dimipash"
	Account string

	// DefaultLimit is the number of repositories returned when the caller
	// does not specify one. Default: feed.DefaultLimit
	DefaultLimit int

	// Timeout bounds each GitHub API call. Default: 10s
	Timeout time.Duration

	// Token is an optional personal access token for a higher rate limit.
	// Leaving it empty is valid; requests are then unauthenticated.
	Token string
}

// ContentConfig holds portfolio content settings.
type ContentConfig struct {
	// Path optionally overrides the embedded content document with a YAML
	// file on disk. Empty means the embedded document.
	Path string

	// ResumePath is the PDF served by the resume download endpoint.
	// Default: "resume.pdf"
	ResumePath string
}

// ContactConfig holds contact form delivery settings.
type ContactConfig struct {
	// HourlyLimit caps accepted submissions per hour. Default: 5
	HourlyLimit int

	// SMTPEnabled turns on email delivery. Requires host, username, and
	// password to be set.
	SMTPEnabled  bool
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	SMTPTo       string

	// WebhookURL optionally posts submissions to a chat webhook.
	// Empty disables webhook delivery.
	WebhookURL     string
	WebhookTimeout time.Duration
}

// ChatConfig holds the optional model-backed chat assistant settings.
type ChatConfig struct {
	// OpenAIAPIKey enables the assistant when set. Empty means the chat
	// endpoint answers from the knowledge base only.
	OpenAIAPIKey string

	// OpenAIBaseURL overrides the API endpoint for OpenAI-compatible
	// providers. Empty means the default OpenAI API.
	OpenAIBaseURL string

	// OpenAIModel is the chat completion model. Default: "gpt-4o-mini"
	OpenAIModel string
}

// Load reads configuration from the environment, after loading a .env file
// if one exists in the working directory.
func Load() (*Config, error) {
	// Missing .env is the normal production case
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port:            pkgconfig.GetEnvInt("PORT", 8080),
			ShutdownTimeout: pkgconfig.GetEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
			MaxBodyBytes:    int64(pkgconfig.GetEnvInt("MAX_BODY_BYTES", 1<<20)),
		},
		Feed: FeedConfig{
			Account:      pkgconfig.GetEnvString("GITHUB_USERNAME", "dimipash"),
			DefaultLimit: pkgconfig.GetEnvInt("FEED_DEFAULT_LIMIT", feed.DefaultLimit),
			Timeout:      pkgconfig.GetEnvDuration("FEED_TIMEOUT", 10*time.Second),
			Token:        pkgconfig.GetEnvString("GITHUB_TOKEN", ""),
		},
		Content: ContentConfig{
			Path:       pkgconfig.GetEnvString("CONTENT_PATH", ""),
			ResumePath: pkgconfig.GetEnvString("RESUME_PATH", "resume.pdf"),
		},
		Contact: ContactConfig{
			HourlyLimit:    pkgconfig.GetEnvInt("CONTACT_RATE_LIMIT", contact.DefaultHourlyLimit),
			SMTPEnabled:    pkgconfig.GetEnvBool("EMAIL_ENABLED", false),
			SMTPHost:       pkgconfig.GetEnvString("EMAIL_HOST", "smtp.gmail.com"),
			SMTPPort:       pkgconfig.GetEnvInt("EMAIL_PORT", 587),
			SMTPUsername:   pkgconfig.GetEnvString("EMAIL_USERNAME", ""),
			SMTPPassword:   pkgconfig.GetEnvString("EMAIL_PASSWORD", ""),
			SMTPTo:         pkgconfig.GetEnvString("CONTACT_EMAIL", "dim.pashev@gmail.com"),
			WebhookURL:     pkgconfig.GetEnvString("CONTACT_WEBHOOK_URL", ""),
			WebhookTimeout: pkgconfig.GetEnvDuration("CONTACT_WEBHOOK_TIMEOUT", 10*time.Second),
		},
		Chat: ChatConfig{
			OpenAIAPIKey:  pkgconfig.GetEnvString("OPENAI_API_KEY", ""),
			OpenAIBaseURL: pkgconfig.GetEnvString("OPENAI_BASE_URL", ""),
			OpenAIModel:   pkgconfig.GetEnvString("OPENAI_MODEL", "gpt-4o-mini"),
		},
		Version: pkgconfig.GetEnvString("APP_VERSION", "dev"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for inconsistencies that would only
// surface later at request time.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid PORT %d: must be between 1 and 65535", c.Server.Port)
	}
	if c.Feed.Account == "" {
		return fmt.Errorf("GITHUB_USERNAME must not be empty")
	}
	if c.Feed.DefaultLimit <= 0 {
		return fmt.Errorf("invalid FEED_DEFAULT_LIMIT %d: must be positive", c.Feed.DefaultLimit)
	}
	if c.Feed.Timeout <= 0 {
		return fmt.Errorf("invalid FEED_TIMEOUT %v: must be positive", c.Feed.Timeout)
	}
	if c.Contact.HourlyLimit <= 0 {
		return fmt.Errorf("invalid CONTACT_RATE_LIMIT %d: must be positive", c.Contact.HourlyLimit)
	}
	if c.Contact.SMTPEnabled {
		if c.Contact.SMTPHost == "" || c.Contact.SMTPUsername == "" || c.Contact.SMTPPassword == "" {
			return fmt.Errorf("EMAIL_ENABLED requires EMAIL_HOST, EMAIL_USERNAME, and EMAIL_PASSWORD")
		}
	}
	return nil
}
