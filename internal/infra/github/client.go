// Package github provides the GitHub API adapter for the activity feed.
// It wraps the go-github REST client with an optional bearer credential,
// secondary-rate-limit handling, a bounded timeout, and a circuit breaker.
package github

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/gofri/go-github-ratelimit/github_ratelimit"
	gh "github.com/google/go-github/v62/github"
	"golang.org/x/oauth2"

	"github.com/dimipash/portfolio-api/internal/domain/entity"
	"github.com/dimipash/portfolio-api/internal/resilience/circuitbreaker"
)

// Config holds configuration for the GitHub client.
type Config struct {
	// Token is an optional personal access token. When present it is sent as
	// a bearer credential to raise the anonymous rate limit; when absent the
	// client calls the public API unauthenticated. Absence is never an error.
	Token string

	// Timeout bounds every listing call, including connection setup and body
	// read. A slow or unreachable API must not hang the caller.
	Timeout time.Duration

	// BaseURL overrides the API endpoint. Used by tests to point the client
	// at a fake server. Empty means the public GitHub API.
	BaseURL string
}

// Client lists public repositories for an account, most recently updated
// first, as returned by the API.
type Client struct {
	rest    *gh.Client
	timeout time.Duration
	breaker *circuitbreaker.CircuitBreaker
}

// NewClient creates a GitHub client from the given configuration.
// The underlying transport waits out secondary rate limits; primary rate
// limit exhaustion surfaces as an error like any other failed call.
func NewClient(cfg Config) (*Client, error) {
	rateLimitWaiter, err := github_ratelimit.NewRateLimitWaiter(nil)
	if err != nil {
		return nil, fmt.Errorf("create rate limit waiter: %w", err)
	}

	var transport http.RoundTripper = rateLimitWaiter
	if cfg.Token != "" {
		transport = &oauth2.Transport{
			Base:   rateLimitWaiter,
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.Token}),
		}
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	httpClient := &http.Client{
		Transport: transport,
		Timeout:   timeout,
	}

	rest := gh.NewClient(httpClient)
	if cfg.BaseURL != "" {
		baseURL, err := url.Parse(cfg.BaseURL)
		if err != nil {
			return nil, fmt.Errorf("parse base URL: %w", err)
		}
		rest.BaseURL = baseURL
	}

	return &Client{
		rest:    rest,
		timeout: timeout,
		breaker: circuitbreaker.New(circuitbreaker.GitHubAPIConfig()),
	}, nil
}

// ListRepos performs a single GET against the public repository listing for
// the account, requesting results ordered by most recent update. It returns
// up to perPage summaries in API order; callers truncate further if needed.
// Any transport failure, non-2xx status, or malformed body is returned as an
// error; there is no retry and no partial result.
func (c *Client) ListRepos(ctx context.Context, account string, perPage int) ([]entity.RepoSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	opts := &gh.RepositoryListByUserOptions{
		Sort:      "updated",
		Direction: "desc",
		ListOptions: gh.ListOptions{
			PerPage: perPage,
		},
	}

	result, err := c.breaker.Execute(func() (interface{}, error) {
		repos, _, err := c.rest.Repositories.ListByUser(ctx, account, opts)
		if err != nil {
			return nil, fmt.Errorf("list repositories for %q: %w", account, err)
		}
		return repos, nil
	})
	if err != nil {
		return nil, err
	}

	repos := result.([]*gh.Repository)
	summaries := make([]entity.RepoSummary, 0, len(repos))
	for _, repo := range repos {
		summaries = append(summaries, entity.RepoSummary{
			Name:        repo.GetName(),
			Description: repo.GetDescription(),
			URL:         repo.GetHTMLURL(),
			Stars:       repo.GetStargazersCount(),
			Language:    repo.GetLanguage(),
			UpdatedAt:   repo.GetUpdatedAt().Time,
		})
	}

	return summaries, nil
}
