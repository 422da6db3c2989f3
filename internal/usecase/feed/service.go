// Package feed implements the GitHub activity feed use case. It fetches the
// most recently updated public repositories for a configured account and
// degrades to a single unavailable signal on any upstream failure.
package feed

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/montanaflynn/stats"

	"github.com/dimipash/portfolio-api/internal/domain/entity"
)

// DefaultLimit is the number of repositories shown when the caller does not
// ask for a specific count.
const DefaultLimit = 5

// RepoLister fetches public repositories for an account, ordered by most
// recent update on the API side. Implementations perform exactly one request
// per call and never retry.
type RepoLister interface {
	ListRepos(ctx context.Context, account string, perPage int) ([]entity.RepoSummary, error)
}

// Service provides the activity feed operations.
type Service struct {
	lister RepoLister
	logger *slog.Logger
}

// NewService creates a feed service backed by the given repository lister.
func NewService(lister RepoLister, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{lister: lister, logger: logger}
}

// Latest returns up to limit repositories for the account, most recently
// updated first. The ordering is whatever the upstream API returned; the
// service truncates but never re-sorts. Any upstream failure is reported as
// ErrFeedUnavailable with no partial result.
func (s *Service) Latest(ctx context.Context, account string, limit int) ([]entity.RepoSummary, error) {
	if account == "" {
		return nil, ErrInvalidAccount
	}
	if limit <= 0 {
		return nil, ErrInvalidLimit
	}

	repos, err := s.lister.ListRepos(ctx, account, limit)
	if err != nil {
		s.logger.Warn("activity feed fetch failed",
			slog.String("account", account),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: %w", ErrFeedUnavailable, err)
	}

	if len(repos) > limit {
		repos = repos[:limit]
	}
	return repos, nil
}

// Stats aggregates star and language counts over the account's most recently
// updated repositories. It shares the feed's failure semantics: any upstream
// problem surfaces as ErrFeedUnavailable.
func (s *Service) Stats(ctx context.Context, account string, limit int) (*entity.RepoStats, error) {
	repos, err := s.Latest(ctx, account, limit)
	if err != nil {
		return nil, err
	}

	result := &entity.RepoStats{
		Count:     len(repos),
		Languages: make(map[string]int),
	}
	if len(repos) == 0 {
		return result, nil
	}

	starCounts := make([]float64, 0, len(repos))
	for _, repo := range repos {
		result.TotalStars += repo.Stars
		starCounts = append(starCounts, float64(repo.Stars))
		if repo.Language != "" {
			result.Languages[repo.Language]++
		}
	}

	mean, err := stats.Mean(starCounts)
	if err != nil {
		return nil, fmt.Errorf("compute mean stars: %w", err)
	}
	median, err := stats.Median(starCounts)
	if err != nil {
		return nil, fmt.Errorf("compute median stars: %w", err)
	}
	maxStars, err := stats.Max(starCounts)
	if err != nil {
		return nil, fmt.Errorf("compute max stars: %w", err)
	}

	result.MeanStars = mean
	result.MedianStars = median
	result.MaxStars = int(maxStars)
	return result, nil
}
