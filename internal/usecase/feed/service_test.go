package feed

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dimipash/portfolio-api/internal/domain/entity"
)

type stubLister struct {
	repos      []entity.RepoSummary
	err        error
	gotAccount string
	gotPerPage int
	calls      int
}

func (s *stubLister) ListRepos(ctx context.Context, account string, perPage int) ([]entity.RepoSummary, error) {
	s.calls++
	s.gotAccount = account
	s.gotPerPage = perPage
	if s.err != nil {
		return nil, s.err
	}
	return s.repos, nil
}

func summaries(n int) []entity.RepoSummary {
	out := make([]entity.RepoSummary, 0, n)
	base := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		out = append(out, entity.RepoSummary{
			Name:      string(rune('a' + i)),
			URL:       "https://example.com/repo",
			Stars:     i * 10,
			UpdatedAt: base.Add(-time.Duration(i) * time.Hour),
		})
	}
	return out
}

func TestLatest_TruncatesToLimit(t *testing.T) {
	lister := &stubLister{repos: summaries(8)}
	svc := NewService(lister, nil)

	got, err := svc.Latest(context.Background(), "octocat", 3)
	require.NoError(t, err)
	require.Len(t, got, 3)

	// Upstream order is preserved, only truncated.
	assert.Equal(t, "a", got[0].Name)
	assert.Equal(t, "b", got[1].Name)
	assert.Equal(t, "c", got[2].Name)
	assert.Equal(t, "octocat", lister.gotAccount)
}

func TestLatest_FewerThanLimit(t *testing.T) {
	lister := &stubLister{repos: summaries(2)}
	svc := NewService(lister, nil)

	got, err := svc.Latest(context.Background(), "octocat", 10)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestLatest_EmptyAccount(t *testing.T) {
	lister := &stubLister{}
	svc := NewService(lister, nil)

	_, err := svc.Latest(context.Background(), "", 5)
	assert.ErrorIs(t, err, ErrInvalidAccount)
	assert.Zero(t, lister.calls, "no request may be made for an invalid account")
}

func TestLatest_NonPositiveLimit(t *testing.T) {
	lister := &stubLister{}
	svc := NewService(lister, nil)

	for _, limit := range []int{0, -1} {
		_, err := svc.Latest(context.Background(), "octocat", limit)
		assert.ErrorIs(t, err, ErrInvalidLimit)
	}
	assert.Zero(t, lister.calls)
}

func TestLatest_UpstreamFailure(t *testing.T) {
	upstream := errors.New("503 from api")
	lister := &stubLister{err: upstream}
	svc := NewService(lister, nil)

	got, err := svc.Latest(context.Background(), "octocat", 5)
	assert.Nil(t, got, "no partial result on failure")
	assert.ErrorIs(t, err, ErrFeedUnavailable)
	assert.ErrorIs(t, err, upstream)
	assert.Equal(t, 1, lister.calls, "exactly one attempt, no retry")
}

func TestStats_Aggregates(t *testing.T) {
	lister := &stubLister{repos: []entity.RepoSummary{
		{Name: "one", Stars: 10, Language: "Go"},
		{Name: "two", Stars: 30, Language: "Go"},
		{Name: "three", Stars: 20, Language: "Python"},
		{Name: "four", Stars: 0},
	}}
	svc := NewService(lister, nil)

	got, err := svc.Stats(context.Background(), "octocat", 10)
	require.NoError(t, err)

	assert.Equal(t, 4, got.Count)
	assert.Equal(t, 60, got.TotalStars)
	assert.InDelta(t, 15.0, got.MeanStars, 0.001)
	assert.InDelta(t, 15.0, got.MedianStars, 0.001)
	assert.Equal(t, 30, got.MaxStars)
	assert.Equal(t, map[string]int{"Go": 2, "Python": 1}, got.Languages)
}

func TestStats_EmptyFeed(t *testing.T) {
	lister := &stubLister{}
	svc := NewService(lister, nil)

	got, err := svc.Stats(context.Background(), "octocat", 10)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Count)
	assert.Empty(t, got.Languages)
}

func TestStats_UpstreamFailure(t *testing.T) {
	lister := &stubLister{err: errors.New("timeout")}
	svc := NewService(lister, nil)

	_, err := svc.Stats(context.Background(), "octocat", 5)
	assert.ErrorIs(t, err, ErrFeedUnavailable)
}
