package feed

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dimipash/portfolio-api/internal/domain/entity"
	feedUC "github.com/dimipash/portfolio-api/internal/usecase/feed"
)

type stubLister struct {
	repos []entity.RepoSummary
	err   error
}

func (s *stubLister) ListRepos(ctx context.Context, account string, perPage int) ([]entity.RepoSummary, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.repos, nil
}

func newGetHandler(lister *stubLister) GetHandler {
	return GetHandler{
		Svc:          feedUC.NewService(lister, nil),
		Account:      "dimipash",
		DefaultLimit: 5,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestGetHandler_Success(t *testing.T) {
	updated := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)
	lister := &stubLister{repos: []entity.RepoSummary{
		{
			Name:        "SAAS",
			Description: "SaaS starter",
			URL:         "https://github.com/dimipash/SAAS",
			Stars:       25,
			Language:    "Python",
			UpdatedAt:   updated,
		},
	}}

	req := httptest.NewRequest(http.MethodGet, "/api/feed", nil)
	rec := httptest.NewRecorder()
	newGetHandler(lister).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "dimipash", resp.Account)
	require.Len(t, resp.Repos, 1)
	assert.Equal(t, "SAAS", resp.Repos[0].Name)
	assert.Equal(t, 25, resp.Repos[0].Stars)
	assert.True(t, resp.Repos[0].UpdatedAt.Equal(updated))
}

func TestGetHandler_LimitParam(t *testing.T) {
	repos := make([]entity.RepoSummary, 10)
	for i := range repos {
		repos[i] = entity.RepoSummary{Name: "repo", URL: "https://example.com"}
	}
	lister := &stubLister{repos: repos}

	req := httptest.NewRequest(http.MethodGet, "/api/feed?limit=3", nil)
	rec := httptest.NewRecorder()
	newGetHandler(lister).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Repos, 3)
}

func TestGetHandler_InvalidLimit(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{name: "not a number", url: "/api/feed?limit=abc"},
		{name: "zero", url: "/api/feed?limit=0"},
		{name: "negative", url: "/api/feed?limit=-2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			rec := httptest.NewRecorder()
			newGetHandler(&stubLister{}).ServeHTTP(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestGetHandler_Unavailable(t *testing.T) {
	lister := &stubLister{err: errors.New("502 from upstream")}

	req := httptest.NewRequest(http.MethodGet, "/api/feed", nil)
	rec := httptest.NewRecorder()
	newGetHandler(lister).ServeHTTP(rec, req)

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var resp FallbackResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "GitHub activity is unavailable right now.", resp.Message)
	assert.NotContains(t, rec.Body.String(), "repos", "no partial data on failure")
}

func TestStatsHandler_Success(t *testing.T) {
	lister := &stubLister{repos: []entity.RepoSummary{
		{Name: "a", Stars: 10, Language: "Go"},
		{Name: "b", Stars: 20, Language: "Python"},
	}}

	h := StatsHandler{
		Svc:          feedUC.NewService(lister, nil),
		Account:      "dimipash",
		DefaultLimit: 5,
	}

	req := httptest.NewRequest(http.MethodGet, "/api/feed/stats", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp StatsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Count)
	assert.Equal(t, 30, resp.TotalStars)
	assert.InDelta(t, 15.0, resp.MeanStars, 0.001)
	assert.Equal(t, map[string]int{"Go": 1, "Python": 1}, resp.Languages)
}

func TestStatsHandler_Unavailable(t *testing.T) {
	h := StatsHandler{
		Svc:          feedUC.NewService(&stubLister{err: errors.New("timeout")}, nil),
		Account:      "dimipash",
		DefaultLimit: 5,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	req := httptest.NewRequest(http.MethodGet, "/api/feed/stats", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
