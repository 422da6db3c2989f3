package feed

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	httphandler "github.com/dimipash/portfolio-api/internal/handler/http"
	"github.com/dimipash/portfolio-api/internal/handler/http/respond"
	"github.com/dimipash/portfolio-api/internal/observability/logging"
	feedUC "github.com/dimipash/portfolio-api/internal/usecase/feed"
)

const unavailableMessage = "GitHub activity is unavailable right now."

// GetHandler serves the recent repository feed for the configured account.
type GetHandler struct {
	Svc          *feedUC.Service
	Account      string
	DefaultLimit int
	Logger       *slog.Logger
}

// ServeHTTP returns up to limit repositories, most recently updated first.
// The limit query parameter overrides the configured default. When the
// upstream fetch fails for any reason the handler answers 503 with a
// fallback message and no partial data.
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := logging.WithRequestID(ctx, h.Logger)

	limit := h.DefaultLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			respond.SafeError(w, http.StatusBadRequest, errors.New("limit must be a number"))
			return
		}
		limit = parsed
	}

	start := time.Now()
	repos, err := h.Svc.Latest(ctx, h.Account, limit)
	httphandler.RecordFeedFetch(err == nil, time.Since(start))

	if err != nil {
		switch {
		case errors.Is(err, feedUC.ErrInvalidLimit):
			respond.SafeError(w, http.StatusBadRequest, feedUC.ErrInvalidLimit)
		case errors.Is(err, feedUC.ErrInvalidAccount):
			logger.Error("feed account not configured")
			respond.SafeError(w, http.StatusInternalServerError, err)
		default:
			// Single degraded signal regardless of the upstream cause.
			logger.Warn("feed unavailable", slog.Any("error", err))
			respond.JSON(w, http.StatusServiceUnavailable, FallbackResponse{
				Message: unavailableMessage,
			})
		}
		return
	}

	dtos := make([]DTO, 0, len(repos))
	for _, repo := range repos {
		dtos = append(dtos, DTO{
			Name:        repo.Name,
			Description: repo.Description,
			URL:         repo.URL,
			Stars:       repo.Stars,
			Language:    repo.Language,
			UpdatedAt:   repo.UpdatedAt,
		})
	}

	respond.JSON(w, http.StatusOK, Response{
		Account: h.Account,
		Repos:   dtos,
	})
}
