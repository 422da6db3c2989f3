package feed

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/dimipash/portfolio-api/internal/handler/http/respond"
	"github.com/dimipash/portfolio-api/internal/observability/logging"
	feedUC "github.com/dimipash/portfolio-api/internal/usecase/feed"
)

// StatsHandler serves star and language aggregates over the recent feed.
type StatsHandler struct {
	Svc          *feedUC.Service
	Account      string
	DefaultLimit int
	Logger       *slog.Logger
}

func (h StatsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
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

	stats, err := h.Svc.Stats(ctx, h.Account, limit)
	if err != nil {
		if errors.Is(err, feedUC.ErrInvalidLimit) {
			respond.SafeError(w, http.StatusBadRequest, feedUC.ErrInvalidLimit)
			return
		}
		logger.Warn("feed stats unavailable", slog.Any("error", err))
		respond.JSON(w, http.StatusServiceUnavailable, FallbackResponse{
			Message: unavailableMessage,
		})
		return
	}

	respond.JSON(w, http.StatusOK, StatsResponse{
		Account:     h.Account,
		Count:       stats.Count,
		TotalStars:  stats.TotalStars,
		MeanStars:   stats.MeanStars,
		MedianStars: stats.MedianStars,
		MaxStars:    stats.MaxStars,
		Languages:   stats.Languages,
	})
}
