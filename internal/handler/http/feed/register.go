package feed

import (
	"log/slog"
	"net/http"

	feedUC "github.com/dimipash/portfolio-api/internal/usecase/feed"
)

// Register registers the feed endpoints with the given mux.
func Register(mux *http.ServeMux, svc *feedUC.Service, account string, defaultLimit int, logger *slog.Logger) {
	mux.Handle("GET /api/feed", GetHandler{
		Svc:          svc,
		Account:      account,
		DefaultLimit: defaultLimit,
		Logger:       logger,
	})
	mux.Handle("GET /api/feed/stats", StatsHandler{
		Svc:          svc,
		Account:      account,
		DefaultLimit: defaultLimit,
		Logger:       logger,
	})
}
