package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/dimipash/portfolio-api/internal/handler/http/respond"
	"github.com/dimipash/portfolio-api/internal/observability/logging"
	"github.com/dimipash/portfolio-api/internal/usecase/portfolio"
)

// ResumeHandler serves the resume PDF as a download.
type ResumeHandler struct {
	Svc    *portfolio.Service
	Logger *slog.Logger
}

func (h ResumeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger := logging.WithRequestID(r.Context(), h.Logger)

	data, err := h.Svc.Resume()
	if err != nil {
		if errors.Is(err, portfolio.ErrResumeNotFound) {
			logger.Warn("resume file missing", slog.Any("error", err))
			respond.SafeError(w, http.StatusNotFound, errors.New("resume not found"))
			return
		}
		logger.Error("resume read failed", slog.Any("error", err))
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="resume.pdf"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
