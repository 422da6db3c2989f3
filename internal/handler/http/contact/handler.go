// Package contact provides the HTTP handler for contact form submissions.
package contact

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dimipash/portfolio-api/internal/domain/entity"
	"github.com/dimipash/portfolio-api/internal/handler/http/respond"
	"github.com/dimipash/portfolio-api/internal/observability/logging"
	contactUC "github.com/dimipash/portfolio-api/internal/usecase/contact"
)

// Request is the JSON body of a contact form submission.
type Request struct {
	Name    string `json:"name" example:"Jane Visitor"`
	Email   string `json:"email" example:"jane@example.com"`
	Subject string `json:"subject" example:"Collaboration inquiry"`
	Message string `json:"message" example:"Hi, I would like to talk."`
}

// SubmitHandler accepts contact form submissions and hands them to the
// contact service for validation and delivery.
type SubmitHandler struct {
	Svc    *contactUC.Service
	Logger *slog.Logger
}

func (h SubmitHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := logging.WithRequestID(ctx, h.Logger)

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	msg := &entity.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Body:    req.Message,
	}

	if err := h.Svc.Submit(ctx, msg); err != nil {
		var vErr *entity.ValidationError
		switch {
		case errors.As(err, &vErr):
			respond.SafeError(w, http.StatusBadRequest, vErr)
		case errors.Is(err, contactUC.ErrRateLimited):
			respond.SafeError(w, http.StatusTooManyRequests, contactUC.ErrRateLimited)
		default:
			logger.Error("contact submission failed", slog.Any("error", err))
			respond.SafeError(w, http.StatusServiceUnavailable, errors.New("message delivery unavailable"))
		}
		return
	}

	respond.JSON(w, http.StatusAccepted, map[string]string{"status": "sent"})
}

// Register registers the contact endpoint with the given mux.
// The handler is wrapped separately with the submission rate limiter at mux
// construction time.
func Register(mux *http.ServeMux, svc *contactUC.Service, limit func(http.Handler) http.Handler, logger *slog.Logger) {
	var handler http.Handler = SubmitHandler{Svc: svc, Logger: logger}
	if limit != nil {
		handler = limit(handler)
	}
	mux.Handle("POST /api/contact", handler)
}
