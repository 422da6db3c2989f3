// Package chat provides the HTTP handlers for the portfolio chat endpoints.
package chat

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/dimipash/portfolio-api/internal/handler/http/respond"
	chatUC "github.com/dimipash/portfolio-api/internal/usecase/chat"
)

const maxQuestionLength = 500

// Request is the JSON body of a chat question.
type Request struct {
	Question string `json:"question" example:"What is your proficiency in Python?"`
}

// AskHandler answers a visitor question.
type AskHandler struct {
	Svc    *chatUC.Service
	Logger *slog.Logger
}

func (h AskHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	question := strings.TrimSpace(req.Question)
	if question == "" {
		respond.SafeError(w, http.StatusBadRequest, errors.New("question is required"))
		return
	}
	if len(question) > maxQuestionLength {
		respond.SafeError(w, http.StatusBadRequest, errors.New("question is too long"))
		return
	}

	reply := h.Svc.Ask(r.Context(), question)
	respond.JSON(w, http.StatusOK, reply)
}

// QuestionsHandler lists the questions the knowledge base can answer, for
// client-side suggestions.
type QuestionsHandler struct {
	Svc *chatUC.Service
}

func (h QuestionsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, map[string][]string{
		"questions": h.Svc.KnownQuestions(),
	})
}

// Register registers the chat endpoints with the given mux.
func Register(mux *http.ServeMux, svc *chatUC.Service, logger *slog.Logger) {
	mux.Handle("POST /api/chat", AskHandler{Svc: svc, Logger: logger})
	mux.Handle("GET /api/chat/questions", QuestionsHandler{Svc: svc})
}
