// Package http provides HTTP handlers and middleware for the portfolio API.
// It includes the health check endpoints, Prometheus metrics collection,
// request logging, panic recovery, body size limiting, and IP rate limiting.
package http

import (
	"net/http"
	"os"
	"time"

	"github.com/dimipash/portfolio-api/internal/handler/http/respond"
)

// HealthResponse represents the JSON response for health check endpoints.
type HealthResponse struct {
	Status    string                 `json:"status"`
	Timestamp string                 `json:"timestamp"`
	Checks    map[string]CheckStatus `json:"checks"`
	Version   string                 `json:"version"`
}

// CheckStatus represents the status of a single health check.
type CheckStatus struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

const (
	statusHealthy   = "healthy"
	statusUnhealthy = "unhealthy"
)

// HealthHandler handles health check endpoint requests.
// The service has no database; readiness covers the content document (checked
// at startup, so always healthy once serving) and the resume file on disk.
type HealthHandler struct {
	Version    string
	ResumePath string
}

// ServeHTTP reports overall service health.
// A missing resume file degrades the resume check but not overall status,
// since every other endpoint still works without it.
func (h HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	checks := map[string]CheckStatus{
		"content": {Status: statusHealthy},
	}

	resumeCheck := CheckStatus{Status: statusHealthy}
	if h.ResumePath == "" {
		resumeCheck = CheckStatus{Status: statusUnhealthy, Message: "resume path not configured"}
	} else if _, err := os.Stat(h.ResumePath); err != nil {
		resumeCheck = CheckStatus{Status: statusUnhealthy, Message: "resume file not readable"}
	}
	checks["resume"] = resumeCheck

	respond.JSON(w, http.StatusOK, HealthResponse{
		Status:    statusHealthy,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    checks,
		Version:   h.Version,
	})
}

// LivenessHandler responds to liveness probes. It only proves the process is
// serving requests.
func LivenessHandler(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, map[string]string{"status": "alive"})
}
