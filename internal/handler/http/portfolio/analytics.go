package portfolio

import (
	"net/http"

	"github.com/dimipash/portfolio-api/internal/analytics"
	"github.com/dimipash/portfolio-api/internal/handler/http/respond"
)

// VisitHandler records one site visit.
type VisitHandler struct {
	Tracker *analytics.Tracker
}

func (h VisitHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.Tracker.TrackVisit()
	respond.JSON(w, http.StatusAccepted, map[string]string{"status": "recorded"})
}

// AnalyticsSummaryHandler serves a snapshot of the interaction counters.
type AnalyticsSummaryHandler struct {
	Tracker *analytics.Tracker
}

func (h AnalyticsSummaryHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, h.Tracker.Summarize())
}
