package portfolio

import (
	"log/slog"
	"net/http"

	"github.com/dimipash/portfolio-api/internal/analytics"
	portfolioUC "github.com/dimipash/portfolio-api/internal/usecase/portfolio"
)

// Register registers all portfolio content and analytics endpoints with the
// given mux.
func Register(mux *http.ServeMux, svc *portfolioUC.Service, tracker *analytics.Tracker, logger *slog.Logger) {
	mux.Handle("GET /api/profile", ProfileHandler{Svc: svc})
	mux.Handle("GET /api/skills", SkillsHandler{Svc: svc})
	mux.Handle("GET /api/projects", ProjectListHandler{Svc: svc, Tracker: tracker})
	mux.Handle("GET /api/projects/{name}", ProjectGetHandler{Svc: svc, Tracker: tracker, Logger: logger})
	mux.Handle("GET /api/experience", ExperienceHandler{Svc: svc})
	mux.Handle("GET /api/education", EducationHandler{Svc: svc})
	mux.Handle("GET /api/courses", CoursesHandler{Svc: svc})

	mux.Handle("POST /api/analytics/visit", VisitHandler{Tracker: tracker})
	mux.Handle("GET /api/analytics/summary", AnalyticsSummaryHandler{Tracker: tracker})
}
