package portfolio

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dimipash/portfolio-api/internal/analytics"
	"github.com/dimipash/portfolio-api/internal/domain/entity"
	"github.com/dimipash/portfolio-api/internal/handler/http/respond"
	"github.com/dimipash/portfolio-api/internal/observability/logging"
	portfolioUC "github.com/dimipash/portfolio-api/internal/usecase/portfolio"
)

// ProfileHandler serves the owner's identity block.
type ProfileHandler struct {
	Svc *portfolioUC.Service
}

func (h ProfileHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, h.Svc.Profile())
}

// SkillsHandler serves technical skills grouped by category plus soft skills.
type SkillsHandler struct {
	Svc *portfolioUC.Service
}

func (h SkillsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, SkillsResponse{
		Technical: h.Svc.SkillsByCategory(),
		Soft:      h.Svc.SoftSkills(),
	})
}

// ProjectListHandler serves all projects with their view counts. The tech
// query parameter narrows the list to projects using that technology.
type ProjectListHandler struct {
	Svc     *portfolioUC.Service
	Tracker *analytics.Tracker
}

func (h ProjectListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	projects := h.Svc.Projects()
	tech := r.URL.Query().Get("tech")

	dtos := make([]ProjectDTO, 0, len(projects))
	for _, project := range projects {
		if tech != "" && !project.UsesTech(tech) {
			continue
		}
		views := 0
		if h.Tracker != nil {
			views = h.Tracker.ProjectViews(project.Name)
		}
		dtos = append(dtos, ProjectDTO{Project: project, Views: views})
	}
	respond.JSON(w, http.StatusOK, dtos)
}

// ProjectGetHandler serves one project by name and records the view.
type ProjectGetHandler struct {
	Svc     *portfolioUC.Service
	Tracker *analytics.Tracker
	Logger  *slog.Logger
}

func (h ProjectGetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger := logging.WithRequestID(r.Context(), h.Logger)

	name := r.PathValue("name")
	project, err := h.Svc.Project(name)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			respond.SafeError(w, http.StatusNotFound, errors.New("project not found"))
			return
		}
		logger.Error("project lookup failed", slog.Any("error", err))
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	views := 0
	if h.Tracker != nil {
		h.Tracker.TrackProjectView(project.Name)
		views = h.Tracker.ProjectViews(project.Name)
	}

	respond.JSON(w, http.StatusOK, ProjectDTO{Project: project, Views: views})
}

// ExperienceHandler serves the employment history.
type ExperienceHandler struct {
	Svc *portfolioUC.Service
}

func (h ExperienceHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, h.Svc.Experience())
}

// EducationHandler serves the education history.
type EducationHandler struct {
	Svc *portfolioUC.Service
}

func (h EducationHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, h.Svc.Education())
}

// CoursesHandler serves the completed courses.
type CoursesHandler struct {
	Svc *portfolioUC.Service
}

func (h CoursesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, h.Svc.Courses())
}
