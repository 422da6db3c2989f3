// Package portfolio exposes the portfolio content sections: profile, skills,
// projects, experience, education, courses, and the resume document.
package portfolio

import (
	"errors"
	"fmt"
	"os"

	"github.com/dimipash/portfolio-api/internal/domain/entity"
	"github.com/dimipash/portfolio-api/internal/infra/content"
)

// ErrResumeNotFound indicates the resume file is missing or unreadable.
var ErrResumeNotFound = errors.New("resume file not found")

// Service serves read-only portfolio content.
type Service struct {
	store      *content.Store
	resumePath string
}

// NewService creates a portfolio service over the given content store.
// resumePath points at the PDF served for download; it may name a file that
// does not exist yet, in which case resume requests fail until it appears.
func NewService(store *content.Store, resumePath string) *Service {
	return &Service{store: store, resumePath: resumePath}
}

// Profile returns the owner's identity block.
func (s *Service) Profile() entity.Profile {
	return s.store.Profile()
}

// Skills returns all technical skills.
func (s *Service) Skills() []entity.Skill {
	return s.store.Skills()
}

// SkillsByCategory groups the technical skills by category label.
func (s *Service) SkillsByCategory() map[string][]entity.Skill {
	return s.store.SkillsByCategory()
}

// SoftSkills returns the soft skill labels.
func (s *Service) SoftSkills() []string {
	return s.store.SoftSkills()
}

// Projects returns all portfolio projects.
func (s *Service) Projects() []entity.Project {
	return s.store.Projects()
}

// Project returns one project by name. Lookup is case-insensitive and
// returns entity.ErrNotFound for unknown names.
func (s *Service) Project(name string) (entity.Project, error) {
	return s.store.ProjectByName(name)
}

// Experience returns the employment history.
func (s *Service) Experience() []entity.Experience {
	return s.store.Experience()
}

// Education returns the education history.
func (s *Service) Education() []entity.Education {
	return s.store.Education()
}

// Courses returns the completed courses.
func (s *Service) Courses() []entity.Course {
	return s.store.Courses()
}

// Resume reads the resume PDF from disk. The file is read per request so a
// replaced file is picked up without a restart.
func (s *Service) Resume() ([]byte, error) {
	data, err := os.ReadFile(s.resumePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrResumeNotFound, s.resumePath)
	}
	return data, nil
}
