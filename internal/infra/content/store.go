// Package content loads the portfolio content document. The document is a
// single YAML file holding the owner's profile, skills, projects, employment
// history, education, and courses. A default document is embedded in the
// binary so the service runs without any external files.
package content

import (
	_ "embed"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dimipash/portfolio-api/internal/domain/entity"
)

//go:embed portfolio.yaml
var defaultDocument []byte

// Document is the full portfolio content as parsed from YAML.
type Document struct {
	Profile    entity.Profile      `yaml:"profile"`
	Skills     []entity.Skill      `yaml:"skills"`
	SoftSkills []string            `yaml:"soft_skills"`
	Projects   []entity.Project    `yaml:"projects"`
	Experience []entity.Experience `yaml:"experience"`
	Education  []entity.Education  `yaml:"education"`
	Courses    []entity.Course     `yaml:"courses"`
}

// Store serves read-only portfolio content. It is safe for concurrent use
// because the document is never mutated after construction.
type Store struct {
	doc Document
}

// NewStore parses the given YAML document into a store.
func NewStore(data []byte) (*Store, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse portfolio document: %w", err)
	}
	if doc.Profile.Name == "" {
		return nil, fmt.Errorf("portfolio document: %w: profile.name is required", entity.ErrValidationFailed)
	}
	return &Store{doc: doc}, nil
}

// NewDefaultStore builds a store from the embedded document.
func NewDefaultStore() (*Store, error) {
	return NewStore(defaultDocument)
}

// NewStoreFromFile builds a store from a YAML file on disk. An empty path
// falls back to the embedded document.
func NewStoreFromFile(path string) (*Store, error) {
	if path == "" {
		return NewDefaultStore()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read portfolio document: %w", err)
	}
	return NewStore(data)
}

// Profile returns the owner's identity block.
func (s *Store) Profile() entity.Profile {
	return s.doc.Profile
}

// Skills returns all technical skills in document order.
func (s *Store) Skills() []entity.Skill {
	return append([]entity.Skill(nil), s.doc.Skills...)
}

// SkillsByCategory groups skills under their category labels, strongest
// proficiency first within each group.
func (s *Store) SkillsByCategory() map[string][]entity.Skill {
	grouped := make(map[string][]entity.Skill)
	for _, skill := range s.doc.Skills {
		grouped[skill.Category] = append(grouped[skill.Category], skill)
	}
	for _, skills := range grouped {
		sort.SliceStable(skills, func(i, j int) bool {
			return skills[i].Proficiency > skills[j].Proficiency
		})
	}
	return grouped
}

// SoftSkills returns the soft skill labels.
func (s *Store) SoftSkills() []string {
	return append([]string(nil), s.doc.SoftSkills...)
}

// Projects returns all portfolio projects in document order.
func (s *Store) Projects() []entity.Project {
	return append([]entity.Project(nil), s.doc.Projects...)
}

// ProjectByName finds a project by its exact name, case-insensitively.
// It returns entity.ErrNotFound when no project matches.
func (s *Store) ProjectByName(name string) (entity.Project, error) {
	for _, project := range s.doc.Projects {
		if strings.EqualFold(project.Name, name) {
			return project, nil
		}
	}
	return entity.Project{}, fmt.Errorf("project %q: %w", name, entity.ErrNotFound)
}

// Experience returns the employment history, most recent first.
func (s *Store) Experience() []entity.Experience {
	return append([]entity.Experience(nil), s.doc.Experience...)
}

// Education returns the education history.
func (s *Store) Education() []entity.Education {
	return append([]entity.Education(nil), s.doc.Education...)
}

// Courses returns the completed courses.
func (s *Store) Courses() []entity.Course {
	return append([]entity.Course(nil), s.doc.Courses...)
}
