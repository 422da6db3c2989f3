package entity

import "strings"

// Profile holds the owner's identity block rendered at the top of the page.
type Profile struct {
	Name     string `yaml:"name" json:"name"`
	Title    string `yaml:"title" json:"title"`
	Location string `yaml:"location" json:"location"`
	Email    string `yaml:"email" json:"email"`
	Phone    string `yaml:"phone" json:"phone"`
	GitHub   string `yaml:"github" json:"github"`
	LinkedIn string `yaml:"linkedin" json:"linkedin"`
	Summary  string `yaml:"summary" json:"summary"`
}

// Skill is one technical skill with a proficiency percentage and a category
// used for grouping (Languages, Frameworks, Frontend, Backend, Databases,
// Tools).
type Skill struct {
	Name            string  `yaml:"name" json:"name"`
	Category        string  `yaml:"category" json:"category"`
	Proficiency     int     `yaml:"proficiency" json:"proficiency"`
	ExperienceYears float64 `yaml:"experience_years" json:"experience_years"`
}

// Project is one portfolio project entry.
type Project struct {
	Name        string   `yaml:"name" json:"name"`
	Date        string   `yaml:"date" json:"date"`
	Description string   `yaml:"description" json:"description"`
	TechStack   []string `yaml:"tech_stack" json:"tech_stack"`
	LiveDemo    string   `yaml:"live_demo,omitempty" json:"live_demo,omitempty"`
	GitHubLink  string   `yaml:"github_link,omitempty" json:"github_link,omitempty"`
	Metrics     *ProjectMetrics `yaml:"metrics,omitempty" json:"metrics,omitempty"`
}

// ProjectMetrics carries the per-project statistics shown next to a project.
type ProjectMetrics struct {
	CodeCoverage int    `yaml:"code_coverage" json:"code_coverage"`
	Commits      int    `yaml:"commits" json:"commits"`
	Stars        int    `yaml:"stars" json:"stars"`
	Complexity   string `yaml:"complexity" json:"complexity"`
	Status       string `yaml:"status" json:"status"`
}

// UsesTech reports whether the project lists the given technology in its
// tech stack. Matching is case-insensitive on whole entries.
func (p *Project) UsesTech(tech string) bool {
	for _, t := range p.TechStack {
		if strings.EqualFold(t, tech) {
			return true
		}
	}
	return false
}

// Experience is one employment history entry.
type Experience struct {
	Title            string   `yaml:"title" json:"title"`
	Company          string   `yaml:"company" json:"company"`
	Location         string   `yaml:"location" json:"location"`
	Date             string   `yaml:"date" json:"date"`
	Responsibilities []string `yaml:"responsibilities" json:"responsibilities"`
}

// Education is one education history entry.
type Education struct {
	Degree  string   `yaml:"degree" json:"degree"`
	School  string   `yaml:"school" json:"school"`
	Date    string   `yaml:"date" json:"date"`
	Details []string `yaml:"details" json:"details"`
}

// Course is one completed course with an optional certificate link.
type Course struct {
	Name        string `yaml:"name" json:"name"`
	Date        string `yaml:"date" json:"date"`
	Certificate string `yaml:"certificate,omitempty" json:"certificate,omitempty"`
}
