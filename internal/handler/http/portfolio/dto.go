// Package portfolio provides HTTP handlers for the portfolio content
// endpoints: profile, skills, projects, experience, education, and courses,
// plus the visit analytics endpoints.
package portfolio

import "github.com/dimipash/portfolio-api/internal/domain/entity"

// SkillsResponse groups technical skills by category alongside soft skills.
type SkillsResponse struct {
	Technical map[string][]entity.Skill `json:"technical"`
	Soft      []string                  `json:"soft"`
}

// ProjectDTO is one project with its tracked view count.
type ProjectDTO struct {
	entity.Project
	Views int `json:"views"`
}
