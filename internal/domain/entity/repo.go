// Package entity defines the core domain entities for the portfolio backend:
// the GitHub repository summary produced by the activity feed, the portfolio
// content records (profile, skills, projects, experience, education, courses),
// and contact messages, along with their validation rules and domain errors.
package entity

import "time"

// RepoSummary is a display-ready projection of one public GitHub repository.
// It is immutable once constructed and produced fresh on every fetch; there
// is no persistence and no cross-request identity.
type RepoSummary struct {
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"` // empty when the repository has no description
	URL         string    `json:"url"`
	Stars       int       `json:"stars"`
	Language    string    `json:"language,omitempty"` // empty when GitHub reports no primary language
	UpdatedAt   time.Time `json:"updated_at"`
}

// RepoStats holds aggregate statistics over a fetched set of repositories.
type RepoStats struct {
	Count       int            `json:"count"`
	TotalStars  int            `json:"total_stars"`
	MeanStars   float64        `json:"mean_stars"`
	MedianStars float64        `json:"median_stars"`
	MaxStars    int            `json:"max_stars"`
	Languages   map[string]int `json:"languages"` // primary language -> repository count
}
