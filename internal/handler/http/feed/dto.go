// Package feed provides HTTP handlers for the GitHub activity feed endpoints.
package feed

import "time"

// DTO represents the JSON structure for one repository in the feed.
type DTO struct {
	Name        string    `json:"name" example:"hello-world"`
	Description string    `json:"description,omitempty" example:"My first repository"`
	URL         string    `json:"url" example:"https://github.com/octocat/hello-world"`
	Stars       int       `json:"stars" example:"1420"`
	Language    string    `json:"language,omitempty" example:"Go"`
	UpdatedAt   time.Time `json:"updated_at" example:"2025-07-01T12:00:00Z"`
}

// Response is the feed payload on success.
type Response struct {
	Account string `json:"account"`
	Repos   []DTO  `json:"repos"`
}

// FallbackResponse is returned when the upstream feed cannot be fetched.
// Clients render their static fallback instead of repository cards.
type FallbackResponse struct {
	Message string `json:"message"`
}

// StatsResponse is the aggregate view over the recent repositories.
type StatsResponse struct {
	Account     string         `json:"account"`
	Count       int            `json:"count"`
	TotalStars  int            `json:"total_stars"`
	MeanStars   float64        `json:"mean_stars"`
	MedianStars float64        `json:"median_stars"`
	MaxStars    int            `json:"max_stars"`
	Languages   map[string]int `json:"languages"`
}
