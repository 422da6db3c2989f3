// Package analytics tracks portfolio interactions: site visits, per-project
// views, contact submissions, and chat questions. Counts live in memory and
// are mirrored to Prometheus so they survive in the metrics backend even
// though the in-process numbers reset on restart.
package analytics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	visitsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "portfolio_visits_total",
		Help: "Total number of tracked site visits",
	})

	projectViewsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "portfolio_project_views_total",
		Help: "Total number of project detail views by project name",
	}, []string{"project"})

	contactSubmissionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "portfolio_contact_submissions_total",
		Help: "Total number of contact form submissions",
	})

	chatQuestionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "portfolio_chat_questions_total",
		Help: "Total number of chat questions asked",
	})
)

// Summary is a snapshot of all analytics counters.
type Summary struct {
	TotalVisits             int       `json:"total_visits"`
	TotalContactSubmissions int       `json:"total_contact_submissions"`
	TotalProjectViews       int       `json:"total_project_views"`
	TotalChatQuestions      int       `json:"total_chat_questions"`
	MostViewedProject       string    `json:"most_viewed_project"`
	MostViewedProjectCount  int       `json:"most_viewed_project_count"`
	LastInteraction         time.Time `json:"last_interaction"`
}

// Tracker records interaction counts. Safe for concurrent use.
type Tracker struct {
	mu                 sync.Mutex
	totalVisits        int
	projectViews       map[string]int
	contactSubmissions int
	chatQuestions      int
	lastInteraction    time.Time

	now func() time.Time
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{
		projectViews: make(map[string]int),
		now:          time.Now,
	}
}

// TrackVisit records one site visit.
func (t *Tracker) TrackVisit() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.totalVisits++
	t.lastInteraction = t.now()
	visitsTotal.Inc()
}

// TrackProjectView records one view of the named project.
func (t *Tracker) TrackProjectView(project string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.projectViews[project]++
	t.lastInteraction = t.now()
	projectViewsTotal.WithLabelValues(project).Inc()
}

// TrackContactSubmission records one contact form submission.
func (t *Tracker) TrackContactSubmission() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.contactSubmissions++
	t.lastInteraction = t.now()
	contactSubmissionsTotal.Inc()
}

// TrackChatQuestion records one chat question.
func (t *Tracker) TrackChatQuestion() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.chatQuestions++
	t.lastInteraction = t.now()
	chatQuestionsTotal.Inc()
}

// ProjectViews returns the view count for the named project.
func (t *Tracker) ProjectViews(project string) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.projectViews[project]
}

// Summarize returns a snapshot of all counters.
func (t *Tracker) Summarize() Summary {
	t.mu.Lock()
	defer t.mu.Unlock()

	total := 0
	mostViewed := ""
	mostViewedCount := 0
	for project, count := range t.projectViews {
		total += count
		if count > mostViewedCount || (count == mostViewedCount && project < mostViewed) {
			mostViewed = project
			mostViewedCount = count
		}
	}

	return Summary{
		TotalVisits:             t.totalVisits,
		TotalContactSubmissions: t.contactSubmissions,
		TotalProjectViews:       total,
		TotalChatQuestions:      t.chatQuestions,
		MostViewedProject:       mostViewed,
		MostViewedProjectCount:  mostViewedCount,
		LastInteraction:         t.lastInteraction,
	}
}
