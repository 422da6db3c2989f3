package analytics

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTracker_Counters(t *testing.T) {
	tr := NewTracker()
	fixed := time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)
	tr.now = func() time.Time { return fixed }

	tr.TrackVisit()
	tr.TrackVisit()
	tr.TrackProjectView("SaaS Django Project")
	tr.TrackProjectView("SaaS Django Project")
	tr.TrackProjectView("AI Web Scraper")
	tr.TrackContactSubmission()
	tr.TrackChatQuestion()

	assert.Equal(t, 2, tr.ProjectViews("SaaS Django Project"))
	assert.Equal(t, 0, tr.ProjectViews("unknown"))

	summary := tr.Summarize()
	assert.Equal(t, 2, summary.TotalVisits)
	assert.Equal(t, 1, summary.TotalContactSubmissions)
	assert.Equal(t, 3, summary.TotalProjectViews)
	assert.Equal(t, 1, summary.TotalChatQuestions)
	assert.Equal(t, "SaaS Django Project", summary.MostViewedProject)
	assert.Equal(t, 2, summary.MostViewedProjectCount)
	assert.Equal(t, fixed, summary.LastInteraction)
}

func TestTracker_EmptySummary(t *testing.T) {
	summary := NewTracker().Summarize()

	assert.Zero(t, summary.TotalVisits)
	assert.Empty(t, summary.MostViewedProject)
	assert.True(t, summary.LastInteraction.IsZero())
}

func TestTracker_ConcurrentUse(t *testing.T) {
	tr := NewTracker()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tr.TrackVisit()
			tr.TrackProjectView("demo")
		}()
	}
	wg.Wait()

	summary := tr.Summarize()
	assert.Equal(t, 50, summary.TotalVisits)
	assert.Equal(t, 50, tr.ProjectViews("demo"))
}
