package chat

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dimipash/portfolio-api/internal/analytics"
	"github.com/dimipash/portfolio-api/internal/infra/content"
)

type stubAnswerer struct {
	answer     string
	err        error
	gotContext string
	gotQ       string
}

func (s *stubAnswerer) Answer(ctx context.Context, portfolioContext, question string) (string, error) {
	s.gotContext = portfolioContext
	s.gotQ = question
	return s.answer, s.err
}

func newTestService(t *testing.T, assistant Answerer) *Service {
	t.Helper()
	store, err := content.NewDefaultStore()
	require.NoError(t, err)
	return NewService(store, assistant, nil, nil)
}

func TestAsk_Greeting(t *testing.T) {
	svc := newTestService(t, nil)

	for _, q := range []string{"hello", "Hello", "  HELLO  "} {
		reply := svc.Ask(context.Background(), q)
		assert.Equal(t, "Hello there! How can I help you today?", reply.Answer)
		assert.Equal(t, SourceGreeting, reply.Source)
	}
}

func TestAsk_KnowledgeBase(t *testing.T) {
	svc := newTestService(t, nil)

	tests := []struct {
		question string
		want     string
	}{
		{
			question: "What is your proficiency in Python?",
			want:     "My proficiency in Python is 90%.",
		},
		{
			question: "What category does Django belong to?",
			want:     "Django belongs to the Frameworks category.",
		},
		{
			question: "How many years of experience do you have in Django?",
			want:     "I have 1.5 years of experience in Django.",
		},
		{
			question: "What technologies were used in the SaaS Django Project project?",
			want:     "The technologies used in the SaaS Django Project project are: Python, Django, PostgreSQL, Docker.",
		},
		{
			question: "Is there a GitHub link for the AI Web Scraper project?",
			want:     "Yes, you can view the source code here: https://github.com/dimipash/AI_WEB_SCRAPER",
		},
	}

	for _, tt := range tests {
		t.Run(tt.question, func(t *testing.T) {
			reply := svc.Ask(context.Background(), tt.question)
			assert.Equal(t, tt.want, reply.Answer)
			assert.Equal(t, SourceKnowledgeBase, reply.Source)
		})
	}
}

func TestAsk_SoftSkills(t *testing.T) {
	svc := newTestService(t, nil)

	reply := svc.Ask(context.Background(), "What are your soft skills?")
	assert.Equal(t, SourceKnowledgeBase, reply.Source)
	assert.Contains(t, reply.Answer, "Communication")
	assert.Contains(t, reply.Answer, "Problem-Solving")
}

func TestAsk_FallbackWithoutAssistant(t *testing.T) {
	svc := newTestService(t, nil)

	reply := svc.Ask(context.Background(), "What is the meaning of life?")
	assert.Equal(t, "I'm sorry, I don't have an answer to that question.", reply.Answer)
	assert.Equal(t, SourceFallback, reply.Source)
}

func TestAsk_AssistantHandlesUnknown(t *testing.T) {
	assistant := &stubAnswerer{answer: "The owner focuses on Django backends."}
	svc := newTestService(t, assistant)

	reply := svc.Ask(context.Background(), "What kind of work does the owner do?")
	assert.Equal(t, "The owner focuses on Django backends.", reply.Answer)
	assert.Equal(t, SourceAssistant, reply.Source)

	assert.Equal(t, "What kind of work does the owner do?", assistant.gotQ)
	assert.Contains(t, assistant.gotContext, "Dimitar Pashev")
	assert.Contains(t, assistant.gotContext, "SaaS Django Project")
}

func TestAsk_AssistantErrorFallsBack(t *testing.T) {
	assistant := &stubAnswerer{err: errors.New("quota exceeded")}
	svc := newTestService(t, assistant)

	reply := svc.Ask(context.Background(), "Anything?")
	assert.Equal(t, SourceFallback, reply.Source)
}

func TestAsk_KnowledgeBaseBeatsAssistant(t *testing.T) {
	assistant := &stubAnswerer{answer: "should not be used"}
	svc := newTestService(t, assistant)

	reply := svc.Ask(context.Background(), "What is your proficiency in Python?")
	assert.Equal(t, SourceKnowledgeBase, reply.Source)
	assert.Empty(t, assistant.gotQ, "assistant is not consulted for known questions")
}

func TestKnownQuestions(t *testing.T) {
	svc := newTestService(t, nil)

	questions := svc.KnownQuestions()
	assert.NotEmpty(t, questions)
	assert.Contains(t, questions, "What are your soft skills?")
	assert.IsIncreasing(t, questions)
}

func TestAsk_TracksQuestions(t *testing.T) {
	store, err := content.NewDefaultStore()
	require.NoError(t, err)
	tracker := analytics.NewTracker()
	svc := NewService(store, nil, tracker, nil)

	svc.Ask(context.Background(), "hello")
	svc.Ask(context.Background(), "unknown")

	assert.Equal(t, 2, tracker.Summarize().TotalChatQuestions)
}
