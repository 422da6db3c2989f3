// Package chat answers visitor questions about the portfolio. A rule-based
// knowledge base built from the content document handles the known question
// forms; an optional model-backed assistant covers free-form questions.
package chat

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"

	"github.com/dimipash/portfolio-api/internal/analytics"
	"github.com/dimipash/portfolio-api/internal/infra/content"
)

const (
	greetingAnswer = "Hello there! How can I help you today?"
	fallbackAnswer = "I'm sorry, I don't have an answer to that question."
)

// Answer sources reported to the caller.
const (
	SourceGreeting      = "greeting"
	SourceKnowledgeBase = "knowledge_base"
	SourceAssistant     = "assistant"
	SourceFallback      = "fallback"
)

// Answerer produces a free-form reply from the portfolio content.
// It is implemented by the OpenAI assistant client.
type Answerer interface {
	Answer(ctx context.Context, portfolioContext, question string) (string, error)
}

// Reply is the chat response with its answer source.
type Reply struct {
	Answer string `json:"answer"`
	Source string `json:"source"`
}

// Service answers portfolio questions.
type Service struct {
	knowledgeBase    map[string]string
	questions        []string
	portfolioContext string
	assistant        Answerer
	tracker          *analytics.Tracker
	logger           *slog.Logger
}

// NewService builds the knowledge base from the content store.
// assistant may be nil, in which case unknown questions get the fallback
// answer. tracker may be nil to disable analytics.
func NewService(store *content.Store, assistant Answerer, tracker *analytics.Tracker, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}

	kb := buildKnowledgeBase(store)
	questions := make([]string, 0, len(kb))
	for q := range kb {
		questions = append(questions, q)
	}
	sort.Strings(questions)

	return &Service{
		knowledgeBase:    kb,
		questions:        questions,
		portfolioContext: renderPortfolioContext(store),
		assistant:        assistant,
		tracker:          tracker,
		logger:           logger,
	}
}

// buildKnowledgeBase generates the known question and answer pairs from the
// skills, soft skills, and projects in the content document.
func buildKnowledgeBase(store *content.Store) map[string]string {
	kb := make(map[string]string)

	for _, skill := range store.Skills() {
		years := strconv.FormatFloat(skill.ExperienceYears, 'f', -1, 64)
		kb[fmt.Sprintf("What is your proficiency in %s?", skill.Name)] =
			fmt.Sprintf("My proficiency in %s is %d%%.", skill.Name, skill.Proficiency)
		kb[fmt.Sprintf("What category does %s belong to?", skill.Name)] =
			fmt.Sprintf("%s belongs to the %s category.", skill.Name, skill.Category)
		kb[fmt.Sprintf("How many years of experience do you have in %s?", skill.Name)] =
			fmt.Sprintf("I have %s years of experience in %s.", years, skill.Name)
	}

	if soft := store.SoftSkills(); len(soft) > 0 {
		kb["What are your soft skills?"] =
			fmt.Sprintf("My soft skills are: %s.", strings.Join(soft, ", "))
	}

	for _, project := range store.Projects() {
		kb[fmt.Sprintf("Tell me about the %s project.", project.Name)] = project.Description
		if len(project.TechStack) > 0 {
			kb[fmt.Sprintf("What technologies were used in the %s project?", project.Name)] =
				fmt.Sprintf("The technologies used in the %s project are: %s.",
					project.Name, strings.Join(project.TechStack, ", "))
		}
		if project.LiveDemo != "" {
			kb[fmt.Sprintf("Is there a live demo for the %s project?", project.Name)] =
				fmt.Sprintf("Yes, you can view the live demo here: %s", project.LiveDemo)
		}
		if project.GitHubLink != "" {
			kb[fmt.Sprintf("Is there a GitHub link for the %s project?", project.Name)] =
				fmt.Sprintf("Yes, you can view the source code here: %s", project.GitHubLink)
		}
	}

	return kb
}

// renderPortfolioContext flattens the content document into plain text the
// assistant can ground its answers in.
func renderPortfolioContext(store *content.Store) string {
	var b strings.Builder

	profile := store.Profile()
	fmt.Fprintf(&b, "Name: %s\nTitle: %s\nLocation: %s\nSummary: %s\n\n",
		profile.Name, profile.Title, profile.Location, profile.Summary)

	b.WriteString("Skills:\n")
	for _, skill := range store.Skills() {
		fmt.Fprintf(&b, "- %s (%s): %d%% proficiency, %s years\n",
			skill.Name, skill.Category, skill.Proficiency,
			strconv.FormatFloat(skill.ExperienceYears, 'f', -1, 64))
	}

	b.WriteString("\nProjects:\n")
	for _, project := range store.Projects() {
		fmt.Fprintf(&b, "- %s (%s): %s Tech: %s\n",
			project.Name, project.Date, project.Description,
			strings.Join(project.TechStack, ", "))
	}

	b.WriteString("\nExperience:\n")
	for _, job := range store.Experience() {
		fmt.Fprintf(&b, "- %s at %s, %s (%s)\n", job.Title, job.Company, job.Location, job.Date)
	}

	b.WriteString("\nEducation:\n")
	for _, edu := range store.Education() {
		fmt.Fprintf(&b, "- %s, %s (%s)\n", edu.Degree, edu.School, edu.Date)
	}

	return b.String()
}

// KnownQuestions returns every question the knowledge base can answer,
// sorted alphabetically. Clients use this to offer suggestions.
func (s *Service) KnownQuestions() []string {
	return append([]string(nil), s.questions...)
}

// Ask answers a visitor question. Exact knowledge base matches are answered
// directly; anything else goes to the assistant when one is configured. The
// assistant failing is not an error, the visitor just gets the fallback.
func (s *Service) Ask(ctx context.Context, question string) Reply {
	if s.tracker != nil {
		s.tracker.TrackChatQuestion()
	}

	question = strings.TrimSpace(question)
	if strings.EqualFold(question, "hello") {
		return Reply{Answer: greetingAnswer, Source: SourceGreeting}
	}

	if answer, ok := s.knowledgeBase[question]; ok {
		return Reply{Answer: answer, Source: SourceKnowledgeBase}
	}

	if s.assistant != nil {
		answer, err := s.assistant.Answer(ctx, s.portfolioContext, question)
		if err != nil {
			s.logger.Warn("assistant answer failed",
				slog.String("question", question),
				slog.Any("error", err))
			return Reply{Answer: fallbackAnswer, Source: SourceFallback}
		}
		return Reply{Answer: answer, Source: SourceAssistant}
	}

	return Reply{Answer: fallbackAnswer, Source: SourceFallback}
}
