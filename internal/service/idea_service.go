package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/flashfusion/studio-api/internal/gemini"
)

const suggestionCount = 5

// fallbackSuggestions is served whenever the backend cannot produce a list.
var fallbackSuggestions = []string{
	"Announce our new AI-powered analytics tool for startups",
	"Launch a limited-edition summer flavor of our sparkling water",
	"Promote a weekend flash sale on handmade leather goods",
	"Introduce a carbon-neutral shipping option for all orders",
	"Celebrate our community reaching one million members",
}

type IdeaService interface {
	// Suggestions returns a fixed-size list of short campaign ideas. It
	// never fails; backend trouble yields the static fallback list.
	Suggestions(ctx context.Context) []string
	// Summarize condenses an idea to one short line. Empty input is
	// returned unchanged; backend failures propagate.
	Summarize(ctx context.Context, idea string) (string, error)
}

type ideaService struct {
	backend gemini.Backend
}

func NewIdeaService(backend gemini.Backend) IdeaService {
	return &ideaService{backend: backend}
}

func (s *ideaService) Suggestions(ctx context.Context) []string {
	prompt := "Suggest 5 short, distinct marketing campaign ideas for a modern brand. Respond with one idea per line, no numbering, no extra text."

	text, err := s.backend.GenerateText(ctx, prompt)
	if err != nil {
		slog.Info("idea suggestions failed, using fallback list", "error", err)
		return fallbackSuggestions
	}

	var suggestions []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		suggestions = append(suggestions, line)
		if len(suggestions) == suggestionCount {
			break
		}
	}
	if len(suggestions) < suggestionCount {
		return fallbackSuggestions
	}
	return suggestions
}

func (s *ideaService) Summarize(ctx context.Context, idea string) (string, error) {
	if strings.TrimSpace(idea) == "" {
		return idea, nil
	}

	prompt := "Summarize the following marketing campaign idea in one short sentence. Respond with only the summary: " + idea

	summary, err := s.backend.GenerateText(ctx, prompt)
	if err != nil {
		slog.Error("idea summarization failed", "error", err)
		return "", errors.New("Unable to summarize the idea right now. Please try again later.")
	}
	return summary, nil
}
