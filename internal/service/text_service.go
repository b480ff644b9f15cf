package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/flashfusion/studio-api/internal/gemini"
	"github.com/flashfusion/studio-api/internal/models"
)

// Built-in platforms and their default prompt rules. A platform config may
// override the rule with custom instructions.
var platformRules = map[string]string{
	"LinkedIn":  "professional post for a business audience, around 1500 characters. Include 3-5 relevant hashtags.",
	"Twitter":   "concise and punchy tweet, under 280 characters. Use 1-2 relevant hashtags.",
	"Instagram": "engaging and visually-focused caption, around 150 characters. Include 10-15 relevant hashtags.",
}

// DefaultPlatforms returns one enabled config per built-in platform.
func DefaultPlatforms() []models.PlatformConfig {
	return []models.PlatformConfig{
		{Platform: "LinkedIn", Enabled: true},
		{Platform: "Twitter", Enabled: true},
		{Platform: "Instagram", Enabled: true},
	}
}

type TextService interface {
	GeneratePost(ctx context.Context, platform string, idea string, tone models.Tone, kit *models.BrandKit, customInstructions string) models.PlatformPost
}

type textService struct {
	backend gemini.Backend
}

func NewTextService(backend gemini.Backend) TextService {
	return &textService{backend: backend}
}

// GeneratePost never fails: any backend error degrades to a placeholder
// post so one bad platform cannot sink the campaign.
func (s *textService) GeneratePost(ctx context.Context, platform string, idea string, tone models.Tone, kit *models.BrandKit, customInstructions string) models.PlatformPost {
	rule := strings.TrimSpace(customInstructions)
	if rule == "" {
		rule = platformRules[platform]
	}

	prompt := fmt.Sprintf("You are an expert social media manager. Generate a %s %s post based on the following idea: %q. Follow this rule: %q.", tone, platform, idea, rule)
	if kit != nil && kit.Voice != "" {
		prompt += fmt.Sprintf(" Adopt a %s voice.", kit.Voice)
	}
	prompt += " Respond with only the text for the post."

	text, err := s.backend.GenerateText(ctx, prompt)
	if err != nil {
		slog.Error("text generation failed", "platform", platform, "error", err)
		return models.PlatformPost{
			Platform: platform,
			Post:     fmt.Sprintf("Failed to generate content for %s.", platform),
		}
	}

	if kit != nil {
		text = ApplyBrandLinting(text, kit.BannedWords)
	}

	return models.PlatformPost{Platform: platform, Post: text}
}
