package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/lshigami/mcqdesk/config"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// TextGenerator sends one prompt to an LLM and returns the text of its reply.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

type geminiTextGenerator struct {
	model *genai.GenerativeModel
}

// NewGeminiTextGenerator returns nil when GEMINI_API_KEY is unset; the
// question generator then reports itself unavailable.
func NewGeminiTextGenerator(lc fx.Lifecycle, cfg *config.Config) (TextGenerator, error) {
	if cfg.Gemini.APIKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set. AI question generation will be unavailable.")
		return nil, nil
	}
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(cfg.Gemini.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error { return client.Close() },
	})

	model := client.GenerativeModel(cfg.Gemini.Model)
	model.ResponseMIMEType = "application/json"
	model.SetTemperature(0.7)
	return &geminiTextGenerator{model: model}, nil
}

func (g *geminiTextGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini API error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini returned no content")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("gemini returned no text content")
	}
	return sb.String(), nil
}
