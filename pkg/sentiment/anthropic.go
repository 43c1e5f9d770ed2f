package sentiment

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

type AnthropicScorer struct {
	client *anthropic.Client
	model  anthropic.Model
}

func NewAnthropicScorer(apiKey string) *AnthropicScorer {
	client := anthropic.NewClient(option.WithAPIKey(apiKey))
	return &AnthropicScorer{
		client: &client,
		model:  anthropic.ModelClaudeHaiku4_5,
	}
}

func (s *AnthropicScorer) Score(text string) (string, float64) {
	if strings.TrimSpace(text) == "" {
		return LabelNeutral, 0
	}

	label, score, err := s.classify(text)
	if err != nil {
		slog.Error("anthropic sentiment fallback to neutral", "error", err)
		return LabelNeutral, 0
	}
	return label, score
}

func (s *AnthropicScorer) classify(text string) (string, float64, error) {
	resp, err := s.client.Messages.New(context.Background(), anthropic.MessageNewParams{
		Model:     s.model,
		MaxTokens: 256,
		System: []anthropic.TextBlockParam{
			{Text: systemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(text)),
		},
	})

	if err != nil {
		return "", 0, fmt.Errorf("anthropic API error: %w", err)
	}

	if len(resp.Content) == 0 {
		return "", 0, fmt.Errorf("no response from anthropic")
	}

	return parseClassification(resp.Content[0].Text)
}
