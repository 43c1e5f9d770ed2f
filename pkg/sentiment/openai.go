package sentiment

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const systemPrompt = `You are a sentiment classifier for news articles.

Given the text of an article, classify its overall sentiment.

Output as JSON only, no other text:
{
  "sentiment": "one of: positive, neutral, negative",
  "score": number between -1.0 (most negative) and 1.0 (most positive)
}`

// OpenAIScorer is an LLM-backed strategy. The Scorer contract requires
// a total function, so any API or parse failure degrades to a neutral
// result instead of surfacing an error.
type OpenAIScorer struct {
	client *openai.Client
	model  openai.ChatModel
}

func NewOpenAIScorer(apiKey string) *OpenAIScorer {
	client := openai.NewClient(option.WithAPIKey(apiKey))
	return &OpenAIScorer{
		client: &client,
		model:  openai.ChatModelGPT4oMini,
	}
}

func (s *OpenAIScorer) Score(text string) (string, float64) {
	if strings.TrimSpace(text) == "" {
		return LabelNeutral, 0
	}

	label, score, err := s.classify(text)
	if err != nil {
		slog.Error("openai sentiment fallback to neutral", "error", err)
		return LabelNeutral, 0
	}
	return label, score
}

func (s *OpenAIScorer) classify(text string) (string, float64, error) {
	resp, err := s.client.Chat.Completions.New(context.Background(), openai.ChatCompletionNewParams{
		Model: s.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(text),
		},
	})

	if err != nil {
		return "", 0, fmt.Errorf("openai API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", 0, fmt.Errorf("no response from openai")
	}

	return parseClassification(resp.Choices[0].Message.Content)
}

func parseClassification(content string) (string, float64, error) {
	content = cleanJSONResponse(content)

	var parsed struct {
		Sentiment string  `json:"sentiment"`
		Score     float64 `json:"score"`
	}

	if err := json.Unmarshal([]byte(content), &parsed); err != nil {
		return "", 0, fmt.Errorf("failed to parse response: %w, content: %s", err, content)
	}

	score := clamp(parsed.Score)

	switch parsed.Sentiment {
	case LabelPositive, LabelNeutral, LabelNegative:
		return parsed.Sentiment, score, nil
	default:
		// Model wandered off the label set; derive it from the score.
		return labelFor(score), score, nil
	}
}

func cleanJSONResponse(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	// Some model responses include extra prose around JSON.
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start >= 0 && end > start {
		content = content[start : end+1]
	}
	return content
}
