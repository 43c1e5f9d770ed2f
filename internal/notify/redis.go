package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"sentinews/db"
	"sentinews/internal/model"
)

// RedisDispatcher enqueues digest envelopes onto a Redis list consumed
// by the external mailer worker.
type RedisDispatcher struct {
	queue *db.Queue
}

func NewRedisDispatcher(queue *db.Queue) *RedisDispatcher {
	return &RedisDispatcher{queue: queue}
}

func (d *RedisDispatcher) Send(ctx context.Context, contact string, topic string, articles []model.ScoredArticle) error {
	envelope := digestEnvelope{
		Contact:  contact,
		Topic:    topic,
		Articles: toDigestArticles(articles),
	}

	data, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("marshal digest: %w", err)
	}

	if err := d.queue.Push(ctx, string(data)); err != nil {
		return fmt.Errorf("enqueue digest: %w", err)
	}

	return nil
}

type digestEnvelope struct {
	Contact  string          `json:"contact"`
	Topic    string          `json:"topic"`
	Articles []digestArticle `json:"articles"`
}

type digestArticle struct {
	Title       string  `json:"title"`
	Source      string  `json:"source"`
	URL         string  `json:"url"`
	PublishedAt string  `json:"published_at"`
	Sentiment   string  `json:"sentiment"`
	Score       float64 `json:"score"`
}

func toDigestArticles(articles []model.ScoredArticle) []digestArticle {
	out := make([]digestArticle, 0, len(articles))
	for _, a := range articles {
		out = append(out, digestArticle{
			Title:       a.Title,
			Source:      a.Source,
			URL:         a.URL,
			PublishedAt: a.PublishedAt.Format(time.RFC3339),
			Sentiment:   a.Sentiment,
			Score:       a.Score,
		})
	}
	return out
}
