package notify

import (
	"context"
	"fmt"
	"log/slog"

	"sentinews/internal/model"
)

type SubscriberSource interface {
	SubscribersForTopic(ctx context.Context, industry string) ([]string, error)
}

type DigestSource interface {
	RecentByTopic(ctx context.Context, industry string, limit int) ([]model.ScoredArticle, error)
}

// Dispatcher delivers one digest to one contact. Delivery is
// at-least-once, best-effort; retries are the mechanism's concern.
type Dispatcher interface {
	Send(ctx context.Context, contact string, topic string, articles []model.ScoredArticle) error
}

// Notifier resolves a topic's subscribers and sends each a digest of
// the most recent persisted articles for that topic. The digest is
// re-read from the store after the batch commits so it reflects durable
// state, not just the in-memory batch.
type Notifier struct {
	subscribers SubscriberSource
	digests     DigestSource
	dispatcher  Dispatcher
	digestSize  int
}

func NewNotifier(subscribers SubscriberSource, digests DigestSource, dispatcher Dispatcher, digestSize int) *Notifier {
	return &Notifier{
		subscribers: subscribers,
		digests:     digests,
		dispatcher:  dispatcher,
		digestSize:  digestSize,
	}
}

func (n *Notifier) Notify(ctx context.Context, topic string) error {
	contacts, err := n.subscribers.SubscribersForTopic(ctx, topic)
	if err != nil {
		return fmt.Errorf("subscriber lookup for %q: %w", topic, err)
	}

	if len(contacts) == 0 {
		return nil
	}

	articles, err := n.digests.RecentByTopic(ctx, topic, n.digestSize)
	if err != nil {
		return fmt.Errorf("digest lookup for %q: %w", topic, err)
	}

	var sent int
	for _, contact := range contacts {
		if err := n.dispatcher.Send(ctx, contact, topic, articles); err != nil {
			slog.Error("error dispatching digest", "topic", topic, "contact", contact, "error", err)
			continue
		}
		sent++
	}

	slog.Info("digests dispatched", "topic", topic, "subscribers", len(contacts), "sent", sent)
	return nil
}
