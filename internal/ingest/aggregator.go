package ingest

import (
	"context"
	"log/slog"
	"time"

	"sentinews/pkg/news"

	"golang.org/x/sync/errgroup"
)

// Aggregator fans a topic out to every configured provider client and
// joins the results. Client order is provider priority: when two
// providers return the same URL, the earlier client's article survives.
type Aggregator struct {
	clients []news.Client
	timeout time.Duration
}

func NewAggregator(clients []news.Client, timeout time.Duration) *Aggregator {
	return &Aggregator{clients: clients, timeout: timeout}
}

// Aggregate never fails as a whole: a provider error is logged and
// treated as an empty list so sibling providers still contribute.
func (a *Aggregator) Aggregate(ctx context.Context, topic string) []news.Article {
	results := make([][]news.Article, len(a.clients))

	var g errgroup.Group
	for i, client := range a.clients {
		g.Go(func() error {
			fetchCtx, cancel := context.WithTimeout(ctx, a.timeout)
			defer cancel()

			articles, err := client.Fetch(fetchCtx, topic)
			if err != nil {
				slog.Error("provider fetch failed", "provider", client.Name(), "topic", topic, "error", err)
				return nil
			}

			results[i] = articles
			return nil
		})
	}
	g.Wait()

	return dedupeByURL(results)
}

func dedupeByURL(batches [][]news.Article) []news.Article {
	seen := make(map[string]struct{})
	var unique []news.Article

	for _, batch := range batches {
		for _, article := range batch {
			if article.URL == "" {
				continue
			}
			if _, ok := seen[article.URL]; ok {
				continue
			}
			seen[article.URL] = struct{}{}
			unique = append(unique, article)
		}
	}

	return unique
}
