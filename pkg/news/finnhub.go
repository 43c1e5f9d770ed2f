package news

import (
	"context"
	"time"

	finnhub "github.com/Finnhub-Stock-API/finnhub-go/v2"
)

// Finnhub only serves market news, so topics are mapped onto its
// category set; unmapped topics yield an empty result rather than an
// error.
var finnhubCategories = map[string]string{
	"finance":  "general",
	"business": "general",
	"crypto":   "crypto",
	"forex":    "forex",
}

type FinnhubClient struct {
	client *finnhub.DefaultApiService
	limit  int
}

func NewFinnhubClient(apiKey string) *FinnhubClient {
	cfg := finnhub.NewConfiguration()
	cfg.AddDefaultHeader("X-Finnhub-Token", apiKey)
	client := finnhub.NewAPIClient(cfg).DefaultApi
	return &FinnhubClient{client: client, limit: 5}
}

func (c *FinnhubClient) Name() string {
	return "Finnhub"
}

func (c *FinnhubClient) Fetch(ctx context.Context, topic string) ([]Article, error) {
	category, ok := finnhubCategories[topic]
	if !ok {
		return nil, nil
	}

	res, _, err := c.client.MarketNews(ctx).Category(category).Execute()
	if err != nil {
		return nil, err
	}

	var articles []Article
	for _, item := range res {
		if len(articles) >= c.limit {
			break
		}

		a := Article{
			Source: c.Name(),
			Topic:  topic,
		}

		if item.Url != nil {
			a.URL = *item.Url
		}
		if a.URL == "" {
			continue
		}

		if item.Headline != nil {
			a.Title = *item.Headline
		}
		if item.Summary != nil {
			a.Content = *item.Summary
		}
		if item.Datetime != nil {
			a.PublishedAt = time.Unix(*item.Datetime, 0)
		}

		articles = append(articles, a)
	}

	return articles, nil
}
