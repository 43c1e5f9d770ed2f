package news

import (
	"context"
	"time"
)

type Article struct {
	Title       string
	Source      string
	PublishedAt time.Time
	Content     string
	URL         string
	Topic       string
}

type Client interface {
	Fetch(ctx context.Context, topic string) ([]Article, error)
	Name() string
}
