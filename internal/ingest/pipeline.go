package ingest

import (
	"context"
	"log/slog"
	"time"

	"sentinews/internal/model"
	"sentinews/pkg/news"
	"sentinews/pkg/sentiment"
)

type ArticleStore interface {
	Persist(ctx context.Context, article *model.Article) (bool, error)
	SaveSentiment(ctx context.Context, newsID int64, sentiment string, score float64) error
}

type Notifier interface {
	Notify(ctx context.Context, topic string) error
}

// Pipeline runs one full ingestion cycle for a topic: aggregate,
// persist, score fresh inserts, then notify.
type Pipeline struct {
	aggregator *Aggregator
	store      ArticleStore
	scorer     sentiment.Scorer
	notifier   Notifier
	opTimeout  time.Duration
}

func NewPipeline(aggregator *Aggregator, store ArticleStore, scorer sentiment.Scorer, notifier Notifier, opTimeout time.Duration) *Pipeline {
	return &Pipeline{
		aggregator: aggregator,
		store:      store,
		scorer:     scorer,
		notifier:   notifier,
		opTimeout:  opTimeout,
	}
}

// RunCycle returns an error only when the context is cancelled;
// per-article and notification failures are isolated, logged, and
// reflected in the report.
func (p *Pipeline) RunCycle(ctx context.Context, topic string) (model.CycleReport, error) {
	report := model.CycleReport{Topic: topic}

	articles := p.aggregator.Aggregate(ctx, topic)
	report.Unique = len(articles)

	if err := ctx.Err(); err != nil {
		return report, err
	}

	for _, article := range articles {
		outcome := p.persistOne(ctx, article)
		if outcome.Err != nil {
			slog.Error("error persisting article", "topic", topic, "url", outcome.URL, "error", outcome.Err)
		}
		report.Outcomes = append(report.Outcomes, outcome)
	}

	slog.Info("cycle persisted", "topic", topic,
		"unique", report.Unique, "saved", report.Inserted(),
		"duplicated", report.Duplicates(), "errors", report.Failed())

	if len(articles) > 0 {
		notifyCtx, cancel := context.WithTimeout(ctx, p.opTimeout)
		err := p.notifier.Notify(notifyCtx, topic)
		cancel()
		if err != nil {
			slog.Error("error notifying subscribers", "topic", topic, "error", err)
		}
	}

	return report, ctx.Err()
}

func (p *Pipeline) persistOne(ctx context.Context, src news.Article) model.ArticleOutcome {
	opCtx, cancel := context.WithTimeout(ctx, p.opTimeout)
	defer cancel()

	article := model.Article{
		Title:       src.Title,
		Source:      src.Source,
		PublishedAt: src.PublishedAt,
		Content:     src.Content,
		URL:         src.URL,
		Industry:    src.Topic,
	}

	inserted, err := p.store.Persist(opCtx, &article)
	if err != nil {
		return model.ArticleOutcome{URL: src.URL, Err: err}
	}

	if !inserted {
		// Known URL: never recompute or duplicate its score.
		return model.ArticleOutcome{URL: src.URL, Inserted: false}
	}

	text := article.Content
	if text == "" {
		text = article.Title
	}
	label, score := p.scorer.Score(text)

	if err := p.store.SaveSentiment(opCtx, article.ID, label, score); err != nil {
		return model.ArticleOutcome{URL: src.URL, Inserted: true, Err: err}
	}

	return model.ArticleOutcome{URL: src.URL, Inserted: true}
}
