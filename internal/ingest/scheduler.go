package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"sentinews/internal/model"

	"golang.org/x/sync/singleflight"
)

type CycleRunner interface {
	RunCycle(ctx context.Context, topic string) (model.CycleReport, error)
}

// Scheduler drives repeated ingestion cycles over the configured topic
// list. Topics run one at a time to bound outbound request concurrency.
// A single-flight group per topic collapses a manual trigger that fires
// while the timer-driven cycle for the same topic is still in flight.
type Scheduler struct {
	runner   CycleRunner
	topics   []string
	interval time.Duration
	group    singleflight.Group
}

func NewScheduler(runner CycleRunner, topics []string, interval time.Duration) *Scheduler {
	return &Scheduler{
		runner:   runner,
		topics:   topics,
		interval: interval,
	}
}

// Start runs one pass immediately, then ticks until the context is
// cancelled. Cancellation is honored at topic granularity: an in-flight
// topic cycle finishes, remaining topics are skipped.
func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.runAll(ctx)

	for {
		select {
		case <-ticker.C:
			s.runAll(ctx)
		case <-ctx.Done():
			slog.Info("scheduler stopped", "reason", ctx.Err())
			return
		}
	}
}

func (s *Scheduler) runAll(ctx context.Context) {
	slog.Info("starting scheduled ingestion pass", "topics", len(s.topics))

	for _, topic := range s.topics {
		if ctx.Err() != nil {
			return
		}

		if _, err := s.Run(ctx, topic); err != nil {
			slog.Error("cycle failed", "topic", topic, "error", err)
		}
	}
}

// Run executes one cycle for a topic. Concurrent callers for the same
// topic share a single in-flight cycle and its report.
func (s *Scheduler) Run(ctx context.Context, topic string) (model.CycleReport, error) {
	v, err, shared := s.group.Do(topic, func() (result interface{}, runErr error) {
		defer func() {
			if r := recover(); r != nil {
				result = model.CycleReport{Topic: topic}
				runErr = fmt.Errorf("cycle panic for topic %q: %v", topic, r)
			}
		}()
		return s.runner.RunCycle(ctx, topic)
	})

	if shared {
		slog.Info("joined in-flight cycle", "topic", topic)
	}

	report, ok := v.(model.CycleReport)
	if !ok {
		report = model.CycleReport{Topic: topic}
	}
	return report, err
}
