package ingest

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"sentinews/internal/model"

	"github.com/go-playground/assert/v2"
)

type countingRunner struct {
	calls int32
	delay time.Duration
}

func (r *countingRunner) RunCycle(ctx context.Context, topic string) (model.CycleReport, error) {
	atomic.AddInt32(&r.calls, 1)
	if r.delay > 0 {
		time.Sleep(r.delay)
	}
	return model.CycleReport{Topic: topic}, nil
}

func TestRunCollapsesConcurrentCyclesForSameTopic(t *testing.T) {
	runner := &countingRunner{delay: 100 * time.Millisecond}
	s := NewScheduler(runner, []string{"technology"}, time.Hour)

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			report, err := s.Run(context.Background(), "technology")
			assert.Equal(t, nil, err)
			assert.Equal(t, "technology", report.Topic)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&runner.calls))
}

func TestRunDistinctTopicsDoNotShare(t *testing.T) {
	runner := &countingRunner{delay: 50 * time.Millisecond}
	s := NewScheduler(runner, []string{"technology", "finance"}, time.Hour)

	var wg sync.WaitGroup
	for _, topic := range []string{"technology", "finance"} {
		wg.Add(1)
		go func(topic string) {
			defer wg.Done()
			s.Run(context.Background(), topic)
		}(topic)
	}
	wg.Wait()

	assert.Equal(t, int32(2), atomic.LoadInt32(&runner.calls))
}

type panickingRunner struct{}

func (r *panickingRunner) RunCycle(ctx context.Context, topic string) (model.CycleReport, error) {
	panic("scorer exploded")
}

func TestRunRecoversFromPanic(t *testing.T) {
	s := NewScheduler(&panickingRunner{}, []string{"technology"}, time.Hour)

	report, err := s.Run(context.Background(), "technology")

	assert.NotEqual(t, nil, err)
	assert.Equal(t, "technology", report.Topic)
}

type blockingRunner struct {
	started chan string
}

func (r *blockingRunner) RunCycle(ctx context.Context, topic string) (model.CycleReport, error) {
	r.started <- topic
	<-ctx.Done()
	return model.CycleReport{Topic: topic}, ctx.Err()
}

func TestStartStopsOnContextCancel(t *testing.T) {
	runner := &blockingRunner{started: make(chan string, 1)}
	s := NewScheduler(runner, []string{"technology", "finance"}, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	// first topic is in flight; cancelling must skip the rest and return
	<-runner.started
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler did not stop after cancellation")
	}
}
