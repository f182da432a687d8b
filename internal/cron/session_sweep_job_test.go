package cron

import (
	"context"
	"testing"
	"time"
)

type stubSweeper struct {
	removed int
	calls   int
	lastNow time.Time
}

func (s *stubSweeper) SweepExpired(_ context.Context, now time.Time) int {
	s.calls++
	s.lastNow = now
	return s.removed
}

func TestSessionSweepJobRuns(t *testing.T) {
	t.Parallel()

	sweeper := &stubSweeper{removed: 2}
	job, err := NewSessionSweepJob(SessionSweepJobParams{
		Logger:   testLogger(),
		Checkout: sweeper,
	})
	if err != nil {
		t.Fatalf("new job: %v", err)
	}

	if job.Name() != "checkout-session-sweep" {
		t.Fatalf("name = %q", job.Name())
	}
	if err := job.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	if sweeper.calls != 1 {
		t.Fatalf("calls = %d, want 1", sweeper.calls)
	}
	if sweeper.lastNow.IsZero() {
		t.Fatal("sweep must receive the current time")
	}
}

func TestNewSessionSweepJobGuards(t *testing.T) {
	t.Parallel()

	if _, err := NewSessionSweepJob(SessionSweepJobParams{Logger: testLogger()}); err == nil {
		t.Fatal("expected error without checkout service")
	}
	if _, err := NewSessionSweepJob(SessionSweepJobParams{Checkout: &stubSweeper{}}); err == nil {
		t.Fatal("expected error without logger")
	}
}
