package cron

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/rifqipratama/warungkita-backend/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
}

type recordingJob struct {
	name string
	runs int
	err  error
}

func (j *recordingJob) Name() string { return j.name }

func (j *recordingJob) Run(context.Context) error {
	j.runs++
	return j.err
}

func TestRunCycleExecutesAllJobs(t *testing.T) {
	t.Parallel()

	first := &recordingJob{name: "first"}
	second := &recordingJob{name: "second", err: errors.New("boom")}
	third := &recordingJob{name: "third"}

	svc, err := NewService(ServiceParams{
		Logger:   testLogger(),
		Registry: NewRegistry(first, second, third),
		Lock:     NewMutexLock(),
	})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	if err := svc.runCycle(context.Background()); err != nil {
		t.Fatalf("run cycle: %v", err)
	}

	// A failing job must not stop the jobs after it.
	if first.runs != 1 || second.runs != 1 || third.runs != 1 {
		t.Fatalf("runs = %d/%d/%d, want 1/1/1", first.runs, second.runs, third.runs)
	}
}

func TestRunCycleSkipsWhenLockHeld(t *testing.T) {
	t.Parallel()

	job := &recordingJob{name: "held"}
	lock := NewMutexLock()
	svc, err := NewService(ServiceParams{
		Logger:   testLogger(),
		Registry: NewRegistry(job),
		Lock:     lock,
	})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	held, err := lock.Acquire(context.Background())
	if err != nil || !held {
		t.Fatalf("acquire: held=%v err=%v", held, err)
	}
	defer func() { _ = lock.Release(context.Background()) }()

	if err := svc.runCycle(context.Background()); err != nil {
		t.Fatalf("run cycle: %v", err)
	}
	if job.runs != 0 {
		t.Fatalf("runs = %d, want 0 while the lock is held", job.runs)
	}
}

func TestRunStopsOnContextCancel(t *testing.T) {
	t.Parallel()

	svc, err := NewService(ServiceParams{
		Logger:   testLogger(),
		Registry: NewRegistry(),
		Lock:     NewMutexLock(),
		Interval: time.Hour,
	})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := svc.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("run returned %v, want context.Canceled", err)
	}
}

func TestRegistryIgnoresNilJobs(t *testing.T) {
	t.Parallel()

	registry := NewRegistry(nil, &recordingJob{name: "only"})
	registry.Register(nil)

	if got := len(registry.Jobs()); got != 1 {
		t.Fatalf("jobs = %d, want 1", got)
	}
}
