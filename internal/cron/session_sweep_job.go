package cron

import (
	"context"
	"fmt"
	"time"

	"github.com/rifqipratama/warungkita-backend/pkg/logger"
)

type expiredSessionSweeper interface {
	SweepExpired(ctx context.Context, now time.Time) int
}

// SessionSweepJobParams configure the checkout session sweeper.
type SessionSweepJobParams struct {
	Logger   *logger.Logger
	Checkout expiredSessionSweeper
}

// NewSessionSweepJob builds the job that drops checkout sessions past their
// TTL and cancels their pending payment confirmations.
func NewSessionSweepJob(params SessionSweepJobParams) (Job, error) {
	if params.Logger == nil {
		return nil, fmt.Errorf("logger required")
	}
	if params.Checkout == nil {
		return nil, fmt.Errorf("checkout service required")
	}
	return &sessionSweepJob{
		logg:     params.Logger,
		checkout: params.Checkout,
		now:      time.Now,
	}, nil
}

type sessionSweepJob struct {
	logg     *logger.Logger
	checkout expiredSessionSweeper
	now      func() time.Time
}

func (j *sessionSweepJob) Name() string { return "checkout-session-sweep" }

func (j *sessionSweepJob) Run(ctx context.Context) error {
	removed := j.checkout.SweepExpired(ctx, j.now().UTC())
	logCtx := j.logg.WithField(ctx, "removed", removed)
	j.logg.Info(logCtx, "checkout session sweep complete")
	return nil
}
