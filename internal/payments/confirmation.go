package payments

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/rifqipratama/warungkita-backend/pkg/enums"
	pkgerrors "github.com/rifqipratama/warungkita-backend/pkg/errors"
	"github.com/rifqipratama/warungkita-backend/pkg/logger"
	"github.com/rifqipratama/warungkita-backend/pkg/metrics"
)

const defaultConfirmationDelay = 3 * time.Second

// CancelFunc stops a pending scheduled transition.
type CancelFunc func()

// ScheduleFunc runs fn after the given delay and returns a cancel handle.
type ScheduleFunc func(delay time.Duration, fn func()) CancelFunc

func timerSchedule(delay time.Duration, fn func()) CancelFunc {
	timer := time.AfterFunc(delay, fn)
	return func() { timer.Stop() }
}

// ConfirmationTracker simulates post-checkout payment confirmation. There is
// no payment gateway behind it: QRIS sessions move awaiting_payment ->
// confirming on the buyer's "I have paid" assertion and confirming ->
// confirmed after a fixed delay, unconditionally. Every other method lands on
// pending_instructions right away. Tearing a session down before the delay
// fires turns the pending callback into a no-op.
type ConfirmationTracker struct {
	mu       sync.Mutex
	entries  map[uuid.UUID]*confirmationEntry
	delay    time.Duration
	schedule ScheduleFunc
	logg     *logger.Logger
	metrics  *metrics.CheckoutMetrics
}

type confirmationEntry struct {
	status enums.PaymentStatus
	cancel CancelFunc
}

// TrackerParams configure the confirmation tracker.
type TrackerParams struct {
	Delay    time.Duration
	Schedule ScheduleFunc
	Logger   *logger.Logger
	Metrics  *metrics.CheckoutMetrics
}

// NewConfirmationTracker builds the simulated confirmation tracker.
func NewConfirmationTracker(params TrackerParams) *ConfirmationTracker {
	delay := params.Delay
	if delay <= 0 {
		delay = defaultConfirmationDelay
	}
	schedule := params.Schedule
	if schedule == nil {
		schedule = timerSchedule
	}
	return &ConfirmationTracker{
		entries:  map[uuid.UUID]*confirmationEntry{},
		delay:    delay,
		schedule: schedule,
		logg:     params.Logger,
		metrics:  params.Metrics,
	}
}

// Begin registers a confirmed checkout session for tracking.
func (t *ConfirmationTracker) Begin(sessionID uuid.UUID, method enums.PaymentMethod) enums.PaymentStatus {
	status := enums.PaymentStatusPendingInstructions
	if method == enums.PaymentMethodQRIS {
		status = enums.PaymentStatusAwaitingPayment
	}

	t.mu.Lock()
	t.entries[sessionID] = &confirmationEntry{status: status}
	t.mu.Unlock()

	t.recordTransition(status)
	return status
}

// Status reports the current confirmation status for the session.
func (t *ConfirmationTracker) Status(sessionID uuid.UUID) (enums.PaymentStatus, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	entry, ok := t.entries[sessionID]
	if !ok {
		return "", pkgerrors.New(pkgerrors.CodeNotFound, "no payment tracked for session")
	}
	return entry.status, nil
}

// MarkPaid handles the buyer's "I have paid" assertion for a QRIS session
// and schedules the simulated confirmation.
func (t *ConfirmationTracker) MarkPaid(ctx context.Context, sessionID uuid.UUID) (enums.PaymentStatus, error) {
	t.mu.Lock()

	entry, ok := t.entries[sessionID]
	if !ok {
		t.mu.Unlock()
		return "", pkgerrors.New(pkgerrors.CodeNotFound, "no payment tracked for session")
	}
	if entry.status != enums.PaymentStatusAwaitingPayment {
		status := entry.status
		t.mu.Unlock()
		return "", pkgerrors.New(pkgerrors.CodeStateConflict, "payment is not awaiting confirmation").
			WithDetails(map[string]any{"status": status})
	}

	entry.status = enums.PaymentStatusConfirming
	entry.cancel = t.schedule(t.delay, func() { t.confirm(sessionID) })
	t.mu.Unlock()

	if t.logg != nil {
		t.logg.Info(t.logg.WithSessionID(ctx, sessionID.String()), "qris confirmation scheduled")
	}
	t.recordTransition(enums.PaymentStatusConfirming)
	return enums.PaymentStatusConfirming, nil
}

// confirm is the delayed transition. The session may have been torn down in
// the meantime, so liveness is re-checked under the lock.
func (t *ConfirmationTracker) confirm(sessionID uuid.UUID) {
	t.mu.Lock()

	entry, ok := t.entries[sessionID]
	if !ok || entry.status != enums.PaymentStatusConfirming {
		t.mu.Unlock()
		return
	}
	entry.status = enums.PaymentStatusConfirmed
	entry.cancel = nil
	t.mu.Unlock()

	t.recordTransition(enums.PaymentStatusConfirmed)
}

// Teardown cancels any pending transition and forgets the session.
func (t *ConfirmationTracker) Teardown(sessionID uuid.UUID) {
	t.mu.Lock()
	entry, ok := t.entries[sessionID]
	if ok {
		delete(t.entries, sessionID)
	}
	t.mu.Unlock()

	if ok && entry.cancel != nil {
		entry.cancel()
	}
}

func (t *ConfirmationTracker) recordTransition(status enums.PaymentStatus) {
	if t.metrics == nil {
		return
	}
	t.metrics.IncConfirmation(status.String())
}
