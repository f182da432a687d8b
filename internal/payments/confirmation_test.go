package payments

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/rifqipratama/warungkita-backend/pkg/enums"
	pkgerrors "github.com/rifqipratama/warungkita-backend/pkg/errors"
)

// manualScheduler captures scheduled callbacks so tests control time.
type manualScheduler struct {
	pending  []func()
	canceled int
}

func (s *manualScheduler) schedule(_ time.Duration, fn func()) CancelFunc {
	s.pending = append(s.pending, fn)
	return func() { s.canceled++ }
}

func (s *manualScheduler) fire() {
	pending := s.pending
	s.pending = nil
	for _, fn := range pending {
		fn()
	}
}

func newTestTracker(sched *manualScheduler) *ConfirmationTracker {
	return NewConfirmationTracker(TrackerParams{Schedule: sched.schedule})
}

func TestQRISWalksAwaitingConfirmingConfirmed(t *testing.T) {
	sched := &manualScheduler{}
	tracker := newTestTracker(sched)
	sessionID := uuid.New()

	status := tracker.Begin(sessionID, enums.PaymentMethodQRIS)
	if status != enums.PaymentStatusAwaitingPayment {
		t.Fatalf("begin status = %s, want awaiting_payment", status)
	}

	status, err := tracker.MarkPaid(context.Background(), sessionID)
	if err != nil {
		t.Fatalf("mark paid: %v", err)
	}
	if status != enums.PaymentStatusConfirming {
		t.Fatalf("status after assertion = %s, want confirming", status)
	}

	// The delay elapsing confirms unconditionally; no real payment exists.
	sched.fire()

	status, err = tracker.Status(sessionID)
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if status != enums.PaymentStatusConfirmed {
		t.Fatalf("status after delay = %s, want confirmed", status)
	}
}

func TestNonQRISLandsOnPendingInstructions(t *testing.T) {
	sched := &manualScheduler{}
	tracker := newTestTracker(sched)
	sessionID := uuid.New()

	status := tracker.Begin(sessionID, enums.PaymentMethodVABCA)
	if status != enums.PaymentStatusPendingInstructions {
		t.Fatalf("bank transfer status = %s, want pending_instructions", status)
	}

	_, err := tracker.MarkPaid(context.Background(), sessionID)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeStateConflict {
		t.Fatalf("expected state conflict for non-qris assertion, got %v", err)
	}
}

func TestTeardownBeforeDelayMakesCallbackNoOp(t *testing.T) {
	sched := &manualScheduler{}
	tracker := newTestTracker(sched)
	sessionID := uuid.New()

	tracker.Begin(sessionID, enums.PaymentMethodQRIS)
	if _, err := tracker.MarkPaid(context.Background(), sessionID); err != nil {
		t.Fatalf("mark paid: %v", err)
	}

	tracker.Teardown(sessionID)
	if sched.canceled != 1 {
		t.Fatalf("expected pending timer cancel, got %d", sched.canceled)
	}

	// Even if the callback still fires, it must not resurrect the session.
	sched.fire()

	if _, err := tracker.Status(sessionID); pkgerrors.As(err) == nil {
		t.Fatal("torn-down session must not be tracked")
	}
}

func TestMarkPaidTwiceRejected(t *testing.T) {
	sched := &manualScheduler{}
	tracker := newTestTracker(sched)
	sessionID := uuid.New()

	tracker.Begin(sessionID, enums.PaymentMethodQRIS)
	if _, err := tracker.MarkPaid(context.Background(), sessionID); err != nil {
		t.Fatalf("first mark paid: %v", err)
	}
	if _, err := tracker.MarkPaid(context.Background(), sessionID); err == nil {
		t.Fatal("second assertion while confirming must be rejected")
	}
}

func TestRealTimerPathConfirms(t *testing.T) {
	tracker := NewConfirmationTracker(TrackerParams{Delay: 5 * time.Millisecond})
	sessionID := uuid.New()

	tracker.Begin(sessionID, enums.PaymentMethodQRIS)
	if _, err := tracker.MarkPaid(context.Background(), sessionID); err != nil {
		t.Fatalf("mark paid: %v", err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for {
		status, err := tracker.Status(sessionID)
		if err != nil {
			t.Fatalf("status: %v", err)
		}
		if status == enums.PaymentStatusConfirmed {
			return
		}
		if time.Now().After(deadline) {
			t.Fatalf("timer never confirmed, stuck at %s", status)
		}
		time.Sleep(2 * time.Millisecond)
	}
}
