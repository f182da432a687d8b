package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// CheckoutMetrics records counters for the checkout funnel and the simulated
// payment confirmation lifecycle.
type CheckoutMetrics struct {
	sessionsStarted   prometheus.Counter
	stepTransitions   *prometheus.CounterVec
	completed         prometheus.Counter
	paymentBlocked    prometheus.Counter
	confirmTransition *prometheus.CounterVec
}

// NewCheckoutMetrics registers the checkout metrics on the provided registerer.
func NewCheckoutMetrics(reg prometheus.Registerer) *CheckoutMetrics {
	if reg == nil {
		return &CheckoutMetrics{}
	}
	sessionsStarted := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "checkout_sessions_started_total",
		Help: "Checkout sessions created.",
	})
	stepTransitions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "checkout_step_transitions_total",
		Help: "Forward step transitions by destination step.",
	}, []string{"step"})
	completed := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "checkout_sessions_completed_total",
		Help: "Checkout sessions that reached confirmation.",
	})
	paymentBlocked := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "checkout_payment_blocked_total",
		Help: "Payment submissions blocked because no method is shared by every seller.",
	})
	confirmTransition := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "payment_confirmation_transitions_total",
		Help: "Simulated payment confirmation transitions by resulting status.",
	}, []string{"status"})

	reg.MustRegister(sessionsStarted, stepTransitions, completed, paymentBlocked, confirmTransition)

	return &CheckoutMetrics{
		sessionsStarted:   sessionsStarted,
		stepTransitions:   stepTransitions,
		completed:         completed,
		paymentBlocked:    paymentBlocked,
		confirmTransition: confirmTransition,
	}
}

// IncSessionStarted counts a new checkout session.
func (m *CheckoutMetrics) IncSessionStarted() {
	if m == nil || m.sessionsStarted == nil {
		return
	}
	m.sessionsStarted.Inc()
}

// IncStepTransition counts a forward transition into the given step.
func (m *CheckoutMetrics) IncStepTransition(step string) {
	if m == nil || m.stepTransitions == nil {
		return
	}
	m.stepTransitions.WithLabelValues(step).Inc()
}

// IncCompleted counts a session reaching confirmation.
func (m *CheckoutMetrics) IncCompleted() {
	if m == nil || m.completed == nil {
		return
	}
	m.completed.Inc()
}

// IncPaymentBlocked counts a no-common-payment-method rejection.
func (m *CheckoutMetrics) IncPaymentBlocked() {
	if m == nil || m.paymentBlocked == nil {
		return
	}
	m.paymentBlocked.Inc()
}

// IncConfirmation counts a confirmation transition into the given status.
func (m *CheckoutMetrics) IncConfirmation(status string) {
	if m == nil || m.confirmTransition == nil {
		return
	}
	m.confirmTransition.WithLabelValues(status).Inc()
}
