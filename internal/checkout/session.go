package checkout

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/rifqipratama/warungkita-backend/internal/cart"
	"github.com/rifqipratama/warungkita-backend/pkg/enums"
	pkgerrors "github.com/rifqipratama/warungkita-backend/pkg/errors"
	"github.com/rifqipratama/warungkita-backend/pkg/types"
)

// Session is one checkout attempt. It always starts at the address step and
// accumulates step data as the buyer walks forward; back navigation keeps the
// data so steps re-display what was entered. Confirmation is terminal: a new
// order always gets a brand-new session.
type Session struct {
	ID             uuid.UUID             `json:"id"`
	CartID         uuid.UUID             `json:"cart_id"`
	Step           enums.CheckoutStep    `json:"step"`
	Address        *types.Address        `json:"address,omitempty"`
	ShippingOption *types.ShippingOption `json:"shipping_option,omitempty"`
	PaymentMethod  enums.PaymentMethod   `json:"payment_method,omitempty"`

	// AvailablePayments is resolved when the session enters the payment step.
	// NoCommonPayment marks the terminal blocking condition where the cart's
	// sellers share no payment method at all.
	AvailablePayments *types.PaymentOptions `json:"available_payments,omitempty"`
	NoCommonPayment   bool                  `json:"no_common_payment"`

	// Items and Totals are frozen when the session reaches confirmation.
	Items  []cart.Item        `json:"items,omitempty"`
	Totals *types.OrderTotals `json:"totals,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (s *Session) clone() *Session {
	dup := *s
	if s.Address != nil {
		addr := *s.Address
		dup.Address = &addr
	}
	if s.ShippingOption != nil {
		option := *s.ShippingOption
		dup.ShippingOption = &option
	}
	if s.AvailablePayments != nil {
		available := *s.AvailablePayments
		dup.AvailablePayments = &available
	}
	if s.Totals != nil {
		totals := *s.Totals
		dup.Totals = &totals
	}
	if s.Items != nil {
		dup.Items = make([]cart.Item, len(s.Items))
		copy(dup.Items, s.Items)
	}
	return &dup
}

// Registry tracks live checkout sessions in process memory.
type Registry struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*Session
}

// NewRegistry builds an empty session registry.
func NewRegistry() *Registry {
	return &Registry{sessions: map[uuid.UUID]*Session{}}
}

func (r *Registry) add(session *Session) {
	r.mu.Lock()
	r.sessions[session.ID] = session
	r.mu.Unlock()
}

func (r *Registry) get(sessionID uuid.UUID) (*Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[sessionID]
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "checkout session not found")
	}
	return session.clone(), nil
}

func (r *Registry) mutate(sessionID uuid.UUID, fn func(*Session) error) (*Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[sessionID]
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "checkout session not found")
	}
	if err := fn(session); err != nil {
		return nil, err
	}
	return session.clone(), nil
}

func (r *Registry) remove(sessionID uuid.UUID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[sessionID]; !ok {
		return false
	}
	delete(r.sessions, sessionID)
	return true
}

// expire removes every session past its deadline and returns their IDs so
// the caller can cancel any pending payment confirmation.
func (r *Registry) expire(now time.Time) []uuid.UUID {
	r.mu.Lock()
	defer r.mu.Unlock()

	var expired []uuid.UUID
	for id, session := range r.sessions {
		if session.ExpiresAt.Before(now) {
			expired = append(expired, id)
			delete(r.sessions, id)
		}
	}
	return expired
}
