package checkout

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/rifqipratama/warungkita-backend/internal/cart"
	"github.com/rifqipratama/warungkita-backend/internal/payments"
	"github.com/rifqipratama/warungkita-backend/internal/pricing"
	"github.com/rifqipratama/warungkita-backend/pkg/db/models"
	"github.com/rifqipratama/warungkita-backend/pkg/enums"
	pkgerrors "github.com/rifqipratama/warungkita-backend/pkg/errors"
	"github.com/rifqipratama/warungkita-backend/pkg/logger"
	"github.com/rifqipratama/warungkita-backend/pkg/metrics"
	"github.com/rifqipratama/warungkita-backend/pkg/types"
)

const defaultSessionTTL = 30 * time.Minute

// Service drives the linear checkout wizard: address -> shipping -> payment ->
// confirmation, forward one step at a time, backward one step at a time, with
// confirmation terminal.
type Service interface {
	Start(ctx context.Context, cartID uuid.UUID) (*Session, error)
	Get(ctx context.Context, sessionID uuid.UUID) (*Session, error)
	SubmitAddress(ctx context.Context, sessionID uuid.UUID, address types.Address) (*Session, error)
	SubmitShipping(ctx context.Context, sessionID uuid.UUID, optionID string) (*Session, error)
	SubmitPayment(ctx context.Context, sessionID uuid.UUID, method enums.PaymentMethod) (*Session, error)
	Back(ctx context.Context, sessionID uuid.UUID) (*Session, error)
	Abandon(ctx context.Context, sessionID uuid.UUID) error
	MarkQRISPaid(ctx context.Context, sessionID uuid.UUID) (enums.PaymentStatus, error)
	PaymentStatus(ctx context.Context, sessionID uuid.UUID) (enums.PaymentStatus, error)
	ShippingOptions(ctx context.Context) []types.ShippingOption
	SweepExpired(ctx context.Context, now time.Time) int
}

type cartReader interface {
	Get(ctx context.Context, cartID uuid.UUID) (*cart.Cart, error)
}

type sellerLoader interface {
	FindSellersByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Seller, error)
}

type service struct {
	registry *Registry
	carts    cartReader
	sellers  sellerLoader
	tracker  *payments.ConfirmationTracker
	ttl      time.Duration
	logg     *logger.Logger
	metrics  *metrics.CheckoutMetrics
}

// ServiceParams configure the checkout service.
type ServiceParams struct {
	Registry *Registry
	Carts    cartReader
	Sellers  sellerLoader
	Tracker  *payments.ConfirmationTracker
	TTL      time.Duration
	Logger   *logger.Logger
	Metrics  *metrics.CheckoutMetrics
}

// NewService builds the checkout service.
func NewService(params ServiceParams) (Service, error) {
	if params.Registry == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "session registry required")
	}
	if params.Carts == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "cart reader required")
	}
	if params.Sellers == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "seller loader required")
	}
	if params.Tracker == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "confirmation tracker required")
	}
	ttl := params.TTL
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &service{
		registry: params.Registry,
		carts:    params.Carts,
		sellers:  params.Sellers,
		tracker:  params.Tracker,
		ttl:      ttl,
		logg:     params.Logger,
		metrics:  params.Metrics,
	}, nil
}

func (s *service) Start(ctx context.Context, cartID uuid.UUID) (*Session, error) {
	if cartID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart id required")
	}

	record, err := s.carts.Get(ctx, cartID)
	if err != nil {
		return nil, err
	}
	if len(record.Items) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart contains no items")
	}

	now := time.Now().UTC()
	session := &Session{
		ID:        uuid.New(),
		CartID:    cartID,
		Step:      enums.CheckoutStepAddress,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}
	s.registry.add(session)

	if s.logg != nil {
		s.logg.Info(s.logg.WithSessionID(ctx, session.ID.String()), "checkout session started")
	}
	s.metrics.IncSessionStarted()
	return session.clone(), nil
}

func (s *service) Get(ctx context.Context, sessionID uuid.UUID) (*Session, error) {
	if sessionID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "session id required")
	}
	return s.registry.get(sessionID)
}

func (s *service) SubmitAddress(ctx context.Context, sessionID uuid.UUID, address types.Address) (*Session, error) {
	if sessionID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "session id required")
	}
	if fieldErrs := address.FieldErrors(); len(fieldErrs) > 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "address is incomplete").WithDetails(fieldErrs)
	}
	normalized := address.Normalize()

	session, err := s.registry.mutate(sessionID, func(live *Session) error {
		if err := requireStep(live, enums.CheckoutStepAddress); err != nil {
			return err
		}
		live.Address = &normalized
		live.Step = enums.CheckoutStepShipping
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.IncStepTransition(enums.CheckoutStepShipping.String())
	return session, nil
}

// SubmitShipping records the courier choice and resolves the payment methods
// available to this cart. Availability is the per-method intersection across
// every seller in the cart; resolving it here means the payment step renders
// with the final list already known.
func (s *service) SubmitShipping(ctx context.Context, sessionID uuid.UUID, optionID string) (*Session, error) {
	if sessionID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "session id required")
	}
	option, err := shippingOptionByID(optionID)
	if err != nil {
		return nil, err
	}

	current, err := s.registry.get(sessionID)
	if err != nil {
		return nil, err
	}
	record, err := s.carts.Get(ctx, current.CartID)
	if err != nil {
		return nil, err
	}
	available, err := s.resolvePayments(ctx, record)
	if err != nil {
		return nil, err
	}

	session, err := s.registry.mutate(sessionID, func(live *Session) error {
		if err := requireStep(live, enums.CheckoutStepShipping); err != nil {
			return err
		}
		live.ShippingOption = &option
		live.AvailablePayments = &available
		live.NoCommonPayment = !available.HasAny()
		live.Step = enums.CheckoutStepPayment
		return nil
	})
	if err != nil {
		return nil, err
	}

	if session.NoCommonPayment {
		if s.logg != nil {
			s.logg.Warn(s.logg.WithSessionID(ctx, sessionID.String()), "no payment method shared by all sellers")
		}
		s.metrics.IncPaymentBlocked()
	}
	s.metrics.IncStepTransition(enums.CheckoutStepPayment.String())
	return session, nil
}

// SubmitPayment picks a method, freezes the cart into the session, computes
// the order totals and moves to the terminal confirmation step.
func (s *service) SubmitPayment(ctx context.Context, sessionID uuid.UUID, method enums.PaymentMethod) (*Session, error) {
	if sessionID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "session id required")
	}
	if !method.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown payment method")
	}

	current, err := s.registry.get(sessionID)
	if err != nil {
		return nil, err
	}
	record, err := s.carts.Get(ctx, current.CartID)
	if err != nil {
		return nil, err
	}

	session, err := s.registry.mutate(sessionID, func(live *Session) error {
		if err := requireStep(live, enums.CheckoutStepPayment); err != nil {
			return err
		}
		if live.AvailablePayments == nil || live.NoCommonPayment {
			return pkgerrors.New(pkgerrors.CodePaymentBlocked, "checkout is blocked: sellers share no payment method").
				WithDetails(map[string]any{"sellers": len(record.SellerIDs())})
		}
		if !live.AvailablePayments.Enabled(method) {
			return pkgerrors.New(pkgerrors.CodeValidation, "payment method not available for this cart").
				WithDetails(map[string]any{"method": method})
		}

		var shippingCost int64
		if live.ShippingOption != nil {
			shippingCost = live.ShippingOption.Price
		}
		totals := pricing.ComputeOrderTotals(record.PricingLines(), shippingCost, record.DirectSale)

		live.PaymentMethod = method
		live.Items = make([]cart.Item, len(record.Items))
		copy(live.Items, record.Items)
		live.Totals = &totals
		live.Step = enums.CheckoutStepConfirmation
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.tracker.Begin(sessionID, method)

	if s.logg != nil {
		s.logg.Info(s.logg.WithSessionID(ctx, sessionID.String()), "checkout reached confirmation")
	}
	s.metrics.IncStepTransition(enums.CheckoutStepConfirmation.String())
	s.metrics.IncCompleted()
	return session, nil
}

// Back walks one step towards the start. At the address step it is a no-op;
// once confirmation is reached there is no way back.
func (s *service) Back(ctx context.Context, sessionID uuid.UUID) (*Session, error) {
	if sessionID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "session id required")
	}

	return s.registry.mutate(sessionID, func(live *Session) error {
		if live.Step == enums.CheckoutStepConfirmation {
			return pkgerrors.New(pkgerrors.CodeStateConflict, "confirmation is terminal").
				WithDetails(map[string]any{"step": live.Step})
		}
		previous, ok := live.Step.Previous()
		if !ok {
			return nil
		}
		live.Step = previous
		return nil
	})
}

// Abandon discards the session and cancels any pending payment confirmation.
func (s *service) Abandon(ctx context.Context, sessionID uuid.UUID) error {
	if sessionID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "session id required")
	}
	if !s.registry.remove(sessionID) {
		return pkgerrors.New(pkgerrors.CodeNotFound, "checkout session not found")
	}
	s.tracker.Teardown(sessionID)

	if s.logg != nil {
		s.logg.Info(s.logg.WithSessionID(ctx, sessionID.String()), "checkout session abandoned")
	}
	return nil
}

// MarkQRISPaid forwards the buyer's "I have paid" assertion to the tracker.
func (s *service) MarkQRISPaid(ctx context.Context, sessionID uuid.UUID) (enums.PaymentStatus, error) {
	session, err := s.Get(ctx, sessionID)
	if err != nil {
		return "", err
	}
	if session.Step != enums.CheckoutStepConfirmation {
		return "", pkgerrors.New(pkgerrors.CodeStateConflict, "checkout has not reached confirmation").
			WithDetails(map[string]any{"step": session.Step})
	}
	if session.PaymentMethod != enums.PaymentMethodQRIS {
		return "", pkgerrors.New(pkgerrors.CodeStateConflict, "session is not paying with qris").
			WithDetails(map[string]any{"method": session.PaymentMethod})
	}
	return s.tracker.MarkPaid(ctx, sessionID)
}

// PaymentStatus reports the simulated confirmation status.
func (s *service) PaymentStatus(ctx context.Context, sessionID uuid.UUID) (enums.PaymentStatus, error) {
	if _, err := s.Get(ctx, sessionID); err != nil {
		return "", err
	}
	return s.tracker.Status(sessionID)
}

func (s *service) ShippingOptions(ctx context.Context) []types.ShippingOption {
	return ShippingOptions()
}

// SweepExpired drops every session past its TTL and cancels their pending
// confirmations. It returns the number of sessions removed.
func (s *service) SweepExpired(ctx context.Context, now time.Time) int {
	expired := s.registry.expire(now)
	for _, sessionID := range expired {
		s.tracker.Teardown(sessionID)
	}
	if len(expired) > 0 && s.logg != nil {
		s.logg.Info(ctx, "expired checkout sessions swept")
	}
	return len(expired)
}

func (s *service) resolvePayments(ctx context.Context, record *cart.Cart) (types.PaymentOptions, error) {
	sellerIDs := record.SellerIDs()
	sellers, err := s.sellers.FindSellersByIDs(ctx, sellerIDs)
	if err != nil {
		return types.PaymentOptions{}, err
	}
	if len(sellers) != len(sellerIDs) {
		return types.PaymentOptions{}, pkgerrors.New(pkgerrors.CodeNotFound, "seller not found for cart item")
	}

	records := make([]types.PaymentOptions, 0, len(sellers))
	for _, seller := range sellers {
		records = append(records, seller.PaymentOptions)
	}
	return payments.ResolveAvailableOptions(records), nil
}

func requireStep(session *Session, want enums.CheckoutStep) error {
	if session.Step != want {
		return pkgerrors.New(pkgerrors.CodeStateConflict, "operation not allowed at this step").
			WithDetails(map[string]any{"step": session.Step, "expected": want})
	}
	return nil
}
