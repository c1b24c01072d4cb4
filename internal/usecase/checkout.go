package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	domain "github.com/nuelxcodev/luxe/internal/entity"
)

type CheckoutStep int

const (
	StepShipping CheckoutStep = 1
	StepPayment  CheckoutStep = 2
	StepReview   CheckoutStep = 3
)

// CheckoutSession is transient: bound to the cart snapshot and total taken
// at entry, alive until placed or cancelled.
type CheckoutSession struct {
	Step  CheckoutStep
	Items []domain.LineItem
	Total decimal.Decimal

	// Opaque step payloads. Never validated before advancing; the wizard's
	// contract is step order and cart consistency only.
	Shipping map[string]string
	Payment  map[string]string

	generation uint64
	inFlight   bool
}

// SleepFunc models the simulated processing latency as a real suspend point
// honoring cancellation. Tests substitute their own.
type SleepFunc func(ctx context.Context, d time.Duration) error

func realSleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// CheckoutFlow drives the 3-step wizard. Exactly one session is active at a
// time; beginning again replaces the old one.
type CheckoutFlow struct {
	delay time.Duration
	sleep SleepFunc
	log   *slog.Logger
}

func NewCheckoutFlow(processingDelay time.Duration, log *slog.Logger) *CheckoutFlow {
	return &CheckoutFlow{delay: processingDelay, sleep: realSleep, log: log}
}

// WithSleep overrides the latency suspend point; test hook.
func (f *CheckoutFlow) WithSleep(fn SleepFunc) *CheckoutFlow {
	f.sleep = fn
	return f
}

// Begin snapshots the cart and opens the wizard at shipping.
func (f *CheckoutFlow) Begin(s *Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Cart.IsEmpty() {
		return ErrEmptyCart
	}
	s.checkoutGen++
	s.Checkout = &CheckoutSession{
		Step:       StepShipping,
		Items:      s.Cart.Items(),
		Total:      s.Cart.Total(),
		Shipping:   map[string]string{},
		Payment:    map[string]string{},
		generation: s.checkoutGen,
	}
	s.Nav.Current = PageCheckout
	return nil
}

// Next advances one step, storing the step's form payload as-is. Advancing
// past review is a no-op; orders are placed with PlaceOrder.
func (f *CheckoutFlow) Next(s *Session, fields map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	co := s.Checkout
	if co == nil {
		return ErrNoCheckout
	}
	switch co.Step {
	case StepShipping:
		for k, v := range fields {
			co.Shipping[k] = v
		}
		co.Step = StepPayment
	case StepPayment:
		for k, v := range fields {
			co.Payment[k] = v
		}
		co.Step = StepReview
	}
	return nil
}

// Back steps backward; entered data stays on the session for the wizard's
// lifetime. Going back from shipping is a no-op (cancel is explicit).
func (f *CheckoutFlow) Back(s *Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	co := s.Checkout
	if co == nil {
		return ErrNoCheckout
	}
	if co.Step > StepShipping {
		co.Step--
	}
	return nil
}

// Cancel discards the session and returns to the cart page; the cart itself
// is untouched. Any in-flight submission result is invalidated.
func (f *CheckoutFlow) Cancel(s *Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Checkout == nil {
		return ErrNoCheckout
	}
	s.Checkout = nil
	s.checkoutGen++
	s.Nav.Current = PageCart
	return nil
}

// PlaceOrder simulates submission: one suspend point, one resumption. The
// generation check discards completions that land after cancel or logout,
// and the in-flight flag rejects overlapping submissions.
func (f *CheckoutFlow) PlaceOrder(ctx context.Context, s *Session) (domain.Order, error) {
	s.mu.Lock()
	co := s.Checkout
	if co == nil {
		s.mu.Unlock()
		return domain.Order{}, ErrNoCheckout
	}
	if co.Step != StepReview {
		s.mu.Unlock()
		return domain.Order{}, ErrNotAtReview
	}
	if co.inFlight {
		s.mu.Unlock()
		return domain.Order{}, ErrSubmitInFlight
	}
	co.inFlight = true
	gen := co.generation
	s.mu.Unlock()

	if err := f.sleep(ctx, f.delay); err != nil {
		s.mu.Lock()
		if s.Checkout == co {
			co.inFlight = false
		}
		s.mu.Unlock()
		return domain.Order{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Checkout != co || co.generation != gen {
		// The wizard was torn down while we slept; the result is dropped.
		f.log.Info("checkout_stale_completion_discarded", "session", s.ID)
		return domain.Order{}, ErrCheckoutDiscarded
	}

	order := domain.Order{
		ID:     "LX-" + uuid.NewString()[:8],
		Date:   time.Now().Format("Jan 2, 2006"),
		Status: domain.OrderProcessing,
		Total:  co.Total,
		Items:  co.Items,
	}
	s.Orders = append([]domain.Order{order}, s.Orders...)
	s.Cart.Clear()
	s.Checkout = nil
	s.checkoutGen++
	s.Nav.Current = PageSuccess
	s.pushNotice("Order placed successfully!", NoticeSuccess)
	ordersPlaced.Inc()
	f.log.Info("checkout_completed", "session", s.ID, "order", order.ID, "total", order.Total.StringFixed(2))
	return order, nil
}

// State returns the active wizard snapshot, or ok=false when none is live.
func (f *CheckoutFlow) State(s *Session) (CheckoutSession, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Checkout == nil {
		return CheckoutSession{}, false
	}
	return *s.Checkout, true
}
