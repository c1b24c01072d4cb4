package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	domain "github.com/nuelxcodev/luxe/internal/entity"
)

func instantSleep(context.Context, time.Duration) error { return nil }

func checkoutFixture(t *testing.T) (*CheckoutFlow, *CartService, *Session) {
	t.Helper()
	cart := NewCartService(newMockCatalog(), testLogger())
	flow := NewCheckoutFlow(0, testLogger()).WithSleep(instantSleep)
	s := loggedInSession()
	require.NoError(t, cart.Add(s, "3", 2)) // $10 x2
	require.NoError(t, cart.Add(s, "2", 1)) // $5 x1
	s.DrainNotices()
	return flow, cart, s
}

func TestCheckout_BeginRequiresItems(t *testing.T) {
	flow := NewCheckoutFlow(0, testLogger()).WithSleep(instantSleep)
	s := loggedInSession()

	assert.ErrorIs(t, flow.Begin(s), ErrEmptyCart)
}

func TestCheckout_BeginSnapshotsCart(t *testing.T) {
	flow, _, s := checkoutFixture(t)

	require.NoError(t, flow.Begin(s))
	co, ok := flow.State(s)
	require.True(t, ok)
	assert.Equal(t, StepShipping, co.Step)
	assert.Equal(t, "25.00", co.Total.StringFixed(2))
	assert.Len(t, co.Items, 2)
	assert.Equal(t, PageCheckout, s.Nav.Current)
}

func TestCheckout_LinearSteps(t *testing.T) {
	flow, _, s := checkoutFixture(t)
	require.NoError(t, flow.Begin(s))

	require.NoError(t, flow.Next(s, map[string]string{"street": "123 Luxury Ave"}))
	co, _ := flow.State(s)
	assert.Equal(t, StepPayment, co.Step)

	require.NoError(t, flow.Next(s, map[string]string{"card": "4242"}))
	co, _ = flow.State(s)
	assert.Equal(t, StepReview, co.Step)

	// advancing past review is a no-op; placing is explicit
	require.NoError(t, flow.Next(s, nil))
	co, _ = flow.State(s)
	assert.Equal(t, StepReview, co.Step)
}

func TestCheckout_BackPreservesStepData(t *testing.T) {
	flow, _, s := checkoutFixture(t)
	require.NoError(t, flow.Begin(s))
	require.NoError(t, flow.Next(s, map[string]string{"street": "123 Luxury Ave"}))
	require.NoError(t, flow.Next(s, map[string]string{"card": "4242"}))

	require.NoError(t, flow.Back(s))
	require.NoError(t, flow.Back(s))
	require.NoError(t, flow.Back(s)) // below shipping: stays put

	co, _ := flow.State(s)
	assert.Equal(t, StepShipping, co.Step)
	assert.Equal(t, "123 Luxury Ave", co.Shipping["street"])
	assert.Equal(t, "4242", co.Payment["card"])
}

func TestCheckout_PlaceOrderOnlyFromReview(t *testing.T) {
	flow, _, s := checkoutFixture(t)
	require.NoError(t, flow.Begin(s))

	_, err := flow.PlaceOrder(context.Background(), s)
	assert.ErrorIs(t, err, ErrNotAtReview)
}

func TestCheckout_PlaceOrderWithoutSession(t *testing.T) {
	flow := NewCheckoutFlow(0, testLogger()).WithSleep(instantSleep)
	s := loggedInSession()

	_, err := flow.PlaceOrder(context.Background(), s)
	assert.ErrorIs(t, err, ErrNoCheckout)
}

func TestCheckout_SuccessClearsCartAndNavigates(t *testing.T) {
	flow, cartSvc, s := checkoutFixture(t)
	require.NoError(t, flow.Begin(s))
	require.NoError(t, flow.Next(s, nil))
	require.NoError(t, flow.Next(s, nil))

	order, err := flow.PlaceOrder(context.Background(), s)
	require.NoError(t, err)

	assert.Equal(t, domain.OrderProcessing, order.Status)
	assert.Equal(t, "25.00", order.Total.StringFixed(2))
	assert.Len(t, order.Items, 2)

	assert.Empty(t, cartSvc.View(s).Items, "cart must be cleared on success")
	assert.Equal(t, PageSuccess, s.Nav.Current)
	_, ok := flow.State(s)
	assert.False(t, ok, "wizard must be closed")

	require.Len(t, s.Orders, 1)
	assert.Equal(t, order.ID, s.Orders[0].ID)

	notices := s.DrainNotices()
	require.Len(t, notices, 1)
	assert.Equal(t, "Order placed successfully!", notices[0].Message)
}

func TestCheckout_CancelLeavesCartUntouched(t *testing.T) {
	flow, cartSvc, s := checkoutFixture(t)
	before := cartSvc.View(s)
	require.NoError(t, flow.Begin(s))
	require.NoError(t, flow.Next(s, nil))

	require.NoError(t, flow.Cancel(s))

	after := cartSvc.View(s)
	assert.Equal(t, before.Items, after.Items)
	assert.True(t, before.Total.Equal(after.Total))
	assert.Equal(t, PageCart, s.Nav.Current)

	assert.ErrorIs(t, flow.Cancel(s), ErrNoCheckout)
}

func TestCheckout_DoubleSubmitRejected(t *testing.T) {
	release := make(chan struct{})
	blockingSleep := func(ctx context.Context, _ time.Duration) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-release:
			return nil
		}
	}

	flow, _, s := checkoutFixture(t)
	flow.WithSleep(blockingSleep)
	require.NoError(t, flow.Begin(s))
	require.NoError(t, flow.Next(s, nil))
	require.NoError(t, flow.Next(s, nil))

	done := make(chan error, 1)
	go func() {
		_, err := flow.PlaceOrder(context.Background(), s)
		done <- err
	}()

	// Wait for the first submission to be marked in flight.
	require.Eventually(t, func() bool {
		co, ok := flow.State(s)
		return ok && co.inFlight
	}, time.Second, time.Millisecond)

	_, err := flow.PlaceOrder(context.Background(), s)
	assert.ErrorIs(t, err, ErrSubmitInFlight)

	close(release)
	require.NoError(t, <-done)
}

func TestCheckout_StaleCompletionDiscarded(t *testing.T) {
	release := make(chan struct{})
	blockingSleep := func(ctx context.Context, _ time.Duration) error {
		<-release
		return nil
	}

	flow, cartSvc, s := checkoutFixture(t)
	flow.WithSleep(blockingSleep)
	require.NoError(t, flow.Begin(s))
	require.NoError(t, flow.Next(s, nil))
	require.NoError(t, flow.Next(s, nil))

	done := make(chan error, 1)
	go func() {
		_, err := flow.PlaceOrder(context.Background(), s)
		done <- err
	}()

	require.Eventually(t, func() bool {
		co, ok := flow.State(s)
		return ok && co.inFlight
	}, time.Second, time.Millisecond)

	// User backs out while the submission is in flight.
	require.NoError(t, flow.Cancel(s))
	close(release)

	assert.ErrorIs(t, <-done, ErrCheckoutDiscarded)
	assert.Len(t, cartSvc.View(s).Items, 2, "cart must survive a discarded completion")
	assert.Empty(t, s.Orders)
	assert.Equal(t, PageCart, s.Nav.Current)
}

func TestCheckout_CancelledContextReleasesInFlight(t *testing.T) {
	flow, _, s := checkoutFixture(t)
	flow.WithSleep(realSleep)
	flow.delay = time.Hour
	require.NoError(t, flow.Begin(s))
	require.NoError(t, flow.Next(s, nil))
	require.NoError(t, flow.Next(s, nil))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := flow.PlaceOrder(ctx, s)
	assert.ErrorIs(t, err, context.Canceled)

	co, ok := flow.State(s)
	require.True(t, ok)
	assert.False(t, co.inFlight, "a failed submission must release the guard")
}
