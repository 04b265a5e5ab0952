package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/furnishop/storefront/internal/api/metrics"
	"github.com/furnishop/storefront/internal/core/domain"
	"github.com/furnishop/storefront/internal/core/ports"
)

// CheckoutService converts the current cart into a durable, immutable order
// and empties the cart. Placing an order is not idempotent: resubmitting
// after a failure generates a new order id.
type CheckoutService struct {
	users    ports.UserRepository
	sessions *SessionRegistry
	notifier ports.Notifier
	log      zerolog.Logger
}

func NewCheckoutService(users ports.UserRepository, sessions *SessionRegistry, notifier ports.Notifier, log zerolog.Logger) *CheckoutService {
	return &CheckoutService{users: users, sessions: sessions, notifier: notifier, log: log}
}

// PlaceOrder validates the preconditions, snapshots the cart into a new
// order, appends it to the user's order history, and clears the cart. The
// orders append and the cart clear go to the store as one update. On
// failure the local cart and order history are left untouched.
func (s *CheckoutService) PlaceOrder(ctx context.Context, in ports.PlaceOrderInput) (*domain.Order, error) {
	sess, ok := s.sessions.Get(in.UserID)
	if !ok {
		return nil, domain.ErrValidation
	}

	name := strings.TrimSpace(in.Name)
	address := strings.TrimSpace(in.Address)
	if name == "" || address == "" {
		return nil, domain.ErrValidation
	}

	items := sess.cart.snapshot()
	if len(items) == 0 {
		return nil, domain.ErrEmptyCart
	}

	order := domain.Order{
		ID:           "ORD-" + uuid.NewString(),
		Date:         domain.Today(),
		CustomerName: name,
		Address:      address,
		Total:        domain.CartTotal(items),
		Status:       domain.StatusPending,
		Items:        domain.CloneCart(items),
	}

	user, err := s.users.FindByID(ctx, in.UserID)
	if err != nil {
		metrics.OrdersFailedTotal.Inc()
		return nil, fmt.Errorf("%w: %s", domain.ErrOrderPlacementFailed, err)
	}

	orders := append(append([]domain.Order{}, user.Orders...), order)
	emptyCart := []domain.CartLine{}
	patch := ports.UserPatch{Orders: &orders, Cart: &emptyCart}
	if err := s.users.Patch(ctx, in.UserID, patch); err != nil {
		metrics.OrdersFailedTotal.Inc()
		return nil, fmt.Errorf("%w: %s", domain.ErrOrderPlacementFailed, err)
	}

	// The store already holds the empty cart, so the in-memory copy is
	// rebased without a second round trip.
	sess.cart.rebase(nil)

	metrics.OrdersPlacedTotal.Inc()
	s.notifier.Notify(ports.Notification{
		UserID:  in.UserID,
		Event:   "order_placed",
		Message: fmt.Sprintf("Order %s placed", order.ID),
	})
	s.log.Info().
		Str("user_id", in.UserID).
		Str("order_id", order.ID).
		Str("total", order.Total.Format("$")).
		Msg("order placed")

	return &order, nil
}

// ListOrders returns the user's order history from the remote document.
func (s *CheckoutService) ListOrders(ctx context.Context, userID string) ([]domain.Order, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user.Orders, nil
}
