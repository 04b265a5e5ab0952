package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/furnishop/storefront/internal/core/domain"
	"github.com/furnishop/storefront/internal/core/ports"
)

// CartService exposes the cart operations over the session's cart
// synchronizer. All mutations are optimistic: memory first, remote second,
// rollback on failure.
type CartService struct {
	sessions *SessionRegistry
	products ports.ProductRepository
	notifier ports.Notifier
	log      zerolog.Logger
}

func NewCartService(sessions *SessionRegistry, products ports.ProductRepository, notifier ports.Notifier, log zerolog.Logger) *CartService {
	return &CartService{sessions: sessions, products: products, notifier: notifier, log: log}
}

func (s *CartService) session(userID string) (*Session, error) {
	sess, ok := s.sessions.Get(userID)
	if !ok {
		return nil, domain.ErrNoSession
	}
	return sess, nil
}

// View returns the current in-memory cart with its item count and total.
func (s *CartService) View(ctx context.Context, userID string) (*ports.CartView, error) {
	sess, err := s.session(userID)
	if err != nil {
		return nil, err
	}
	items := sess.cart.snapshot()
	return &ports.CartView{
		Items: items,
		Count: domain.CartCount(items),
		Total: domain.CartTotal(items),
	}, nil
}

// Add puts the product in the cart: an existing line's quantity is
// incremented, otherwise a new line with quantity 1 is appended.
func (s *CartService) Add(ctx context.Context, userID, productID string) error {
	sess, err := s.session(userID)
	if err != nil {
		return err
	}

	p, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return err
	}

	increased := false
	err = sess.cart.apply(ctx, func(items []domain.CartLine) []domain.CartLine {
		for i := range items {
			if items[i].ProductID == p.ID {
				items[i].Quantity++
				increased = true
				return items
			}
		}
		return append(items, domain.CartLine{
			ProductID: p.ID,
			Name:      p.Name,
			Price:     p.Price,
			Img:       p.Img,
			Quantity:  1,
		})
	})
	if err != nil {
		return err
	}

	msg := fmt.Sprintf("%s added to cart", p.Name)
	if increased {
		msg = fmt.Sprintf("Increased quantity of %s", p.Name)
	}
	s.notifier.Notify(ports.Notification{UserID: userID, Event: "cart_add", Message: msg})
	return nil
}

// UpdateQuantity sets the line's quantity. Values below 1 are a no-op, not
// an error: the quantity is clamped, never rejected.
func (s *CartService) UpdateQuantity(ctx context.Context, userID, productID string, quantity int) error {
	sess, err := s.session(userID)
	if err != nil {
		return err
	}
	if quantity < 1 {
		return nil
	}

	err = sess.cart.apply(ctx, func(items []domain.CartLine) []domain.CartLine {
		for i := range items {
			if items[i].ProductID == productID {
				items[i].Quantity = quantity
			}
		}
		return items
	})
	if err != nil {
		return err
	}

	s.notifier.Notify(ports.Notification{UserID: userID, Event: "cart_update", Message: "Quantity updated"})
	return nil
}

// Remove filters the product's line out of the cart.
func (s *CartService) Remove(ctx context.Context, userID, productID string) error {
	sess, err := s.session(userID)
	if err != nil {
		return err
	}

	err = sess.cart.apply(ctx, func(items []domain.CartLine) []domain.CartLine {
		out := items[:0]
		for _, l := range items {
			if l.ProductID != productID {
				out = append(out, l)
			}
		}
		return out
	})
	if err != nil {
		return err
	}

	s.notifier.Notify(ports.Notification{UserID: userID, Event: "cart_remove", Message: "Item removed"})
	return nil
}

// Clear empties the cart locally and remotely. On a failed remote write the
// local cart is restored, so local-empty-but-remote-stale never happens.
func (s *CartService) Clear(ctx context.Context, userID string) error {
	sess, err := s.session(userID)
	if err != nil {
		return err
	}

	err = sess.cart.apply(ctx, func([]domain.CartLine) []domain.CartLine {
		return []domain.CartLine{}
	})
	if err != nil {
		return err
	}

	s.notifier.Notify(ports.Notification{UserID: userID, Event: "cart_clear", Message: "Cart cleared"})
	return nil
}
