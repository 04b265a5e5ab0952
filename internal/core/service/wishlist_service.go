package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/furnishop/storefront/internal/core/domain"
	"github.com/furnishop/storefront/internal/core/ports"
)

// WishlistService exposes the wishlist operations over the session's
// wishlist synchronizer. Entries are denormalized product snapshots, unique
// by product id.
type WishlistService struct {
	sessions *SessionRegistry
	products ports.ProductRepository
	notifier ports.Notifier
	log      zerolog.Logger
}

func NewWishlistService(sessions *SessionRegistry, products ports.ProductRepository, notifier ports.Notifier, log zerolog.Logger) *WishlistService {
	return &WishlistService{sessions: sessions, products: products, notifier: notifier, log: log}
}

func (s *WishlistService) session(userID string) (*Session, error) {
	sess, ok := s.sessions.Get(userID)
	if !ok {
		return nil, domain.ErrNoSession
	}
	return sess, nil
}

// Items returns the current in-memory wishlist.
func (s *WishlistService) Items(ctx context.Context, userID string) ([]domain.ProductRef, error) {
	sess, err := s.session(userID)
	if err != nil {
		return nil, err
	}
	return sess.wishlist.snapshot(), nil
}

// Toggle removes the product when it is already on the list, otherwise
// appends a snapshot of it. Reports whether the product ended up present.
func (s *WishlistService) Toggle(ctx context.Context, userID, productID string) (bool, error) {
	sess, err := s.session(userID)
	if err != nil {
		return false, err
	}

	p, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return false, err
	}

	added := false
	err = sess.wishlist.apply(ctx, func(items []domain.ProductRef) []domain.ProductRef {
		out := items[:0]
		removed := false
		for _, ref := range items {
			if ref.ID == p.ID {
				removed = true
				continue
			}
			out = append(out, ref)
		}
		if removed {
			return out
		}
		added = true
		return append(out, p.Ref())
	})
	if err != nil {
		return false, err
	}

	msg := fmt.Sprintf("%s removed from wishlist", p.Name)
	if added {
		msg = fmt.Sprintf("%s added to wishlist", p.Name)
	}
	s.notifier.Notify(ports.Notification{UserID: userID, Event: "wishlist_toggle", Message: msg})
	return added, nil
}

// Remove filters the product out of the wishlist.
func (s *WishlistService) Remove(ctx context.Context, userID, productID string) error {
	sess, err := s.session(userID)
	if err != nil {
		return err
	}

	err = sess.wishlist.apply(ctx, func(items []domain.ProductRef) []domain.ProductRef {
		out := items[:0]
		for _, ref := range items {
			if ref.ID != productID {
				out = append(out, ref)
			}
		}
		return out
	})
	if err != nil {
		return err
	}

	s.notifier.Notify(ports.Notification{UserID: userID, Event: "wishlist_remove", Message: "Item removed from wishlist"})
	return nil
}
