package domain

import "errors"

var (
	// ErrDuplicateEmail is returned by signup when the email is taken.
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrInvalidCredentials covers unknown emails and wrong passwords alike.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrAccountBlocked is returned by login for blocked accounts; no
	// session is established in that case.
	ErrAccountBlocked = errors.New("account blocked")
	// ErrValidation covers missing or malformed caller input.
	ErrValidation = errors.New("validation failed")
	// ErrEmptyCart blocks checkout on an empty cart.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrNoSession is returned by cart and wishlist operations when nobody
	// is logged in.
	ErrNoSession = errors.New("no active session")
	// ErrSyncFailed is returned when a remote write failed after an
	// optimistic local mutation; the local state has been rolled back.
	ErrSyncFailed = errors.New("failed to sync with store")
	// ErrOrderPlacementFailed is returned when checkout could not persist
	// the order; local cart and order history are left untouched.
	ErrOrderPlacementFailed = errors.New("order placement failed")
	// ErrNotFound is returned for user or product lookup misses.
	ErrNotFound = errors.New("not found")
	// ErrInvalidTransition is returned for disallowed order status changes.
	ErrInvalidTransition = errors.New("invalid status transition")
)
