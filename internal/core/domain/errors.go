package domain

import "errors"

var (
	// ErrNotFound marks an id lookup with no result. It is a legitimate
	// empty outcome, never fatal.
	ErrNotFound = errors.New("not found")

	// ErrNoPriceAvailable is returned when a product without any store
	// price is added to a wishlist.
	ErrNoPriceAvailable = errors.New("no price available")

	// ErrInvalidInput marks rejected caller input, e.g. an unknown
	// category tag or an empty wishlist name at the boundary.
	ErrInvalidInput = errors.New("invalid input")

	// ErrCorruptState marks persisted state that failed to decode.
	// Callers fall back to defaults but must log the signal.
	ErrCorruptState = errors.New("corrupt persisted state")
)
