package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyInCart reports a repeat add of a product that already
	// has a cart line.
	ErrAlreadyInCart = errors.New("already in cart")

	// ErrEmptyCart rejects a checkout attempt with no line items.
	ErrEmptyCart = errors.New("cart is empty")
)

// UnknownProductError names the catalog id that failed to resolve.
type UnknownProductError struct {
	ID string
}

func (e *UnknownProductError) Error() string {
	return fmt.Sprintf("invalid product ID: %s", e.ID)
}
