package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists indicates an insert hit a uniqueness constraint.
	ErrAlreadyExists = errors.New("already exists")
	// ErrEmptyCart is returned when checkout is attempted on a cart with no lines.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrInvalidQuantity is returned when a cart mutation asks for a non-positive quantity.
	ErrInvalidQuantity = errors.New("quantity must be positive")
	// ErrInvalidStatus indicates an order status label outside the known set.
	ErrInvalidStatus = errors.New("invalid order status")
)
