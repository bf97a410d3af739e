// internal/domain/order/store.go
package order

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned when no order exists with the requested id.
	ErrNotFound = errors.New("order not found")

	// ErrEmptyCart is returned when order creation finds a cart with zero
	// lines. Distinct from cart.ErrNotFound, which means no cart row at all.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrForbidden is returned when the order does not belong to the
	// requesting user.
	ErrForbidden = errors.New("order does not belong to user")

	// ErrInvalidState is returned when cancelling an order that is no longer
	// pending.
	ErrInvalidState = errors.New("only pending orders can be cancelled")
)

// Store is the order persistence contract.
type Store interface {
	// Create persists the order together with its line snapshots.
	Create(ctx context.Context, o *Order) error
	Save(ctx context.Context, o *Order) error
	// FindByID returns ErrNotFound when no order exists with the id.
	FindByID(ctx context.Context, orderID uint) (*Order, error)
	// FindByUser returns the user's orders newest first, lines included.
	FindByUser(ctx context.Context, userID uint) ([]Order, error)
}

// TxRunner runs fn inside a single atomic unit of work against the backing
// store. A returned error rolls the whole unit back.
type TxRunner interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
