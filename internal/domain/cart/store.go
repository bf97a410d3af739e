// internal/domain/cart/store.go
package cart

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned when no cart row exists for a user. Cart reads
	// never surface it (they create the cart instead); order placement does.
	ErrNotFound = errors.New("cart not found")

	// ErrItemNotFound is returned by Store.FindItem when the cart has no line
	// for the product.
	ErrItemNotFound = errors.New("cart item not found")
)

// Store is the cart persistence contract consumed by the cart and order
// services.
type Store interface {
	// FindCartByUser returns ErrNotFound when the user has no cart row.
	FindCartByUser(ctx context.Context, userID uint) (*Cart, error)
	CreateCart(ctx context.Context, userID uint) (*Cart, error)
	FindItems(ctx context.Context, cartID uint) ([]CartItem, error)
	// FindItem returns ErrItemNotFound when the cart has no line for the product.
	FindItem(ctx context.Context, cartID, productID uint) (*CartItem, error)
	SaveItem(ctx context.Context, item *CartItem) error
	DeleteItem(ctx context.Context, cartID, productID uint) error
	DeleteAllItems(ctx context.Context, cartID uint) error
}
