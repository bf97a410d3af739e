// internal/domain/product/store.go
package product

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a product id does not resolve in the catalog.
var ErrNotFound = errors.New("product not found")

// Reader is the read-only catalog lookup consumed by the cart and order
// services.
type Reader interface {
	// FindProduct returns ErrNotFound when no product exists with the id.
	FindProduct(ctx context.Context, id uint) (*Product, error)
	ListProducts(ctx context.Context) ([]Product, error)
}
