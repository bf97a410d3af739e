// internal/infrastructure/database/postgres/product_store.go
package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/your-org/shopping-cart-backend/internal/domain/product"
)

// ProductStore implements product.Reader on top of gorm
type ProductStore struct {
	db *gorm.DB
}

// NewProductStore creates a new product store
func NewProductStore(db *gorm.DB) *ProductStore {
	return &ProductStore{db: db}
}

// FindProduct returns the product by ID, product.ErrNotFound when absent
func (s *ProductStore) FindProduct(ctx context.Context, productID uint) (*product.Product, error) {
	var p product.Product
	err := conn(ctx, s.db).First(&p, productID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, product.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find product: %w", err)
	}
	return &p, nil
}

// ListProducts returns the catalog ordered by ID
func (s *ProductStore) ListProducts(ctx context.Context) ([]product.Product, error) {
	var products []product.Product
	err := conn(ctx, s.db).Order("id ASC").Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}
