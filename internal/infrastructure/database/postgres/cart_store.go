// internal/infrastructure/database/postgres/cart_store.go
package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/your-org/shopping-cart-backend/internal/domain/cart"
)

// CartStore implements cart.Store on top of gorm
type CartStore struct {
	db *gorm.DB
}

// NewCartStore creates a new cart store
func NewCartStore(db *gorm.DB) *CartStore {
	return &CartStore{db: db}
}

// FindCartByUser returns the user's cart row, cart.ErrNotFound when absent
func (s *CartStore) FindCartByUser(ctx context.Context, userID uint) (*cart.Cart, error) {
	var c cart.Cart
	err := conn(ctx, s.db).Where("user_id = ?", userID).First(&c).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, cart.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find cart: %w", err)
	}
	return &c, nil
}

// CreateCart creates an empty cart for the user. The unique index on user_id
// enforces the one-cart-per-user invariant.
func (s *CartStore) CreateCart(ctx context.Context, userID uint) (*cart.Cart, error) {
	c := cart.Cart{UserID: userID}
	if err := conn(ctx, s.db).Create(&c).Error; err != nil {
		return nil, fmt.Errorf("failed to create cart: %w", err)
	}
	return &c, nil
}

// FindItems returns all lines of a cart
func (s *CartStore) FindItems(ctx context.Context, cartID uint) ([]cart.CartItem, error) {
	var items []cart.CartItem
	err := conn(ctx, s.db).Where("cart_id = ?", cartID).Order("id ASC").Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find cart items: %w", err)
	}
	return items, nil
}

// FindItem returns the line for a product, cart.ErrItemNotFound when absent
func (s *CartStore) FindItem(ctx context.Context, cartID, productID uint) (*cart.CartItem, error) {
	var item cart.CartItem
	err := conn(ctx, s.db).
		Where("cart_id = ? AND product_id = ?", cartID, productID).
		First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, cart.ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to find cart item: %w", err)
	}
	return &item, nil
}

// SaveItem inserts or updates a cart line
func (s *CartStore) SaveItem(ctx context.Context, item *cart.CartItem) error {
	if err := conn(ctx, s.db).Save(item).Error; err != nil {
		return fmt.Errorf("failed to save cart item: %w", err)
	}
	return nil
}

// DeleteItem deletes the line for a product; deleting an absent line is a no-op
func (s *CartStore) DeleteItem(ctx context.Context, cartID, productID uint) error {
	err := conn(ctx, s.db).
		Where("cart_id = ? AND product_id = ?", cartID, productID).
		Delete(&cart.CartItem{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete cart item: %w", err)
	}
	return nil
}

// DeleteAllItems empties the cart
func (s *CartStore) DeleteAllItems(ctx context.Context, cartID uint) error {
	err := conn(ctx, s.db).
		Where("cart_id = ?", cartID).
		Delete(&cart.CartItem{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete cart items: %w", err)
	}
	return nil
}
