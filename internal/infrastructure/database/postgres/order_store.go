// internal/infrastructure/database/postgres/order_store.go
package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/your-org/shopping-cart-backend/internal/domain/order"
)

// OrderStore implements order.Store on top of gorm
type OrderStore struct {
	db *gorm.DB
}

// NewOrderStore creates a new order store
func NewOrderStore(db *gorm.DB) *OrderStore {
	return &OrderStore{db: db}
}

// Create persists the order and its line snapshots in one insert
func (s *OrderStore) Create(ctx context.Context, o *order.Order) error {
	if err := conn(ctx, s.db).Create(o).Error; err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}
	return nil
}

// Save persists order field changes. Lines are immutable, so only the order
// row itself is written.
func (s *OrderStore) Save(ctx context.Context, o *order.Order) error {
	err := conn(ctx, s.db).
		Model(&order.Order{}).
		Where("id = ?", o.ID).
		Update("status", o.Status).Error
	if err != nil {
		return fmt.Errorf("failed to update order: %w", err)
	}
	return nil
}

// FindByID returns the order with its lines, order.ErrNotFound when absent
func (s *OrderStore) FindByID(ctx context.Context, orderID uint) (*order.Order, error) {
	var o order.Order
	err := conn(ctx, s.db).Preload("Items").First(&o, orderID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, order.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find order: %w", err)
	}
	return &o, nil
}

// FindByUser returns the user's orders newest first, lines included
func (s *OrderStore) FindByUser(ctx context.Context, userID uint) ([]order.Order, error) {
	var orders []order.Order
	err := conn(ctx, s.db).
		Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find orders: %w", err)
	}
	return orders, nil
}
