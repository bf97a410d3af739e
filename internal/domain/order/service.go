// internal/domain/order/service.go
package order

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/your-org/shopping-cart-backend/internal/domain/cart"
	"github.com/your-org/shopping-cart-backend/internal/domain/product"
)

// Service handles order business logic
type Service struct {
	store     Store
	cartStore cart.Store
	catalog   product.Reader
	tx        TxRunner
}

// NewService creates a new order service
func NewService(store Store, cartStore cart.Store, catalog product.Reader, tx TxRunner) *Service {
	return &Service{
		store:     store,
		cartStore: cartStore,
		catalog:   catalog,
		tx:        tx,
	}
}

// CreateOrder converts the user's non-empty cart into an immutable order
// snapshot, then clears the cart. The whole sequence runs in one transaction:
// a failure at any step leaves the cart intact and no order rows behind.
//
// Note the deliberate asymmetry with cart reads: a missing cart row is
// cart.ErrNotFound here, never auto-created, and distinct from ErrEmptyCart.
func (s *Service) CreateOrder(ctx context.Context, userID uint) (*Order, error) {
	var created *Order

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		c, err := s.cartStore.FindCartByUser(ctx, userID)
		if err != nil {
			return err
		}

		items, err := s.cartStore.FindItems(ctx, c.ID)
		if err != nil {
			return fmt.Errorf("failed to retrieve cart items: %w", err)
		}
		if len(items) == 0 {
			return ErrEmptyCart
		}

		// Snapshot every line at the current catalog price. A product deleted
		// since it was added to the cart aborts the order.
		total := decimal.Zero
		lines := make([]OrderItem, 0, len(items))
		for _, item := range items {
			p, err := s.catalog.FindProduct(ctx, item.ProductID)
			if err != nil {
				return err
			}

			subtotal := p.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
			lines = append(lines, OrderItem{
				ProductID:    p.ID,
				ProductName:  p.Name,
				ProductPrice: p.Price,
				Quantity:     item.Quantity,
				Subtotal:     subtotal,
			})
			total = total.Add(subtotal)
		}

		o := &Order{
			UserID:      userID,
			TotalAmount: total,
			Status:      OrderStatusPending,
			Items:       lines,
		}
		if err := s.store.Create(ctx, o); err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}

		// Clear the cart last, after line snapshotting succeeded
		if err := s.cartStore.DeleteAllItems(ctx, c.ID); err != nil {
			return fmt.Errorf("failed to clear cart: %w", err)
		}

		created = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

// ListOrders returns the user's orders, newest first, with their line
// snapshots and totals.
func (s *Service) ListOrders(ctx context.Context, userID uint) ([]Order, error) {
	orders, err := s.store.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve orders: %w", err)
	}
	return orders, nil
}

// CancelOrder transitions a pending order owned by userID to cancelled.
// Cancellation is the only externally triggered status transition.
func (s *Service) CancelOrder(ctx context.Context, userID, orderID uint) (*Order, error) {
	o, err := s.store.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if o.UserID != userID {
		return nil, ErrForbidden
	}
	if !o.CanBeCancelled() {
		return nil, ErrInvalidState
	}

	o.Status = OrderStatusCancelled
	if err := s.store.Save(ctx, o); err != nil {
		return nil, fmt.Errorf("failed to cancel order: %w", err)
	}

	return o, nil
}
