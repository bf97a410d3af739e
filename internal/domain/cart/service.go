// internal/domain/cart/service.go
package cart

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/your-org/shopping-cart-backend/internal/domain/product"
)

// Service handles cart business logic
type Service struct {
	store   Store
	catalog product.Reader
}

// NewService creates a new cart service
func NewService(store Store, catalog product.Reader) *Service {
	return &Service{store: store, catalog: catalog}
}

// CartItemResponse represents a cart line with product details and subtotal
type CartItemResponse struct {
	ID           uint            `json:"id"`
	ProductID    uint            `json:"product_id"`
	ProductName  string          `json:"product_name"`
	ProductPrice decimal.Decimal `json:"product_price"`
	Quantity     int             `json:"quantity"`
	Subtotal     decimal.Decimal `json:"subtotal"`
}

// CartResponse represents a cart with its lines and computed total
type CartResponse struct {
	ID          uint               `json:"id"`
	UserID      uint               `json:"user_id"`
	Items       []CartItemResponse `json:"items"`
	TotalAmount decimal.Decimal    `json:"total_amount"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

// AddToCartRequest represents add to cart request
type AddToCartRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

// GetCart returns the user's cart, creating an empty one if none exists
func (s *Service) GetCart(ctx context.Context, userID uint) (*CartResponse, error) {
	c, err := s.getOrCreateCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	items, err := s.store.FindItems(ctx, c.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve cart items: %w", err)
	}

	return s.buildCartResponse(ctx, c, items)
}

// AddItem adds a product to the user's cart. If the cart already holds a line
// for the product, the quantity is added to the existing line.
func (s *Service) AddItem(ctx context.Context, userID uint, req *AddToCartRequest) (*CartResponse, error) {
	// Verify the product exists before touching the cart
	if _, err := s.catalog.FindProduct(ctx, req.ProductID); err != nil {
		return nil, err
	}

	c, err := s.getOrCreateCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	existing, err := s.store.FindItem(ctx, c.ID, req.ProductID)
	switch {
	case err == nil:
		existing.Quantity += req.Quantity
		if err := s.store.SaveItem(ctx, existing); err != nil {
			return nil, fmt.Errorf("failed to update cart item: %w", err)
		}
	case errors.Is(err, ErrItemNotFound):
		item := &CartItem{
			CartID:    c.ID,
			ProductID: req.ProductID,
			Quantity:  req.Quantity,
		}
		if err := s.store.SaveItem(ctx, item); err != nil {
			return nil, fmt.Errorf("failed to create cart item: %w", err)
		}
	default:
		return nil, fmt.Errorf("failed to look up cart item: %w", err)
	}

	// Return the refreshed cart
	return s.GetCart(ctx, userID)
}

// RemoveItem deletes the line for the product if present. Removing an absent
// line is not an error.
func (s *Service) RemoveItem(ctx context.Context, userID, productID uint) (*CartResponse, error) {
	c, err := s.getOrCreateCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.store.DeleteItem(ctx, c.ID, productID); err != nil {
		return nil, fmt.Errorf("failed to remove cart item: %w", err)
	}

	return s.GetCart(ctx, userID)
}

// GetTotal returns the sum of price*quantity across all lines, zero for an
// empty cart. The total is always computed, never stored.
func (s *Service) GetTotal(ctx context.Context, userID uint) (decimal.Decimal, error) {
	resp, err := s.GetCart(ctx, userID)
	if err != nil {
		return decimal.Zero, err
	}
	return resp.TotalAmount, nil
}

// Clear deletes all lines from the user's cart; idempotent
func (s *Service) Clear(ctx context.Context, userID uint) error {
	c, err := s.getOrCreateCart(ctx, userID)
	if err != nil {
		return err
	}

	if err := s.store.DeleteAllItems(ctx, c.ID); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}

// getOrCreateCart is the single idempotent lazy-create operation: every user
// owns exactly one cart, created on first access.
func (s *Service) getOrCreateCart(ctx context.Context, userID uint) (*Cart, error) {
	c, err := s.store.FindCartByUser(ctx, userID)
	if err == nil {
		return c, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("failed to look up cart: %w", err)
	}

	c, err = s.store.CreateCart(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to create cart: %w", err)
	}
	return c, nil
}

func (s *Service) buildCartResponse(ctx context.Context, c *Cart, items []CartItem) (*CartResponse, error) {
	itemResponses := make([]CartItemResponse, 0, len(items))
	total := decimal.Zero

	for _, item := range items {
		p, err := s.catalog.FindProduct(ctx, item.ProductID)
		if err != nil {
			if errors.Is(err, product.ErrNotFound) {
				// Product vanished from the catalog since it was added; the
				// line is unrenderable here, order placement will reject it.
				continue
			}
			return nil, fmt.Errorf("failed to resolve product %d: %w", item.ProductID, err)
		}

		subtotal := p.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		itemResponses = append(itemResponses, CartItemResponse{
			ID:           item.ID,
			ProductID:    p.ID,
			ProductName:  p.Name,
			ProductPrice: p.Price,
			Quantity:     item.Quantity,
			Subtotal:     subtotal,
		})
		total = total.Add(subtotal)
	}

	return &CartResponse{
		ID:          c.ID,
		UserID:      c.UserID,
		Items:       itemResponses,
		TotalAmount: total,
		UpdatedAt:   c.UpdatedAt,
	}, nil
}
