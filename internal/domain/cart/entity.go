// internal/domain/cart/entity.go
package cart

import (
	"time"
)

// Cart is the single active cart a user owns. It is created lazily on first
// access and never deleted afterwards, only emptied.
type Cart struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"uniqueIndex;not null" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Items []CartItem `gorm:"foreignKey:CartID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items,omitempty"`
}

// CartItem is one (product, quantity) line within a cart. A cart holds at
// most one line per product — adding the same product again increments the
// quantity instead of duplicating the line.
type CartItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CartID    uint      `gorm:"not null;uniqueIndex:idx_cart_items_cart_product" json:"cart_id"`
	ProductID uint      `gorm:"not null;uniqueIndex:idx_cart_items_cart_product" json:"product_id"`
	Quantity  int       `gorm:"not null;default:1" json:"quantity"`
	AddedAt   time.Time `gorm:"autoCreateTime" json:"added_at"`
}

// TableName overrides the table name
func (Cart) TableName() string {
	return "shopping_carts"
}

// TableName overrides the table name
func (CartItem) TableName() string {
	return "cart_items"
}
