// internal/infrastructure/database/postgres/user_store.go
package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/your-org/shopping-cart-backend/internal/domain/user"
)

// UserStore implements user.Store on top of gorm
type UserStore struct {
	db *gorm.DB
}

// NewUserStore creates a new user store
func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{db: db}
}

// Create inserts a new user account
func (s *UserStore) Create(ctx context.Context, u *user.User) error {
	if err := conn(ctx, s.db).Create(u).Error; err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

// FindByEmail returns the account for the email, user.ErrNotFound when absent.
// Lookup is case-insensitive since emails are stored lowercased.
func (s *UserStore) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	var u user.User
	err := conn(ctx, s.db).Where("email = ?", strings.ToLower(email)).First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, user.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	return &u, nil
}

// FindByID returns the account by ID, user.ErrNotFound when absent
func (s *UserStore) FindByID(ctx context.Context, userID uint) (*user.User, error) {
	var u user.User
	err := conn(ctx, s.db).First(&u, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, user.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return &u, nil
}
