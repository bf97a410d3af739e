// internal/domain/user/service.go
package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/your-org/shopping-cart-backend/internal/pkg/auth"
)

// Service handles user registration and authentication logic
type Service struct {
	store     Store
	passwords *auth.PasswordManager
}

// NewService creates a new user service
func NewService(store Store, passwords *auth.PasswordManager) *Service {
	return &Service{store: store, passwords: passwords}
}

// RegisterRequest represents user registration data
type RegisterRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=128"`
}

// LoginRequest represents user login data
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UserResponse represents user data returned to clients
type UserResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// Register creates a new user account with a bcrypt-hashed password
func (s *Service) Register(ctx context.Context, req *RegisterRequest) (*UserResponse, error) {
	email := strings.ToLower(req.Email)

	_, err := s.store.FindByEmail(ctx, email)
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	hash, err := s.passwords.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	u := &User{
		Name:     req.Name,
		Email:    email,
		Password: hash,
	}
	if err := s.store.Create(ctx, u); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return mapToUserResponse(u), nil
}

// Login verifies the credentials and returns the user view
func (s *Service) Login(ctx context.Context, req *LoginRequest) (*UserResponse, error) {
	u, err := s.store.FindByEmail(ctx, strings.ToLower(req.Email))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := s.passwords.VerifyPassword(req.Password, u.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	return mapToUserResponse(u), nil
}

// GetUser returns the user view for an id
func (s *Service) GetUser(ctx context.Context, id uint) (*UserResponse, error) {
	u, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return mapToUserResponse(u), nil
}

func mapToUserResponse(u *User) *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}
