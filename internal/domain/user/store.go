// internal/domain/user/store.go
package user

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned when no user exists with the requested id/email.
	ErrNotFound = errors.New("user not found")

	// ErrEmailTaken is returned when registering with an email that is
	// already in use.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials is returned on a failed login. Deliberately does
	// not distinguish unknown email from wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// Store is the user persistence contract.
type Store interface {
	Create(ctx context.Context, u *User) error
	// FindByEmail returns ErrNotFound when no user has the email.
	FindByEmail(ctx context.Context, email string) (*User, error)
	// FindByID returns ErrNotFound when no user has the id.
	FindByID(ctx context.Context, id uint) (*User, error)
}
