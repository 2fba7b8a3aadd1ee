// Package users stores API accounts and implements signup, login and token
// authentication on top of them.
package users

import (
	"context"
	"errors"
)

var (
	ErrNotFound  = errors.New("user not found")
	ErrDuplicate = errors.New("username or email already registered")
)

type Repository interface {
	// Create inserts u and fills in its ID and CreatedAt. It returns
	// ErrDuplicate when the username or email is taken.
	Create(ctx context.Context, u *User) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	// Exists reports whether any user has the email or the username.
	Exists(ctx context.Context, email, username string) (bool, error)
}
