package store

import (
	"context"

	"github.com/ncnews/ncnews/internal/domain"
)

// UserStore defines the interface for user data persistence. Users are
// read-only through this API.
type UserStore interface {
	// List returns every user.
	List(ctx context.Context) ([]domain.User, error)

	// GetByUsername retrieves a user by their username.
	// Returns ErrUserNotFound if the user does not exist.
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}
