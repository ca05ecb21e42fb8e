package ports

import (
	"context"

	"github.com/JPVargas2025/storefront/internal/core/domain"
)

// UserRepository defines persistence for registered users.
type UserRepository interface {
	// RegisterUser inserts u. A taken username yields domain.ErrUserExists and
	// leaves the stored row untouched.
	RegisterUser(ctx context.Context, u domain.User) error
	// Authenticate returns the user whose four fields equal c exactly, or
	// domain.ErrUserNotFound.
	Authenticate(ctx context.Context, c domain.Credentials) (*domain.User, error)
	ListUsernames(ctx context.Context) ([]string, error)
}
