package ports

import (
	"context"

	"github.com/JPVargas2025/storefront/internal/core/domain"
)

// RegisterInput carries the registration form. AdminCode is only checked when
// Role is admin.
type RegisterInput struct {
	Username  string
	Password  string
	Email     string
	Role      string
	AdminCode string
}

// LoginResult is returned by a successful login.
type LoginResult struct {
	Token   string
	Session domain.Session
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	Login(ctx context.Context, creds domain.Credentials) (*LoginResult, error)
	ListUsernames(ctx context.Context) ([]string, error)
}
