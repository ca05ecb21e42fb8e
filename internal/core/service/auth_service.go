package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/JPVargas2025/storefront/internal/core/domain"
	"github.com/JPVargas2025/storefront/internal/core/ports"
)

// AuthConfig holds the registration and token settings.
type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
	// AdminCode must be supplied to register with the admin role.
	AdminCode string
	// EmailDomain is the suffix every registered email must end with.
	// Empty disables the check.
	EmailDomain string
}

// AuthService implements registration and login.
type AuthService struct {
	repo   ports.UserRepository
	cfg    AuthConfig
	logger zerolog.Logger
}

var _ ports.AuthService = (*AuthService)(nil)

func NewAuthService(repo ports.UserRepository, cfg AuthConfig, logger zerolog.Logger) *AuthService {
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = 24 * time.Hour
	}
	return &AuthService{repo: repo, cfg: cfg, logger: logger}
}

// Register validates the registration form and stores the user. The password
// is stored exactly as entered.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	if in.Role == "" {
		in.Role = domain.RoleUser
	}
	if in.Username == "" || in.Password == "" || in.Email == "" {
		return nil, fmt.Errorf("%w: all fields are required", domain.ErrInvalidInput)
	}
	if !domain.ValidRole(in.Role) {
		return nil, fmt.Errorf("%w: unknown role %q", domain.ErrInvalidInput, in.Role)
	}
	if s.cfg.EmailDomain != "" && !strings.HasSuffix(in.Email, s.cfg.EmailDomain) {
		return nil, fmt.Errorf("%w: email must end with %s", domain.ErrInvalidInput, s.cfg.EmailDomain)
	}
	if in.Role == domain.RoleAdmin &&
		subtle.ConstantTimeCompare([]byte(in.AdminCode), []byte(s.cfg.AdminCode)) != 1 {
		s.logger.Warn().Str("username", in.Username).Msg("admin registration with wrong code")
		return nil, domain.ErrAdminCodeMismatch
	}

	user := domain.User{
		Username: in.Username,
		Password: in.Password,
		Email:    in.Email,
		Role:     in.Role,
	}
	if err := s.repo.RegisterUser(ctx, user); err != nil {
		if !errors.Is(err, domain.ErrUserExists) {
			s.logger.Error().Err(err).Str("username", in.Username).Msg("failed to register user")
		}
		return nil, err
	}

	s.logger.Info().Str("username", user.Username).Str("role", user.Role).Msg("user registered")
	return &user, nil
}

// Login checks all four credential fields against the store and returns the
// resulting session with a signed token carrying it.
func (s *AuthService) Login(ctx context.Context, creds domain.Credentials) (*ports.LoginResult, error) {
	if creds.Username == "" || creds.Password == "" || creds.Email == "" || creds.Role == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.Authenticate(ctx, creds)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.logger.Info().Str("username", creds.Username).Msg("login rejected")
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	session := domain.Session{Username: user.Username, Role: user.Role}
	token, err := s.generateToken(session)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	s.logger.Info().Str("username", session.Username).Str("role", session.Role).Msg("login")
	return &ports.LoginResult{Token: token, Session: session}, nil
}

func (s *AuthService) ListUsernames(ctx context.Context) ([]string, error) {
	return s.repo.ListUsernames(ctx)
}

func (s *AuthService) generateToken(session domain.Session) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":      session.Username,
		"username": session.Username,
		"role":     session.Role,
		"iat":      now.Unix(),
		"exp":      now.Add(s.cfg.TokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.cfg.JWTSecret))
}
