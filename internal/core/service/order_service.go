package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/JPVargas2025/storefront/internal/core/domain"
	"github.com/JPVargas2025/storefront/internal/core/ports"
)

// OrderDedup abstracts the idempotency store (Redis).
type OrderDedup interface {
	Claim(ctx context.Context, username, key string) (bool, error)
	Release(ctx context.Context, username, key string) error
}

type OrderService struct {
	repo   ports.OrderRepository
	dedup  OrderDedup
	logger zerolog.Logger
}

var _ ports.OrderService = (*OrderService)(nil)

// NewOrderService returns an OrderService. dedup may be nil, in which case
// idempotency keys are ignored.
func NewOrderService(repo ports.OrderRepository, dedup OrderDedup, logger zerolog.Logger) *OrderService {
	return &OrderService{repo: repo, dedup: dedup, logger: logger}
}

// PlaceOrder records an order for the session's user. The product id is not
// checked against the catalog; an unknown id yields an order that the joined
// reads never show.
func (s *OrderService) PlaceOrder(ctx context.Context, session domain.Session, in ports.PlaceOrderInput) (*domain.Order, error) {
	if session.Username == "" {
		return nil, domain.ErrForbidden
	}
	if in.ProductID <= 0 || in.Quantity <= 0 {
		return nil, fmt.Errorf("%w: product id and quantity must be positive", domain.ErrInvalidInput)
	}

	claimed := false
	if s.dedup != nil && in.IdempotencyKey != "" {
		ok, err := s.dedup.Claim(ctx, session.Username, in.IdempotencyKey)
		switch {
		case err != nil:
			s.logger.Warn().Err(err).Str("username", session.Username).Msg("dedup claim failed, placing order anyway")
		case !ok:
			s.logger.Debug().Str("username", session.Username).Str("idempotency_key", in.IdempotencyKey).Msg("duplicate order skipped")
			return nil, domain.ErrDuplicateOrder
		default:
			claimed = true
		}
	}

	order, err := s.repo.PlaceOrder(ctx, domain.Order{
		Username:  session.Username,
		ProductID: in.ProductID,
		Quantity:  in.Quantity,
	})
	if err != nil {
		if claimed {
			if relErr := s.dedup.Release(ctx, session.Username, in.IdempotencyKey); relErr != nil {
				s.logger.Warn().Err(relErr).Str("username", session.Username).Msg("failed to release dedup key")
			}
		}
		s.logger.Error().Err(err).Str("username", session.Username).Msg("failed to place order")
		return nil, err
	}

	s.logger.Info().
		Int64("order_id", order.ID).
		Str("username", order.Username).
		Int64("product_id", order.ProductID).
		Int("quantity", order.Quantity).
		Msg("order placed")
	return order, nil
}

func (s *OrderService) MyOrders(ctx context.Context, session domain.Session) ([]domain.OrderLine, error) {
	if session.Username == "" {
		return nil, domain.ErrForbidden
	}
	return s.repo.OrdersForUser(ctx, session.Username)
}

// OrdersOfUser is the admin review of another user's orders.
func (s *OrderService) OrdersOfUser(ctx context.Context, username string) (*ports.UserOrders, error) {
	if username == "" {
		return nil, fmt.Errorf("%w: username is required", domain.ErrInvalidInput)
	}
	lines, err := s.repo.OrdersForUser(ctx, username)
	if err != nil {
		return nil, err
	}
	return &ports.UserOrders{Username: username, Orders: lines, Count: len(lines)}, nil
}
