package ports

import (
	"context"

	"github.com/JPVargas2025/storefront/internal/core/domain"
)

// PlaceOrderInput carries an order request. The acting user comes from the
// session, never from the input.
type PlaceOrderInput struct {
	ProductID      int64
	Quantity       int
	IdempotencyKey string
}

// UserOrders is the admin view of one user's order history.
type UserOrders struct {
	Username string
	Orders   []domain.OrderLine
	Count    int
}

// OrderService defines use-case operations on orders.
type OrderService interface {
	PlaceOrder(ctx context.Context, session domain.Session, input PlaceOrderInput) (*domain.Order, error)
	MyOrders(ctx context.Context, session domain.Session) ([]domain.OrderLine, error)
	OrdersOfUser(ctx context.Context, username string) (*UserOrders, error)
}
