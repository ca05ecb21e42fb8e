package ports

import (
	"context"

	"github.com/JPVargas2025/storefront/internal/core/domain"
)

// ProductRepository defines persistence for the catalog.
type ProductRepository interface {
	// AddProduct stores p under a freshly assigned id and returns the stored record.
	AddProduct(ctx context.Context, p domain.Product) (*domain.Product, error)
	ListProducts(ctx context.Context) ([]domain.Product, error)
	// FindProducts returns products whose name contains substr, following the
	// engine's LIKE semantics. An empty substr matches every product.
	FindProducts(ctx context.Context, substr string) ([]domain.Product, error)
}

// OrderRepository defines persistence and joined reads for orders.
type OrderRepository interface {
	// PlaceOrder stores o. Neither the username nor the product id is checked.
	PlaceOrder(ctx context.Context, o domain.Order) (*domain.Order, error)
	// OrdersForUser returns the user's orders newest first. Orders whose
	// product does not exist are omitted.
	OrdersForUser(ctx context.Context, username string) ([]domain.OrderLine, error)
}

// ReportRepository defines the aggregation queries.
type ReportRepository interface {
	// SalesStatistics returns one row per product with at least one order,
	// ordered by total quantity sold, highest first.
	SalesStatistics(ctx context.Context) ([]domain.ProductSales, error)
}

// StoreRepository is the full storage contract implemented by each engine adapter.
type StoreRepository interface {
	UserRepository
	ProductRepository
	OrderRepository
	ReportRepository

	EnsureSchema(ctx context.Context) error
	Ping(ctx context.Context) error
	Close() error
}
