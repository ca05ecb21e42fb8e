package ports

import (
	"context"

	"github.com/JPVargas2025/storefront/internal/core/domain"
)

// AddProductInput carries the inventory form. Price is the raw text entered
// by the administrator.
type AddProductInput struct {
	Name     string
	Category string
	Price    string
}

// CatalogService defines use-case operations on the product catalog.
type CatalogService interface {
	AddProduct(ctx context.Context, input AddProductInput) (*domain.Product, error)
	ListProducts(ctx context.Context) ([]domain.Product, error)
	FindProducts(ctx context.Context, name string) ([]domain.Product, error)
}
