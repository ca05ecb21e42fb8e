package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/JPVargas2025/storefront/internal/core/domain"
	"github.com/JPVargas2025/storefront/internal/core/ports"
)

type CatalogService struct {
	repo   ports.ProductRepository
	logger zerolog.Logger
}

var _ ports.CatalogService = (*CatalogService)(nil)

func NewCatalogService(repo ports.ProductRepository, logger zerolog.Logger) *CatalogService {
	return &CatalogService{repo: repo, logger: logger}
}

// AddProduct parses the entered price as a decimal and stores the product.
// Negative prices are accepted.
func (s *CatalogService) AddProduct(ctx context.Context, in ports.AddProductInput) (*domain.Product, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}
	price, err := decimal.NewFromString(strings.TrimSpace(in.Price))
	if err != nil {
		return nil, fmt.Errorf("%w: price must be a number", domain.ErrInvalidInput)
	}

	p, err := s.repo.AddProduct(ctx, domain.Product{
		Name:     in.Name,
		Category: in.Category,
		Price:    price,
	})
	if err != nil {
		s.logger.Error().Err(err).Str("name", in.Name).Msg("failed to add product")
		return nil, err
	}

	s.logger.Info().Int64("product_id", p.ID).Str("name", p.Name).Str("price", p.Price.String()).Msg("product added")
	return p, nil
}

func (s *CatalogService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return s.repo.ListProducts(ctx)
}

func (s *CatalogService) FindProducts(ctx context.Context, name string) ([]domain.Product, error) {
	return s.repo.FindProducts(ctx, name)
}
