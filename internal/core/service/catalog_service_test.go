package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/JPVargas2025/storefront/internal/core/domain"
	"github.com/JPVargas2025/storefront/internal/core/ports"
)

func TestCatalogService_AddProduct(t *testing.T) {
	repo := newStubStore()
	svc := NewCatalogService(repo, zerolog.Nop())

	p, err := svc.AddProduct(context.Background(), ports.AddProductInput{Name: "Shirt", Category: "Ropa", Price: " 19.99 "})
	if err != nil {
		t.Fatalf("AddProduct returned error: %v", err)
	}
	if p.ID != 1 || p.Price.String() != "19.99" {
		t.Fatalf("unexpected product: %+v", p)
	}
}

func TestCatalogService_AddProduct_Validation(t *testing.T) {
	svc := NewCatalogService(newStubStore(), zerolog.Nop())

	if _, err := svc.AddProduct(context.Background(), ports.AddProductInput{Price: "1"}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for missing name, got %v", err)
	}
	if _, err := svc.AddProduct(context.Background(), ports.AddProductInput{Name: "Hat", Price: "abc"}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for bad price, got %v", err)
	}
}

func TestCatalogService_FindProducts(t *testing.T) {
	svc := NewCatalogService(newStubStore(), zerolog.Nop())
	for _, name := range []string{"Shirt", "Hat", "T-SHIRT"} {
		if _, err := svc.AddProduct(context.Background(), ports.AddProductInput{Name: name, Price: "1"}); err != nil {
			t.Fatalf("AddProduct: %v", err)
		}
	}

	found, err := svc.FindProducts(context.Background(), "shi")
	if err != nil {
		t.Fatalf("FindProducts: %v", err)
	}
	if len(found) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(found))
	}

	all, _ := svc.ListProducts(context.Background())
	if len(all) != 3 {
		t.Fatalf("expected 3 products, got %d", len(all))
	}
}
