package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/JPVargas2025/storefront/internal/core/domain"
)

func catalogStub() *stubCatalogService {
	return &stubCatalogService{products: []domain.Product{
		{ID: 1, Name: "Shirt", Price: decimal.RequireFromString("19.99")},
		{ID: 2, Name: "Hat", Price: decimal.RequireFromString("5")},
	}}
}

func TestProductHandler_List(t *testing.T) {
	handler := NewProductHandler(catalogStub())

	c, rec := newContext(http.MethodGet, "/v1/products", "", "ana", "user")
	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp productsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Count != 2 || !resp.Products[0].Price.Equal(decimal.RequireFromString("19.99")) {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestProductHandler_Search(t *testing.T) {
	stub := catalogStub()
	handler := NewProductHandler(stub)

	c, rec := newContext(http.MethodGet, "/v1/products?q=shi", "", "ana", "user")
	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if stub.searched != "shi" {
		t.Fatalf("expected search for shi, got %q", stub.searched)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestProductHandler_Search_EmptyTerm(t *testing.T) {
	handler := NewProductHandler(catalogStub())

	c, _ := newContext(http.MethodGet, "/v1/products?q=", "", "ana", "user")
	var he *echo.HTTPError
	if err := handler.List(c); !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestProductHandler_Create(t *testing.T) {
	stub := catalogStub()
	handler := NewProductHandler(stub)

	c, rec := newContext(http.MethodPost, "/v1/products", `{"name":"Cream","category":"Cremas","price":"0.10"}`, "boss", "admin")
	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if stub.added == nil || stub.added.Price != "0.10" {
		t.Fatalf("unexpected input: %+v", stub.added)
	}
}

func TestProductHandler_Create_BadPrice(t *testing.T) {
	handler := NewProductHandler(catalogStub())

	c, _ := newContext(http.MethodPost, "/v1/products", `{"name":"Cream","price":"cheap"}`, "boss", "admin")
	var he *echo.HTTPError
	if err := handler.Create(c); !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}
