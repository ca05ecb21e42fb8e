package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/JPVargas2025/storefront/internal/core/domain"
)

func TestOrderHandler_Create_UsesSession(t *testing.T) {
	stub := &stubOrderService{}
	handler := NewOrderHandler(stub)

	c, rec := newContext(http.MethodPost, "/v1/orders", `{"product_id":3,"quantity":2}`, "ana", "user")
	c.Request().Header.Set("Idempotency-Key", "k1")
	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if stub.session.Username != "ana" || stub.input.ProductID != 3 || stub.input.IdempotencyKey != "k1" {
		t.Fatalf("unexpected call: %+v %+v", stub.session, stub.input)
	}
}

func TestOrderHandler_Create_Errors(t *testing.T) {
	handler := NewOrderHandler(&stubOrderService{placeErr: domain.ErrDuplicateOrder})

	c, _ := newContext(http.MethodPost, "/v1/orders", `{"product_id":3,"quantity":2}`, "ana", "user")
	if err := handler.Create(c); !errors.Is(err, domain.ErrDuplicateOrder) {
		t.Fatalf("expected ErrDuplicateOrder, got %v", err)
	}

	c, _ = newContext(http.MethodPost, "/v1/orders", `{"product_id":3,"quantity":0}`, "ana", "user")
	var he *echo.HTTPError
	if err := handler.Create(c); !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for zero quantity, got %v", err)
	}

	c, _ = newContext(http.MethodPost, "/v1/orders", `{"product_id":3,"quantity":1}`, "", "")
	if err := handler.Create(c); !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without claims, got %v", err)
	}
}

func TestOrderHandler_ListMine(t *testing.T) {
	stub := &stubOrderService{lines: []domain.OrderLine{{OrderID: 2, ProductName: "Book", Quantity: 5}}}
	handler := NewOrderHandler(stub)

	c, rec := newContext(http.MethodGet, "/v1/orders", "", "ana", "user")
	if err := handler.ListMine(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp ordersResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Username != "ana" || resp.Count != 1 || resp.Orders[0].ProductName != "Book" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestOrderHandler_ListForUser_EmptyIsArray(t *testing.T) {
	handler := NewOrderHandler(&stubOrderService{})

	c, rec := newContext(http.MethodGet, "/v1/admin/users/luis/orders", "", "boss", "admin")
	c.SetParamNames("username")
	c.SetParamValues("luis")
	if err := handler.ListForUser(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["username"] != "luis" {
		t.Fatalf("unexpected username: %v", resp["username"])
	}
	if orders, ok := resp["orders"].([]any); !ok || len(orders) != 0 {
		t.Fatalf("expected empty orders array, got %v", resp["orders"])
	}
}
