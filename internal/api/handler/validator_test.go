package handler

import (
	"strings"
	"testing"
)

func TestValidator_UsesJSONNames(t *testing.T) {
	err := NewValidator().Validate(&placeOrderRequest{Quantity: 1})
	if err == nil || !strings.Contains(err.Error(), "product_id is required") {
		t.Fatalf("unexpected error: %v", err)
	}

	err = NewValidator().Validate(&loginRequest{Username: "ana", Password: "pw", Email: "ana@gmail.com", Role: "root"})
	if err == nil || !strings.Contains(err.Error(), "role must be one of: user, admin") {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := NewValidator().Validate(&addProductRequest{Name: "Hat", Price: "5.50"}); err != nil {
		t.Fatalf("expected valid product, got %v", err)
	}
}
