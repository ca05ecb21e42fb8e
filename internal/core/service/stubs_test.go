package service

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/JPVargas2025/storefront/internal/core/domain"
	"github.com/JPVargas2025/storefront/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory store
// ---------------------------------------------------------------------------

type stubStore struct {
	users    []domain.User
	products []domain.Product
	orders   []domain.Order
	sales    []domain.ProductSales

	placeErr error
}

func newStubStore() *stubStore {
	return &stubStore{}
}

func (s *stubStore) RegisterUser(_ context.Context, u domain.User) error {
	for _, existing := range s.users {
		if existing.Username == u.Username {
			return domain.ErrUserExists
		}
	}
	s.users = append(s.users, u)
	return nil
}

func (s *stubStore) Authenticate(_ context.Context, c domain.Credentials) (*domain.User, error) {
	for _, u := range s.users {
		if u.Username == c.Username && u.Password == c.Password && u.Email == c.Email && u.Role == c.Role {
			found := u
			return &found, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (s *stubStore) ListUsernames(_ context.Context) ([]string, error) {
	names := make([]string, 0, len(s.users))
	for _, u := range s.users {
		names = append(names, u.Username)
	}
	return names, nil
}

func (s *stubStore) AddProduct(_ context.Context, p domain.Product) (*domain.Product, error) {
	p.ID = int64(len(s.products) + 1)
	s.products = append(s.products, p)
	return &p, nil
}

func (s *stubStore) ListProducts(_ context.Context) ([]domain.Product, error) {
	return append([]domain.Product(nil), s.products...), nil
}

func (s *stubStore) FindProducts(_ context.Context, substr string) ([]domain.Product, error) {
	var out []domain.Product
	for _, p := range s.products {
		if strings.Contains(strings.ToLower(p.Name), strings.ToLower(substr)) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *stubStore) PlaceOrder(_ context.Context, o domain.Order) (*domain.Order, error) {
	if s.placeErr != nil {
		return nil, s.placeErr
	}
	o.ID = int64(len(s.orders) + 1)
	s.orders = append(s.orders, o)
	return &o, nil
}

func (s *stubStore) OrdersForUser(_ context.Context, username string) ([]domain.OrderLine, error) {
	var out []domain.OrderLine
	for i := len(s.orders) - 1; i >= 0; i-- {
		o := s.orders[i]
		if o.Username != username || o.ProductID > int64(len(s.products)) {
			continue
		}
		out = append(out, domain.OrderLine{
			OrderID:     o.ID,
			ProductName: s.products[o.ProductID-1].Name,
			Quantity:    o.Quantity,
			PlacedAt:    o.PlacedAt,
		})
	}
	return out, nil
}

func (s *stubStore) SalesStatistics(_ context.Context) ([]domain.ProductSales, error) {
	return s.sales, nil
}

// ---------------------------------------------------------------------------
// Dedup and exporter
// ---------------------------------------------------------------------------

type stubDedup struct {
	claimed  map[string]bool
	claimErr error
	released []string
}

func newStubDedup() *stubDedup {
	return &stubDedup{claimed: make(map[string]bool)}
}

func (d *stubDedup) Claim(_ context.Context, username, key string) (bool, error) {
	if d.claimErr != nil {
		return false, d.claimErr
	}
	k := username + ":" + key
	if d.claimed[k] {
		return false, nil
	}
	d.claimed[k] = true
	return true, nil
}

func (d *stubDedup) Release(_ context.Context, username, key string) error {
	k := username + ":" + key
	delete(d.claimed, k)
	d.released = append(d.released, k)
	return nil
}

type stubExporter struct {
	inventory []domain.Product
	report    *ports.SalesReport
	err       error
}

func (e *stubExporter) WriteInventory(w io.Writer, products []domain.Product) error {
	if e.err != nil {
		return e.err
	}
	e.inventory = products
	_, err := io.WriteString(w, "inventory")
	return err
}

func (e *stubExporter) WriteSales(w io.Writer, report *ports.SalesReport) error {
	if e.err != nil {
		return e.err
	}
	e.report = report
	_, err := io.WriteString(w, "sales")
	return err
}

var errBoom = errors.New("boom")
