package handler

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/JPVargas2025/storefront/internal/core/domain"
	"github.com/JPVargas2025/storefront/internal/core/ports"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, in ports.RegisterInput) (*domain.User, error)
	loginFn    func(ctx context.Context, creds domain.Credentials) (*ports.LoginResult, error)
	usernames  []string
}

func (s *stubAuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	return s.registerFn(ctx, in)
}

func (s *stubAuthService) Login(ctx context.Context, creds domain.Credentials) (*ports.LoginResult, error) {
	return s.loginFn(ctx, creds)
}

func (s *stubAuthService) ListUsernames(_ context.Context) ([]string, error) {
	return s.usernames, nil
}

type stubCatalogService struct {
	products []domain.Product
	searched string
	added    *ports.AddProductInput
}

func (s *stubCatalogService) AddProduct(_ context.Context, in ports.AddProductInput) (*domain.Product, error) {
	s.added = &in
	return &domain.Product{ID: 1, Name: in.Name, Category: in.Category}, nil
}

func (s *stubCatalogService) ListProducts(_ context.Context) ([]domain.Product, error) {
	return s.products, nil
}

func (s *stubCatalogService) FindProducts(_ context.Context, name string) ([]domain.Product, error) {
	s.searched = name
	return s.products[:1], nil
}

type stubOrderService struct {
	placeErr error
	session  domain.Session
	input    ports.PlaceOrderInput
	lines    []domain.OrderLine
}

func (s *stubOrderService) PlaceOrder(_ context.Context, session domain.Session, in ports.PlaceOrderInput) (*domain.Order, error) {
	if s.placeErr != nil {
		return nil, s.placeErr
	}
	s.session, s.input = session, in
	return &domain.Order{ID: 1, Username: session.Username, ProductID: in.ProductID, Quantity: in.Quantity}, nil
}

func (s *stubOrderService) MyOrders(_ context.Context, session domain.Session) ([]domain.OrderLine, error) {
	s.session = session
	return s.lines, nil
}

func (s *stubOrderService) OrdersOfUser(_ context.Context, username string) (*ports.UserOrders, error) {
	return &ports.UserOrders{Username: username, Orders: s.lines, Count: len(s.lines)}, nil
}

type stubReportService struct {
	report    *ports.SalesReport
	exportErr error
	format    string
}

func (s *stubReportService) SalesReport(_ context.Context) (*ports.SalesReport, error) {
	return s.report, nil
}

func (s *stubReportService) ExportInventory(_ context.Context, format string, w io.Writer) error {
	if s.exportErr != nil {
		return s.exportErr
	}
	s.format = format
	_, err := io.WriteString(w, "ID,Nombre\n")
	return err
}

func (s *stubReportService) ExportSales(_ context.Context, format string, w io.Writer) error {
	if s.exportErr != nil {
		return s.exportErr
	}
	s.format = format
	_, err := io.WriteString(w, "Producto\n")
	return err
}

// newContext builds an echo context with the validator installed and, when
// username is set, the claims the Auth middleware would inject.
func newContext(method, target, body, username, role string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if username != "" {
		c.Set("username", username)
		c.Set("role", role)
	}
	return c, rec
}
