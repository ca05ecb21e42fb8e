package handler

import (
	"github.com/JPVargas2025/storefront/internal/core/domain"
	"github.com/JPVargas2025/storefront/internal/core/ports"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Auth ---

type registerRequest struct {
	Username  string `json:"username"   validate:"required"`
	Password  string `json:"password"   validate:"required"`
	Email     string `json:"email"      validate:"required"`
	Role      string `json:"role"       validate:"omitempty,oneof=user admin"`
	AdminCode string `json:"admin_code"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Email    string `json:"email"    validate:"required"`
	Role     string `json:"role"     validate:"required,oneof=user admin"`
}

type registerResponse struct {
	User *domain.User `json:"user"`
}

type loginResponse struct {
	Token   string         `json:"token"`
	Session domain.Session `json:"session"`
}

type usernamesResponse struct {
	Usernames []string `json:"usernames"`
	Count     int      `json:"count"`
}

// --- Catalog ---

type addProductRequest struct {
	Name     string `json:"name"     validate:"required"`
	Category string `json:"category"`
	Price    string `json:"price"    validate:"required,numeric"`
}

type productsResponse struct {
	Products []domain.Product `json:"products"`
	Count    int              `json:"count"`
}

type categoriesResponse struct {
	Categories []string `json:"categories"`
}

// --- Orders ---

type placeOrderRequest struct {
	ProductID int64 `json:"product_id" validate:"required,gt=0"`
	Quantity  int   `json:"quantity"   validate:"required,gt=0"`
}

type ordersResponse struct {
	Username string             `json:"username"`
	Orders   []domain.OrderLine `json:"orders"`
	Count    int                `json:"count"`
}

// --- Reports ---

type salesReportResponse struct {
	Rows          []domain.ProductSales `json:"rows"`
	TotalQuantity int64                 `json:"total_quantity_sold"`
	TotalRevenue  string                `json:"total_revenue"`
}

func toSalesReportResponse(r *ports.SalesReport) salesReportResponse {
	rows := r.Rows
	if rows == nil {
		rows = []domain.ProductSales{}
	}
	return salesReportResponse{
		Rows:          rows,
		TotalQuantity: r.TotalQuantity,
		TotalRevenue:  r.TotalRevenue.StringFixed(2),
	}
}

func toOrdersResponse(username string, lines []domain.OrderLine) ordersResponse {
	if lines == nil {
		lines = []domain.OrderLine{}
	}
	return ordersResponse{Username: username, Orders: lines, Count: len(lines)}
}
