package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is a single purchase of one product by one user.
// A zero PlacedAt is filled in by the store with the current time.
type Order struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	ProductID int64     `json:"product_id"`
	Quantity  int       `json:"quantity"`
	PlacedAt  time.Time `json:"placed_at"`
}

// OrderLine is an order joined with the name of the product it references.
type OrderLine struct {
	OrderID     int64     `json:"order_id"`
	ProductName string    `json:"product_name"`
	Quantity    int       `json:"quantity"`
	PlacedAt    time.Time `json:"placed_at"`
}

// ProductSales aggregates every order of one product.
type ProductSales struct {
	ProductID     int64           `json:"product_id"`
	ProductName   string          `json:"product_name"`
	TotalQuantity int64           `json:"total_quantity_sold"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
}
