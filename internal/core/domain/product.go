package domain

import "github.com/shopspring/decimal"

// Categories lists the categories offered when adding products. The store
// accepts any value, including none.
var Categories = []string{"Ropa", "Zapatos", "Cremas", "Lociones", "Accesorios", "Otros"}

// Product is a catalog entry. ID is assigned by the store on insert.
type Product struct {
	ID       int64           `json:"id"`
	Name     string          `json:"name"`
	Category string          `json:"category,omitempty"`
	Price    decimal.Decimal `json:"price"`
}
