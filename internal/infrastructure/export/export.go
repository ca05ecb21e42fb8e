// Package export renders the inventory and sales reports as spreadsheet
// (excelize) or CSV (gocsv) files.
package export

import (
	"strconv"

	"github.com/JPVargas2025/storefront/internal/core/domain"
	"github.com/JPVargas2025/storefront/internal/core/ports"
)

const (
	InventorySheet = "Inventario"
	SalesSheet     = "Reporte de Ventas"

	totalLabel = "TOTAL"
)

var (
	inventoryHeader = []string{"ID", "Nombre", "Categoría", "Precio"}
	salesHeader     = []string{"Producto", "Cantidad Vendida", "Precio Unitario", "Total Ingresos"}
)

// inventoryRow and salesRow are the flattened forms shared by both writers.
type inventoryRow struct {
	ID       string `csv:"ID"`
	Name     string `csv:"Nombre"`
	Category string `csv:"Categoría"`
	Price    string `csv:"Precio"`
}

type salesRow struct {
	Product   string `csv:"Producto"`
	Quantity  string `csv:"Cantidad Vendida"`
	UnitPrice string `csv:"Precio Unitario"`
	Revenue   string `csv:"Total Ingresos"`
}

func inventoryRows(products []domain.Product) []inventoryRow {
	rows := make([]inventoryRow, 0, len(products))
	for _, p := range products {
		rows = append(rows, inventoryRow{
			ID:       strconv.FormatInt(p.ID, 10),
			Name:     p.Name,
			Category: p.Category,
			Price:    p.Price.StringFixed(2),
		})
	}
	return rows
}

// salesRows flattens the report and appends the totals row.
func salesRows(report *ports.SalesReport) []salesRow {
	rows := make([]salesRow, 0, len(report.Rows)+1)
	for _, r := range report.Rows {
		rows = append(rows, salesRow{
			Product:   r.ProductName,
			Quantity:  strconv.FormatInt(r.TotalQuantity, 10),
			UnitPrice: r.UnitPrice.StringFixed(2),
			Revenue:   r.TotalRevenue.StringFixed(2),
		})
	}
	rows = append(rows, salesRow{
		Product:  totalLabel,
		Quantity: strconv.FormatInt(report.TotalQuantity, 10),
		Revenue:  report.TotalRevenue.StringFixed(2),
	})
	return rows
}
