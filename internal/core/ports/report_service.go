package ports

import (
	"context"
	"io"

	"github.com/shopspring/decimal"

	"github.com/JPVargas2025/storefront/internal/core/domain"
)

const (
	FormatXLSX = "xlsx"
	FormatCSV  = "csv"
)

// SalesReport is the sales statistics plus the grand totals row.
type SalesReport struct {
	Rows          []domain.ProductSales
	TotalQuantity int64
	TotalRevenue  decimal.Decimal
}

// ReportService defines reporting and export operations.
type ReportService interface {
	SalesReport(ctx context.Context) (*SalesReport, error)
	// ExportInventory writes the full product list to w in the given format.
	ExportInventory(ctx context.Context, format string, w io.Writer) error
	// ExportSales writes the sales report, including the totals row, to w.
	ExportSales(ctx context.Context, format string, w io.Writer) error
}
