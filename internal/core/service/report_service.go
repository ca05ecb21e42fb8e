package service

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/JPVargas2025/storefront/internal/core/domain"
	"github.com/JPVargas2025/storefront/internal/core/ports"
)

// Exporter renders report data in one file format.
type Exporter interface {
	WriteInventory(w io.Writer, products []domain.Product) error
	WriteSales(w io.Writer, report *ports.SalesReport) error
}

type ReportService struct {
	products  ports.ProductRepository
	reports   ports.ReportRepository
	exporters map[string]Exporter
	logger    zerolog.Logger
}

var _ ports.ReportService = (*ReportService)(nil)

// NewReportService returns a ReportService. exporters is keyed by format name
// (see ports.FormatXLSX and ports.FormatCSV).
func NewReportService(
	products ports.ProductRepository,
	reports ports.ReportRepository,
	exporters map[string]Exporter,
	logger zerolog.Logger,
) *ReportService {
	return &ReportService{
		products:  products,
		reports:   reports,
		exporters: exporters,
		logger:    logger,
	}
}

// SalesReport returns the per-product statistics and their grand totals.
func (s *ReportService) SalesReport(ctx context.Context) (*ports.SalesReport, error) {
	rows, err := s.reports.SalesStatistics(ctx)
	if err != nil {
		return nil, err
	}

	report := &ports.SalesReport{Rows: rows, TotalRevenue: decimal.Zero}
	for _, r := range rows {
		report.TotalQuantity += r.TotalQuantity
		report.TotalRevenue = report.TotalRevenue.Add(r.TotalRevenue)
	}
	return report, nil
}

func (s *ReportService) ExportInventory(ctx context.Context, format string, w io.Writer) error {
	exp, err := s.exporter(format)
	if err != nil {
		return err
	}
	products, err := s.products.ListProducts(ctx)
	if err != nil {
		return err
	}
	if len(products) == 0 {
		return domain.ErrNoData
	}

	if err := exp.WriteInventory(w, products); err != nil {
		return fmt.Errorf("export inventory: %w", err)
	}
	s.logger.Info().Str("format", format).Int("products", len(products)).Msg("inventory exported")
	return nil
}

func (s *ReportService) ExportSales(ctx context.Context, format string, w io.Writer) error {
	exp, err := s.exporter(format)
	if err != nil {
		return err
	}
	report, err := s.SalesReport(ctx)
	if err != nil {
		return err
	}
	if len(report.Rows) == 0 {
		return domain.ErrNoData
	}

	if err := exp.WriteSales(w, report); err != nil {
		return fmt.Errorf("export sales: %w", err)
	}
	s.logger.Info().Str("format", format).Int("products", len(report.Rows)).Msg("sales report exported")
	return nil
}

func (s *ReportService) exporter(format string) (Exporter, error) {
	exp, ok := s.exporters[format]
	if !ok {
		return nil, fmt.Errorf("%w: unsupported export format %q", domain.ErrInvalidInput, format)
	}
	return exp, nil
}
