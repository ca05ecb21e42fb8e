package handler

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/JPVargas2025/storefront/internal/api/metrics"
	"github.com/JPVargas2025/storefront/internal/core/ports"
)

const (
	mimeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	mimeCSV  = "text/csv; charset=utf-8"
)

type ReportHandler struct {
	service ports.ReportService
}

func NewReportHandler(service ports.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

// Sales handles GET /v1/admin/reports/sales.
//
// @Summary      Sales statistics
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  salesReportResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/admin/reports/sales [get]
func (h *ReportHandler) Sales(c echo.Context) error {
	report, err := h.service.SalesReport(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toSalesReportResponse(report))
}

// ExportInventory handles GET /v1/admin/exports/inventory.
//
// @Summary      Download the inventory
// @Tags         admin
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Produce      text/csv
// @Security     BearerAuth
// @Param        format  query  string  false  "xlsx (default) or csv"
// @Success      200
// @Failure      400  {object}  errorResponse
// @Failure      422  {object}  errorResponse
// @Router       /v1/admin/exports/inventory [get]
func (h *ReportHandler) ExportInventory(c echo.Context) error {
	return h.export(c, "inventario", h.service.ExportInventory)
}

// ExportSales handles GET /v1/admin/exports/sales.
//
// @Summary      Download the sales report
// @Tags         admin
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Produce      text/csv
// @Security     BearerAuth
// @Param        format  query  string  false  "xlsx (default) or csv"
// @Success      200
// @Failure      400  {object}  errorResponse
// @Failure      422  {object}  errorResponse
// @Router       /v1/admin/exports/sales [get]
func (h *ReportHandler) ExportSales(c echo.Context) error {
	return h.export(c, "reporte_ventas", h.service.ExportSales)
}

type exportFunc func(ctx context.Context, format string, w io.Writer) error

// export renders the file into memory first so a failure still produces a
// JSON error instead of a truncated download.
func (h *ReportHandler) export(c echo.Context, name string, fn exportFunc) error {
	format := c.QueryParam("format")
	if format == "" {
		format = ports.FormatXLSX
	}

	start := time.Now()
	var buf bytes.Buffer
	if err := fn(c.Request().Context(), format, &buf); err != nil {
		return err
	}
	metrics.ExportsTotal.WithLabelValues(name, format).Inc()
	metrics.ExportDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())

	contentType := mimeXLSX
	if format == ports.FormatCSV {
		contentType = mimeCSV
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", name+"."+format))
	return c.Blob(http.StatusOK, contentType, buf.Bytes())
}
