package export

import (
	"fmt"
	"io"

	"github.com/360EntSecGroup-Skylar/excelize"

	"github.com/JPVargas2025/storefront/internal/core/domain"
	"github.com/JPVargas2025/storefront/internal/core/ports"
)

const defaultSheet = "Sheet1"

var columns = []string{"A", "B", "C", "D"}

// XLSX writes reports as a single-sheet Excel workbook. Numeric columns are
// stored as numbers so the sheet can be summed.
type XLSX struct{}

func NewXLSX() *XLSX { return &XLSX{} }

func (XLSX) WriteInventory(w io.Writer, products []domain.Product) error {
	f, err := newWorkbook(InventorySheet, inventoryHeader)
	if err != nil {
		return err
	}
	for i, p := range products {
		row := i + 2
		f.SetCellValue(InventorySheet, cell("A", row), p.ID)
		f.SetCellValue(InventorySheet, cell("B", row), p.Name)
		f.SetCellValue(InventorySheet, cell("C", row), p.Category)
		f.SetCellValue(InventorySheet, cell("D", row), p.Price.InexactFloat64())
	}
	f.SetColWidth(InventorySheet, "B", "C", 24)
	return f.Write(w)
}

func (XLSX) WriteSales(w io.Writer, report *ports.SalesReport) error {
	f, err := newWorkbook(SalesSheet, salesHeader)
	if err != nil {
		return err
	}
	row := 2
	for _, r := range report.Rows {
		f.SetCellValue(SalesSheet, cell("A", row), r.ProductName)
		f.SetCellValue(SalesSheet, cell("B", row), r.TotalQuantity)
		f.SetCellValue(SalesSheet, cell("C", row), r.UnitPrice.InexactFloat64())
		f.SetCellValue(SalesSheet, cell("D", row), r.TotalRevenue.InexactFloat64())
		row++
	}
	f.SetCellValue(SalesSheet, cell("A", row), totalLabel)
	f.SetCellValue(SalesSheet, cell("B", row), report.TotalQuantity)
	f.SetCellValue(SalesSheet, cell("D", row), report.TotalRevenue.InexactFloat64())

	bold, err := f.NewStyle(`{"font":{"bold":true}}`)
	if err != nil {
		return fmt.Errorf("xlsx style: %w", err)
	}
	f.SetCellStyle(SalesSheet, cell("A", row), cell("D", row), bold)
	f.SetColWidth(SalesSheet, "A", "D", 20)
	return f.Write(w)
}

// newWorkbook returns a workbook whose only sheet is named sheet and carries
// a bold header row.
func newWorkbook(sheet string, header []string) (*excelize.File, error) {
	f := excelize.NewFile()
	f.SetSheetName(defaultSheet, sheet)
	for i, h := range header {
		f.SetCellValue(sheet, cell(columns[i], 1), h)
	}
	bold, err := f.NewStyle(`{"font":{"bold":true}}`)
	if err != nil {
		return nil, fmt.Errorf("xlsx style: %w", err)
	}
	f.SetCellStyle(sheet, cell(columns[0], 1), cell(columns[len(header)-1], 1), bold)
	return f, nil
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
