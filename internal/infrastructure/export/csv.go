package export

import (
	"io"

	"github.com/gocarina/gocsv"

	"github.com/JPVargas2025/storefront/internal/core/domain"
	"github.com/JPVargas2025/storefront/internal/core/ports"
)

// CSV writes reports as comma separated values with a header line.
type CSV struct{}

func NewCSV() *CSV { return &CSV{} }

func (CSV) WriteInventory(w io.Writer, products []domain.Product) error {
	rows := inventoryRows(products)
	return gocsv.Marshal(&rows, w)
}

func (CSV) WriteSales(w io.Writer, report *ports.SalesReport) error {
	rows := salesRows(report)
	return gocsv.Marshal(&rows, w)
}
