package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/JPVargas2025/storefront/internal/core/domain"
)

type salesKey struct {
	productID int64
	name      string
	price     string
}

// SalesStatistics reads every joined (order, product) row and sums them per
// (product id, name, price). Revenue adds quantity*price row by row in
// decimal arithmetic, so no float rounding is involved.
func (s *Store) SalesStatistics(ctx context.Context) ([]domain.ProductSales, error) {
	var stats []domain.ProductSales
	err := s.withConn(ctx, func(ctx context.Context, conn *sql.Conn) error {
		rows, err := conn.QueryContext(ctx,
			`SELECT o.product_id, p.name, p.price, o.quantity
			 FROM orders o
			 JOIN products p ON o.product_id = p.id
			 ORDER BY o.id`)
		if err != nil {
			return err
		}
		defer rows.Close()

		index := make(map[salesKey]int)
		for rows.Next() {
			var (
				productID int64
				name      string
				price     decimal.Decimal
				quantity  int64
			)
			if err := rows.Scan(&productID, &name, &price, &quantity); err != nil {
				return err
			}

			key := salesKey{productID: productID, name: name, price: price.String()}
			i, ok := index[key]
			if !ok {
				i = len(stats)
				index[key] = i
				stats = append(stats, domain.ProductSales{
					ProductID:    productID,
					ProductName:  name,
					UnitPrice:    price,
					TotalRevenue: decimal.Zero,
				})
			}
			stats[i].TotalQuantity += quantity
			stats[i].TotalRevenue = stats[i].TotalRevenue.Add(price.Mul(decimal.NewFromInt(quantity)))
		}
		return rows.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("sales statistics: %w", err)
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].TotalQuantity > stats[j].TotalQuantity
	})
	if stats == nil {
		stats = []domain.ProductSales{}
	}
	return stats, nil
}
