package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/JPVargas2025/storefront/internal/core/domain"
)

// timestampLayout matches the text CURRENT_TIMESTAMP produces, extended with
// fractional seconds, so explicit and defaulted values sort together.
const timestampLayout = "2006-01-02 15:04:05.999999999"

// PlaceOrder stores o as given. When o.PlacedAt is zero the column default
// (the insert time, UTC) applies.
func (s *Store) PlaceOrder(ctx context.Context, o domain.Order) (*domain.Order, error) {
	err := s.withTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		var (
			res sql.Result
			err error
		)
		if o.PlacedAt.IsZero() {
			res, err = tx.ExecContext(ctx,
				`INSERT INTO orders (username, product_id, quantity) VALUES (?, ?, ?)`,
				required(o.Username), o.ProductID, o.Quantity)
		} else {
			res, err = tx.ExecContext(ctx,
				`INSERT INTO orders (username, product_id, quantity, placed_at) VALUES (?, ?, ?, ?)`,
				required(o.Username), o.ProductID, o.Quantity, o.PlacedAt.UTC().Format(timestampLayout))
		}
		if err != nil {
			return translate("insert order", err)
		}

		if o.ID, err = res.LastInsertId(); err != nil {
			return fmt.Errorf("insert order: last id: %w", err)
		}
		return tx.QueryRowContext(ctx, `SELECT placed_at FROM orders WHERE id = ?`, o.ID).Scan(&o.PlacedAt)
	})
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// OrdersForUser joins orders to products; an order whose product is missing
// has no partner row and is left out.
func (s *Store) OrdersForUser(ctx context.Context, username string) ([]domain.OrderLine, error) {
	lines := []domain.OrderLine{}
	err := s.withConn(ctx, func(ctx context.Context, conn *sql.Conn) error {
		rows, err := conn.QueryContext(ctx,
			`SELECT o.id, p.name, o.quantity, o.placed_at
			 FROM orders o
			 JOIN products p ON o.product_id = p.id
			 WHERE o.username = ?
			 ORDER BY o.placed_at DESC`, username)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var (
				l        domain.OrderLine
				placedAt time.Time
			)
			if err := rows.Scan(&l.OrderID, &l.ProductName, &l.Quantity, &placedAt); err != nil {
				return err
			}
			l.PlacedAt = placedAt.UTC()
			lines = append(lines, l)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("orders for user: %w", err)
	}
	return lines, nil
}
