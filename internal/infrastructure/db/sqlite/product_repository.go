package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/JPVargas2025/storefront/internal/core/domain"
)

const selectProducts = `SELECT id, name, category, price FROM products`

func (s *Store) AddProduct(ctx context.Context, p domain.Product) (*domain.Product, error) {
	var category any
	if p.Category != "" {
		category = p.Category
	}

	err := s.withTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			`INSERT INTO products (name, category, price) VALUES (?, ?, ?)`,
			required(p.Name), category, p.Price.String())
		if err != nil {
			return translate("insert product", err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("insert product: last id: %w", err)
		}
		p.ID = id
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Store) ListProducts(ctx context.Context) ([]domain.Product, error) {
	products, err := s.queryProducts(ctx, selectProducts+` ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

// FindProducts matches with LIKE, so the search is case-insensitive for ASCII
// letters and '%' or '_' in substr act as wildcards.
func (s *Store) FindProducts(ctx context.Context, substr string) ([]domain.Product, error) {
	products, err := s.queryProducts(ctx,
		selectProducts+` WHERE name LIKE '%' || ? || '%' ORDER BY id`, substr)
	if err != nil {
		return nil, fmt.Errorf("find products: %w", err)
	}
	return products, nil
}

func (s *Store) queryProducts(ctx context.Context, query string, args ...any) ([]domain.Product, error) {
	products := []domain.Product{}
	err := s.withConn(ctx, func(ctx context.Context, conn *sql.Conn) error {
		rows, err := conn.QueryContext(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var (
				p        domain.Product
				category sql.NullString
			)
			if err := rows.Scan(&p.ID, &p.Name, &category, &p.Price); err != nil {
				return err
			}
			p.Category = category.String
			products = append(products, p)
		}
		return rows.Err()
	})
	return products, err
}
