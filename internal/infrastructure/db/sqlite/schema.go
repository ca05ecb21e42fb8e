package sqlite

import (
	"context"
	"database/sql"
	"fmt"
)

// price holds the decimal's canonical string; TEXT affinity keeps SQLite from
// converting it to a float.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		username TEXT PRIMARY KEY NOT NULL,
		password TEXT NOT NULL,
		email    TEXT NOT NULL,
		role     TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS products (
		id       INTEGER PRIMARY KEY AUTOINCREMENT,
		category TEXT,
		name     TEXT NOT NULL,
		price    TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		username   TEXT NOT NULL,
		product_id INTEGER NOT NULL REFERENCES products(id),
		quantity   INTEGER NOT NULL,
		placed_at  TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS idx_orders_username ON orders(username)`,
}

// EnsureSchema creates the tables when absent. It is safe to call any number
// of times and never alters existing rows.
func (s *Store) EnsureSchema(ctx context.Context) error {
	return s.withTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		for _, stmt := range schema {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("ensure schema: %w", err)
			}
		}
		return nil
	})
}
