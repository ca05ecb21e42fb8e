package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/JPVargas2025/storefront/internal/core/domain"
)

// RegisterUser inserts u in a single statement; the primary key on username
// decides whether it is taken.
func (s *Store) RegisterUser(ctx context.Context, u domain.User) error {
	if u.Role == "" {
		u.Role = domain.RoleUser
	}
	return s.withTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO users (username, password, email, role) VALUES (?, ?, ?, ?)`,
			required(u.Username), required(u.Password), required(u.Email), required(u.Role))
		if err != nil {
			if isUniqueViolation(err) {
				return domain.ErrUserExists
			}
			return translate("insert user", err)
		}
		return nil
	})
}

func (s *Store) Authenticate(ctx context.Context, c domain.Credentials) (*domain.User, error) {
	var u domain.User
	err := s.withConn(ctx, func(ctx context.Context, conn *sql.Conn) error {
		return conn.QueryRowContext(ctx,
			`SELECT username, password, email, role FROM users
			 WHERE username = ? AND password = ? AND email = ? AND role = ?
			 LIMIT 1`,
			c.Username, c.Password, c.Email, c.Role).
			Scan(&u.Username, &u.Password, &u.Email, &u.Role)
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("authenticate: %w", err)
	}
	return &u, nil
}

// ListUsernames returns usernames in insertion order.
func (s *Store) ListUsernames(ctx context.Context) ([]string, error) {
	names := []string{}
	err := s.withConn(ctx, func(ctx context.Context, conn *sql.Conn) error {
		rows, err := conn.QueryContext(ctx, `SELECT username FROM users ORDER BY rowid`)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var name string
			if err := rows.Scan(&name); err != nil {
				return err
			}
			names = append(names, name)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("list usernames: %w", err)
	}
	return names, nil
}
