// Package sqlite implements the store repository on an embedded SQLite
// database file.
//
// Every operation acquires a dedicated connection from the pool when it starts
// and returns it when it ends, on every path. Writes run inside a transaction
// on that connection.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/mattn/go-sqlite3"

	"github.com/JPVargas2025/storefront/internal/core/domain"
	"github.com/JPVargas2025/storefront/internal/core/ports"
)

const (
	defaultTimeout     = 10 * time.Second
	defaultBusyTimeout = 5 * time.Second
)

// Config captures the settings required to open the database file.
type Config struct {
	Path    string
	Timeout time.Duration
}

// Store is the SQLite store repository.
type Store struct {
	db      *sql.DB
	timeout time.Duration
}

var _ ports.StoreRepository = (*Store)(nil)

// Open opens (creating if needed) the database file at cfg.Path and verifies
// it with a ping. The schema is not touched; call EnsureSchema for that.
func Open(ctx context.Context, cfg Config) (*Store, error) {
	if cfg.Path == "" {
		return nil, errors.New("sqlite: empty database path")
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	db, err := sql.Open("sqlite3", dsn(cfg.Path))
	if err != nil {
		return nil, fmt.Errorf("sqlite open: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite ping: %w", err)
	}

	return &Store{db: db, timeout: timeout}, nil
}

// dsn builds the driver data source name. Foreign keys stay at SQLite's
// default (off): orders may reference products that do not exist.
// BEGIN IMMEDIATE takes the write lock up front so concurrent writers queue
// on the busy timeout instead of failing on lock upgrade.
func dsn(path string) string {
	q := url.Values{}
	q.Set("_busy_timeout", fmt.Sprint(defaultBusyTimeout.Milliseconds()))
	q.Set("_txlock", "immediate")
	return "file:" + path + "?" + q.Encode()
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) Close() error {
	return s.db.Close()
}

// withConn runs fn on a connection held for the duration of the call.
func (s *Store) withConn(ctx context.Context, fn func(ctx context.Context, conn *sql.Conn) error) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	conn, err := s.db.Conn(ctx)
	if err != nil {
		return fmt.Errorf("sqlite: acquire connection: %w", err)
	}
	defer conn.Close()

	return fn(ctx, conn)
}

// withTx runs fn inside a transaction on a scoped connection. The transaction
// is committed when fn succeeds and rolled back otherwise.
func (s *Store) withTx(ctx context.Context, fn func(ctx context.Context, tx *sql.Tx) error) error {
	return s.withConn(ctx, func(ctx context.Context, conn *sql.Conn) error {
		tx, err := conn.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("sqlite: begin: %w", err)
		}
		if err := fn(ctx, tx); err != nil {
			_ = tx.Rollback()
			return err
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("sqlite: commit: %w", err)
		}
		return nil
	})
}

func isUniqueViolation(err error) bool {
	var se sqlite3.Error
	if !errors.As(err, &se) {
		return false
	}
	return se.ExtendedCode == sqlite3.ErrConstraintPrimaryKey ||
		se.ExtendedCode == sqlite3.ErrConstraintUnique
}

func isNotNullViolation(err error) bool {
	var se sqlite3.Error
	return errors.As(err, &se) && se.ExtendedCode == sqlite3.ErrConstraintNotNull
}

// translate maps constraint failures to domain errors and wraps the rest.
func translate(op string, err error) error {
	switch {
	case isNotNullViolation(err):
		return fmt.Errorf("%s: %w: %v", op, domain.ErrInvalidInput, err)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

// required turns an empty string into NULL so that NOT NULL columns reject it.
func required(s string) any {
	if s == "" {
		return nil
	}
	return s
}
