package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/tzpay/payconsole/internal/dbx"
	"github.com/tzpay/payconsole/internal/migrations"
)

// sqliteStore runs the credential queries against any dbx.DBTX handle, so
// the same code serves both direct access and the transactional view Update
// hands out.
type sqliteStore struct {
	db dbx.DBTX
}

func (s *sqliteStore) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM credentials WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get credential %q: %w", key, err)
	}
	return value, nil
}

func (s *sqliteStore) Set(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO credentials (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("set credential %q: %w", key, err)
	}
	return nil
}

func (s *sqliteStore) Remove(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM credentials WHERE key = ?`, key); err != nil {
		return fmt.Errorf("remove credential %q: %w", key, err)
	}
	return nil
}

// Update on a view that is already transactional just runs fn against it.
func (s *sqliteStore) Update(ctx context.Context, fn func(s Store) error) error {
	return fn(s)
}

// SQLite is the durable Store backed by a local SQLite database.
type SQLite struct {
	sqliteStore
	sqlDB *sql.DB
}

// NewSQLite wraps an already opened and migrated database handle.
func NewSQLite(db *sql.DB) *SQLite {
	return &SQLite{sqliteStore: sqliteStore{db: db}, sqlDB: db}
}

// Open opens (creating if needed) the credential database at dsn and brings
// its schema up to date.
func Open(ctx context.Context, dsn string) (*SQLite, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open credential db: %w", err)
	}

	if err := runMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate credential db: %w", err)
	}

	return NewSQLite(db), nil
}

func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, ".")
}

// Update runs fn inside a single transaction.
func (s *SQLite) Update(ctx context.Context, fn func(st Store) error) error {
	return dbx.WithTx(ctx, s.sqlDB, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return fn(&sqliteStore{db: tx})
	})
}

// Close releases the underlying database handle.
func (s *SQLite) Close() error {
	return s.sqlDB.Close()
}
