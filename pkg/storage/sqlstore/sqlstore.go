// Package sqlstore implements storage.Storage on top of database/sql and goqu.
// The same query code serves PostgreSQL (pgx connection pool) and SQLite
// (mattn/go-sqlite3); only connection setup and ID retrieval differ by dialect.
package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"zctadb/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // registers the postgres dialect
	_ "github.com/doug-martin/goqu/v9/dialect/sqlite3"  // registers the sqlite3 dialect
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3" // registers the sqlite3 database/sql driver
)

// Supported dialects. The values double as goqu and goose dialect names.
const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite3"
)

// PostgresOptions configures a PostgreSQL connection pool.
type PostgresOptions struct {
	Username string
	Password string
	Host     string
	// SslMode specifies the SSL mode for the connection (e.g. "disable", "require").
	SslMode  string
	Port     int
	Database string
	// ConnMaxLifetime is the maximum amount of time a connection may be reused.
	ConnMaxLifetime time.Duration
	// ConnMaxIdleTime is the maximum amount of time a connection may be idle.
	ConnMaxIdleTime time.Duration
	// MaxOpenConnections is the maximum number of open connections.
	MaxOpenConnections int
	// MaxIdleConnections is the number of connections kept open while idle.
	MaxIdleConnections int
}

// SQLiteOptions configures a SQLite database.
type SQLiteOptions struct {
	// Path is the database file path, or ":memory:" for a private in-memory
	// database.
	Path string
}

// DB is the subset of database/sql used by this package. Both *sql.DB and
// *sql.Tx satisfy it.
type DB interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	PrepareContext(ctx context.Context, query string) (*sql.Stmt, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// Builder is the subset of goqu used to build queries. Both goqu database and
// transaction handles implement it.
type Builder interface {
	From(table ...interface{}) *goqu.SelectDataset
	Insert(table interface{}) *goqu.InsertDataset
}

// Store implements storage.Storage.
type Store struct {
	// DB is either a *sql.DB (outside a transaction) or a *sql.Tx.
	DB DB
	// Builder is the goqu handle bound to DB.
	Builder Builder
	// Pool is the pgx pool backing a PostgreSQL store, nil for SQLite.
	Pool *pgxpool.Pool

	dialect string
}

// Dialect returns the SQL dialect of the store.
func (s *Store) Dialect() string { return s.dialect }

// Close closes the underlying pool and database handle.
func (s *Store) Close() error {
	if s.Pool != nil {
		s.Pool.Close()
	}
	if db, ok := s.DB.(*sql.DB); ok {
		if err := db.Close(); err != nil {
			return fmt.Errorf("could not close db: %w", err)
		}
	}

	return nil
}

// Ping checks that the database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	db, ok := s.DB.(*sql.DB)
	if !ok {
		return storage.ErrAlreadyInTx
	}

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("could not ping db: %w", err)
	}

	return nil
}

// Commit commits the current transaction. It returns storage.ErrNotInTx when
// called outside a transaction.
func (s *Store) Commit() error {
	tx, ok := s.DB.(*sql.Tx)
	if !ok {
		return storage.ErrNotInTx
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("could not commit tx: %w", err)
	}

	return nil
}

// Rollback aborts the current transaction. It returns storage.ErrNotInTx when
// called outside a transaction.
func (s *Store) Rollback() error {
	tx, ok := s.DB.(*sql.Tx)
	if !ok {
		return storage.ErrNotInTx
	}

	if err := tx.Rollback(); err != nil {
		return fmt.Errorf("could not rollback tx: %w", err)
	}

	return nil
}

// Begin starts a transaction and returns a store bound to it. It returns
// storage.ErrAlreadyInTx when called on a transactional store.
func (s *Store) Begin(ctx context.Context) (storage.TxStorage, error) {
	db, ok := s.DB.(*sql.DB)
	if !ok {
		return nil, storage.ErrAlreadyInTx
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("could not begin tx: %w", err)
	}

	return &Store{
		DB:      tx,
		Builder: goqu.NewTx(s.dialect, tx),
		dialect: s.dialect,
	}, nil
}

// WithTx runs cb inside a transaction, committing when cb returns nil and
// rolling back otherwise.
func (s *Store) WithTx(ctx context.Context, cb func(storage storage.AllStorage) error) error {
	tx, err := s.Begin(ctx)
	if err != nil {
		return err
	}

	if err := cb(tx); err != nil {
		_ = tx.Rollback()

		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("could not commit tx: %w", err)
	}

	return nil
}

// NewPostgres creates a PostgreSQL store backed by pgxpool, wrapped in a
// *sql.DB for goqu and goose.
func NewPostgres(ctx context.Context, options PostgresOptions) (*Store, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s dbname=%s password=%s sslmode=%s",
		options.Host,
		options.Port,
		options.Username,
		options.Database,
		options.Password,
		options.SslMode)
	cfg, err := pgxpool.ParseConfig(connStr)
	if err != nil {
		return nil, fmt.Errorf("could not parse pgxpool config: %w", err)
	}
	if options.MaxOpenConnections > 0 {
		cfg.MaxConns = int32(options.MaxOpenConnections) //nolint: gosec
	}
	if options.MaxIdleConnections > 0 {
		cfg.MinConns = int32(options.MaxIdleConnections) //nolint: gosec
	}
	if options.ConnMaxLifetime > 0 {
		cfg.MaxConnLifetime = options.ConnMaxLifetime
	}
	if options.ConnMaxIdleTime > 0 {
		cfg.MaxConnIdleTime = options.ConnMaxIdleTime
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("could not create pgx pool: %w", err)
	}

	sqlDB := stdlib.OpenDBFromPool(pool)

	return &Store{
		DB:      sqlDB,
		Builder: goqu.Dialect(DialectPostgres).DB(sqlDB),
		Pool:    pool,
		dialect: DialectPostgres,
	}, nil
}

// NewSQLite opens a SQLite store with foreign keys enforced. SQLite allows a
// single writer, so the handle is limited to one connection; this also keeps
// ":memory:" databases shared across calls.
func NewSQLite(ctx context.Context, options SQLiteOptions) (*Store, error) {
	if options.Path == "" {
		return nil, fmt.Errorf("sqlite path is empty")
	}

	sqlDB, err := sql.Open(DialectSQLite, fmt.Sprintf("file:%s?_foreign_keys=on", options.Path))
	if err != nil {
		return nil, fmt.Errorf("could not open sqlite db: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()

		return nil, fmt.Errorf("could not ping sqlite db: %w", err)
	}

	return New(sqlDB, DialectSQLite), nil
}

// New wraps an already opened database handle. It is used by tests that bring
// their own *sql.DB.
func New(db *sql.DB, dialect string) *Store {
	return &Store{
		DB:      db,
		Builder: goqu.Dialect(dialect).DB(db),
		dialect: dialect,
	}
}
