package postgres

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"
	"sync"
	"time"

	// Registers the "pgx" driver with database/sql.
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/spendtrack/spendtrack-api/internal/store"
)

// LazyDB opens the database connection on first use rather than at
// construction. Concurrent first callers share a single in-flight
// initialization; every caller observes the same outcome.
type LazyDB struct {
	url  string
	once sync.Once
	db   *sql.DB
	err  error

	errOnce sync.Once
	errDB   *sql.DB
}

// LazyDB delegates queries to the lazily opened pool, so stores can take it
// directly.
var _ store.DBTX = (*LazyDB)(nil)

// NewLazyDB creates a LazyDB for the given connection URL.
// No connection is attempted until Get is called.
func NewLazyDB(url string) *LazyDB {
	return &LazyDB{url: url}
}

// Get returns the shared database handle, opening and verifying it exactly
// once. A failed initialization is terminal: subsequent calls return the
// same error without retrying.
func (l *LazyDB) Get(ctx context.Context) (*sql.DB, error) {
	l.once.Do(func() {
		l.db, l.err = Open(ctx, l.url)
	})
	return l.db, l.err
}

// ExecContext delegates to the lazily opened pool.
func (l *LazyDB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	db, err := l.Get(ctx)
	if err != nil {
		return nil, err
	}
	return db.ExecContext(ctx, query, args...)
}

// PrepareContext delegates to the lazily opened pool.
func (l *LazyDB) PrepareContext(ctx context.Context, query string) (*sql.Stmt, error) {
	db, err := l.Get(ctx)
	if err != nil {
		return nil, err
	}
	return db.PrepareContext(ctx, query)
}

// QueryContext delegates to the lazily opened pool.
func (l *LazyDB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	db, err := l.Get(ctx)
	if err != nil {
		return nil, err
	}
	return db.QueryContext(ctx, query, args...)
}

// QueryRowContext delegates to the lazily opened pool. Because *sql.Row has
// no error slot, a failed initialization is surfaced through a stub pool
// whose every operation fails with the stored error, so Scan reports it.
func (l *LazyDB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	db, err := l.Get(ctx)
	if err != nil {
		l.errOnce.Do(func() {
			l.errDB = sql.OpenDB(errConnector{err: err})
		})
		db = l.errDB
	}
	return db.QueryRowContext(ctx, query, args...)
}

// errConnector is a database/sql connector that fails every connection
// attempt with a fixed error.
type errConnector struct {
	err error
}

func (c errConnector) Connect(context.Context) (driver.Conn, error) { return nil, c.err }
func (c errConnector) Driver() driver.Driver                        { return errDriver{err: c.err} }

type errDriver struct {
	err error
}

func (d errDriver) Open(string) (driver.Conn, error) { return nil, d.err }

// Close closes the underlying handle if it was ever opened.
func (l *LazyDB) Close() error {
	if l.errDB != nil {
		_ = l.errDB.Close()
	}
	if l.db != nil {
		return l.db.Close()
	}
	return nil
}

// Open establishes a database connection, configures the pool, and verifies
// connectivity with a ping bounded by a short timeout.
func Open(ctx context.Context, url string) (*sql.DB, error) {
	db, err := sql.Open("pgx", url)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		// Close the handle so a pool is not leaked on a dead URL.
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}
