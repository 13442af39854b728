package directory

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/pressly/goose/v3"

	"github.com/dmitrijs2005/farmkeeper/internal/directory/migrations"

	_ "modernc.org/sqlite"
)

// ErrPersistentDSN is returned by Open for SQLite DSNs that would write to disk.
var ErrPersistentDSN = errors.New("directory dsn must be an in-memory sqlite database")

// RunMigrations brings the accounts schema of db up to date.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.FS)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	return goose.UpContext(ctx, db, ".")
}

// IsMemoryDSN reports whether dsn names an in-memory SQLite database: either
// ":memory:", or a file: URI whose path is ":memory:" or whose only mode
// parameter is "memory". Plain paths never qualify, since SQLite ignores query
// parameters on them.
func IsMemoryDSN(dsn string) bool {
	if dsn == ":memory:" {
		return true
	}
	if !strings.HasPrefix(dsn, "file:") {
		return false
	}

	u, err := url.Parse(dsn)
	if err != nil {
		return false
	}
	path := u.Opaque
	if path == "" {
		path = u.Path
	}
	if path == ":memory:" {
		return true
	}

	q, err := url.ParseQuery(u.RawQuery)
	if err != nil {
		return false
	}
	mode := q["mode"]
	return len(mode) == 1 && mode[0] == "memory"
}

// OpenSQL opens an in-memory SQLite database, applies migrations and returns
// the underlying handle. The pool is pinned to a single connection: every
// new connection to a private in-memory database would see an empty one.
func OpenSQL(ctx context.Context, dsn string) (*sql.DB, error) {
	if !IsMemoryDSN(dsn) {
		return nil, fmt.Errorf("%w: %q", ErrPersistentDSN, dsn)
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("error opening directory database: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("error migrating directory database: %w", err)
	}
	return db, nil
}

// Open returns the directory selected by dsn: an empty dsn yields a
// MemoryRepository, anything else an SQLRepository over in-memory SQLite.
// The returned close function releases the database, if any.
func Open(ctx context.Context, dsn string) (Repository, func() error, error) {
	if dsn == "" {
		return NewMemoryRepository(), func() error { return nil }, nil
	}

	db, err := OpenSQL(ctx, dsn)
	if err != nil {
		return nil, nil, err
	}
	return NewSQLRepository(db), db.Close, nil
}
