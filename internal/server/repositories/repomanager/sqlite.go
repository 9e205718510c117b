// Package repomanager provides a concrete RepositoryManager for SQLite,
// wiring together repository constructors and database migrations (via goose).
package repomanager

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/photocards/internal/dbx"
	"github.com/dmitrijs2005/photocards/internal/server/migrations"
	"github.com/dmitrijs2005/photocards/internal/server/repositories/cart"
	"github.com/dmitrijs2005/photocards/internal/server/repositories/comments"
	"github.com/dmitrijs2005/photocards/internal/server/repositories/listings"
	"github.com/dmitrijs2005/photocards/internal/server/repositories/users"
	"github.com/dmitrijs2005/photocards/internal/server/repositories/wishlist"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

// SQLiteRepositoryManager vends SQLite-backed repositories and exposes a
// schema migration hook.
type SQLiteRepositoryManager struct{}

func (m *SQLiteRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) Listings(db dbx.DBTX) listings.Repository {
	return listings.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) Cart(db dbx.DBTX) cart.Repository {
	return cart.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) Wishlist(db dbx.DBTX) wishlist.Repository {
	return wishlist.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) Comments(db dbx.DBTX) comments.Repository {
	return comments.NewSQLiteRepository(db)
}

// goose keeps its base FS and dialect in package globals.
var gooseMu sync.Mutex

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations applies the embedded migrations to db.
func (m *SQLiteRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}
	if err := gooseUpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

func NewSQLiteRepositoryManager() RepositoryManager {
	return &SQLiteRepositoryManager{}
}

// Open opens the database at dsn with foreign keys enforced and migrates it.
// SQLite serialises writers anyway; one connection also keeps ":memory:"
// databases shared across calls.
func Open(ctx context.Context, m RepositoryManager, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", dsn, err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, `PRAGMA foreign_keys = ON`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}
	if err := m.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}
