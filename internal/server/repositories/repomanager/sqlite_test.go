package repomanager

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/require"
)

func TestOpen_MigratesSchema(t *testing.T) {
	ctx := context.Background()
	db, err := Open(ctx, NewSQLiteRepositoryManager(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	for _, table := range []string{"users", "listings", "cart", "wishlist", "comments"} {
		var n int
		err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&n)
		require.NoError(t, err)
		require.Equal(t, 1, n, "table %s", table)
	}

	var fk int
	require.NoError(t, db.QueryRowContext(ctx, `PRAGMA foreign_keys`).Scan(&fk))
	require.Equal(t, 1, fk)
}

func TestRunMigrations_Idempotent(t *testing.T) {
	ctx := context.Background()
	m := NewSQLiteRepositoryManager()
	db, err := Open(ctx, m, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, m.RunMigrations(ctx, db))
}

func TestRunMigrations_Error(t *testing.T) {
	orig := gooseUpContext
	t.Cleanup(func() { gooseUpContext = orig })

	boom := errors.New("boom")
	gooseUpContext = func(context.Context, *sql.DB, string, ...goose.OptionsFunc) error { return boom }

	_, err := Open(context.Background(), NewSQLiteRepositoryManager(), ":memory:")
	require.ErrorIs(t, err, boom)
}

func TestFactories(t *testing.T) {
	m := &SQLiteRepositoryManager{}
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NotNil(t, m.Users(db))
	require.NotNil(t, m.Listings(db))
	require.NotNil(t, m.Cart(db))
	require.NotNil(t, m.Wishlist(db))
	require.NotNil(t, m.Comments(db))
}
