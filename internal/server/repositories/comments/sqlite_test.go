package comments_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/photocards/internal/common"
	"github.com/dmitrijs2005/photocards/internal/server/models"
	"github.com/dmitrijs2005/photocards/internal/server/repositories/comments"
	"github.com/dmitrijs2005/photocards/internal/server/repositories/listings"
	"github.com/dmitrijs2005/photocards/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/photocards/internal/server/repositories/users"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (*comments.SQLiteRepository, int64, int64) {
	t.Helper()
	ctx := context.Background()
	db, err := repomanager.Open(ctx, repomanager.NewSQLiteRepositoryManager(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	u, err := users.NewSQLiteRepository(db).Create(ctx, &models.User{Username: "alice", Email: "a@example.com", PasswordHash: []byte("x")})
	require.NoError(t, err)
	l, err := listings.NewSQLiteRepository(db).Create(ctx, &models.Listing{Name: "Winter Card", Description: "d", Condition: "Mint", UserID: u.ID})
	require.NoError(t, err)
	return comments.NewSQLiteRepository(db), u.ID, l.ID
}

func TestCreate_FillsAuthor(t *testing.T) {
	ctx := context.Background()
	repo, userID, listingID := setup(t)

	when := time.Date(2024, 3, 1, 10, 0, 0, 500, time.FixedZone("X", 3600))
	c, err := repo.Create(ctx, &models.Comment{ProductID: listingID, UserID: userID, Text: "nice", CreatedAt: when})
	require.NoError(t, err)
	require.NotZero(t, c.ID)
	require.Equal(t, "alice", c.Username)
	require.True(t, c.CreatedAt.Equal(when))
	require.Equal(t, time.UTC, c.CreatedAt.Location())
}

func TestListByProduct_OrderedOldestFirst(t *testing.T) {
	ctx := context.Background()
	repo, userID, listingID := setup(t)

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	_, err := repo.Create(ctx, &models.Comment{ProductID: listingID, UserID: userID, Text: "second", CreatedAt: base.Add(time.Minute)})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &models.Comment{ProductID: listingID, UserID: userID, Text: "first", CreatedAt: base})
	require.NoError(t, err)

	got, err := repo.ListByProduct(ctx, listingID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "first", got[0].Text)
	require.Equal(t, "second", got[1].Text)

	none, err := repo.ListByProduct(ctx, listingID+1)
	require.NoError(t, err)
	require.NotNil(t, none)
	require.Empty(t, none)
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	repo, userID, listingID := setup(t)

	c, err := repo.Create(ctx, &models.Comment{ProductID: listingID, UserID: userID, Text: "bye"})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, c.ID))
	require.ErrorIs(t, repo.Delete(ctx, c.ID), common.ErrorNotFound)

	_, err = repo.GetByID(ctx, c.ID)
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestGetByID_BadDate(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"comment_id", "product_id", "user_id", "username", "comment_text", "comment_date"}).
		AddRow(1, 2, 3, "alice", "hi", "yesterday")
	mock.ExpectQuery(`(?s)SELECT.*FROM\s+comments`).WithArgs(int64(1)).WillReturnRows(rows)

	_, err = comments.NewSQLiteRepository(db).GetByID(context.Background(), 1)
	require.ErrorContains(t, err, "comment 1 date")
}
