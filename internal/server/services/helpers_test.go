package services

import (
	"context"
	"database/sql"
	"testing"

	"github.com/dmitrijs2005/photocards/internal/cryptox"
	"github.com/dmitrijs2005/photocards/internal/server/models"
	"github.com/dmitrijs2005/photocards/internal/server/repositories/repomanager"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func init() {
	cryptox.HashCost = bcrypt.MinCost
}

func openDB(t *testing.T) (*sql.DB, repomanager.RepositoryManager) {
	t.Helper()
	m := repomanager.NewSQLiteRepositoryManager()
	db, err := repomanager.Open(context.Background(), m, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, m
}

func register(t *testing.T, s *UserService, username string) *models.User {
	t.Helper()
	u, err := s.Register(context.Background(), Registration{
		Username: username,
		Email:    username + "@example.com",
		Password: "secret",
	})
	require.NoError(t, err)
	return u
}

func createListing(t *testing.T, s *ListingService, userID int64, name string) *models.Listing {
	t.Helper()
	l, err := s.Create(context.Background(), NewListing{
		Name: name, Description: "d", Condition: "Mint", Price: 10, UserID: userID,
	})
	require.NoError(t, err)
	return l
}
