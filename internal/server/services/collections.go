package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/dmitrijs2005/photocards/internal/common"
	"github.com/dmitrijs2005/photocards/internal/dbx"
	"github.com/dmitrijs2005/photocards/internal/server/models"
	"github.com/dmitrijs2005/photocards/internal/server/repositories/repomanager"
)

// CollectionService serves the cart and the wishlist: both are sets of
// (user, listing) pairs, the cart with a quantity.
type CollectionService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewCollectionService(db *sql.DB, m repomanager.RepositoryManager) *CollectionService {
	return &CollectionService{db: db, repomanager: m}
}

// checkPair reports which side of a (user, listing) pair does not exist.
func (s *CollectionService) checkPair(ctx context.Context, tx dbx.DBTX, userID, productID int64) error {
	if userID <= 0 || productID <= 0 {
		return invalid("user_id and product_id are required")
	}
	if _, err := s.repomanager.Users(tx).GetByID(ctx, userID); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return notFound("user", userID)
		}
		return err
	}
	ok, err := s.repomanager.Listings(tx).Exists(ctx, productID)
	if err != nil {
		return err
	}
	if !ok {
		return notFound("listing", productID)
	}
	return nil
}

func (s *CollectionService) Cart(ctx context.Context, userID int64) ([]models.CartItem, error) {
	return s.repomanager.Cart(s.db).List(ctx, userID)
}

// AddToCart puts the listing in the cart once. A repeated add leaves the
// stored quantity alone and reports AlreadyExists.
func (s *CollectionService) AddToCart(ctx context.Context, userID, productID int64, quantity int) (models.AddResult, error) {
	if quantity == 0 {
		quantity = 1
	}
	if quantity < 0 {
		return models.AddResult{}, invalid("quantity must be positive")
	}

	var added bool
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.checkPair(ctx, tx, userID, productID); err != nil {
			return err
		}
		var err error
		added, err = s.repomanager.Cart(tx).Add(ctx, userID, productID, quantity)
		return err
	})
	if err != nil {
		return models.AddResult{}, err
	}
	return models.AddResult{AlreadyExists: !added}, nil
}

func (s *CollectionService) RemoveFromCart(ctx context.Context, userID, productID int64) error {
	err := s.repomanager.Cart(s.db).Remove(ctx, userID, productID)
	if errors.Is(err, common.ErrorNotFound) {
		return notFound("cart entry for listing", productID)
	}
	return err
}

func (s *CollectionService) Wishlist(ctx context.Context, userID int64) ([]models.WishlistItem, error) {
	return s.repomanager.Wishlist(s.db).List(ctx, userID)
}

func (s *CollectionService) AddToWishlist(ctx context.Context, userID, productID int64) (models.AddResult, error) {
	var added bool
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.checkPair(ctx, tx, userID, productID); err != nil {
			return err
		}
		var err error
		added, err = s.repomanager.Wishlist(tx).Add(ctx, userID, productID)
		return err
	})
	if err != nil {
		return models.AddResult{}, err
	}
	return models.AddResult{AlreadyExists: !added}, nil
}

func (s *CollectionService) RemoveFromWishlist(ctx context.Context, userID, productID int64) error {
	err := s.repomanager.Wishlist(s.db).Remove(ctx, userID, productID)
	if errors.Is(err, common.ErrorNotFound) {
		return notFound("wishlist entry for listing", productID)
	}
	return err
}
