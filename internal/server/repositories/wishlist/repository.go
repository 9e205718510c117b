package wishlist

import (
	"context"

	"github.com/dmitrijs2005/photocards/internal/server/models"
)

type Repository interface {
	List(ctx context.Context, userID int64) ([]models.WishlistItem, error)
	Add(ctx context.Context, userID, productID int64) (bool, error)
	Remove(ctx context.Context, userID, productID int64) error
}
