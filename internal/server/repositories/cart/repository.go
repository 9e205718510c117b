package cart

import (
	"context"

	"github.com/dmitrijs2005/photocards/internal/server/models"
)

type Repository interface {
	List(ctx context.Context, userID int64) ([]models.CartItem, error)
	// Add inserts the pair unless it exists and reports whether it did.
	Add(ctx context.Context, userID, productID int64, quantity int) (bool, error)
	// Remove deletes the pair; common.ErrorNotFound when it was absent.
	Remove(ctx context.Context, userID, productID int64) error
}
