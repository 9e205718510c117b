package listings

import (
	"context"

	"github.com/dmitrijs2005/photocards/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, l *models.Listing) (*models.Listing, error)
	List(ctx context.Context) ([]models.Listing, error)
	Exists(ctx context.Context, id int64) (bool, error)
}
