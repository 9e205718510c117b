package comments

import (
	"context"

	"github.com/dmitrijs2005/photocards/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, c *models.Comment) (*models.Comment, error)
	GetByID(ctx context.Context, id int64) (*models.Comment, error)
	ListByProduct(ctx context.Context, productID int64) ([]models.Comment, error)
	Delete(ctx context.Context, id int64) error
}
