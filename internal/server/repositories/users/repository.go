package users

import (
	"context"

	"github.com/dmitrijs2005/photocards/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// Taken reports whether username or email is already registered.
	Taken(ctx context.Context, username, email string) (bool, error)
	UpdateProfile(ctx context.Context, id int64, upd models.ProfileUpdate) error
}
