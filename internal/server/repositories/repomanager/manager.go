package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/photocards/internal/dbx"
	"github.com/dmitrijs2005/photocards/internal/server/repositories/cart"
	"github.com/dmitrijs2005/photocards/internal/server/repositories/comments"
	"github.com/dmitrijs2005/photocards/internal/server/repositories/listings"
	"github.com/dmitrijs2005/photocards/internal/server/repositories/users"
	"github.com/dmitrijs2005/photocards/internal/server/repositories/wishlist"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Listings(db dbx.DBTX) listings.Repository
	Cart(db dbx.DBTX) cart.Repository
	Wishlist(db dbx.DBTX) wishlist.Repository
	Comments(db dbx.DBTX) comments.Repository
}
