package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/photocards/internal/common"
	"github.com/dmitrijs2005/photocards/internal/server/models"
	"github.com/stretchr/testify/require"
)

type collectionFixture struct {
	svc     *CollectionService
	buyer   *models.User
	listing *models.Listing
}

func newCollectionFixture(t *testing.T) collectionFixture {
	t.Helper()
	db, m := openDB(t)
	users := NewUserService(db, m)
	photos, err := NewPhotoStore(t.TempDir())
	require.NoError(t, err)
	listings := NewListingService(db, m, photos)

	seller := register(t, users, "seller")
	return collectionFixture{
		svc:     NewCollectionService(db, m),
		buyer:   register(t, users, "buyer"),
		listing: createListing(t, listings, seller.ID, "Winter Card"),
	}
}

func TestAddToCart_Twice(t *testing.T) {
	ctx := context.Background()
	f := newCollectionFixture(t)

	res, err := f.svc.AddToCart(ctx, f.buyer.ID, f.listing.ID, 2)
	require.NoError(t, err)
	require.False(t, res.AlreadyExists)

	res, err = f.svc.AddToCart(ctx, f.buyer.ID, f.listing.ID, 1)
	require.NoError(t, err)
	require.True(t, res.AlreadyExists)

	items, err := f.svc.Cart(ctx, f.buyer.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, 2, items[0].Quantity)
}

func TestAddToCart_DefaultsQuantity(t *testing.T) {
	ctx := context.Background()
	f := newCollectionFixture(t)

	_, err := f.svc.AddToCart(ctx, f.buyer.ID, f.listing.ID, 0)
	require.NoError(t, err)

	items, err := f.svc.Cart(ctx, f.buyer.ID)
	require.NoError(t, err)
	require.Equal(t, 1, items[0].Quantity)

	_, err = f.svc.AddToCart(ctx, f.buyer.ID, f.listing.ID, -3)
	require.ErrorIs(t, err, common.ErrorValidation)
}

func TestAddToCart_UnknownPair(t *testing.T) {
	ctx := context.Background()
	f := newCollectionFixture(t)

	_, err := f.svc.AddToCart(ctx, f.buyer.ID, f.listing.ID+50, 1)
	require.ErrorIs(t, err, common.ErrorNotFound)

	_, err = f.svc.AddToCart(ctx, f.buyer.ID+50, f.listing.ID, 1)
	require.ErrorIs(t, err, common.ErrorNotFound)

	_, err = f.svc.AddToCart(ctx, 0, f.listing.ID, 1)
	require.ErrorIs(t, err, common.ErrorValidation)
}

func TestRemoveFromCart(t *testing.T) {
	ctx := context.Background()
	f := newCollectionFixture(t)

	require.ErrorIs(t, f.svc.RemoveFromCart(ctx, f.buyer.ID, f.listing.ID), common.ErrorNotFound)

	_, err := f.svc.AddToCart(ctx, f.buyer.ID, f.listing.ID, 1)
	require.NoError(t, err)
	require.NoError(t, f.svc.RemoveFromCart(ctx, f.buyer.ID, f.listing.ID))

	items, err := f.svc.Cart(ctx, f.buyer.ID)
	require.NoError(t, err)
	require.Empty(t, items)
}

func TestWishlist(t *testing.T) {
	ctx := context.Background()
	f := newCollectionFixture(t)

	res, err := f.svc.AddToWishlist(ctx, f.buyer.ID, f.listing.ID)
	require.NoError(t, err)
	require.False(t, res.AlreadyExists)

	res, err = f.svc.AddToWishlist(ctx, f.buyer.ID, f.listing.ID)
	require.NoError(t, err)
	require.True(t, res.AlreadyExists)

	items, err := f.svc.Wishlist(ctx, f.buyer.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, "Winter Card", items[0].Name)

	require.NoError(t, f.svc.RemoveFromWishlist(ctx, f.buyer.ID, f.listing.ID))
	require.ErrorIs(t, f.svc.RemoveFromWishlist(ctx, f.buyer.ID, f.listing.ID), common.ErrorNotFound)
}
