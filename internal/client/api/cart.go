package api

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/photocards/internal/client/models"
)

type pairRequest struct {
	UserID    int64 `json:"user_id"`
	ListingID int64 `json:"product_id"`
	Quantity  int   `json:"quantity,omitempty"`
}

func (c *HTTPClient) ListCart(ctx context.Context, userID int64) ([]models.CartEntry, error) {
	entries := make([]models.CartEntry, 0)
	if err := c.doJSON(ctx, http.MethodGet, &entries, nil, "cart", id(userID)); err != nil {
		return nil, err
	}
	return entries, nil
}

// AddToCart reports AlreadyExists instead of creating a duplicate row.
func (c *HTTPClient) AddToCart(ctx context.Context, userID, listingID int64, quantity int) (models.AddResult, error) {
	if quantity < 1 {
		quantity = 1
	}
	var res models.AddResult
	err := c.doJSON(ctx, http.MethodPost, &res, pairRequest{UserID: userID, ListingID: listingID, Quantity: quantity}, "cart")
	return res, err
}

func (c *HTTPClient) RemoveFromCart(ctx context.Context, userID, listingID int64) error {
	return c.doJSON(ctx, http.MethodDelete, nil, pairRequest{UserID: userID, ListingID: listingID}, "cart")
}

func (c *HTTPClient) ListWishlist(ctx context.Context, userID int64) ([]models.WishlistEntry, error) {
	entries := make([]models.WishlistEntry, 0)
	if err := c.doJSON(ctx, http.MethodGet, &entries, nil, "wishlist", id(userID)); err != nil {
		return nil, err
	}
	return entries, nil
}

func (c *HTTPClient) AddToWishlist(ctx context.Context, userID, listingID int64) (models.AddResult, error) {
	var res models.AddResult
	err := c.doJSON(ctx, http.MethodPost, &res, pairRequest{UserID: userID, ListingID: listingID}, "wishlist")
	return res, err
}

func (c *HTTPClient) RemoveFromWishlist(ctx context.Context, userID, listingID int64) error {
	return c.doJSON(ctx, http.MethodDelete, nil, pairRequest{UserID: userID, ListingID: listingID}, "wishlist")
}
