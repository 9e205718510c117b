package views

import (
	"context"
	"errors"
	"slices"

	"github.com/dmitrijs2005/photocards/internal/client/api"
	"github.com/dmitrijs2005/photocards/internal/client/models"
)

// Wishlist mirrors Cart without quantities.
type Wishlist struct {
	loader
	client   api.Client
	sessions Sessions
	entries  []models.WishlistEntry
}

func NewWishlist(client api.Client, sessions Sessions) *Wishlist {
	v := &Wishlist{client: client, sessions: sessions}
	v.clear = func() { v.entries = nil }
	return v
}

func (v *Wishlist) Load(ctx context.Context) error {
	user, err := requireUser(v.sessions)
	if err != nil {
		return err
	}

	token, err := v.begin()
	if err != nil {
		return err
	}

	entries, err := v.client.ListWishlist(ctx, user.ID)
	return v.finish(token, err, func() { v.entries = entries })
}

func (v *Wishlist) Entries() []models.WishlistEntry {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]models.WishlistEntry(nil), v.entries...)
}

func (v *Wishlist) Add(ctx context.Context, listingID int64) (models.AddResult, error) {
	user, err := requireUser(v.sessions)
	if err != nil {
		return models.AddResult{}, err
	}

	res, err := v.client.AddToWishlist(ctx, user.ID, listingID)
	if err != nil {
		return models.AddResult{}, err
	}

	if !res.AlreadyExists && v.Mounted() {
		_ = v.Load(ctx)
	}
	return res, nil
}

// Remove follows the same rules as Cart.Remove.
func (v *Wishlist) Remove(ctx context.Context, listingID int64) (bool, error) {
	user, err := requireUser(v.sessions)
	if err != nil {
		return false, err
	}

	token := v.token()
	if err := v.client.RemoveFromWishlist(ctx, user.ID, listingID); err != nil {
		if errors.Is(err, api.ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	v.patch(token, func() {
		v.entries = slices.DeleteFunc(v.entries, func(e models.WishlistEntry) bool { return e.ListingID == listingID })
	})
	return true, nil
}
