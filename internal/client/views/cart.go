package views

import (
	"context"
	"errors"
	"slices"

	"github.com/dmitrijs2005/photocards/internal/client/api"
	"github.com/dmitrijs2005/photocards/internal/client/models"
)

// Cart is the signed-in user's cart.
type Cart struct {
	loader
	client   api.Client
	sessions Sessions
	entries  []models.CartEntry
}

func NewCart(client api.Client, sessions Sessions) *Cart {
	v := &Cart{client: client, sessions: sessions}
	v.clear = func() { v.entries = nil }
	return v
}

// Load fetches the cart of the current user.
func (v *Cart) Load(ctx context.Context) error {
	user, err := requireUser(v.sessions)
	if err != nil {
		return err
	}

	token, err := v.begin()
	if err != nil {
		return err
	}

	entries, err := v.client.ListCart(ctx, user.ID)
	return v.finish(token, err, func() { v.entries = entries })
}

func (v *Cart) Entries() []models.CartEntry {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]models.CartEntry(nil), v.entries...)
}

func (v *Cart) Total() float64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	return models.CartTotal(v.entries)
}

// Add puts a listing in the cart. A pair that is already there is reported
// through AlreadyExists and left untouched. A mounted cart is reloaded
// after a real insert.
func (v *Cart) Add(ctx context.Context, listingID int64, quantity int) (models.AddResult, error) {
	user, err := requireUser(v.sessions)
	if err != nil {
		return models.AddResult{}, err
	}

	res, err := v.client.AddToCart(ctx, user.ID, listingID, quantity)
	if err != nil {
		return models.AddResult{}, err
	}

	if !res.AlreadyExists && v.Mounted() {
		_ = v.Load(ctx)
	}
	return res, nil
}

// Remove deletes the entry on the server and, once that is confirmed,
// filters it out of the local projection. An entry the server does not
// know about is a no-op: (false, nil) and the local state is untouched.
func (v *Cart) Remove(ctx context.Context, listingID int64) (bool, error) {
	user, err := requireUser(v.sessions)
	if err != nil {
		return false, err
	}

	token := v.token()
	if err := v.client.RemoveFromCart(ctx, user.ID, listingID); err != nil {
		if errors.Is(err, api.ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	v.patch(token, func() {
		v.entries = slices.DeleteFunc(v.entries, func(e models.CartEntry) bool { return e.ListingID == listingID })
	})
	return true, nil
}
