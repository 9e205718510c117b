package views

import (
	"context"

	"github.com/dmitrijs2005/photocards/internal/client/api"
	"github.com/dmitrijs2005/photocards/internal/client/models"
)

// ReadOnlyNotice explains why listing actions are unavailable.
const ReadOnlyNotice = "Log in to add cards to your cart or wishlist and to comment."

// Listings shows every listing. Without a session it stays visible but
// read-only.
type Listings struct {
	loader
	client   api.Client
	sessions Sessions
	items    []models.Listing
}

func NewListings(client api.Client, sessions Sessions) *Listings {
	v := &Listings{client: client, sessions: sessions}
	v.clear = func() { v.items = nil }
	return v
}

// Load fetches the full listing set.
func (v *Listings) Load(ctx context.Context) error {
	token, err := v.begin()
	if err != nil {
		return err
	}

	items, err := v.client.ListListings(ctx)
	return v.finish(token, err, func() { v.items = items })
}

// Items returns a copy of the loaded listings in server order.
func (v *Listings) Items() []models.Listing {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]models.Listing(nil), v.items...)
}

func (v *Listings) Find(id int64) (models.Listing, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	for _, l := range v.items {
		if l.ID == id {
			return l, true
		}
	}
	return models.Listing{}, false
}

// Interactive reports whether per-listing actions are available and, if
// not, the notice to show instead.
func (v *Listings) Interactive() (bool, string) {
	if _, ok := v.sessions.CurrentUser(); !ok {
		return false, ReadOnlyNotice
	}
	return true, ""
}
