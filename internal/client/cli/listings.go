package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/photocards/internal/client/models"
	"github.com/dmitrijs2005/photocards/internal/client/views"
)

// Listings opens the listings screen and prints every listing.
func (a *App) Listings(ctx context.Context) error {
	if _, err := a.nav.Go(ScreenListings); err != nil {
		return err
	}
	if err := a.listings.Load(ctx); err != nil {
		return err
	}

	renderListings(a.out, a.listings.Items())
	if ok, notice := a.listings.Interactive(); !ok {
		a.println(notice)
	}
	return nil
}

// Show prints one listing. The listings are loaded first when the screen
// has nothing yet.
func (a *App) Show(ctx context.Context, listingID int64) error {
	if a.nav.Current() != ScreenListings || a.listings.State() != views.Loaded {
		if _, err := a.nav.Go(ScreenListings); err != nil {
			return err
		}
		if err := a.listings.Load(ctx); err != nil {
			return err
		}
	}

	l, ok := a.listings.Find(listingID)
	if !ok {
		a.println(fmt.Sprintf("Listing #%d not found.", listingID))
		return nil
	}

	renderListing(a.out, l)
	if ok, notice := a.listings.Interactive(); !ok {
		a.println(notice)
	} else {
		a.println(fmt.Sprintf("Try: cart add %d, wishlist add %d, comments %d", l.ID, l.ID, l.ID))
	}
	return nil
}

// AddListing prompts for a new listing and posts it as the current user.
// Missing required fields are reported before anything is sent.
func (a *App) AddListing(ctx context.Context) error {
	if err := a.open(ctx, ScreenAddListing); err != nil {
		return err
	}

	var form models.NewListing
	var err error

	if form.Name, err = getSimpleText(a.reader, "Enter card name", a.out); err != nil {
		return err
	}
	if form.Description, err = GetMultiline(a.reader, "Enter description", a.out); err != nil {
		return err
	}
	if form.Condition, err = getSimpleText(a.reader, "Enter condition (e.g. Mint, Near mint, Played)", a.out); err != nil {
		return err
	}
	if form.Price, err = getSimpleText(a.reader, "Enter price", a.out); err != nil {
		return err
	}
	if form.PhotoPath, err = GetOptionalText(a.reader, "Enter photo file path (optional)", "", a.out); err != nil {
		return err
	}

	created, err := a.addListing.Submit(ctx, form)
	if err != nil {
		return err
	}

	a.println(fmt.Sprintf("Listing #%d %q created.", created.ID, created.Name))
	return a.Listings(ctx)
}

// Refresh reloads whatever the current screen shows.
func (a *App) Refresh(ctx context.Context) error {
	switch a.nav.Current() {
	case ScreenCart:
		return a.Cart(ctx)
	case ScreenWishlist:
		return a.Wishlist(ctx)
	case ScreenComments:
		return a.Comments(ctx, a.comments.ListingID())
	case ScreenProfile:
		return a.Profile(ctx)
	}
	return a.Listings(ctx)
}
