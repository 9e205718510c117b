package cli

import (
	"context"
	"fmt"
)

func (a *App) Cart(ctx context.Context) error {
	if err := a.open(ctx, ScreenCart); err != nil {
		return err
	}
	if err := a.cart.Load(ctx); err != nil {
		return err
	}
	renderCart(a.out, a.cart.Entries(), a.cart.Total())
	return nil
}

func (a *App) CartAdd(ctx context.Context, listingID int64, quantity int) error {
	if err := a.requireSession(ctx); err != nil {
		return err
	}

	res, err := a.cart.Add(ctx, listingID, quantity)
	if err != nil {
		return err
	}

	if res.AlreadyExists {
		a.println(fmt.Sprintf("Listing #%d is already in your cart.", listingID))
		return nil
	}
	a.println(fmt.Sprintf("Added listing #%d to your cart.", listingID))
	if a.nav.Current() == ScreenCart {
		renderCart(a.out, a.cart.Entries(), a.cart.Total())
	}
	return nil
}

func (a *App) CartRemove(ctx context.Context, listingID int64) error {
	if err := a.requireSession(ctx); err != nil {
		return err
	}

	removed, err := a.cart.Remove(ctx, listingID)
	if err != nil {
		return err
	}

	if !removed {
		a.println(fmt.Sprintf("Listing #%d is not in your cart.", listingID))
		return nil
	}
	a.println(fmt.Sprintf("Removed listing #%d from your cart.", listingID))
	if a.nav.Current() == ScreenCart {
		renderCart(a.out, a.cart.Entries(), a.cart.Total())
	}
	return nil
}

func (a *App) Wishlist(ctx context.Context) error {
	if err := a.open(ctx, ScreenWishlist); err != nil {
		return err
	}
	if err := a.wishlist.Load(ctx); err != nil {
		return err
	}
	renderWishlist(a.out, a.wishlist.Entries())
	return nil
}

func (a *App) WishlistAdd(ctx context.Context, listingID int64) error {
	if err := a.requireSession(ctx); err != nil {
		return err
	}

	res, err := a.wishlist.Add(ctx, listingID)
	if err != nil {
		return err
	}

	if res.AlreadyExists {
		a.println(fmt.Sprintf("Listing #%d is already in your wishlist.", listingID))
		return nil
	}
	a.println(fmt.Sprintf("Added listing #%d to your wishlist.", listingID))
	if a.nav.Current() == ScreenWishlist {
		renderWishlist(a.out, a.wishlist.Entries())
	}
	return nil
}

func (a *App) WishlistRemove(ctx context.Context, listingID int64) error {
	if err := a.requireSession(ctx); err != nil {
		return err
	}

	removed, err := a.wishlist.Remove(ctx, listingID)
	if err != nil {
		return err
	}

	if !removed {
		a.println(fmt.Sprintf("Listing #%d is not in your wishlist.", listingID))
		return nil
	}
	a.println(fmt.Sprintf("Removed listing #%d from your wishlist.", listingID))
	if a.nav.Current() == ScreenWishlist {
		renderWishlist(a.out, a.wishlist.Entries())
	}
	return nil
}
