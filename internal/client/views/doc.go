// Package views holds the per-screen controllers of the client: Auth,
// Listings, AddListing, Cart, Wishlist, Comments and Profile.
//
// A controller owns a local projection of server data and a load state
// (Idle → Loading → Loaded | Failed). Data is fetched when the screen is
// mounted and fetched again after every write that invalidates it; there is
// no "stale" state.
//
// Controllers are mounted and unmounted by the navigation layer. Every
// mount starts a new generation; a response that arrives for an older
// generation is dropped (ErrStale) instead of being applied to whatever
// the user is looking at now. In-flight calls are not cancelled.
package views
