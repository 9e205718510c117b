package cli

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/photocards/internal/client/api"
	"github.com/dmitrijs2005/photocards/internal/client/models"
	"github.com/dmitrijs2005/photocards/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/photocards/internal/client/session"
	"github.com/dmitrijs2005/photocards/internal/client/storage"
	"github.com/dmitrijs2005/photocards/internal/cryptox"
	"github.com/dmitrijs2005/photocards/internal/server/httpapi"
	"github.com/dmitrijs2005/photocards/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/photocards/internal/server/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// startMarketplace runs the reference server on an in-memory database.
func startMarketplace(t *testing.T) *httptest.Server {
	t.Helper()
	cryptox.HashCost = bcrypt.MinCost

	m := repomanager.NewSQLiteRepositoryManager()
	db, err := repomanager.Open(context.Background(), m, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	photos, err := services.NewPhotoStore(t.TempDir())
	require.NoError(t, err)

	srv := httpapi.NewHTTPServer("", nil, httpapi.Services{
		Users:       services.NewUserService(db, m),
		Listings:    services.NewListingService(db, m, photos),
		Collections: services.NewCollectionService(db, m),
		Comments:    services.NewCommentService(db, m),
		Photos:      photos,
	}, 1<<20)

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

// runScript drives an App over the session database at dbPath with the
// given input lines and returns everything it printed.
func runScript(t *testing.T, baseURL, dbPath string, lines ...string) string {
	t.Helper()
	ctx := context.Background()

	origTerm := isTerminal
	isTerminal = func(int) bool { return false }
	t.Cleanup(func() { isTerminal = origTerm })

	var out bytes.Buffer
	origPrint := printlnFn
	printlnFn = func(a ...any) (int, error) {
		return fmt.Fprintln(&out, a...)
	}
	t.Cleanup(func() { printlnFn = origPrint })

	db, err := storage.Open(ctx, "file:"+dbPath)
	require.NoError(t, err)
	defer db.Close()

	store := session.NewStore(metadata.NewSQLiteRepository(db), nil)
	require.NoError(t, store.Restore(ctx))

	client, err := api.NewHTTPClient(baseURL, 5*time.Second, nil)
	require.NoError(t, err)

	input := strings.Join(lines, "\n") + "\n"
	app := newApp(client, store, bufio.NewReader(strings.NewReader(input)), &out)
	app.Run(ctx)
	return out.String()
}

func TestApp_MarketplaceSession(t *testing.T) {
	ts := startMarketplace(t)
	dbPath := filepath.Join(t.TempDir(), "session.db")

	out := runScript(t, ts.URL, dbPath,
		"listings",
		"register", "alice", "alice@example.com", "secret", "Alice", "", "", "30",
		"addlisting", "Winter Card", "Rare winter edition", "", "Mint", "12.50", "",
		"cart add 1",
		"cart add 1",
		"cart",
		"wishlist add 1",
		"wishlist",
		"comment 1", "Lovely card", "",
		"logout",
		"cart", "alice@example.com", "secret",
		"cart rm 1",
		"cart rm 1",
		"logout",
		"register", "bob", "bob@example.com", "pw", "", "", "", "",
		"comments 1",
		"uncomment 1", "y",
		"profile edit", "collector", "Main St 1", "", "y",
		"whoami",
		"exit",
	)

	for _, want := range []string{
		"No listings yet.",
		"Welcome, Alice! Your account has been created.",
		`Listing #1 "Winter Card" created.`,
		"Added listing #1 to your cart.",
		"Listing #1 is already in your cart.",
		"Added listing #1 to your wishlist.",
		"Comments on listing #1:",
		"Lovely card",
		"Logged out.",
		"Please log in first.",
		"Logged in as alice",
		"Removed listing #1 from your cart.",
		"Listing #1 is not in your cart.",
		"Welcome, bob! Your account has been created.",
		"Error: You can only delete your own comments",
		"Profile updated.",
		"collector",
		"bob <bob@example.com> (id 2)",
		"Bye!",
	} {
		require.Contains(t, out, want)
	}

	// The session survives a restart.
	out = runScript(t, ts.URL, dbPath, "whoami", "exit")
	require.Contains(t, out, "Logged in as bob")
	require.Contains(t, out, "bob <bob@example.com> (id 2)")
}

func TestApp_LoginFailureKeepsGuest(t *testing.T) {
	ts := startMarketplace(t)
	dbPath := filepath.Join(t.TempDir(), "session.db")

	out := runScript(t, ts.URL, dbPath,
		"login", "ghost@example.com", "nope",
		"whoami",
		"show 5",
		"exit",
	)
	require.Contains(t, out, "Error: Invalid email or password")
	require.Contains(t, out, "Not logged in.")
	require.Contains(t, out, "Listing #5 not found.")
}

func TestApp_ServerDown(t *testing.T) {
	ts := startMarketplace(t)
	url := ts.URL
	ts.Close()

	out := runScript(t, url, filepath.Join(t.TempDir(), "session.db"), "listings", "exit")
	require.Contains(t, out, "Error: Server unavailable, try again later.")
}

// newTestApp wires an App to the marketplace at baseURL without a REPL.
func newTestApp(t *testing.T, baseURL string) (*App, *api.HTTPClient, *session.Store) {
	t.Helper()
	ctx := context.Background()

	db, err := storage.Open(ctx, "file:"+filepath.Join(t.TempDir(), "session.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	store := session.NewStore(metadata.NewSQLiteRepository(db), nil)
	client, err := api.NewHTTPClient(baseURL, 5*time.Second, nil)
	require.NoError(t, err)

	return newApp(client, store, bufio.NewReader(strings.NewReader("")), io.Discard), client, store
}

func registerAs(t *testing.T, client api.Client, username string) models.User {
	t.Helper()
	u, err := client.Register(context.Background(), models.Registration{
		Name: "N", Surname: "S", Username: username, Email: username + "@example.com",
		Password: "secret", Age: 20,
	})
	require.NoError(t, err)
	return *u
}

func TestApp_LogoutResetsUserViews(t *testing.T) {
	ctx := context.Background()
	ts := startMarketplace(t)
	a, client, store := newTestApp(t, ts.URL)

	alice := registerAs(t, client, "alice")
	require.NoError(t, store.SignIn(ctx, alice))
	l, err := client.CreateListing(ctx, api.ListingUpload{
		Name: "Winter Card", Description: "rare", Condition: "Mint", Price: 12.5, SellerID: alice.ID,
	})
	require.NoError(t, err)
	_, err = client.AddToCart(ctx, alice.ID, l.ID, 1)
	require.NoError(t, err)
	_, err = client.AddToWishlist(ctx, alice.ID, l.ID)
	require.NoError(t, err)

	require.NoError(t, a.Cart(ctx))
	require.Len(t, a.cart.Entries(), 1)
	require.NoError(t, a.profile.BeginEdit())
	require.NoError(t, a.profile.Stage(models.ProfileUpdate{Bio: "alice private", Address: "alice home"}))

	require.NoError(t, a.Logout(ctx))
	assert.Equal(t, ScreenListings, a.nav.Current())
	assert.Empty(t, a.cart.Entries())
	assert.Equal(t, "idle", a.cart.State().String())
	assert.False(t, a.profile.Editing())

	bob := registerAs(t, client, "bob")
	require.NoError(t, store.SignIn(ctx, bob))

	require.NoError(t, a.Cart(ctx))
	assert.Empty(t, a.cart.Entries())
	require.NoError(t, a.Wishlist(ctx))
	assert.Empty(t, a.wishlist.Entries())

	assert.False(t, a.profile.Editing())
	require.NoError(t, a.profile.BeginEdit())
	assert.Empty(t, a.profile.Draft().Bio)
	assert.Empty(t, a.profile.Draft().Address)
}

func TestApp_InfinitePriceIsRejected(t *testing.T) {
	ctx := context.Background()
	ts := startMarketplace(t)
	a, client, store := newTestApp(t, ts.URL)

	alice := registerAs(t, client, "alice")
	require.NoError(t, store.SignIn(ctx, alice))
	require.NoError(t, a.Listings(ctx))

	form := models.NewListing{Name: "Winter Card", Description: "rare", Condition: "Mint", Price: "12.50"}
	_, err := a.addListing.Submit(ctx, form)
	require.NoError(t, err)

	for _, price := range []string{"Inf", "NaN"} {
		form.Price = price
		created, err := a.addListing.Submit(ctx, form)
		require.ErrorIs(t, err, models.ErrValidation, price)
		require.Nil(t, created)
	}

	require.NoError(t, a.Listings(ctx))
	assert.Len(t, a.listings.Items(), 1)
}
