package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/photocards/internal/client/api"
	"github.com/dmitrijs2005/photocards/internal/client/config"
	"github.com/dmitrijs2005/photocards/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/photocards/internal/client/session"
	"github.com/dmitrijs2005/photocards/internal/client/storage"
	"github.com/dmitrijs2005/photocards/internal/client/views"
	"github.com/dmitrijs2005/photocards/internal/filex"
	"github.com/dmitrijs2005/photocards/internal/logging"
)

type App struct {
	logger   logging.Logger
	db       *sql.DB
	client   api.Client
	sessions *session.Store
	nav      *Navigator

	auth       *views.Auth
	listings   *views.Listings
	addListing *views.AddListing
	cart       *views.Cart
	wishlist   *views.Wishlist
	comments   *views.Comments
	profile    *views.Profile

	reader *bufio.Reader
	out    io.Writer
}

// NewApp opens the local session database under c.DataDir, restores any
// saved session and connects the API client to c.ServerBaseURL.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	if _, err := filex.EnsureDir(c.DataDir); err != nil {
		return nil, fmt.Errorf("data dir: %w", err)
	}

	db, err := storage.Open(ctx, "file:"+c.SessionDBPath())
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	store := session.NewStore(metadata.NewSQLiteRepository(db), logger)
	if err := store.Restore(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	client, err := api.NewHTTPClient(c.ServerBaseURL, c.RequestTimeout, logger)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	a := newApp(client, store, bufio.NewReader(os.Stdin), os.Stdout)
	a.logger = logger.With("module", "cli")
	a.db = db
	return a, nil
}

// newApp wires the controllers and the navigator around client and store.
func newApp(client api.Client, store *session.Store, reader *bufio.Reader, out io.Writer) *App {
	a := &App{
		logger:   logging.Nop(),
		client:   client,
		sessions: store,
		nav:      NewNavigator(store),
		auth:     views.NewAuth(client, store),
		listings: views.NewListings(client, store),
		cart:     views.NewCart(client, store),
		wishlist: views.NewWishlist(client, store),
		comments: views.NewComments(client, store),
		profile:  views.NewProfile(client, store),
		reader:   reader,
		out:      out,
	}
	a.addListing = views.NewAddListing(client, store, a.listings)

	a.nav.Bind(ScreenListings, a.listings)
	a.nav.Bind(ScreenCart, a.cart)
	a.nav.Bind(ScreenWishlist, a.wishlist)
	a.nav.Bind(ScreenComments, a.comments)
	store.Subscribe(a.nav.OnSession)
	store.Subscribe(a.profile.OnSession)
	return a
}

// Run shows the listings and starts the REPL. It returns when the user
// exits or input ends.
func (a *App) Run(ctx context.Context) {
	a.println("Welcome to the photocard marketplace (type 'help' for commands)")
	if u, ok := a.sessions.CurrentUser(); ok {
		a.println("Logged in as", u.Username)
	}

	if err := a.Listings(ctx); err != nil {
		a.println("Error:", describe(err))
	}

	runREPL(ctx, a, a.getStatus, a.reader)
}

// Close releases the local database.
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

func (a *App) isLoggedIn() bool {
	_, ok := a.sessions.CurrentUser()
	return ok
}

func (a *App) getStatus() string {
	s := string(a.nav.Current())
	if u, ok := a.sessions.CurrentUser(); ok {
		s = u.Username + " " + s
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

// open navigates to s. When s needs a session the login prompt runs first
// and, if it succeeds, navigation continues to s.
func (a *App) open(ctx context.Context, s Screen) error {
	_, err := a.nav.Go(s)
	if !errors.Is(err, session.ErrNotSignedIn) {
		return err
	}

	a.println("Please log in first.")
	if err := a.login(ctx); err != nil {
		return err
	}
	_, err = a.nav.Go(s)
	return err
}

// requireSession runs the login prompt when nobody is signed in, without
// changing screens.
func (a *App) requireSession(ctx context.Context) error {
	if a.isLoggedIn() {
		return nil
	}
	a.println("Please log in first.")
	return a.login(ctx)
}
