package views

import (
	"context"
	"io"
	"sync"

	"github.com/dmitrijs2005/photocards/internal/client/api"
	"github.com/dmitrijs2005/photocards/internal/client/models"
)

// fakeClient records calls and answers from its function fields. A nil
// field answers with zero values.
type fakeClient struct {
	mu    sync.Mutex
	calls []string

	login         func(models.Credentials) (*models.User, error)
	register      func(models.Registration) (*models.User, error)
	updateProfile func(int64, models.ProfileUpdate) (*models.User, error)

	listListings  func(context.Context) ([]models.Listing, error)
	createListing func(api.ListingUpload) (*models.Listing, error)

	listCart   func(int64) ([]models.CartEntry, error)
	addCart    func(int64, int64, int) (models.AddResult, error)
	removeCart func(int64, int64) error

	listWishlist   func(int64) ([]models.WishlistEntry, error)
	addWishlist    func(int64, int64) (models.AddResult, error)
	removeWishlist func(int64, int64) error

	listComments  func(int64) ([]models.Comment, error)
	createComment func(int64, int64, string) (*models.Comment, error)
	deleteComment func(int64, int64) error
}

var _ api.Client = (*fakeClient)(nil)

func (f *fakeClient) record(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, name)
}

func (f *fakeClient) count(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if c == name {
			n++
		}
	}
	return n
}

func (f *fakeClient) total() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func (f *fakeClient) Ping(context.Context) error {
	f.record("Ping")
	return nil
}

func (f *fakeClient) Register(_ context.Context, reg models.Registration) (*models.User, error) {
	f.record("Register")
	if f.register == nil {
		return &models.User{}, nil
	}
	return f.register(reg)
}

func (f *fakeClient) Login(_ context.Context, cred models.Credentials) (*models.User, error) {
	f.record("Login")
	if f.login == nil {
		return &models.User{}, nil
	}
	return f.login(cred)
}

func (f *fakeClient) UpdateProfile(_ context.Context, userID int64, upd models.ProfileUpdate) (*models.User, error) {
	f.record("UpdateProfile")
	if f.updateProfile == nil {
		return &models.User{ID: userID}, nil
	}
	return f.updateProfile(userID, upd)
}

func (f *fakeClient) ListListings(ctx context.Context) ([]models.Listing, error) {
	f.record("ListListings")
	if f.listListings == nil {
		return nil, nil
	}
	return f.listListings(ctx)
}

func (f *fakeClient) CreateListing(_ context.Context, l api.ListingUpload) (*models.Listing, error) {
	f.record("CreateListing")
	if f.createListing == nil {
		return &models.Listing{}, nil
	}
	return f.createListing(l)
}

func (f *fakeClient) ListCart(_ context.Context, userID int64) ([]models.CartEntry, error) {
	f.record("ListCart")
	if f.listCart == nil {
		return nil, nil
	}
	return f.listCart(userID)
}

func (f *fakeClient) AddToCart(_ context.Context, userID, listingID int64, quantity int) (models.AddResult, error) {
	f.record("AddToCart")
	if f.addCart == nil {
		return models.AddResult{}, nil
	}
	return f.addCart(userID, listingID, quantity)
}

func (f *fakeClient) RemoveFromCart(_ context.Context, userID, listingID int64) error {
	f.record("RemoveFromCart")
	if f.removeCart == nil {
		return nil
	}
	return f.removeCart(userID, listingID)
}

func (f *fakeClient) ListWishlist(_ context.Context, userID int64) ([]models.WishlistEntry, error) {
	f.record("ListWishlist")
	if f.listWishlist == nil {
		return nil, nil
	}
	return f.listWishlist(userID)
}

func (f *fakeClient) AddToWishlist(_ context.Context, userID, listingID int64) (models.AddResult, error) {
	f.record("AddToWishlist")
	if f.addWishlist == nil {
		return models.AddResult{}, nil
	}
	return f.addWishlist(userID, listingID)
}

func (f *fakeClient) RemoveFromWishlist(_ context.Context, userID, listingID int64) error {
	f.record("RemoveFromWishlist")
	if f.removeWishlist == nil {
		return nil
	}
	return f.removeWishlist(userID, listingID)
}

func (f *fakeClient) ListComments(_ context.Context, listingID int64) ([]models.Comment, error) {
	f.record("ListComments")
	if f.listComments == nil {
		return nil, nil
	}
	return f.listComments(listingID)
}

func (f *fakeClient) CreateComment(_ context.Context, userID, listingID int64, text string) (*models.Comment, error) {
	f.record("CreateComment")
	if f.createComment == nil {
		return &models.Comment{}, nil
	}
	return f.createComment(userID, listingID, text)
}

func (f *fakeClient) DeleteComment(_ context.Context, userID, commentID int64) error {
	f.record("DeleteComment")
	if f.deleteComment == nil {
		return nil
	}
	return f.deleteComment(userID, commentID)
}

// fakeSessions is an in-memory Sessions.
type fakeSessions struct {
	mu      sync.Mutex
	user    *models.User
	signErr error
}

func signedIn(u models.User) *fakeSessions {
	return &fakeSessions{user: &u}
}

func (s *fakeSessions) CurrentUser() (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return models.User{}, false
	}
	return *s.user, true
}

func (s *fakeSessions) SignIn(_ context.Context, u models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.signErr != nil {
		return s.signErr
	}
	s.user = &u
	return nil
}

func (s *fakeSessions) SignOut(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	return nil
}

type nopCloser struct{ io.Reader }

func (nopCloser) Close() error { return nil }
