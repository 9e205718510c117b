package api

import (
	"context"
	"io"

	"github.com/dmitrijs2005/photocards/internal/client/models"
)

// Client is the transport-agnostic contract of the marketplace backend.
type Client interface {
	Ping(ctx context.Context) error

	Register(ctx context.Context, reg models.Registration) (*models.User, error)
	Login(ctx context.Context, cred models.Credentials) (*models.User, error)
	UpdateProfile(ctx context.Context, userID int64, upd models.ProfileUpdate) (*models.User, error)

	ListListings(ctx context.Context) ([]models.Listing, error)
	CreateListing(ctx context.Context, l ListingUpload) (*models.Listing, error)

	ListCart(ctx context.Context, userID int64) ([]models.CartEntry, error)
	AddToCart(ctx context.Context, userID, listingID int64, quantity int) (models.AddResult, error)
	RemoveFromCart(ctx context.Context, userID, listingID int64) error

	ListWishlist(ctx context.Context, userID int64) ([]models.WishlistEntry, error)
	AddToWishlist(ctx context.Context, userID, listingID int64) (models.AddResult, error)
	RemoveFromWishlist(ctx context.Context, userID, listingID int64) error

	ListComments(ctx context.Context, listingID int64) ([]models.Comment, error)
	CreateComment(ctx context.Context, userID, listingID int64, text string) (*models.Comment, error)
	DeleteComment(ctx context.Context, userID, commentID int64) error
}

// ListingUpload is the multipart body of POST /listings. Photo is optional;
// when set, PhotoName is sent as the part's file name.
type ListingUpload struct {
	Name        string
	Description string
	Condition   string
	Price       float64
	SellerID    int64
	Photo       io.Reader
	PhotoName   string
}

var _ Client = (*HTTPClient)(nil)
