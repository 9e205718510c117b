package services

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"math"
	"strings"

	"github.com/dmitrijs2005/photocards/internal/common"
	"github.com/dmitrijs2005/photocards/internal/dbx"
	"github.com/dmitrijs2005/photocards/internal/server/models"
	"github.com/dmitrijs2005/photocards/internal/server/repositories/repomanager"
)

// NewListing is the decoded multipart form of POST /listings. Photo is nil
// when no file was sent.
type NewListing struct {
	Name        string
	Description string
	Condition   string
	Price       float64
	UserID      int64
	Photo       io.Reader
	PhotoName   string
}

type ListingService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	photos      *PhotoStore
}

func NewListingService(db *sql.DB, m repomanager.RepositoryManager, photos *PhotoStore) *ListingService {
	return &ListingService{db: db, repomanager: m, photos: photos}
}

func (s *ListingService) List(ctx context.Context) ([]models.Listing, error) {
	return s.repomanager.Listings(s.db).List(ctx)
}

// Create stores the photo (if any) and then the listing. The photo is
// removed again when the listing cannot be stored.
func (s *ListingService) Create(ctx context.Context, in NewListing) (*models.Listing, error) {
	l := &models.Listing{
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
		Condition:   strings.TrimSpace(in.Condition),
		Price:       in.Price,
		UserID:      in.UserID,
	}

	switch {
	case l.Name == "":
		return nil, invalid("listing_name is required")
	case l.Description == "":
		return nil, invalid("description is required")
	case l.Condition == "":
		return nil, invalid("condition is required")
	case math.IsInf(l.Price, 0) || math.IsNaN(l.Price):
		return nil, invalid("price must be a number")
	case l.Price < 0:
		return nil, invalid("price must not be negative")
	case l.UserID <= 0:
		return nil, invalid("user_id is required")
	}

	if _, err := s.repomanager.Users(s.db).GetByID(ctx, l.UserID); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, notFound("user", l.UserID)
		}
		return nil, err
	}

	if in.Photo != nil {
		public, err := s.photos.Save(in.PhotoName, in.Photo)
		if err != nil {
			return nil, err
		}
		l.Photo = public
	}

	var created *models.Listing
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		created, err = s.repomanager.Listings(tx).Create(ctx, l)
		return err
	})
	if err != nil {
		if l.Photo != "" {
			s.photos.Remove(l.Photo)
		}
		return nil, err
	}
	return created, nil
}
