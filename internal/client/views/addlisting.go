package views

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/dmitrijs2005/photocards/internal/client/api"
	"github.com/dmitrijs2005/photocards/internal/client/models"
)

// AddListing submits the new-listing form and then reloads Listings so the
// new card shows up without a restart.
type AddListing struct {
	client   api.Client
	sessions Sessions
	listings *Listings
	openFile func(path string) (io.ReadCloser, error)

	mu      sync.Mutex
	lastErr error
}

func NewAddListing(client api.Client, sessions Sessions, listings *Listings) *AddListing {
	return &AddListing{
		client:   client,
		sessions: sessions,
		listings: listings,
		openFile: func(path string) (io.ReadCloser, error) { return os.Open(path) },
	}
}

// Submit validates and posts the form as the signed-in user. Nothing is
// sent when there is no session or a required field is missing.
func (v *AddListing) Submit(ctx context.Context, form models.NewListing) (*models.Listing, error) {
	user, err := requireUser(v.sessions)
	if err != nil {
		return nil, v.fail(err)
	}

	price, err := form.Validate()
	if err != nil {
		return nil, v.fail(err)
	}

	upload := api.ListingUpload{
		Name:        form.Name,
		Description: form.Description,
		Condition:   form.Condition,
		Price:       price,
		SellerID:    user.ID,
	}

	if form.PhotoPath != "" {
		f, err := v.openFile(form.PhotoPath)
		if err != nil {
			return nil, v.fail(&models.ValidationError{Fields: []models.FieldError{{Field: "photo", Message: "cannot be read"}}})
		}
		defer f.Close()
		upload.Photo = f
		upload.PhotoName = filepath.Base(form.PhotoPath)
	}

	created, err := v.client.CreateListing(ctx, upload)
	if err != nil {
		return nil, v.fail(fmt.Errorf("create listing: %w", err))
	}
	v.fail(nil)

	if v.listings != nil && v.listings.Mounted() {
		// A failed reload is recorded on the Listings view itself.
		_ = v.listings.Load(ctx)
	}
	return created, nil
}

// Err is the error of the last submission, or nil.
func (v *AddListing) Err() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.lastErr
}

func (v *AddListing) fail(err error) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.lastErr = err
	return err
}
