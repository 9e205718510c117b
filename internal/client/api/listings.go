package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/dmitrijs2005/photocards/internal/client/models"
)

// ListListings returns every listing in server order.
func (c *HTTPClient) ListListings(ctx context.Context) ([]models.Listing, error) {
	listings := make([]models.Listing, 0)
	if err := c.doJSON(ctx, http.MethodGet, &listings, nil, "listings"); err != nil {
		return nil, err
	}
	return listings, nil
}

// CreateListing posts a multipart form; the photo part is only added when
// l.Photo is set.
func (c *HTTPClient) CreateListing(ctx context.Context, l ListingUpload) (*models.Listing, error) {
	body, contentType, err := encodeListing(l)
	if err != nil {
		return nil, fmt.Errorf("encode listing: %w", err)
	}

	var created models.Listing
	if err := c.do(ctx, http.MethodPost, body, contentType, &created, "listings"); err != nil {
		return nil, err
	}
	return &created, nil
}

func encodeListing(l ListingUpload) (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	fields := []struct{ name, value string }{
		{"listing_name", l.Name},
		{"price", strconv.FormatFloat(l.Price, 'f', -1, 64)},
		{"condition", l.Condition},
		{"description", l.Description},
		{"user_id", id(l.SellerID)},
	}
	for _, f := range fields {
		if err := w.WriteField(f.name, f.value); err != nil {
			return nil, "", err
		}
	}

	if l.Photo != nil {
		name := filepath.Base(l.PhotoName)
		if name == "." || name == "/" || name == "" {
			name = "photo"
		}
		part, err := w.CreateFormFile("photo", name)
		if err != nil {
			return nil, "", err
		}
		if _, err := io.Copy(part, l.Photo); err != nil {
			return nil, "", err
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}
