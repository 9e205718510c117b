package views

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/dmitrijs2005/photocards/internal/client/api"
	"github.com/dmitrijs2005/photocards/internal/client/models"
	"github.com/dmitrijs2005/photocards/internal/client/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func winterCard() models.NewListing {
	return models.NewListing{Name: "Winter Card", Price: "12.50", Condition: "Mint", Description: "Limited edition"}
}

func TestAddListing_SubmitReloadsListings(t *testing.T) {
	var listings []models.Listing
	fc := &fakeClient{
		createListing: func(u api.ListingUpload) (*models.Listing, error) {
			assert.Equal(t, int64(7), u.SellerID)
			assert.InDelta(t, 12.5, u.Price, 1e-9)
			assert.Nil(t, u.Photo)
			l := models.Listing{ID: 1, Name: u.Name, Price: u.Price, SellerID: u.SellerID}
			listings = append(listings, l)
			return &l, nil
		},
		listListings: func(context.Context) ([]models.Listing, error) { return listings, nil },
	}
	s := signedIn(models.User{ID: 7})
	lv := NewListings(fc, s)
	lv.Mount()
	v := NewAddListing(fc, s, lv)

	created, err := v.Submit(context.Background(), winterCard())
	require.NoError(t, err)
	assert.Equal(t, "Winter Card", created.Name)
	assert.NoError(t, v.Err())

	items := lv.Items()
	require.Len(t, items, 1)
	assert.Equal(t, int64(7), items[0].SellerID)
}

func TestAddListing_NoSessionNoRequest(t *testing.T) {
	fc := &fakeClient{}
	v := NewAddListing(fc, &fakeSessions{}, nil)

	_, err := v.Submit(context.Background(), winterCard())
	require.ErrorIs(t, err, session.ErrNotSignedIn)
	assert.Zero(t, fc.total())
}

func TestAddListing_MissingFieldNoRequest(t *testing.T) {
	fc := &fakeClient{}
	v := NewAddListing(fc, signedIn(models.User{ID: 7}), nil)

	form := winterCard()
	form.Condition = ""
	_, err := v.Submit(context.Background(), form)

	var ve *models.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.True(t, ve.Has("condition"))
	assert.Zero(t, fc.total())
}

func TestAddListing_Photo(t *testing.T) {
	fc := &fakeClient{createListing: func(u api.ListingUpload) (*models.Listing, error) {
		require.NotNil(t, u.Photo)
		b, err := io.ReadAll(u.Photo)
		require.NoError(t, err)
		assert.Equal(t, "jpeg-bytes", string(b))
		assert.Equal(t, "card.jpg", u.PhotoName)
		return &models.Listing{ID: 1, Photo: "/photos/x.jpg"}, nil
	}}
	v := NewAddListing(fc, signedIn(models.User{ID: 7}), nil)
	v.openFile = func(path string) (io.ReadCloser, error) {
		if path != "card.jpg" {
			return nil, errors.New("no such file")
		}
		return nopCloser{strings.NewReader("jpeg-bytes")}, nil
	}

	form := winterCard()
	form.PhotoPath = "card.jpg"
	_, err := v.Submit(context.Background(), form)
	require.NoError(t, err)

	form.PhotoPath = "missing.jpg"
	_, err = v.Submit(context.Background(), form)
	var ve *models.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.True(t, ve.Has("photo"))
	assert.Equal(t, 1, fc.count("CreateListing"))
}
