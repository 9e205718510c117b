package api

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/photocards/internal/client/models"
)

type commentRequest struct {
	UserID    int64  `json:"user_id"`
	ListingID int64  `json:"product_id"`
	Text      string `json:"comment_text"`
}

type commentDeleteRequest struct {
	UserID int64 `json:"user_id"`
}

func (c *HTTPClient) ListComments(ctx context.Context, listingID int64) ([]models.Comment, error) {
	comments := make([]models.Comment, 0)
	if err := c.doJSON(ctx, http.MethodGet, &comments, nil, "comments", id(listingID)); err != nil {
		return nil, err
	}
	return comments, nil
}

func (c *HTTPClient) CreateComment(ctx context.Context, userID, listingID int64, text string) (*models.Comment, error) {
	var created models.Comment
	req := commentRequest{UserID: userID, ListingID: listingID, Text: text}
	if err := c.doJSON(ctx, http.MethodPost, &created, req, "comments"); err != nil {
		return nil, err
	}
	return &created, nil
}

// DeleteComment asks the server to remove a comment. Only the author may do
// so; the server answers 403 otherwise.
func (c *HTTPClient) DeleteComment(ctx context.Context, userID, commentID int64) error {
	return c.doJSON(ctx, http.MethodDelete, nil, commentDeleteRequest{UserID: userID}, "comments", id(commentID))
}
