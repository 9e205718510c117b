package models

import (
	"strings"
	"time"
)

// Comment is a remark left on a listing.
type Comment struct {
	ID        int64     `json:"comment_id"`
	ListingID int64     `json:"product_id,omitempty"`
	AuthorID  int64     `json:"user_id"`
	Username  string    `json:"username"`
	Text      string    `json:"comment_text"`
	CreatedAt time.Time `json:"comment_date"`
}

// IsAuthoredBy reports whether u wrote the comment. This only gates what the
// client offers; the server decides whether a delete is allowed.
func (c Comment) IsAuthoredBy(u User) bool {
	return u.ID != 0 && c.AuthorID == u.ID
}

// ValidateCommentText rejects blank comments.
func ValidateCommentText(text string) error {
	v := &ValidationError{}
	v.require("comment", strings.TrimSpace(text))
	return v.orNil()
}
