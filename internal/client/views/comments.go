package views

import (
	"context"
	"errors"
	"sync"

	"github.com/dmitrijs2005/photocards/internal/client/api"
	"github.com/dmitrijs2005/photocards/internal/client/models"
)

// Comments shows the comments of one listing. Every write is followed by a
// full reload rather than a local splice, so comments posted by others in
// the meantime show up too.
type Comments struct {
	loader
	client   api.Client
	sessions Sessions

	listingMu sync.Mutex
	listingID int64
	items     []models.Comment
}

func NewComments(client api.Client, sessions Sessions) *Comments {
	v := &Comments{client: client, sessions: sessions}
	v.clear = func() { v.items = nil }
	return v
}

// MountFor mounts the view on a listing.
func (v *Comments) MountFor(listingID int64) {
	v.listingMu.Lock()
	v.listingID = listingID
	v.listingMu.Unlock()
	v.Mount()
}

func (v *Comments) ListingID() int64 {
	v.listingMu.Lock()
	defer v.listingMu.Unlock()
	return v.listingID
}

func (v *Comments) Load(ctx context.Context) error {
	token, err := v.begin()
	if err != nil {
		return err
	}

	items, err := v.client.ListComments(ctx, v.ListingID())
	return v.finish(token, err, func() { v.items = items })
}

func (v *Comments) Items() []models.Comment {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]models.Comment(nil), v.items...)
}

// CanDelete reports whether the delete action should be offered for c.
// It is a display rule only; the server makes the actual decision.
func (v *Comments) CanDelete(c models.Comment) bool {
	u, ok := v.sessions.CurrentUser()
	return ok && c.IsAuthoredBy(u)
}

// Post adds a comment as the current user and reloads the list.
func (v *Comments) Post(ctx context.Context, text string) (*models.Comment, error) {
	user, err := requireUser(v.sessions)
	if err != nil {
		return nil, err
	}
	if err := models.ValidateCommentText(text); err != nil {
		return nil, err
	}

	created, err := v.client.CreateComment(ctx, user.ID, v.ListingID(), text)
	if err != nil {
		return nil, err
	}

	if err := v.Load(ctx); err != nil && !errors.Is(err, ErrStale) {
		return created, err
	}
	return created, nil
}

// Delete asks confirm and, if accepted, deletes the comment and reloads the
// list. A server refusal (e.g. not the author) is returned and the current
// list is kept as is.
func (v *Comments) Delete(ctx context.Context, commentID int64, confirm func(models.Comment) bool) (bool, error) {
	user, err := requireUser(v.sessions)
	if err != nil {
		return false, err
	}

	target := models.Comment{ID: commentID, ListingID: v.ListingID()}
	for _, c := range v.Items() {
		if c.ID == commentID {
			target = c
			break
		}
	}

	if confirm != nil && !confirm(target) {
		return false, nil
	}

	if err := v.client.DeleteComment(ctx, user.ID, commentID); err != nil {
		return false, err
	}

	if err := v.Load(ctx); err != nil && !errors.Is(err, ErrStale) {
		return true, err
	}
	return true, nil
}
