package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/photocards/internal/client/models"
)

var errNoCommentsOpen = errors.New("open the comments of a listing first: comments <listing id>")

// Comments opens the comments screen of a listing.
func (a *App) Comments(ctx context.Context, listingID int64) error {
	if err := a.open(ctx, ScreenComments); err != nil {
		return err
	}
	a.comments.MountFor(listingID)
	if err := a.comments.Load(ctx); err != nil {
		return err
	}
	a.renderComments()
	return nil
}

// Comment posts a comment on a listing and shows the reloaded list.
func (a *App) Comment(ctx context.Context, listingID int64) error {
	if a.nav.Current() != ScreenComments || a.comments.ListingID() != listingID {
		if err := a.open(ctx, ScreenComments); err != nil {
			return err
		}
		a.comments.MountFor(listingID)
	}

	text, err := GetMultiline(a.reader, "Enter your comment", a.out)
	if err != nil {
		return err
	}

	if _, err := a.comments.Post(ctx, text); err != nil {
		return err
	}
	a.renderComments()
	return nil
}

// Uncomment deletes a comment on the open comments screen after a
// confirmation.
func (a *App) Uncomment(ctx context.Context, commentID int64) error {
	if a.nav.Current() != ScreenComments {
		return errNoCommentsOpen
	}
	if err := a.requireSession(ctx); err != nil {
		return err
	}

	deleted, err := a.comments.Delete(ctx, commentID, func(c models.Comment) bool {
		prompt := fmt.Sprintf("Delete comment #%d?", commentID)
		if c.Text != "" {
			prompt = fmt.Sprintf("Delete comment #%d %q?", commentID, c.Text)
		}
		return Confirm(a.reader, prompt, a.out)
	})
	if err != nil {
		return err
	}
	if !deleted {
		a.println("Kept.")
		return nil
	}

	a.println(fmt.Sprintf("Comment #%d deleted.", commentID))
	a.renderComments()
	return nil
}

func (a *App) renderComments() {
	renderComments(a.out, a.comments.ListingID(), a.comments.Items(), a.comments.CanDelete)
	if a.isLoggedIn() {
		a.println(fmt.Sprintf("Add yours with: comment %d", a.comments.ListingID()))
	}
}
