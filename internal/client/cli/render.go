package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/photocards/internal/client/models"
)

const dateLayout = "2006-01-02 15:04"

func table(w io.Writer, header string, rows func(tw *tabwriter.Writer)) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, header)
	rows(tw)
	_ = tw.Flush()
}

func renderListings(w io.Writer, items []models.Listing) {
	if len(items) == 0 {
		fmt.Fprintln(w, "No listings yet.")
		return
	}
	table(w, "ID\tNAME\tCONDITION\tPRICE\tSELLER", func(tw *tabwriter.Writer) {
		for _, l := range items {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%d\n", l.ID, l.Name, l.Condition, models.FormatPrice(l.Price), l.SellerID)
		}
	})
}

func renderListing(w io.Writer, l models.Listing) {
	fmt.Fprintf(w, "#%d %s\n", l.ID, l.Name)
	fmt.Fprintf(w, "  Price:     %s\n", models.FormatPrice(l.Price))
	fmt.Fprintf(w, "  Condition: %s\n", l.Condition)
	fmt.Fprintf(w, "  Seller:    %d\n", l.SellerID)
	if l.Photo != "" {
		fmt.Fprintf(w, "  Photo:     %s\n", l.Photo)
	}
	if l.Description != "" {
		fmt.Fprintf(w, "  %s\n", strings.ReplaceAll(l.Description, "\n", "\n  "))
	}
}

func renderCart(w io.Writer, entries []models.CartEntry, total float64) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "Your cart is empty.")
		return
	}
	table(w, "ID\tNAME\tPRICE\tQTY", func(tw *tabwriter.Writer) {
		for _, e := range entries {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%d\n", e.ListingID, e.Name, models.FormatPrice(e.Price), e.Quantity)
		}
	})
	fmt.Fprintf(w, "Total: %s\n", models.FormatPrice(total))
}

func renderWishlist(w io.Writer, entries []models.WishlistEntry) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "Your wishlist is empty.")
		return
	}
	table(w, "ID\tNAME\tCONDITION\tPRICE", func(tw *tabwriter.Writer) {
		for _, e := range entries {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", e.ListingID, e.Name, e.Condition, models.FormatPrice(e.Price))
		}
	})
}

// renderComments marks the comments the viewer may delete with '*'.
func renderComments(w io.Writer, listingID int64, items []models.Comment, canDelete func(models.Comment) bool) {
	if len(items) == 0 {
		fmt.Fprintf(w, "No comments on listing #%d yet.\n", listingID)
		return
	}
	fmt.Fprintf(w, "Comments on listing #%d:\n", listingID)
	for _, c := range items {
		mark := " "
		if canDelete(c) {
			mark = "*"
		}
		date := ""
		if !c.CreatedAt.IsZero() {
			date = c.CreatedAt.Local().Format(dateLayout)
		}
		fmt.Fprintf(w, "%s #%d %s %s\n    %s\n", mark, c.ID, c.Username, date, c.Text)
	}
}

func renderProfile(w io.Writer, u models.User) {
	fmt.Fprintf(w, "%s (@%s)\n", u.DisplayName(), u.Username)
	fmt.Fprintf(w, "  Email:   %s\n", u.Email)
	if u.Age > 0 {
		fmt.Fprintf(w, "  Age:     %d\n", u.Age)
	}
	fmt.Fprintf(w, "  Bio:     %s\n", u.Bio)
	fmt.Fprintf(w, "  Address: %s\n", u.Address)
	fmt.Fprintf(w, "  Picture: %s\n", u.ProfilePicture)
}
