package models

// CartEntry is one row of GET /cart/{user_id}: a listing projection plus the
// quantity the user wants.
type CartEntry struct {
	ListingID int64   `json:"product_id"`
	Name      string  `json:"listing_name"`
	Photo     string  `json:"photo,omitempty"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// WishlistEntry is one row of GET /wishlist/{user_id}.
type WishlistEntry struct {
	ListingID   int64   `json:"product_id"`
	Name        string  `json:"listing_name"`
	Photo       string  `json:"photo,omitempty"`
	Price       float64 `json:"price"`
	Description string  `json:"description,omitempty"`
	Condition   string  `json:"condition,omitempty"`
}

// AddResult is the outcome of an idempotent-intent add to the cart or the
// wishlist. AlreadyExists is set when the pair was present before the call.
type AddResult struct {
	AlreadyExists bool `json:"alreadyExists"`
}

// CartTotal sums price*quantity over entries.
func CartTotal(entries []CartEntry) float64 {
	var total float64
	for _, e := range entries {
		total += e.Price * float64(e.Quantity)
	}
	return total
}
