package models

// CartItem is a cart row joined with its listing.
type CartItem struct {
	ProductID int64   `json:"product_id"`
	Name      string  `json:"listing_name"`
	Photo     string  `json:"photo"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// WishlistItem is a wishlist row joined with its listing.
type WishlistItem struct {
	ProductID   int64   `json:"product_id"`
	Name        string  `json:"listing_name"`
	Photo       string  `json:"photo"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Condition   string  `json:"condition"`
}

// AddResult answers POST /cart and POST /wishlist.
type AddResult struct {
	AlreadyExists bool `json:"alreadyExists"`
}
