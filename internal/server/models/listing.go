package models

// Listing is a photocard offered for sale. Photo is the public path of the
// uploaded image, or "" when none was sent.
type Listing struct {
	ID          int64   `json:"id"`
	Name        string  `json:"listing_name"`
	Description string  `json:"description"`
	Condition   string  `json:"condition"`
	Price       float64 `json:"price"`
	UserID      int64   `json:"user_id"`
	Photo       string  `json:"photo"`
}
