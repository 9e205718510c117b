package models

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// Listing is a photocard offered for sale. Listings are immutable from the
// client's point of view once created.
type Listing struct {
	ID          int64   `json:"id"`
	Name        string  `json:"listing_name"`
	Description string  `json:"description"`
	Condition   string  `json:"condition"`
	Price       float64 `json:"price"`
	SellerID    int64   `json:"user_id"`
	Photo       string  `json:"photo,omitempty"`
}

// NewListing is the Add-Listing form. PhotoPath points to a local file and
// is optional.
type NewListing struct {
	Name        string
	Description string
	Condition   string
	Price       string
	PhotoPath   string
}

// Validate mirrors the server's required fields (name, price, condition,
// description) and returns the parsed price.
func (n NewListing) Validate() (float64, error) {
	v := &ValidationError{}
	v.require("name", n.Name)
	v.require("price", n.Price)
	v.require("condition", n.Condition)
	v.require("description", n.Description)

	var price float64
	if strings.TrimSpace(n.Price) != "" {
		p, err := ParsePrice(n.Price)
		if err != nil {
			v.add("price", err.Error())
		}
		price = p
	}

	return price, v.orNil()
}

// ParsePrice parses a finite, non-negative decimal price.
func ParsePrice(s string) (float64, error) {
	p, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsInf(p, 0) || math.IsNaN(p) {
		return 0, errors.New("must be a number")
	}
	if p < 0 {
		return 0, errors.New("must not be negative")
	}
	return p, nil
}

// FormatPrice renders a price with two decimals.
func FormatPrice(p float64) string {
	return strconv.FormatFloat(p, 'f', 2, 64)
}
