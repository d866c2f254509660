package model

import (
	"strconv"

	"github.com/dustin/go-humanize"
)

// Item is the domain model for a priced goods entry.
type Item struct {
	ID    int     `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// FormatPrice renders a price for display, with thousands separators and
// no trailing zeros. currency is prepended as-is (may be empty).
func FormatPrice(price float64, currency string) string {
	return currency + humanize.Commaf(price)
}

// PriceText renders a price the way it is typed into a form field.
func PriceText(price float64) string {
	return strconv.FormatFloat(price, 'f', -1, 64)
}

// Total sums the prices of items.
func Total(items []Item) float64 {
	var sum float64
	for _, it := range items {
		sum += it.Price
	}
	return sum
}
