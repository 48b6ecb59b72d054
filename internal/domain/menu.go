package domain

import (
	"github.com/shopspring/decimal"
)

type Category string

const (
	CategoryBiryani  Category = "Biryani"
	CategoryStarters Category = "Starters"
	CategorySoups    Category = "Soups"
	CategoryCurries  Category = "Curries"
	CategoryBreads   Category = "Parottas & Breads"
	CategoryDrinks   Category = "Beverages"
)

// Categories returns the fixed category enumeration in menu display order.
func Categories() []Category {
	return []Category{
		CategoryBiryani,
		CategoryStarters,
		CategorySoups,
		CategoryCurries,
		CategoryBreads,
		CategoryDrinks,
	}
}

func ValidCategory(c Category) bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

// MenuItem is a catalog entry. Items are defined at startup and never
// mutated; orders snapshot the price instead of referencing the item.
type MenuItem struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    Category        `json:"category"`
	ImageURL    string          `json:"imageUrl"`
	Available   bool            `json:"available"`
}
