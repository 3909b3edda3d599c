package models

import (
	"github.com/shopspring/decimal"
)

// Category identifies one of the fixed product categories.
type Category string

const (
	CategoryCookies  Category = "cookies"
	CategoryBrownies Category = "brownies"
	CategoryPopcorn  Category = "popcorn"
	CategoryIceCakes Category = "ice-cakes"
)

// Categories lists every valid category in display order.
var Categories = []Category{
	CategoryCookies,
	CategoryBrownies,
	CategoryPopcorn,
	CategoryIceCakes,
}

// Valid reports whether c names one of the fixed categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryCookies, CategoryBrownies, CategoryPopcorn, CategoryIceCakes:
		return true
	}
	return false
}

// Product represents a single item in the store catalog
type Product struct {
	ID            int              `json:"id"`
	Name          string           `json:"name"`
	Description   string           `json:"description"`
	Price         decimal.Decimal  `json:"price"`
	OriginalPrice *decimal.Decimal `json:"original_price,omitempty"` // set only for sale items
	Rating        float64          `json:"rating"`
	Reviews       int              `json:"reviews"`
	Category      Category         `json:"category"`
	Stock         int              `json:"stock"`
	IsNew         bool             `json:"is_new"`
	IsBestSeller  bool             `json:"is_best_seller"`
	Image         string           `json:"image"`
}
