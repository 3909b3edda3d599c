package catalog

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"cookiestore/models"
)

// Sort keys accepted by Query.
const (
	SortNewest    = "newest"
	SortPopular   = "popular"
	SortRating    = "rating"
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
)

// Price brackets accepted by Query.
const (
	PriceAll     = "all"
	PriceUnder15 = "under-15"
	Price15To25  = "15-25"
	Price25To40  = "25-40"
	PriceOver40  = "over-40"
)

var (
	bracket15 = decimal.NewFromInt(15)
	bracket25 = decimal.NewFromInt(25)
	bracket40 = decimal.NewFromInt(40)
)

// Query describes one request against the catalog: a free-text search term,
// a category, a price bracket and a sort key. The zero value matches the
// whole catalog in "newest" order. Unrecognized category, bracket or sort
// values behave like their "all"/"newest" defaults rather than erroring.
type Query struct {
	Search   string
	Category string
	Price    string
	Sort     string
}

// Apply filters and stably sorts products according to q. The input slice is
// never mutated; the result is always a fresh slice.
func Apply(products []models.Product, q Query) []models.Product {
	filtered := make([]models.Product, 0, len(products))
	for _, p := range products {
		if matches(p, q) {
			filtered = append(filtered, p)
		}
	}
	sortProducts(filtered, q.Sort)
	return filtered
}

func matches(p models.Product, q Query) bool {
	if q.Search != "" &&
		!strings.Contains(strings.ToLower(p.Name), strings.ToLower(q.Search)) {
		return false
	}
	if c := models.Category(q.Category); c.Valid() && p.Category != c {
		return false
	}
	return inBracket(p.Price, q.Price)
}

func inBracket(price decimal.Decimal, bracket string) bool {
	switch bracket {
	case PriceUnder15:
		return price.LessThan(bracket15)
	case Price15To25:
		return price.GreaterThanOrEqual(bracket15) && price.LessThanOrEqual(bracket25)
	case Price25To40:
		return price.GreaterThanOrEqual(bracket25) && price.LessThanOrEqual(bracket40)
	case PriceOver40:
		return price.GreaterThan(bracket40)
	default:
		// "all" or anything unrecognized
		return true
	}
}

// sortProducts orders products in place by the given key. Sorting is stable
// so that ties keep their seed order.
func sortProducts(products []models.Product, key string) {
	switch key {
	case SortPriceLow:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price.LessThan(products[j].Price)
		})
	case SortPriceHigh:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price.GreaterThan(products[j].Price)
		})
	case SortPopular:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Reviews > products[j].Reviews
		})
	case SortRating:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Rating > products[j].Rating
		})
	default:
		// "newest" is both the default and the fallback for unknown keys
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].IsNew && !products[j].IsNew
		})
	}
}

// CountByCategory tallies products per category, used by the category grid.
func CountByCategory(products []models.Product) map[models.Category]int {
	counts := make(map[models.Category]int, len(models.Categories))
	for _, p := range products {
		counts[p.Category]++
	}
	return counts
}
