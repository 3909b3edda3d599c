package catalog

import (
	"cookiestore/models"

	"github.com/shopspring/decimal"
)

func price(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v)
}

func salePrice(v float64) *decimal.Decimal {
	d := decimal.NewFromFloat(v)
	return &d
}

// SampleProducts is the static seed catalog. It is created once at startup
// and treated as read-only: every display surface works on filtered or
// copied views, never on the seed itself.
var SampleProducts = []models.Product{
	{
		ID:            1,
		Name:          "Classic Chocolate Chip",
		Description:   "Our signature cookie, baked fresh daily with Belgian chocolate chunks.",
		Price:         price(12.99),
		OriginalPrice: salePrice(15.99),
		Rating:        4.8,
		Reviews:       245,
		Category:      models.CategoryCookies,
		Stock:         45,
		IsBestSeller:  true,
		Image:         "/images/products/classic-chocolate-chip.jpg",
	},
	{
		ID:          2,
		Name:        "Oatmeal Raisin Delight",
		Description: "Chewy oatmeal cookies studded with plump raisins and a hint of cinnamon.",
		Price:       price(10.99),
		Rating:      4.7,
		Reviews:     156,
		Category:    models.CategoryCookies,
		Stock:       38,
		Image:       "/images/products/oatmeal-raisin-delight.jpg",
	},
	{
		ID:          3,
		Name:        "White Chocolate Macadamia",
		Description: "Buttery cookies loaded with white chocolate and roasted macadamia nuts.",
		Price:       price(14.99),
		Rating:      4.6,
		Reviews:     132,
		Category:    models.CategoryCookies,
		Stock:       27,
		IsNew:       true,
		Image:       "/images/products/white-chocolate-macadamia.jpg",
	},
	{
		ID:          4,
		Name:        "Peanut Butter Crunch",
		Description: "Crisp-edged peanut butter cookies with a soft, nutty center.",
		Price:       price(11.49),
		Rating:      4.5,
		Reviews:     98,
		Category:    models.CategoryCookies,
		Stock:       52,
		Image:       "/images/products/peanut-butter-crunch.jpg",
	},
	{
		ID:          5,
		Name:        "Snickerdoodle Swirl",
		Description: "Cinnamon-sugar rolled cookies with a caramel swirl through the middle.",
		Price:       price(9.99),
		Rating:      4.4,
		Reviews:     76,
		Category:    models.CategoryCookies,
		Stock:       18,
		IsNew:       true,
		Image:       "/images/products/snickerdoodle-swirl.jpg",
	},
	{
		ID:           16,
		Name:         "Classic Fudge Brownie",
		Description:  "Dense, fudgy brownies made with dark cocoa and real butter.",
		Price:        price(18.99),
		Rating:       4.9,
		Reviews:      203,
		Category:     models.CategoryBrownies,
		Stock:        33,
		IsBestSeller: true,
		Image:        "/images/products/classic-fudge-brownie.jpg",
	},
	{
		ID:          17,
		Name:        "Double Fudge Brownie",
		Description: "Twice the chocolate: fudge batter folded with melted chocolate chips.",
		Price:       price(8.99),
		Rating:      4.9,
		Reviews:     189,
		Category:    models.CategoryBrownies,
		Stock:       40,
		Image:       "/images/products/double-fudge-brownie.jpg",
	},
	{
		ID:            18,
		Name:          "Salted Caramel Brownie",
		Description:   "Fudge brownies ribboned with salted caramel and flaky sea salt.",
		Price:         price(21.99),
		OriginalPrice: salePrice(24.99),
		Rating:        4.8,
		Reviews:       143,
		Category:      models.CategoryBrownies,
		Stock:         25,
		Image:         "/images/products/salted-caramel-brownie.jpg",
	},
	{
		ID:          19,
		Name:        "Walnut Crumble Brownie",
		Description: "Classic fudge base topped with a toasted walnut crumble.",
		Price:       price(19.49),
		Rating:      4.3,
		Reviews:     67,
		Category:    models.CategoryBrownies,
		Stock:       14,
		IsNew:       true,
		Image:       "/images/products/walnut-crumble-brownie.jpg",
	},
	{
		ID:           31,
		Name:         "Classic Caramel Popcorn",
		Description:  "Stovetop caramel corn in small batches, crunchy and never sticky.",
		Price:        price(14.99),
		Rating:       4.6,
		Reviews:      98,
		Category:     models.CategoryPopcorn,
		Stock:        60,
		IsBestSeller: true,
		Image:        "/images/products/classic-caramel-popcorn.jpg",
	},
	{
		ID:          32,
		Name:        "Cheddar Cheese Popcorn",
		Description: "Sharp aged cheddar dusted over fresh-popped kernels.",
		Price:       price(13.49),
		Rating:      4.2,
		Reviews:     54,
		Category:    models.CategoryPopcorn,
		Stock:       41,
		Image:       "/images/products/cheddar-cheese-popcorn.jpg",
	},
	{
		ID:          33,
		Name:        "Chocolate Drizzle Popcorn",
		Description: "Caramel corn drizzled with dark and white chocolate.",
		Price:       price(16.99),
		Rating:      4.5,
		Reviews:     88,
		Category:    models.CategoryPopcorn,
		Stock:       36,
		IsNew:       true,
		Image:       "/images/products/chocolate-drizzle-popcorn.jpg",
	},
	{
		ID:          34,
		Name:        "Rainbow Kettle Corn",
		Description: "Sweet-and-salty kettle corn in festive candy colors.",
		Price:       price(12.49),
		Rating:      4.1,
		Reviews:     39,
		Category:    models.CategoryPopcorn,
		Stock:       48,
		Image:       "/images/products/rainbow-kettle-corn.jpg",
	},
	{
		ID:           46,
		Name:         "Vanilla Bean Ice Cake",
		Description:  "Layered vanilla bean ice cream cake with a cookie crust.",
		Price:        price(32.99),
		Rating:       4.7,
		Reviews:      112,
		Category:     models.CategoryIceCakes,
		Stock:        20,
		IsBestSeller: true,
		Image:        "/images/products/vanilla-bean-ice-cake.jpg",
	},
	{
		ID:          47,
		Name:        "Strawberry Swirl Ice Cake",
		Description: "Strawberry ice cream swirled through vanilla sponge layers.",
		Price:       price(36.99),
		Rating:      4.8,
		Reviews:     95,
		Category:    models.CategoryIceCakes,
		Stock:       16,
		IsNew:       true,
		Image:       "/images/products/strawberry-swirl-ice-cake.jpg",
	},
	{
		ID:            48,
		Name:          "Triple Chocolate Ice Cake",
		Description:   "Chocolate sponge, chocolate ice cream and a ganache shell.",
		Price:         price(42.99),
		OriginalPrice: salePrice(49.99),
		Rating:        4.9,
		Reviews:       157,
		Category:      models.CategoryIceCakes,
		Stock:         12,
		Image:         "/images/products/triple-chocolate-ice-cake.jpg",
	},
	{
		ID:          49,
		Name:        "Mint Chip Celebration Cake",
		Description: "Mint chip ice cream cake sized for parties of twelve.",
		Price:       price(54.99),
		Rating:      4.6,
		Reviews:     73,
		Category:    models.CategoryIceCakes,
		Stock:       9,
		Image:       "/images/products/mint-chip-celebration-cake.jpg",
	},
}

// Snapshot returns a copy of the seed catalog that callers may mutate
// freely, such as the admin inventory working copy.
func Snapshot() []models.Product {
	out := make([]models.Product, len(SampleProducts))
	copy(out, SampleProducts)
	return out
}

// FindByID looks a product up in products by its integer id.
func FindByID(products []models.Product, id int) (models.Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}
