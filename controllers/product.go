package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"cookiestore/catalog"
	"cookiestore/models"
)

// ProductController handles catalog browsing requests
type ProductController struct {
	Products []models.Product
}

// NewProductController creates a ProductController over the given catalog
func NewProductController(products []models.Product) *ProductController {
	return &ProductController{
		Products: products,
	}
}

// GetProducts retrieves catalog products filtered and sorted by the query
// parameters search, category, price and sort. An empty result is a normal
// response, not an error.
func (pc *ProductController) GetProducts(w http.ResponseWriter, r *http.Request) {
	q := catalog.Query{
		Search:   r.URL.Query().Get("search"),
		Category: r.URL.Query().Get("category"),
		Price:    r.URL.Query().Get("price"),
		Sort:     r.URL.Query().Get("sort"),
	}

	results := catalog.Apply(pc.Products, q)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"products": results,
		"shown":    len(results),
		"total":    len(pc.Products),
	})
}

// GetProductByID retrieves a single product by ID
func (pc *ProductController) GetProductByID(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	id, err := strconv.Atoi(params["id"])
	if err != nil {
		http.Error(w, "Invalid product ID", http.StatusBadRequest)
		return
	}

	product, ok := catalog.FindByID(pc.Products, id)
	if !ok {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(product)
}

// categoryInfo is one tile of the category grid
type categoryInfo struct {
	Name        string          `json:"name"`
	Slug        models.Category `json:"slug"`
	Description string          `json:"description"`
	Count       int             `json:"count"`
}

var categoryDetails = map[models.Category]categoryInfo{
	models.CategoryCookies:  {Name: "Cookies", Description: "Classic & gourmet cookies"},
	models.CategoryBrownies: {Name: "Brownies", Description: "Rich & fudgy brownies"},
	models.CategoryPopcorn:  {Name: "Popcorn", Description: "Gourmet flavored popcorn"},
	models.CategoryIceCakes: {Name: "Ice Cakes", Description: "Frozen delicious cakes"},
}

// GetCategories retrieves the category grid with per-category product counts
func (pc *ProductController) GetCategories(w http.ResponseWriter, r *http.Request) {
	counts := catalog.CountByCategory(pc.Products)

	categories := make([]categoryInfo, 0, len(models.Categories))
	for _, c := range models.Categories {
		info := categoryDetails[c]
		info.Slug = c
		info.Count = counts[c]
		categories = append(categories, info)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(categories)
}
