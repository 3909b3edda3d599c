package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"cookiestore/cart"
	"cookiestore/catalog"
	"cookiestore/middleware"
	"cookiestore/models"
)

// CartController handles cart-related requests
type CartController struct {
	Carts    *cart.Store
	Products []models.Product
}

// NewCartController creates a new CartController over the given catalog
func NewCartController(carts *cart.Store, products []models.Product) *CartController {
	return &CartController{
		Carts:    carts,
		Products: products,
	}
}

// sessionCart returns the cart owned by the caller's shopping session.
func (cc *CartController) sessionCart(r *http.Request) *cart.Cart {
	return cc.Carts.Get(middleware.SessionID(r))
}

// GetCart retrieves the caller's cart lines with the derived order totals.
// An empty cart is a normal response, not an error.
func (cc *CartController) GetCart(w http.ResponseWriter, r *http.Request) {
	lines := cc.sessionCart(r).Lines()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"items":  lines,
		"count":  len(lines),
		"totals": cart.Totals(lines),
	})
}

// AddToCart adds a product to the caller's cart
func (cc *CartController) AddToCart(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ProductID int `json:"product_id"`
		Quantity  int `json:"quantity"`
	}
	// Decode the request body
	err := json.NewDecoder(r.Body).Decode(&body)
	if err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	product, ok := catalog.FindByID(cc.Products, body.ProductID)
	if !ok {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}

	cc.sessionCart(r).Add(product, body.Quantity)

	json.NewEncoder(w).Encode("Item added to cart")
}

// UpdateQuantity sets the quantity of one cart line. A quantity below 1
// removes the line.
func (cc *CartController) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	id, err := strconv.Atoi(params["id"])
	if err != nil {
		http.Error(w, "Invalid product ID", http.StatusBadRequest)
		return
	}

	var body struct {
		Quantity int `json:"quantity"`
	}
	err = json.NewDecoder(r.Body).Decode(&body)
	if err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	cc.sessionCart(r).SetQuantity(id, body.Quantity)

	json.NewEncoder(w).Encode("Cart updated")
}

// RemoveFromCart removes a product from the caller's cart
func (cc *CartController) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	id, err := strconv.Atoi(params["id"])
	if err != nil {
		http.Error(w, "Invalid product ID", http.StatusBadRequest)
		return
	}

	cc.sessionCart(r).Remove(id)

	json.NewEncoder(w).Encode("Item removed from cart")
}

// ClearCart empties the caller's cart
func (cc *CartController) ClearCart(w http.ResponseWriter, r *http.Request) {
	cc.sessionCart(r).Clear()

	json.NewEncoder(w).Encode("Cart cleared")
}
