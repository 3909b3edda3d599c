// controllers/admin.go
package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"sync"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	"cookiestore/catalog"
	"cookiestore/models"
	"cookiestore/utils"
)

// Products with stock below this show up in the low-stock counter.
const lowStockThreshold = 20

// AdminController serves the back-office dashboard tabs. It works on its
// own copy of the catalog plus mock order and user fixtures: deleting a
// product here removes it from the working inventory only, never from the
// seed catalog.
type AdminController struct {
	mu       sync.Mutex
	Products []models.Product
	Orders   []models.Order
	Users    []models.User
	Toasts   *utils.ToastService
}

// NewAdminController creates an AdminController over its own copy of the
// given catalog.
func NewAdminController(products []models.Product, toasts *utils.ToastService) *AdminController {
	inventory := make([]models.Product, len(products))
	copy(inventory, products)

	return &AdminController{
		Products: inventory,
		Orders:   sampleOrders(),
		Users:    sampleUsers(),
		Toasts:   toasts,
	}
}

// Mock order fixtures for the orders tab.
func sampleOrders() []models.Order {
	return []models.Order{
		{
			ID:           "ORD-001",
			CustomerName: "John Doe",
			Email:        "john@example.com",
			Total:        decimal.RequireFromString("45.99"),
			Status:       models.OrderStatusPending,
			Items:        3,
			Date:         "2024-01-20",
		},
		{
			ID:           "ORD-002",
			CustomerName: "Jane Smith",
			Email:        "jane@example.com",
			Total:        decimal.RequireFromString("32.50"),
			Status:       models.OrderStatusShipped,
			Items:        2,
			Date:         "2024-01-19",
		},
		{
			ID:           "ORD-003",
			CustomerName: "Bob Johnson",
			Email:        "bob@example.com",
			Total:        decimal.RequireFromString("78.25"),
			Status:       models.OrderStatusDelivered,
			Items:        5,
			Date:         "2024-01-18",
		},
	}
}

// Mock customer fixtures for the users tab.
func sampleUsers() []models.User {
	return []models.User{
		{
			ID:          "USR-001",
			FirstName:   "John Doe",
			Email:       "john@example.com",
			PhoneNumber: "+1-555-0123",
			JoinDate:    "2024-01-15",
			TotalOrders: 3,
			TotalSpent:  decimal.RequireFromString("156.74"),
			Status:      models.UserStatusActive,
		},
		{
			ID:          "USR-002",
			FirstName:   "Jane Smith",
			Email:       "jane@example.com",
			PhoneNumber: "+1-555-0124",
			JoinDate:    "2024-01-10",
			TotalOrders: 7,
			TotalSpent:  decimal.RequireFromString("298.50"),
			Status:      models.UserStatusActive,
		},
	}
}

// GetDashboard retrieves the dashboard tab summary stats
func (ac *AdminController) GetDashboard(w http.ResponseWriter, r *http.Request) {
	ac.mu.Lock()
	defer ac.mu.Unlock()

	stats := models.DashboardStats{
		TotalProducts: len(ac.Products),
		TotalOrders:   len(ac.Orders),
		TotalUsers:    len(ac.Users),
		TotalRevenue:  decimal.Zero,
	}
	for _, o := range ac.Orders {
		stats.TotalRevenue = stats.TotalRevenue.Add(o.Total)
		if o.Status == models.OrderStatusPending {
			stats.PendingOrders++
		}
	}
	for _, p := range ac.Products {
		if p.Stock < lowStockThreshold {
			stats.LowStock++
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(stats)
}

// GetProducts retrieves the working inventory, optionally narrowed by a
// search term
func (ac *AdminController) GetProducts(w http.ResponseWriter, r *http.Request) {
	ac.mu.Lock()
	products := catalog.Apply(ac.Products, catalog.Query{
		Search: r.URL.Query().Get("search"),
	})
	ac.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(products)
}

// DeleteProduct removes a product from the working inventory
func (ac *AdminController) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	id, err := strconv.Atoi(params["id"])
	if err != nil {
		http.Error(w, "Invalid product ID", http.StatusBadRequest)
		return
	}

	ac.mu.Lock()
	deleted := false
	for i, p := range ac.Products {
		if p.ID == id {
			ac.Products = append(ac.Products[:i], ac.Products[i+1:]...)
			deleted = true
			break
		}
	}
	ac.mu.Unlock()

	if !deleted {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}

	ac.Toasts.Notify("Product Deleted", "Product has been removed from inventory.")
	json.NewEncoder(w).Encode("Product deleted")
}

// GetOrders retrieves the orders tab
func (ac *AdminController) GetOrders(w http.ResponseWriter, r *http.Request) {
	ac.mu.Lock()
	orders := make([]models.Order, len(ac.Orders))
	copy(orders, ac.Orders)
	ac.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(orders)
}

// UpdateOrderStatus moves an order to a new fulfillment status
func (ac *AdminController) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	orderID := params["id"]

	var body struct {
		Status models.OrderStatus `json:"status"`
	}
	// Decode the request body
	err := json.NewDecoder(r.Body).Decode(&body)
	if err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	if !body.Status.Valid() {
		http.Error(w, "Invalid order status", http.StatusBadRequest)
		return
	}

	ac.mu.Lock()
	updated := false
	for i := range ac.Orders {
		if ac.Orders[i].ID == orderID {
			ac.Orders[i].Status = body.Status
			updated = true
			break
		}
	}
	ac.mu.Unlock()

	if !updated {
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	}

	ac.Toasts.Notify("Order Updated", fmt.Sprintf("Order %s status changed to %s", orderID, body.Status))
	json.NewEncoder(w).Encode("Order updated")
}

// GetUsers retrieves the users tab
func (ac *AdminController) GetUsers(w http.ResponseWriter, r *http.Request) {
	ac.mu.Lock()
	users := make([]models.User, len(ac.Users))
	copy(users, ac.Users)
	ac.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(users)
}

// ToggleUserStatus flips a customer between active and blocked
func (ac *AdminController) ToggleUserStatus(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	userID := params["id"]

	ac.mu.Lock()
	updated := false
	for i := range ac.Users {
		if ac.Users[i].ID == userID {
			if ac.Users[i].Status == models.UserStatusActive {
				ac.Users[i].Status = models.UserStatusBlocked
			} else {
				ac.Users[i].Status = models.UserStatusActive
			}
			updated = true
			break
		}
	}
	ac.mu.Unlock()

	if !updated {
		http.Error(w, "User not found", http.StatusNotFound)
		return
	}

	ac.Toasts.Notify("User Status Updated", "User status has been changed.")
	json.NewEncoder(w).Encode("User status updated")
}

// topProduct is one row of the analytics top-products table
type topProduct struct {
	ID      int     `json:"id"`
	Name    string  `json:"name"`
	Reviews int     `json:"reviews"`
	Rating  float64 `json:"rating"`
}

// GetAnalytics retrieves the analytics tab: revenue, orders by status,
// category sizes and the most-reviewed products.
func (ac *AdminController) GetAnalytics(w http.ResponseWriter, r *http.Request) {
	ac.mu.Lock()
	defer ac.mu.Unlock()

	revenue := decimal.Zero
	ordersByStatus := make(map[models.OrderStatus]int)
	for _, o := range ac.Orders {
		revenue = revenue.Add(o.Total)
		ordersByStatus[o.Status]++
	}

	top := make([]topProduct, 0, len(ac.Products))
	for _, p := range ac.Products {
		top = append(top, topProduct{ID: p.ID, Name: p.Name, Reviews: p.Reviews, Rating: p.Rating})
	}
	sort.SliceStable(top, func(i, j int) bool { return top[i].Reviews > top[j].Reviews })
	if len(top) > 5 {
		top = top[:5]
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"total_revenue":    revenue,
		"orders_by_status": ordersByStatus,
		"category_counts":  catalog.CountByCategory(ac.Products),
		"top_products":     top,
	})
}
