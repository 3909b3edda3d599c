// routes/routes.go
package routes

import (
	"cookiestore/controllers"
	"cookiestore/middleware"

	"github.com/gorilla/mux"
)

// RegisterRoutes sets up all the routes for the application
func RegisterRoutes(router *mux.Router, userController *controllers.UserController, productController *controllers.ProductController, cartController *controllers.CartController, adminController *controllers.AdminController, notificationController *controllers.NotificationController) {
	// Auth routes
	router.HandleFunc("/login", userController.Login).Methods("POST")
	router.HandleFunc("/signup", userController.Signup).Methods("POST")
	router.HandleFunc("/logout", userController.Logout).Methods("POST")
	router.HandleFunc("/profile", userController.GetProfile).Methods("GET")

	// Product routes
	router.HandleFunc("/products", productController.GetProducts).Methods("GET")
	router.HandleFunc("/products/{id}", productController.GetProductByID).Methods("GET")
	router.HandleFunc("/categories", productController.GetCategories).Methods("GET")

	// Cart routes
	router.HandleFunc("/cart", cartController.GetCart).Methods("GET")
	router.HandleFunc("/cart", cartController.AddToCart).Methods("POST")
	router.HandleFunc("/cart", cartController.ClearCart).Methods("DELETE")
	router.HandleFunc("/cart/{id}", cartController.UpdateQuantity).Methods("PUT")
	router.HandleFunc("/cart/{id}", cartController.RemoveFromCart).Methods("DELETE")

	// Notification routes
	router.HandleFunc("/notifications", notificationController.GetNotifications).Methods("GET")

	// Admin routes
	admin := router.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminOnly)
	admin.HandleFunc("/dashboard", adminController.GetDashboard).Methods("GET")
	admin.HandleFunc("/products", adminController.GetProducts).Methods("GET")
	admin.HandleFunc("/products/{id}", adminController.DeleteProduct).Methods("DELETE")
	admin.HandleFunc("/orders", adminController.GetOrders).Methods("GET")
	admin.HandleFunc("/orders/{id}", adminController.UpdateOrderStatus).Methods("PUT")
	admin.HandleFunc("/users", adminController.GetUsers).Methods("GET")
	admin.HandleFunc("/users/{id}/status", adminController.ToggleUserStatus).Methods("PUT")
	admin.HandleFunc("/analytics", adminController.GetAnalytics).Methods("GET")
}
