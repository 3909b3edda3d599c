// main.go
package main

import (
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"cookiestore/cart"
	"cookiestore/catalog"
	"cookiestore/controllers"
	"cookiestore/middleware"
	"cookiestore/routes"
	"cookiestore/session"
	"cookiestore/utils"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		logger.Info("no .env file found, proceeding with environment variables")
	}

	// The session storage file stands in for browser local storage
	storage, err := session.NewFileStorage(getenv("SESSION_FILE", ".cookiestore_session.json"))
	if err != nil {
		logger.Fatal("opening session storage", zap.Error(err))
	}

	sessions := session.NewStore(storage,
		durationMS("LOGIN_DELAY_MS", 1500),
		durationMS("SIGNUP_DELAY_MS", 2000),
	)

	// Initialize the toast surface and the cart store
	toasts := utils.NewToastService(logger)
	carts := cart.NewStore(toasts)

	// Initialize controllers
	userController := controllers.NewUserController(sessions, toasts)
	productController := controllers.NewProductController(catalog.SampleProducts)
	cartController := controllers.NewCartController(carts, catalog.SampleProducts)
	adminController := controllers.NewAdminController(catalog.SampleProducts, toasts)
	notificationController := controllers.NewNotificationController(toasts)

	// Set up the router
	router := mux.NewRouter()
	// Register routes
	routes.RegisterRoutes(router, userController, productController, cartController, adminController, notificationController)

	// Apply request logging and session resolution to every route
	router.Use(middleware.Logging(logger))
	router.Use(middleware.Session(sessions))

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	logger.Info("server listening", zap.String("port", port))
	if err := http.ListenAndServe(":"+port, router); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// durationMS reads a millisecond count from the environment.
func durationMS(key string, fallbackMS int) time.Duration {
	if v := os.Getenv(key); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms >= 0 {
			return time.Duration(ms) * time.Millisecond
		}
	}
	return time.Duration(fallbackMS) * time.Millisecond
}
