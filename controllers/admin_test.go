package controllers_test

import (
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cookiestore/catalog"
	"cookiestore/models"
)

func TestAdminRoutesRequireAdminRole(t *testing.T) {
	e := newEnv(t)

	// no session at all
	assert.Equal(t, http.StatusForbidden, e.do(t, http.MethodGet, "/admin/dashboard", nil).Code)

	// a demo user session is not enough
	rr := e.do(t, http.MethodPost, "/login", map[string]string{
		"email":    "shopper@example.com",
		"password": "whatever",
	})
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, http.StatusForbidden, e.do(t, http.MethodGet, "/admin/dashboard", nil).Code)

	e.loginAdmin(t)
	assert.Equal(t, http.StatusOK, e.do(t, http.MethodGet, "/admin/dashboard", nil).Code)
}

func TestAdminDashboardStats(t *testing.T) {
	e := newEnv(t)
	e.loginAdmin(t)

	rr := e.do(t, http.MethodGet, "/admin/dashboard", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var stats models.DashboardStats
	decodeJSON(t, rr, &stats)

	assert.Equal(t, len(catalog.SampleProducts), stats.TotalProducts)
	assert.Equal(t, 3, stats.TotalOrders)
	assert.Equal(t, 2, stats.TotalUsers)
	assert.Equal(t, 1, stats.PendingOrders)
	// 45.99 + 32.50 + 78.25 from the mock orders
	assert.True(t, stats.TotalRevenue.Equal(decimal.RequireFromString("156.74")))
	assert.Positive(t, stats.LowStock)
}

func TestAdminDeleteProductTouchesWorkingCopyOnly(t *testing.T) {
	e := newEnv(t)
	e.loginAdmin(t)

	rr := e.do(t, http.MethodDelete, "/admin/products/1", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	// gone from the admin inventory
	rr = e.do(t, http.MethodGet, "/admin/products", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var inventory []models.Product
	decodeJSON(t, rr, &inventory)
	assert.Len(t, inventory, len(catalog.SampleProducts)-1)
	for _, p := range inventory {
		assert.NotEqual(t, 1, p.ID)
	}

	// the seed catalog still serves it
	assert.Equal(t, http.StatusOK, e.do(t, http.MethodGet, "/products/1", nil).Code)

	// deleting it twice is a miss
	assert.Equal(t, http.StatusNotFound, e.do(t, http.MethodDelete, "/admin/products/1", nil).Code)
}

func TestAdminProductsSearch(t *testing.T) {
	e := newEnv(t)
	e.loginAdmin(t)

	rr := e.do(t, http.MethodGet, "/admin/products?search=brownie", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var inventory []models.Product
	decodeJSON(t, rr, &inventory)
	require.NotEmpty(t, inventory)
	for _, p := range inventory {
		assert.Contains(t, p.Name, "Brownie")
	}
}

func TestAdminUpdateOrderStatus(t *testing.T) {
	e := newEnv(t)
	e.loginAdmin(t)

	rr := e.do(t, http.MethodPut, "/admin/orders/ORD-001", map[string]string{"status": "shipped"})
	require.Equal(t, http.StatusOK, rr.Code)

	rr = e.do(t, http.MethodGet, "/admin/orders", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var orders []models.Order
	decodeJSON(t, rr, &orders)
	require.NotEmpty(t, orders)
	for _, o := range orders {
		if o.ID == "ORD-001" {
			assert.Equal(t, models.OrderStatusShipped, o.Status)
		}
	}

	assert.Equal(t, http.StatusBadRequest,
		e.do(t, http.MethodPut, "/admin/orders/ORD-001", map[string]string{"status": "teleported"}).Code)
	assert.Equal(t, http.StatusNotFound,
		e.do(t, http.MethodPut, "/admin/orders/ORD-999", map[string]string{"status": "shipped"}).Code)
}

func TestAdminToggleUserStatus(t *testing.T) {
	e := newEnv(t)
	e.loginAdmin(t)

	userStatus := func() models.UserStatus {
		rr := e.do(t, http.MethodGet, "/admin/users", nil)
		require.Equal(t, http.StatusOK, rr.Code)
		var users []models.User
		decodeJSON(t, rr, &users)
		for _, u := range users {
			if u.ID == "USR-001" {
				return u.Status
			}
		}
		t.Fatal("USR-001 not found")
		return ""
	}

	require.Equal(t, models.UserStatusActive, userStatus())

	rr := e.do(t, http.MethodPut, "/admin/users/USR-001/status", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, models.UserStatusBlocked, userStatus())

	rr = e.do(t, http.MethodPut, "/admin/users/USR-001/status", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, models.UserStatusActive, userStatus())

	assert.Equal(t, http.StatusNotFound, e.do(t, http.MethodPut, "/admin/users/USR-999/status", nil).Code)
}

func TestAdminAnalytics(t *testing.T) {
	e := newEnv(t)
	e.loginAdmin(t)

	rr := e.do(t, http.MethodGet, "/admin/analytics", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		TotalRevenue   decimal.Decimal            `json:"total_revenue"`
		OrdersByStatus map[models.OrderStatus]int `json:"orders_by_status"`
		CategoryCounts map[models.Category]int    `json:"category_counts"`
		TopProducts    []struct {
			Name    string `json:"name"`
			Reviews int    `json:"reviews"`
		} `json:"top_products"`
	}
	decodeJSON(t, rr, &resp)

	assert.True(t, resp.TotalRevenue.Equal(decimal.RequireFromString("156.74")))
	assert.Len(t, resp.TopProducts, 5)
	for i := 1; i < len(resp.TopProducts); i++ {
		assert.GreaterOrEqual(t, resp.TopProducts[i-1].Reviews, resp.TopProducts[i].Reviews)
	}
	assert.Len(t, resp.CategoryCounts, len(models.Categories))
}
