package models

import (
	"github.com/shopspring/decimal"
)

// UserStatus marks whether a customer account may place orders
type UserStatus string

const (
	UserStatusActive  UserStatus = "active"
	UserStatusBlocked UserStatus = "blocked"
)

// User represents a registered customer shown on the admin users tab
type User struct {
	ID          string          `json:"id"`
	FirstName   string          `json:"first_name"`
	Email       string          `json:"email"`
	PhoneNumber string          `json:"phone_number"`
	JoinDate    string          `json:"join_date"`
	TotalOrders int             `json:"total_orders"`
	TotalSpent  decimal.Decimal `json:"total_spent"`
	Status      UserStatus      `json:"status"`
}

// DashboardStats summarizes the store for the admin dashboard tab
type DashboardStats struct {
	TotalProducts int             `json:"total_products"`
	TotalOrders   int             `json:"total_orders"`
	TotalUsers    int             `json:"total_users"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
	PendingOrders int             `json:"pending_orders"`
	LowStock      int             `json:"low_stock"`
}
