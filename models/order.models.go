package models

import (
	"github.com/shopspring/decimal"
)

// OrderStatus tracks an order through the fulfillment pipeline
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// Valid reports whether s names a known order status.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// Order represents a customer order shown on the admin dashboard
type Order struct {
	ID           string          `json:"id"`
	CustomerName string          `json:"customer_name"`
	Email        string          `json:"email"`
	Total        decimal.Decimal `json:"total"`
	Status       OrderStatus     `json:"status"`
	Items        int             `json:"items"`
	Date         string          `json:"date"` // e.g. "2024-01-20"
}
