package controllers

import (
	"encoding/json"
	"net/http"

	"cookiestore/utils"
)

// NotificationController hands pending toast notices to the client
type NotificationController struct {
	Toasts *utils.ToastService
}

// NewNotificationController creates a new NotificationController
func NewNotificationController(toasts *utils.ToastService) *NotificationController {
	return &NotificationController{
		Toasts: toasts,
	}
}

// GetNotifications drains and returns all undelivered notices
func (nc *NotificationController) GetNotifications(w http.ResponseWriter, r *http.Request) {
	toasts := nc.Toasts.Drain()
	if toasts == nil {
		toasts = []utils.Toast{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(toasts)
}
