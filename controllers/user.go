package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"cookiestore/middleware"
	"cookiestore/session"
	"cookiestore/utils"
)

// UserController handles login, signup and session requests
type UserController struct {
	Sessions *session.Store
	Toasts   *utils.ToastService
}

// NewUserController creates a new UserController
func NewUserController(sessions *session.Store, toasts *utils.ToastService) *UserController {
	return &UserController{
		Sessions: sessions,
		Toasts:   toasts,
	}
}

// writeFieldErrors sends the field-to-message validation map. The request
// is blocked, nothing was persisted.
func writeFieldErrors(w http.ResponseWriter, fieldErrs map[string]string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	json.NewEncoder(w).Encode(map[string]interface{}{"errors": fieldErrs})
}

// Login handles user authentication. The fixed admin credentials yield an
// admin session; any other valid email/password pair is accepted as a demo
// user.
func (uc *UserController) Login(w http.ResponseWriter, r *http.Request) {
	var form utils.LoginForm
	// Decode the request body
	err := json.NewDecoder(r.Body).Decode(&form)
	if err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	// Validate the form before touching the session slot
	if fieldErrs := utils.ValidateForm(form); len(fieldErrs) > 0 {
		writeFieldErrors(w, fieldErrs)
		return
	}

	rec, err := uc.Sessions.Login(r.Context(), form.Email, form.Password)
	if err != nil {
		if errors.Is(err, session.ErrEmptyCredentials) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		uc.Toasts.Notify("Login failed", "Invalid email or password. Please try again.")
		http.Error(w, "Login failed", http.StatusInternalServerError)
		return
	}

	redirect := "/"
	if rec.IsAdmin() {
		redirect = "/admin"
		uc.Toasts.Notify("Welcome back, Admin!", "Redirecting to admin dashboard...")
	} else {
		uc.Toasts.Notify("Welcome back!", "You have successfully logged in.")
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"user":     rec,
		"redirect": redirect,
	})
}

// Signup handles account creation. Validation failures block submission and
// persist nothing; there is no duplicate-account check because there is no
// backing account store.
func (uc *UserController) Signup(w http.ResponseWriter, r *http.Request) {
	var form utils.SignupForm
	// Decode the request body
	err := json.NewDecoder(r.Body).Decode(&form)
	if err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	if fieldErrs := utils.ValidateForm(form); len(fieldErrs) > 0 {
		writeFieldErrors(w, fieldErrs)
		return
	}

	rec, err := uc.Sessions.Signup(r.Context(), form.FirstName, form.PhoneNumber, form.Email)
	if err != nil {
		uc.Toasts.Notify("Signup failed", "Something went wrong. Please try again.")
		http.Error(w, "Signup failed", http.StatusInternalServerError)
		return
	}

	uc.Toasts.Notify("Account created successfully!", "Welcome to CookieStore. You can now start shopping.")

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"user":     rec,
		"redirect": "/",
	})
}

// Logout clears the current session
func (uc *UserController) Logout(w http.ResponseWriter, r *http.Request) {
	if err := uc.Sessions.Logout(); err != nil {
		http.Error(w, "Error clearing session", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode("Logged out")
}

// GetProfile retrieves the current session record
func (uc *UserController) GetProfile(w http.ResponseWriter, r *http.Request) {
	rec := middleware.CurrentUser(r)
	if rec == nil {
		http.Error(w, "Not logged in", http.StatusUnauthorized)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(rec)
}
