package models

// User roles
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// SessionRecord represents the persisted identity of the current session.
// It is a demo-only fiction: there is no signature, no expiry and no server
// side validation behind it.
type SessionRecord struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	FirstName   string `json:"first_name"`
	PhoneNumber string `json:"phone_number,omitempty"`
	Role        string `json:"role"` // "user" or "admin"
}

// IsAdmin reports whether the record carries the admin role.
func (r *SessionRecord) IsAdmin() bool {
	return r != nil && r.Role == RoleAdmin
}
