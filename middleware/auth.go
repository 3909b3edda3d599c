package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"cookiestore/models"
	"cookiestore/session"
)

// Key type for context
type contextKey string

const (
	SessionIDContextKey = contextKey("session_id")
	UserContextKey      = contextKey("user")
)

// SessionCookieName is the cookie carrying the shopper's session id.
const SessionCookieName = "cookiestore_session"

// Session resolves the caller's shopping-session id, issuing a fresh cookie
// when none is presented, and attaches the id along with the current
// session record (when someone is logged in) to the request context.
func Session(sessions *session.Store) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var id string
			if c, err := r.Cookie(SessionCookieName); err == nil && c.Value != "" {
				id = c.Value
			} else {
				id = uuid.NewString()
				http.SetCookie(w, &http.Cookie{
					Name:     SessionCookieName,
					Value:    id,
					Path:     "/",
					HttpOnly: true,
				})
			}

			ctx := context.WithValue(r.Context(), SessionIDContextKey, id)
			if rec := sessions.Current(); rec != nil {
				ctx = context.WithValue(ctx, UserContextKey, rec)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AdminOnly ensures that the caller is logged in with the admin role
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec, ok := r.Context().Value(UserContextKey).(*models.SessionRecord)
		if !ok || !rec.IsAdmin() {
			http.Error(w, "Forbidden: Admins only", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// SessionID returns the shopping-session id attached by Session.
func SessionID(r *http.Request) string {
	id, _ := r.Context().Value(SessionIDContextKey).(string)
	return id
}

// CurrentUser returns the session record attached by Session, or nil when
// nobody is logged in.
func CurrentUser(r *http.Request) *models.SessionRecord {
	rec, _ := r.Context().Value(UserContextKey).(*models.SessionRecord)
	return rec
}
