package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"

	"cookiestore/models"
)

// Persisted storage keys. The record itself lives under userKey; the
// literal string "true" under authenticatedKey marks the session active.
const (
	userKey          = "user"
	authenticatedKey = "isAuthenticated"
)

// Fixed demo admin credentials. Everything else is accepted as a demo user.
const (
	AdminEmail    = "admin@cookiestore.com"
	AdminPassword = "admin123"
)

// ErrEmptyCredentials is returned when email or password is blank.
var ErrEmptyCredentials = errors.New("email and password are required")

// Store is the mock session gate. It holds the single current-session slot:
// login and signup overwrite it, logout clears it, and Current re-reads it
// from the underlying storage. No password is ever verified against a real
// account store.
type Store struct {
	storage     Storage
	loginDelay  time.Duration
	signupDelay time.Duration
}

// NewStore creates a session store over the given storage. The delays
// simulate network latency on login and signup; pass zero to resolve
// immediately, as tests do.
func NewStore(storage Storage, loginDelay, signupDelay time.Duration) *Store {
	return &Store{
		storage:     storage,
		loginDelay:  loginDelay,
		signupDelay: signupDelay,
	}
}

// Login persists a session record for the submitted credentials after the
// simulated latency. The fixed admin pair yields an admin record; any other
// non-empty pair succeeds as a demo user with the submitted email.
func (s *Store) Login(ctx context.Context, email, password string) (*models.SessionRecord, error) {
	if email == "" || password == "" {
		return nil, ErrEmptyCredentials
	}
	if err := s.wait(ctx, s.loginDelay); err != nil {
		return nil, err
	}

	var rec *models.SessionRecord
	if email == AdminEmail && password == AdminPassword {
		rec = &models.SessionRecord{
			ID:        "admin-1",
			Email:     email,
			FirstName: "Admin",
			Role:      models.RoleAdmin,
		}
	} else {
		rec = &models.SessionRecord{
			ID:        uuid.NewString(),
			Email:     email,
			FirstName: "Demo User",
			Role:      models.RoleUser,
		}
	}

	if err := s.persist(rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// Signup persists a session record built from the submitted fields after
// the simulated latency. There is no backing account store, so no
// uniqueness or duplicate-account check is possible.
func (s *Store) Signup(ctx context.Context, firstName, phoneNumber, email string) (*models.SessionRecord, error) {
	if err := s.wait(ctx, s.signupDelay); err != nil {
		return nil, err
	}

	rec := &models.SessionRecord{
		ID:          uuid.NewString(),
		Email:       email,
		FirstName:   firstName,
		PhoneNumber: phoneNumber,
		Role:        models.RoleUser,
	}

	if err := s.persist(rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// Current re-reads the persisted keys and returns the active session
// record, or nil when no valid session is persisted.
func (s *Store) Current() *models.SessionRecord {
	flag, ok := s.storage.Get(authenticatedKey)
	if !ok || flag != "true" {
		return nil
	}
	raw, ok := s.storage.Get(userKey)
	if !ok {
		return nil
	}
	var rec models.SessionRecord
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return nil
	}
	return &rec
}

// Logout clears both persisted keys.
func (s *Store) Logout() error {
	if err := s.storage.Delete(userKey); err != nil {
		return err
	}
	return s.storage.Delete(authenticatedKey)
}

func (s *Store) persist(rec *models.SessionRecord) error {
	raw, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	if err := s.storage.Set(userKey, string(raw)); err != nil {
		return err
	}
	return s.storage.Set(authenticatedKey, "true")
}

// wait blocks for the simulated latency or until the request context is
// cancelled.
func (s *Store) wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	select {
	case <-time.After(d):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
