package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cookiestore/models"
	"cookiestore/session"
)

func TestLoginAdminRoutesToDashboard(t *testing.T) {
	e := newEnv(t)

	rr := e.do(t, http.MethodPost, "/login", map[string]string{
		"email":    session.AdminEmail,
		"password": session.AdminPassword,
	})
	require.Equal(t, http.StatusOK, rr.Code)

	var resp authResponse
	decodeJSON(t, rr, &resp)
	assert.Equal(t, models.RoleAdmin, resp.User.Role)
	assert.Equal(t, "/admin", resp.Redirect)

	current := e.sessions.Current()
	require.NotNil(t, current)
	assert.True(t, current.IsAdmin())
}

func TestLoginAnyCredentialsSucceedAsDemoUser(t *testing.T) {
	e := newEnv(t)

	rr := e.do(t, http.MethodPost, "/login", map[string]string{
		"email":    "shopper@example.com",
		"password": "whatever",
	})
	require.Equal(t, http.StatusOK, rr.Code)

	var resp authResponse
	decodeJSON(t, rr, &resp)
	assert.Equal(t, models.RoleUser, resp.User.Role)
	assert.Equal(t, "shopper@example.com", resp.User.Email)
	assert.Equal(t, "/", resp.Redirect)
}

func TestLoginValidationBlocksSubmission(t *testing.T) {
	e := newEnv(t)

	rr := e.do(t, http.MethodPost, "/login", map[string]string{})
	require.Equal(t, http.StatusBadRequest, rr.Code)

	var resp errorResponse
	decodeJSON(t, rr, &resp)
	assert.Equal(t, "Email is required", resp.Errors["email"])
	assert.Equal(t, "Password is required", resp.Errors["password"])

	assert.Nil(t, e.sessions.Current())
}

func TestLoginRejectsMalformedEmail(t *testing.T) {
	e := newEnv(t)

	rr := e.do(t, http.MethodPost, "/login", map[string]string{
		"email":    "not-an-email",
		"password": "whatever",
	})
	require.Equal(t, http.StatusBadRequest, rr.Code)

	var resp errorResponse
	decodeJSON(t, rr, &resp)
	assert.Equal(t, "Please enter a valid email address", resp.Errors["email"])
}

func TestSignupCreatesSession(t *testing.T) {
	e := newEnv(t)

	rr := e.do(t, http.MethodPost, "/signup", map[string]string{
		"first_name":       "Maya",
		"phone_number":     "+1 (555) 010-9999",
		"email":            "maya@example.com",
		"password":         "supersecret",
		"confirm_password": "supersecret",
	})
	require.Equal(t, http.StatusCreated, rr.Code)

	var resp authResponse
	decodeJSON(t, rr, &resp)
	assert.Equal(t, models.RoleUser, resp.User.Role)
	assert.Equal(t, "Maya", resp.User.FirstName)

	current := e.sessions.Current()
	require.NotNil(t, current)
	assert.Equal(t, "maya@example.com", current.Email)
}

func TestSignupMismatchedPasswordsPersistNothing(t *testing.T) {
	e := newEnv(t)

	rr := e.do(t, http.MethodPost, "/signup", map[string]string{
		"first_name":       "Maya",
		"phone_number":     "+1 (555) 010-9999",
		"email":            "maya@example.com",
		"password":         "supersecret",
		"confirm_password": "somethingelse",
	})
	require.Equal(t, http.StatusBadRequest, rr.Code)

	var resp errorResponse
	decodeJSON(t, rr, &resp)
	assert.Equal(t, "Passwords do not match", resp.Errors["confirm_password"])

	assert.Nil(t, e.sessions.Current())
}

func TestLogoutClearsSession(t *testing.T) {
	e := newEnv(t)
	e.loginAdmin(t)
	require.NotNil(t, e.sessions.Current())

	rr := e.do(t, http.MethodPost, "/logout", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	assert.Nil(t, e.sessions.Current())
}

func TestGetProfile(t *testing.T) {
	e := newEnv(t)

	assert.Equal(t, http.StatusUnauthorized, e.do(t, http.MethodGet, "/profile", nil).Code)

	e.loginAdmin(t)

	rr := e.do(t, http.MethodGet, "/profile", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var rec models.SessionRecord
	decodeJSON(t, rr, &rec)
	assert.Equal(t, session.AdminEmail, rec.Email)
}
