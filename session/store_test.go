package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cookiestore/models"
)

func newTestStore() (*Store, *MemoryStorage) {
	storage := NewMemoryStorage()
	return NewStore(storage, 0, 0), storage
}

func TestLoginAdminCredentialsPersistAdminRecord(t *testing.T) {
	store, storage := newTestStore()

	rec, err := store.Login(context.Background(), AdminEmail, AdminPassword)
	require.NoError(t, err)

	assert.Equal(t, models.RoleAdmin, rec.Role)
	assert.Equal(t, "admin-1", rec.ID)
	assert.Equal(t, "Admin", rec.FirstName)

	flag, ok := storage.Get("isAuthenticated")
	require.True(t, ok)
	assert.Equal(t, "true", flag)
	_, ok = storage.Get("user")
	assert.True(t, ok)
}

func TestLoginAnyOtherCredentialsSucceedAsDemoUser(t *testing.T) {
	store, _ := newTestStore()

	rec, err := store.Login(context.Background(), "shopper@example.com", "whatever")
	require.NoError(t, err)

	assert.Equal(t, models.RoleUser, rec.Role)
	assert.Equal(t, "shopper@example.com", rec.Email)
	assert.Equal(t, "Demo User", rec.FirstName)
	assert.NotEmpty(t, rec.ID)
}

func TestLoginWrongAdminPasswordIsStillDemoUser(t *testing.T) {
	store, _ := newTestStore()

	rec, err := store.Login(context.Background(), AdminEmail, "not-the-password")
	require.NoError(t, err)

	assert.Equal(t, models.RoleUser, rec.Role)
}

func TestLoginEmptyCredentialsRejectedWithoutPersisting(t *testing.T) {
	store, _ := newTestStore()

	_, err := store.Login(context.Background(), "", "")
	assert.ErrorIs(t, err, ErrEmptyCredentials)
	assert.Nil(t, store.Current())
}

func TestLoginObservesContextDuringSimulatedLatency(t *testing.T) {
	storage := NewMemoryStorage()
	store := NewStore(storage, time.Second, 0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.Login(ctx, "shopper@example.com", "whatever")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, store.Current())
}

func TestSignupPersistsSubmittedFields(t *testing.T) {
	store, _ := newTestStore()

	rec, err := store.Signup(context.Background(), "Maya", "+1 555 010 9999", "maya@example.com")
	require.NoError(t, err)

	assert.Equal(t, models.RoleUser, rec.Role)
	assert.Equal(t, "Maya", rec.FirstName)
	assert.Equal(t, "+1 555 010 9999", rec.PhoneNumber)

	current := store.Current()
	require.NotNil(t, current)
	assert.Equal(t, "maya@example.com", current.Email)
}

func TestCurrentRoundTripsThroughStorage(t *testing.T) {
	store, _ := newTestStore()

	_, err := store.Login(context.Background(), AdminEmail, AdminPassword)
	require.NoError(t, err)

	current := store.Current()
	require.NotNil(t, current)
	assert.True(t, current.IsAdmin())
}

func TestCurrentIsNilWithoutSessionOrWithGarbage(t *testing.T) {
	store, storage := newTestStore()
	assert.Nil(t, store.Current())

	// a mangled record is treated as no session rather than an error
	require.NoError(t, storage.Set("user", "{not json"))
	require.NoError(t, storage.Set("isAuthenticated", "true"))
	assert.Nil(t, store.Current())
}

func TestLogoutClearsBothKeys(t *testing.T) {
	store, storage := newTestStore()
	_, err := store.Login(context.Background(), "shopper@example.com", "pw")
	require.NoError(t, err)

	require.NoError(t, store.Logout())

	assert.Nil(t, store.Current())
	_, ok := storage.Get("user")
	assert.False(t, ok)
	_, ok = storage.Get("isAuthenticated")
	assert.False(t, ok)
}
