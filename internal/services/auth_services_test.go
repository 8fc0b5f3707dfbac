package services

import (
	"context"
	"testing"

	"github.com/Andybrookes-dev/Space-Store/internal/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestRegisterRequiresAllFields(t *testing.T) {
	svc := NewAuthService(newFakeUserStore())

	cases := []struct {
		name                                  string
		firstName, lastName, email, password string
	}{
		{"missing first name", "", "Brookes", "andy@example.com", "secret123"},
		{"missing last name", "Andy", "", "andy@example.com", "secret123"},
		{"missing email", "Andy", "Brookes", "", "secret123"},
		{"missing password", "Andy", "Brookes", "andy@example.com", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), tc.firstName, tc.lastName, tc.email, tc.password)
			require.Error(t, err)
			assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
		})
	}
}

func TestRegisterRejectsMalformedEmail(t *testing.T) {
	svc := NewAuthService(newFakeUserStore())

	_, err := svc.Register(context.Background(), "Andy", "Brookes", "not-an-email", "secret123")
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestRegisterHashesPassword(t *testing.T) {
	store := newFakeUserStore()
	svc := NewAuthService(store)

	_, err := svc.Register(context.Background(), "Andy", "Brookes", "andy@example.com", "secret123")
	require.NoError(t, err)

	u := store.users["andy@example.com"]
	require.NotNil(t, u)
	assert.NotEqual(t, "secret123", u.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret123")))
}

func TestRegisterDuplicateEmailConflicts(t *testing.T) {
	svc := NewAuthService(newFakeUserStore())

	_, err := svc.Register(context.Background(), "Andy", "Brookes", "andy@example.com", "secret123")
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "Other", "Person", "andy@example.com", "different1")
	require.Error(t, err)
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
}

func TestLoginDoesNotLeakUserExistence(t *testing.T) {
	store := newFakeUserStore()
	svc := NewAuthService(store)

	_, err := svc.Register(context.Background(), "Andy", "Brookes", "andy@example.com", "secret123")
	require.NoError(t, err)

	_, wrongPassword := svc.Login(context.Background(), "andy@example.com", "wrong")
	_, unknownEmail := svc.Login(context.Background(), "nobody@example.com", "secret123")

	require.Error(t, wrongPassword)
	require.Error(t, unknownEmail)
	assert.Equal(t, apperr.KindUnauthorized, apperr.KindOf(wrongPassword))
	assert.Equal(t, apperr.KindUnauthorized, apperr.KindOf(unknownEmail))
	assert.Equal(t, apperr.Message(wrongPassword), apperr.Message(unknownEmail))
}

func TestLoginReturnsUserWithoutHash(t *testing.T) {
	svc := NewAuthService(newFakeUserStore())

	_, err := svc.Register(context.Background(), "Andy", "Brookes", "andy@example.com", "secret123")
	require.NoError(t, err)

	u, err := svc.Login(context.Background(), "andy@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "Andy", u.FirstName)
	assert.Empty(t, u.PasswordHash)
	assert.False(t, u.IsAdmin)
}
