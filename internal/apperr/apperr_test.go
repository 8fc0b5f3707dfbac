package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusMapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{Validation("All fields are required."), http.StatusBadRequest},
		{Conflict("Email already registered"), http.StatusBadRequest},
		{EmptyCart("Cart is empty"), http.StatusBadRequest},
		{Unauthorized("Invalid credentials"), http.StatusUnauthorized},
		{Forbidden("Admin access required"), http.StatusForbidden},
		{NotFound("Product not found"), http.StatusNotFound},
		{Storage(errors.New("pq: connection refused")), http.StatusInternalServerError},
		{errors.New("unclassified"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.status, Status(tc.err), "for %v", tc.err)
	}
}

func TestMessageNeverLeaksInternals(t *testing.T) {
	err := Storage(errors.New("pq: password authentication failed for user postgres"))
	assert.Equal(t, "Database error", Message(err))
	assert.Equal(t, "Database error", Message(errors.New("raw driver error")))
}

func TestKindSurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("checkout: %w", EmptyCart("Cart is empty"))
	assert.Equal(t, KindEmptyCart, KindOf(err))
	assert.Equal(t, "Cart is empty", Message(err))
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("boom")
	assert.ErrorIs(t, Wrap(KindStorage, "Database error", cause), cause)
}
