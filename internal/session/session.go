// Package session holds server-side login state keyed by an opaque token.
// The session row is the only source of truth for the admin flag; nothing
// trusts a client-supplied isAdmin.
package session

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// CookieName is the HTTP cookie carrying the opaque token.
const CookieName = "space_session"

type Session struct {
	Token     string    `json:"token"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	IsAdmin   bool      `json:"isAdmin"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (s Session) Expired() bool {
	return time.Now().After(s.ExpiresAt)
}

// Store persists sessions between requests. Get must not return expired
// sessions.
type Store interface {
	Put(ctx context.Context, s Session) error
	Get(ctx context.Context, token string) (Session, bool)
	Delete(ctx context.Context, token string) error
}

// New mints a session with a fresh opaque token.
func New(email, firstName string, isAdmin bool, ttl time.Duration) Session {
	return Session{
		Token:     uuid.NewString(),
		Email:     email,
		FirstName: firstName,
		IsAdmin:   isAdmin,
		ExpiresAt: time.Now().Add(ttl),
	}
}
