package middleware

import (
	"net/http"

	"github.com/Andybrookes-dev/Space-Store/internal/session"

	"github.com/labstack/echo/v4"
)

const contextKey = "session"

// RequireSession validates the session cookie against the store and attaches
// the live session to the echo context.
func RequireSession(store session.Store) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(session.CookieName)
			if err != nil || cookie.Value == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"message": "Not logged in"})
			}
			s, ok := store.Get(c.Request().Context(), cookie.Value)
			if !ok {
				return c.JSON(http.StatusUnauthorized, map[string]string{"message": "Session expired"})
			}
			c.Set(contextKey, s)
			return next(c)
		}
	}
}

// GetSession returns the session attached by RequireSession, or nil.
func GetSession(c echo.Context) *session.Session {
	v := c.Get(contextKey)
	if v == nil {
		return nil
	}
	if s, ok := v.(session.Session); ok {
		return &s
	}
	return nil
}

// TryGetSession looks the cookie up without failing the request. Used by
// GET /api/session, which answers loggedIn=false instead of 401.
func TryGetSession(c echo.Context, store session.Store) *session.Session {
	cookie, err := c.Cookie(session.CookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}
	s, ok := store.Get(c.Request().Context(), cookie.Value)
	if !ok {
		return nil
	}
	return &s
}

// AdminOnly requires the live session's admin flag. Runs after
// RequireSession; never consults anything client-supplied.
func AdminOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		s := GetSession(c)
		if s == nil || !s.IsAdmin {
			return c.JSON(http.StatusForbidden, map[string]string{"message": "Admin access required"})
		}
		return next(c)
	}
}
