package main

import (
	"net/http"
	"time"

	"github.com/Andybrookes-dev/Space-Store/internal/middleware"
	"github.com/Andybrookes-dev/Space-Store/internal/services"
	"github.com/Andybrookes-dev/Space-Store/internal/session"

	"github.com/labstack/echo/v4"
)

type registerRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func registerAuthRoutes(g *echo.Group, authSvc *services.AuthService, store session.Store, ttl time.Duration) {

	g.POST("/register", func(c echo.Context) error {
		req := new(registerRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid request"})
		}
		_, err := authSvc.Register(c.Request().Context(), req.FirstName, req.LastName, req.Email, req.Password)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"message": "Registration successful!"})
	})

	g.POST("/login", func(c echo.Context) error {
		req := new(loginRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid request"})
		}
		user, err := authSvc.Login(c.Request().Context(), req.Email, req.Password)
		if err != nil {
			return respondError(c, err)
		}

		s := session.New(user.Email, user.FirstName, user.IsAdmin, ttl)
		if err := store.Put(c.Request().Context(), s); err != nil {
			return respondError(c, err)
		}
		c.SetCookie(&http.Cookie{
			Name:     session.CookieName,
			Value:    s.Token,
			Path:     "/",
			Expires:  s.ExpiresAt,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})

		return c.JSON(http.StatusOK, echo.Map{
			"message":   "Login successful",
			"firstName": user.FirstName,
			"isAdmin":   user.IsAdmin,
		})
	})

	g.GET("/session", func(c echo.Context) error {
		s := middleware.TryGetSession(c, store)
		if s == nil {
			return c.JSON(http.StatusOK, echo.Map{"loggedIn": false})
		}
		return c.JSON(http.StatusOK, echo.Map{
			"loggedIn":  true,
			"firstName": s.FirstName,
			"email":     s.Email,
			"isAdmin":   s.IsAdmin,
		})
	})

	g.POST("/logout", func(c echo.Context) error {
		if cookie, err := c.Cookie(session.CookieName); err == nil && cookie.Value != "" {
			if err := store.Delete(c.Request().Context(), cookie.Value); err != nil {
				return respondError(c, err)
			}
		}
		c.SetCookie(&http.Cookie{
			Name:     session.CookieName,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
		})
		return c.JSON(http.StatusOK, echo.Map{"message": "Logged out"})
	})
}
