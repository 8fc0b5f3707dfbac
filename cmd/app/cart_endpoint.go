package main

import (
	"net/http"
	"strconv"

	"github.com/Andybrookes-dev/Space-Store/internal/middleware"
	"github.com/Andybrookes-dev/Space-Store/internal/services"
	"github.com/Andybrookes-dev/Space-Store/internal/session"

	"github.com/labstack/echo/v4"
)

type addCartRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

type updateCartRequest struct {
	ItemID   int64 `json:"item_id"`
	Quantity int   `json:"quantity"`
}

// Cart routes take the identity from the session, never from the body.
func registerCartRoutes(g *echo.Group, cs *services.CartService, store session.Store) {
	p := g.Group("/cart")
	p.Use(middleware.RequireSession(store))

	p.GET("", func(c echo.Context) error {
		s := middleware.GetSession(c)
		cart, err := cs.Get(c.Request().Context(), s.Email)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusOK, cart)
	})

	p.POST("/add", func(c echo.Context) error {
		s := middleware.GetSession(c)
		req := new(addCartRequest)
		if err := c.Bind(req); err != nil || req.ProductID == 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Missing fields"})
		}
		if err := cs.Add(c.Request().Context(), s.Email, req.ProductID, req.Quantity); err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"message": "Added to cart"})
	})

	p.PUT("/update", func(c echo.Context) error {
		s := middleware.GetSession(c)
		req := new(updateCartRequest)
		if err := c.Bind(req); err != nil || req.ItemID == 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Missing fields"})
		}
		if err := cs.UpdateQuantity(c.Request().Context(), s.Email, req.ItemID, req.Quantity); err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"message": "Quantity updated"})
	})

	p.DELETE("/remove/:id", func(c echo.Context) error {
		s := middleware.GetSession(c)
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid id"})
		}
		if err := cs.Remove(c.Request().Context(), s.Email, id); err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"message": "Item removed"})
	})

	p.DELETE("/clear", func(c echo.Context) error {
		s := middleware.GetSession(c)
		if err := cs.Clear(c.Request().Context(), s.Email); err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"message": "Cart cleared"})
	})
}
