package main

import (
	"net/http"
	"strconv"

	"github.com/Andybrookes-dev/Space-Store/internal/middleware"
	"github.com/Andybrookes-dev/Space-Store/internal/services"
	"github.com/Andybrookes-dev/Space-Store/internal/session"

	"github.com/labstack/echo/v4"
)

func registerOrderRoutes(g *echo.Group, checkoutSvc *services.CheckoutService, orderSvc *services.OrderService, store session.Store) {

	// CHECKOUT
	checkout := g.Group("/checkout")
	checkout.Use(middleware.RequireSession(store))
	checkout.POST("", func(c echo.Context) error {
		s := middleware.GetSession(c)
		order, err := checkoutSvc.Checkout(c.Request().Context(), s.Email)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"message": "Order placed", "orderId": order.ID})
	})

	// ORDERS (own)
	p := g.Group("/orders")
	p.Use(middleware.RequireSession(store))

	p.GET("", func(c echo.Context) error {
		s := middleware.GetSession(c)
		list, err := orderSvc.ListByUser(c.Request().Context(), s.Email)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusOK, list)
	})

	p.GET("/:id/items", func(c echo.Context) error {
		s := middleware.GetSession(c)
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid id"})
		}
		items, err := orderSvc.ListItems(c.Request().Context(), s.Email, s.IsAdmin, id)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusOK, items)
	})

	// ADMIN
	admin := g.Group("/admin/orders")
	admin.Use(middleware.RequireSession(store))
	admin.Use(middleware.AdminOnly)

	admin.GET("", func(c echo.Context) error {
		list, err := orderSvc.ListAll(c.Request().Context())
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusOK, list)
	})

	admin.PUT("/fulfill/:id", func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid id"})
		}
		if err := orderSvc.MarkFulfilled(c.Request().Context(), id); err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"message": "Order marked as fulfilled"})
	})
}
