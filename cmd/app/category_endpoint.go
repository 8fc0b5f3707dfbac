package main

import (
	"net/http"

	"github.com/Andybrookes-dev/Space-Store/internal/middleware"
	"github.com/Andybrookes-dev/Space-Store/internal/services"
	"github.com/Andybrookes-dev/Space-Store/internal/session"

	"github.com/labstack/echo/v4"
)

type createCategoryRequest struct {
	Name string `json:"name"`
}

func registerCategoryRoutes(g *echo.Group, cs *services.CategoryService, store session.Store) {

	// PUBLIC — list categories
	g.GET("/categories", func(c echo.Context) error {
		list, err := cs.List(c.Request().Context())
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusOK, list)
	})

	// ADMIN
	admin := g.Group("/admin")
	admin.Use(middleware.RequireSession(store))
	admin.Use(middleware.AdminOnly)

	admin.GET("/categories", func(c echo.Context) error {
		list, err := cs.List(c.Request().Context())
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusOK, list)
	})

	admin.POST("/category", func(c echo.Context) error {
		req := new(createCategoryRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid request"})
		}
		id, err := cs.Create(c.Request().Context(), req.Name)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"message": "Category added", "id": id})
	})
}
