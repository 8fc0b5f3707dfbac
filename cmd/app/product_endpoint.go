package main

import (
	"net/http"
	"strconv"

	"github.com/Andybrookes-dev/Space-Store/internal/middleware"
	"github.com/Andybrookes-dev/Space-Store/internal/model"
	"github.com/Andybrookes-dev/Space-Store/internal/services"
	"github.com/Andybrookes-dev/Space-Store/internal/session"

	"github.com/labstack/echo/v4"
)

type productRequest struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	CategoryID  *int64  `json:"category_id"`
	Active      *bool   `json:"active"`
}

func registerProductRoutes(g *echo.Group, ps *services.ProductService, store session.Store) {

	// PUBLIC — active products, with optional category/q/max_price filters
	g.GET("/products", func(c echo.Context) error {
		filter := model.ProductFilter{
			Category: c.QueryParam("category"),
			Query:    c.QueryParam("q"),
		}
		if mp := c.QueryParam("max_price"); mp != "" {
			v, err := strconv.ParseFloat(mp, 64)
			if err != nil || v < 0 {
				return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid max_price"})
			}
			filter.MaxPrice = v
		}
		list, err := ps.ListActive(c.Request().Context(), filter)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusOK, list)
	})

	// PUBLIC — single product, inactive included so past orders resolve
	g.GET("/product/:id", func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid id"})
		}
		p, err := ps.Get(c.Request().Context(), id)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusOK, p)
	})

	// ADMIN
	admin := g.Group("/admin")
	admin.Use(middleware.RequireSession(store))
	admin.Use(middleware.AdminOnly)

	admin.GET("/products", func(c echo.Context) error {
		list, err := ps.ListAll(c.Request().Context())
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusOK, list)
	})

	admin.POST("/product", func(c echo.Context) error {
		req := new(productRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid request"})
		}
		p := &model.Product{
			Name:        req.Name,
			Price:       req.Price,
			Description: req.Description,
			Image:       req.Image,
			CategoryID:  req.CategoryID,
			Active:      true,
		}
		id, err := ps.Create(c.Request().Context(), p)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"message": "Product added", "id": id})
	})

	admin.PUT("/product/:id", func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid id"})
		}
		req := new(productRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid request"})
		}
		p := &model.Product{
			ID:          id,
			Name:        req.Name,
			Price:       req.Price,
			Description: req.Description,
			Image:       req.Image,
			CategoryID:  req.CategoryID,
			Active:      true,
		}
		if req.Active != nil {
			p.Active = *req.Active
		}
		if err := ps.Update(c.Request().Context(), p); err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"message": "Product updated"})
	})

	// DELETE deactivates; rows and image references stay for order history
	admin.DELETE("/product/:id", func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid id"})
		}
		if err := ps.Deactivate(c.Request().Context(), id); err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"message": "Product deactivated"})
	})
}
